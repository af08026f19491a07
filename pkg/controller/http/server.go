package http

import (
	"net/http"
	"time"

	"github.com/gameops-lab/rconhub/pkg/usecase"
	"github.com/gameops-lab/rconhub/pkg/utils/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
	authUC *usecase.AuthUseCase
}

type Options func(*Server)

// WithAuth enables session-token authentication on the API routes
func WithAuth(authUC *usecase.AuthUseCase) Options {
	return func(s *Server) {
		s.authUC = authUC
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	// Unauthenticated endpoints
	r.Get("/api/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	// Dispatch API
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware(s.authUC))

		r.Get("/api/actions", listActionsHandler(s.uc.Actions))
		r.Get("/api/auth/me", authMeHandler)

		r.Route("/api/dialogs", func(r chi.Router) {
			r.Post("/", openDialogHandler(s.uc.Dialogs))
			r.Route("/{dialogID}", func(r chi.Router) {
				r.Get("/", getDialogHandler(s.uc.Dialogs))
				r.Delete("/", closeDialogHandler(s.uc.Dialogs))
				r.Post("/submit", submitDialogHandler(s.uc.Dialogs))
				r.Delete("/recipients/{recipientID}", removeRecipientHandler(s.uc.Dialogs))
			})
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

package http

import (
	"net/http"
	"strings"

	"github.com/gameops-lab/rconhub/pkg/domain/model/auth"
	"github.com/gameops-lab/rconhub/pkg/usecase"
)

const sessionCookieName = "session"

// authMiddleware validates the operator session token and stores the
// resulting actor in the request context. In no-auth mode (or when no
// validator is configured) every request runs as an anonymous superuser.
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authUC == nil || authUC.IsNoAuthn() {
				ctx := auth.ContextWithActor(r.Context(), auth.NewAnonymousActor())
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			raw := sessionToken(r)
			if raw == "" {
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			actor, err := authUC.ValidateToken(r.Context(), raw)
			if err != nil {
				http.Error(w, "Invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := auth.ContextWithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionToken extracts the session token from the Authorization header,
// falling back to the session cookie set by the dashboard.
func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
		return ""
	}
	if c, err := r.Cookie(sessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/model/auth"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/usecase"
	"github.com/gameops-lab/rconhub/pkg/utils/errutil"
	"github.com/gameops-lab/rconhub/pkg/utils/safe"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

type actionView struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	RequiredPermissions []string `json:"required_permissions"`
	Deprecated          bool     `json:"deprecated"`
	DeprecationNote     string   `json:"deprecation_note,omitempty"`
	FormFieldsRef       string   `json:"form_fields_ref,omitempty"`
}

type actionListResponse struct {
	Actions   []actionView `json:"actions"`
	Available bool         `json:"available"`
}

type openDialogRequest struct {
	Surface string         `json:"surface"`
	Action  string         `json:"action"`
	Targets []model.Target `json:"targets"`
	Payload model.Payload  `json:"payload,omitempty"`
}

type actorResponse struct {
	Name        string   `json:"name"`
	IsSuperuser bool     `json:"is_superuser"`
	Permissions []string `json:"permissions"`
}

func newActionView(a *model.ActionDefinition) actionView {
	perms := make([]string, len(a.RequiredPermissions))
	for i, p := range a.RequiredPermissions {
		perms[i] = p.String()
	}
	return actionView{
		Name:                a.Name,
		Description:         a.Description,
		RequiredPermissions: perms,
		Deprecated:          a.Deprecated,
		DeprecationNote:     a.DeprecationNote,
		FormFieldsRef:       a.FormFieldsRef,
	}
}

// listActionsHandler serves the permission-filtered action menu for a
// surface. An empty menu is a valid response, flagged explicitly.
func listActionsHandler(uc *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		surface, err := types.ParseSurface(r.URL.Query().Get("surface"))
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid surface parameter"), http.StatusBadRequest)
			return
		}

		actions, err := uc.ListAvailable(r.Context(), surface, actor)
		if err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}

		resp := actionListResponse{
			Actions:   make([]actionView, len(actions)),
			Available: len(actions) > 0,
		}
		for i, a := range actions {
			resp.Actions[i] = newActionView(a)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func authMeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	perms := make([]string, 0, len(actor.Permissions))
	for _, p := range actor.Permissions.List() {
		perms = append(perms, p.String())
	}
	respondJSON(r.Context(), w, http.StatusOK, actorResponse{
		Name:        actor.Name,
		IsSuperuser: actor.IsSuperuser,
		Permissions: perms,
	})
}

func openDialogHandler(uc *usecase.DialogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := auth.ActorFromContext(r.Context())
		if !ok {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}

		var req openDialogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
			return
		}
		defer safe.Close(r.Context(), r.Body)

		surface, err := types.ParseSurface(req.Surface)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid surface"), http.StatusBadRequest)
			return
		}

		snap, err := uc.Open(r.Context(), actor, surface, req.Action, req.Targets, req.Payload)
		if err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusCreated, snap)
	}
}

func getDialogHandler(uc *usecase.DialogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := uc.Get(r.Context(), types.DialogID(chi.URLParam(r, "dialogID")))
		if err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, snap)
	}
}

func closeDialogHandler(uc *usecase.DialogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.Close(r.Context(), types.DialogID(chi.URLParam(r, "dialogID"))); err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// submitDialogHandler runs the batch cycle synchronously and returns the
// settled snapshot, so the dashboard renders the final per-player statuses
// from a single response.
func submitDialogHandler(uc *usecase.DialogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := uc.Submit(r.Context(), types.DialogID(chi.URLParam(r, "dialogID")))
		if err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, snap)
	}
}

func removeRecipientHandler(uc *usecase.DialogUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := uc.RemoveRecipient(r.Context(),
			types.DialogID(chi.URLParam(r, "dialogID")),
			types.RecipientID(chi.URLParam(r, "recipientID")),
		)
		if err != nil {
			handleUseCaseError(r.Context(), w, err)
			return
		}
		respondJSON(r.Context(), w, http.StatusOK, snap)
	}
}

// handleUseCaseError maps use case sentinel errors onto HTTP status codes
func handleUseCaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDialogNotFound),
		errors.Is(err, usecase.ErrActionNotOnSurface),
		errors.Is(err, model.ErrRecipientNotFound):
		errutil.HandleHTTP(ctx, w, err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrActionForbidden):
		errutil.HandleHTTP(ctx, w, err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrSubmissionInFlight),
		errors.Is(err, usecase.ErrDialogClosed),
		errors.Is(err, model.ErrBatchNotEditable),
		errors.Is(err, model.ErrBatchAlreadySubmitting):
		errutil.HandleHTTP(ctx, w, err, http.StatusConflict)
	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
	}
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

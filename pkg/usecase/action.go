package usecase

import (
	"context"

	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/gameops-lab/rconhub/pkg/service/catalog"
	"github.com/m-mizutani/goerr/v2"
)

// ActionUseCase exposes the action menu for a surface, narrowed to what the
// actor is allowed to invoke.
type ActionUseCase struct {
	catalog *catalog.Catalog
}

// NewActionUseCase creates an ActionUseCase backed by the given catalog
func NewActionUseCase(c *catalog.Catalog) *ActionUseCase {
	return &ActionUseCase{catalog: c}
}

// ListAvailable returns the surface's actions the actor may invoke, in menu
// order. An empty result is a valid, explicit "no actions available" state.
func (uc *ActionUseCase) ListAvailable(ctx context.Context, surface types.Surface, actor model.Actor) ([]*model.ActionDefinition, error) {
	actions, err := uc.catalog.ListActions(surface)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list surface actions", goerr.V("surface", surface))
	}
	return catalog.FilterByPermission(actions, actor), nil
}

// Resolve returns the named action if the surface offers it and the actor
// may invoke it. This is the gate every dialog open passes through.
func (uc *ActionUseCase) Resolve(ctx context.Context, surface types.Surface, name string, actor model.Actor) (*model.ActionDefinition, error) {
	actions, err := uc.catalog.ListActions(surface)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list surface actions", goerr.V("surface", surface))
	}

	for _, a := range actions {
		if a.Name != name {
			continue
		}
		if !actor.CanInvoke(a) {
			return nil, goerr.Wrap(ErrActionForbidden, "action not permitted",
				goerr.V(ActionKey, name), goerr.V("actor", actor.Name))
		}
		return a, nil
	}

	return nil, goerr.Wrap(ErrActionNotOnSurface, "action not offered here",
		goerr.V(ActionKey, name), goerr.V("surface", surface))
}

// Package catalog holds the static registry of administrative actions and
// the permission filter that narrows it per operator.
package catalog

import (
	"github.com/gameops-lab/rconhub/pkg/domain/model"
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Catalog is the immutable action registry. It is constructed once at
// startup and passed by reference; nothing mutates it afterwards.
type Catalog struct {
	bySurface map[types.Surface][]*model.ActionDefinition
	byName    map[string]*model.ActionDefinition
}

// New builds the catalog with the builtin action set
func New() *Catalog {
	return build(builtinSurfaces())
}

func build(bySurface map[types.Surface][]*model.ActionDefinition) *Catalog {
	byName := make(map[string]*model.ActionDefinition)
	for _, actions := range bySurface {
		for _, a := range actions {
			byName[a.Name] = a
		}
	}
	return &Catalog{
		bySurface: bySurface,
		byName:    byName,
	}
}

// ListActions returns the action list for a surface. Order is part of the
// contract: it determines menu presentation and is stable across calls.
func (c *Catalog) ListActions(surface types.Surface) ([]*model.ActionDefinition, error) {
	actions, ok := c.bySurface[surface]
	if !ok {
		return nil, goerr.New("unknown surface", goerr.V("surface", surface))
	}
	out := make([]*model.ActionDefinition, len(actions))
	copy(out, actions)
	return out, nil
}

// Get looks up an action by name across all surfaces
func (c *Catalog) Get(name string) (*model.ActionDefinition, error) {
	action, ok := c.byName[name]
	if !ok {
		return nil, goerr.Wrap(ErrActionNotFound, "no such action", goerr.V("name", name))
	}
	return action, nil
}

// FilterByPermission keeps the actions the actor may invoke: superusers see
// everything, otherwise every required permission must be held. The result
// may be empty; callers must present that as an explicit "no actions
// available" state rather than an ambiguous empty menu.
func FilterByPermission(actions []*model.ActionDefinition, actor model.Actor) []*model.ActionDefinition {
	out := make([]*model.ActionDefinition, 0, len(actions))
	for _, a := range actions {
		if actor.CanInvoke(a) {
			out = append(out, a)
		}
	}
	return out
}

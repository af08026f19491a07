package model

import (
	"github.com/gameops-lab/rconhub/pkg/domain/types"
)

// Actor is the operator invoking actions through the dashboard
type Actor struct {
	Name        string
	IsSuperuser bool
	Permissions types.PermissionSet
}

// PermissionGrant is the wire shape the permission source delivers,
// one object per granted permission.
type PermissionGrant struct {
	Permission string `json:"permission"`
}

// NewActor converts the permission source payload into a typed actor
// with a hash-set of capabilities.
func NewActor(name string, isSuperuser bool, grants []PermissionGrant) Actor {
	perms := types.NewPermissionSet()
	for _, g := range grants {
		if g.Permission != "" {
			perms.Add(types.Permission(g.Permission))
		}
	}
	return Actor{
		Name:        name,
		IsSuperuser: isSuperuser,
		Permissions: perms,
	}
}

// CanInvoke reports whether the actor may invoke the action.
// Superusers may invoke anything; otherwise every required permission
// must be held. Partial matches never qualify.
func (a Actor) CanInvoke(def *ActionDefinition) bool {
	if a.IsSuperuser {
		return true
	}
	return a.Permissions.HasAll(def.RequiredPermissions)
}

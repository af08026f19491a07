package model

import (
	"github.com/gameops-lab/rconhub/pkg/domain/types"
)

// Payload is the JSON body sent to the remote command API for one recipient
type Payload map[string]any

// ActionDefinition describes one administrative action an operator can
// dispatch against players. Definitions are built once at startup and
// never mutated afterwards.
type ActionDefinition struct {
	// Name is the short identifier shown in action menus
	Name string
	// Description explains what the action does to the operator
	Description string
	// Command is the remote command identifier used on the wire
	Command string
	// RequiredPermissions lists the permissions an actor must hold.
	// An empty list means the action is unrestricted.
	RequiredPermissions []types.Permission
	// Deprecated marks the action as advisory-deprecated. It stays invokable.
	Deprecated      bool
	DeprecationNote string
	// FormFieldsRef is an opaque reference to the action-specific input
	// schema rendered by the frontend. The engine never interprets it.
	FormFieldsRef string
}

// BuildPayload merges the common form fields with the recipient's identity
// fields. The common payload is copied, never mutated.
func (d *ActionDefinition) BuildPayload(common Payload, r Recipient) Payload {
	payload := make(Payload, len(common)+2)
	for k, v := range common {
		payload[k] = v
	}
	payload["player_id"] = r.ID.String()
	payload["player_name"] = r.Name
	return payload
}

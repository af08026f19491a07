package model

import (
	"time"

	"github.com/gameops-lab/rconhub/pkg/domain/types"
)

// AuditOutcome records how one recipient settled in an audited batch
type AuditOutcome struct {
	RecipientID  types.RecipientID    `firestore:"recipient_id" json:"recipient_id"`
	DisplayLabel string               `firestore:"display_label" json:"display_label"`
	State        types.RecipientState `firestore:"state" json:"state"`
	ErrorDetail  string               `firestore:"error_detail,omitempty" json:"error_detail,omitempty"`
}

// AuditEntry is the persistent record of one settled batch submission
type AuditEntry struct {
	ID             string           `firestore:"id" json:"id"`
	DialogID       types.DialogID   `firestore:"dialog_id" json:"dialog_id"`
	ActionName     string           `firestore:"action_name" json:"action_name"`
	Command        string           `firestore:"command" json:"command"`
	ActorName      string           `firestore:"actor_name" json:"actor_name"`
	State          types.BatchState `firestore:"state" json:"state"`
	Outcomes       []AuditOutcome   `firestore:"outcomes" json:"outcomes"`
	TransportError string           `firestore:"transport_error,omitempty" json:"transport_error,omitempty"`
	StartedAt      time.Time        `firestore:"started_at" json:"started_at"`
	SettledAt      time.Time        `firestore:"settled_at" json:"settled_at"`
}

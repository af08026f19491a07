package model

import (
	"github.com/gameops-lab/rconhub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RecipientStatus tracks the delivery state of one recipient within a batch
type RecipientStatus struct {
	Recipient   Recipient
	State       types.RecipientState
	ErrorDetail string
}

// BatchRequest is one submission of one action against one or more
// recipients. It lives for a single dialog session and is never persisted.
// The type itself is not safe for concurrent use; the dialog controller
// serializes all access.
type BatchRequest struct {
	Action      *ActionDefinition
	FormPayload Payload
	Recipients  []*RecipientStatus
	State       types.BatchState
}

// NewBatchRequest creates a fresh batch in the Editing state with every
// recipient Idle.
func NewBatchRequest(action *ActionDefinition, recipients []Recipient, formPayload Payload) (*BatchRequest, error) {
	if action == nil {
		return nil, goerr.New("batch requires an action")
	}
	if len(recipients) == 0 {
		return nil, goerr.New("batch requires at least one recipient", goerr.V("action", action.Name))
	}

	statuses := make([]*RecipientStatus, len(recipients))
	for i, r := range recipients {
		statuses[i] = &RecipientStatus{
			Recipient: r,
			State:     types.RecipientStateIdle,
		}
	}

	return &BatchRequest{
		Action:      action,
		FormPayload: formPayload,
		Recipients:  statuses,
		State:       types.BatchStateEditing,
	}, nil
}

// Status returns the status entry for the given recipient id
func (b *BatchRequest) Status(id types.RecipientID) (*RecipientStatus, bool) {
	for _, rs := range b.Recipients {
		if rs.Recipient.ID == id {
			return rs, true
		}
	}
	return nil, false
}

// RemoveRecipient deletes a recipient and its status entry. Removal is an
// editing action: it is rejected while a submission is in flight and after
// the batch has fully completed.
func (b *BatchRequest) RemoveRecipient(id types.RecipientID) error {
	switch b.State {
	case types.BatchStateEditing, types.BatchStatePartiallyFailed:
	default:
		return goerr.Wrap(ErrBatchNotEditable, "cannot remove recipient",
			goerr.V("state", b.State), goerr.V("recipient_id", id))
	}

	for i, rs := range b.Recipients {
		if rs.Recipient.ID == id {
			b.Recipients = append(b.Recipients[:i], b.Recipients[i+1:]...)
			return nil
		}
	}
	return goerr.Wrap(ErrRecipientNotFound, "no such recipient in batch", goerr.V("recipient_id", id))
}

// BeginSubmission moves the batch into Submitting and every recipient into
// Pending, before any remote call is issued. A resubmission after partial
// failure resets all recipients to Pending, not Idle, and keeps no history.
func (b *BatchRequest) BeginSubmission() error {
	switch b.State {
	case types.BatchStateEditing, types.BatchStatePartiallyFailed:
	case types.BatchStateSubmitting:
		return goerr.Wrap(ErrBatchAlreadySubmitting, "submission already in flight")
	default:
		return goerr.New("batch cannot be submitted", goerr.V("state", b.State))
	}
	if len(b.Recipients) == 0 {
		return goerr.New("batch has no recipients left")
	}

	for _, rs := range b.Recipients {
		rs.State = types.RecipientStatePending
		rs.ErrorDetail = ""
	}
	b.State = types.BatchStateSubmitting
	return nil
}

// Resolve settles one recipient's outcome. Only Pending recipients can
// settle, and only to Success or Error.
func (b *BatchRequest) Resolve(id types.RecipientID, state types.RecipientState, errorDetail string) error {
	rs, ok := b.Status(id)
	if !ok {
		return goerr.Wrap(ErrRecipientNotFound, "no such recipient in batch", goerr.V("recipient_id", id))
	}
	if !rs.State.CanAdvanceTo(state) {
		return goerr.New("invalid recipient state transition",
			goerr.V("recipient_id", id), goerr.V("from", rs.State), goerr.V("to", state))
	}
	rs.State = state
	rs.ErrorDetail = errorDetail
	return nil
}

// Settle aggregates once every recipient has left Pending: all Success
// means Completed, anything else means PartiallyFailed.
func (b *BatchRequest) Settle() (types.BatchState, error) {
	if b.State != types.BatchStateSubmitting {
		return "", goerr.New("batch is not submitting", goerr.V("state", b.State))
	}

	allSuccess := true
	for _, rs := range b.Recipients {
		if !rs.State.IsSettled() {
			return "", goerr.New("recipient has not settled",
				goerr.V("recipient_id", rs.Recipient.ID), goerr.V("state", rs.State))
		}
		if rs.State != types.RecipientStateSuccess {
			allSuccess = false
		}
	}

	if allSuccess {
		b.State = types.BatchStateCompleted
	} else {
		b.State = types.BatchStatePartiallyFailed
	}
	return b.State, nil
}

// SnapshotRecipients copies the current recipient list. The dispatcher fans
// out against the snapshot so concurrent edits can never desynchronize
// in-flight invocations from the tracked statuses.
func (b *BatchRequest) SnapshotRecipients() []Recipient {
	out := make([]Recipient, len(b.Recipients))
	for i, rs := range b.Recipients {
		out[i] = rs.Recipient
	}
	return out
}

package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrDialogNotFound = errors.New("dialog not found")

	// Lifecycle errors
	ErrDialogClosed       = errors.New("dialog is closed")
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// Access control errors
	ErrActionForbidden = errors.New("actor lacks permission for action")

	// Availability errors
	ErrActionNotOnSurface = errors.New("action is not offered on this surface")
)

// Context keys for error values
const (
	DialogIDKey  = "dialog_id"
	ActionKey    = "action"
	RecipientKey = "recipient_id"
)

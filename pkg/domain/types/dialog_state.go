package types

import "fmt"

// DialogState represents the lifecycle state of an action dialog
type DialogState string

const (
	DialogStateClosed     DialogState = "CLOSED"
	DialogStateOpen       DialogState = "OPEN"
	DialogStateSubmitting DialogState = "SUBMITTING"
)

// IsValid checks if the dialog state is valid
func (s DialogState) IsValid() bool {
	switch s {
	case DialogStateClosed, DialogStateOpen, DialogStateSubmitting:
		return true
	default:
		return false
	}
}

// String returns the string representation of the dialog state
func (s DialogState) String() string {
	return string(s)
}

// ParseDialogState parses a string into a DialogState
func ParseDialogState(s string) (DialogState, error) {
	state := DialogState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid dialog state: %s", s)
	}
	return state, nil
}

package types

import "fmt"

// BatchState represents the aggregate state of one batch submission
type BatchState string

const (
	BatchStateEditing         BatchState = "EDITING"
	BatchStateSubmitting      BatchState = "SUBMITTING"
	BatchStateCompleted       BatchState = "COMPLETED"
	BatchStatePartiallyFailed BatchState = "PARTIALLY_FAILED"
)

// AllBatchStates returns all valid batch states
func AllBatchStates() []BatchState {
	return []BatchState{
		BatchStateEditing,
		BatchStateSubmitting,
		BatchStateCompleted,
		BatchStatePartiallyFailed,
	}
}

// IsValid checks if the batch state is valid
func (s BatchState) IsValid() bool {
	switch s {
	case BatchStateEditing,
		BatchStateSubmitting,
		BatchStateCompleted,
		BatchStatePartiallyFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the batch has settled for the current attempt.
// A PartiallyFailed batch can still be resubmitted manually.
func (s BatchState) IsTerminal() bool {
	return s == BatchStateCompleted || s == BatchStatePartiallyFailed
}

// String returns the string representation of the batch state
func (s BatchState) String() string {
	return string(s)
}

// ParseBatchState parses a string into a BatchState
func ParseBatchState(s string) (BatchState, error) {
	state := BatchState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid batch state: %s", s)
	}
	return state, nil
}

package types

import "fmt"

// RecipientState represents the delivery state of one recipient within a batch
type RecipientState string

const (
	RecipientStateIdle    RecipientState = "IDLE"
	RecipientStatePending RecipientState = "PENDING"
	RecipientStateSuccess RecipientState = "SUCCESS"
	RecipientStateError   RecipientState = "ERROR"
)

// AllRecipientStates returns all valid recipient states
func AllRecipientStates() []RecipientState {
	return []RecipientState{
		RecipientStateIdle,
		RecipientStatePending,
		RecipientStateSuccess,
		RecipientStateError,
	}
}

// IsValid checks if the recipient state is valid
func (s RecipientState) IsValid() bool {
	switch s {
	case RecipientStateIdle,
		RecipientStatePending,
		RecipientStateSuccess,
		RecipientStateError:
		return true
	default:
		return false
	}
}

// IsSettled reports whether the state is terminal for a submission attempt
func (s RecipientState) IsSettled() bool {
	return s == RecipientStateSuccess || s == RecipientStateError
}

// CanAdvanceTo reports whether a transition to next is a forward move.
// The only forward moves are Idle -> Pending and Pending -> Success/Error.
// A batch reset (back to Pending) is handled separately and is not a forward move.
func (s RecipientState) CanAdvanceTo(next RecipientState) bool {
	switch s {
	case RecipientStateIdle:
		return next == RecipientStatePending
	case RecipientStatePending:
		return next == RecipientStateSuccess || next == RecipientStateError
	default:
		return false
	}
}

// String returns the string representation of the recipient state
func (s RecipientState) String() string {
	return string(s)
}

// ParseRecipientState parses a string into a RecipientState
func ParseRecipientState(s string) (RecipientState, error) {
	state := RecipientState(s)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid recipient state: %s", s)
	}
	return state, nil
}

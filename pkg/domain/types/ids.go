package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// RecipientID is the stable identifier of one batch target (a player id)
type RecipientID string

// Validate checks that the recipient ID is usable
func (id RecipientID) Validate() error {
	if id == "" {
		return goerr.New("recipient ID must not be empty")
	}
	return nil
}

// String returns the string representation of the recipient ID
func (id RecipientID) String() string {
	return string(id)
}

// DialogID identifies one dialog session
type DialogID string

// NewDialogID issues a random dialog ID
func NewDialogID() DialogID {
	return DialogID(uuid.NewString())
}

// Validate checks that the dialog ID is usable
func (id DialogID) Validate() error {
	if id == "" {
		return goerr.New("dialog ID must not be empty")
	}
	return nil
}

// String returns the string representation of the dialog ID
func (id DialogID) String() string {
	return string(id)
}

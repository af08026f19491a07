package model

import "errors"

// Sentinel errors for the batch state machine
var (
	ErrRecipientNotFound      = errors.New("recipient not found")
	ErrBatchNotEditable       = errors.New("batch is not editable")
	ErrBatchAlreadySubmitting = errors.New("batch submission already in flight")
)

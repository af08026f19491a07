package catalog

import "errors"

var (
	ErrActionNotFound = errors.New("action not found")
)

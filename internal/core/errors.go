package core

import "errors"

// Error taxonomy shared by all services. Handlers translate these into HTTP
// statuses with errors.Is; anything that does not unwrap to one of them is
// treated as an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

package app

import "errors"

// ErrNotFound and related errors describe validation and runtime failures.
var (
	ErrNotFound           = errors.New("not found")
	ErrNoColumns          = errors.New("board has no columns")
	ErrMissingCredentials = errors.New("missing credentials")
	ErrPasswordMismatch   = errors.New("passwords don't match")
)

// Package errs holds the error taxonomy shared by storage, services and the
// HTTP layer. Callers wrap these with %w and match with errors.Is.
package errs

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

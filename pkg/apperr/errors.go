// Package apperr holds the error values shared by the domain packages and
// mapped to HTTP statuses by the API layer.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")
	ErrForbidden = errors.New("forbidden")
)

// Validation is a user-facing input error.
type Validation string

func (e Validation) Error() string { return string(e) }

// Validationf formats a Validation error.
func Validationf(format string, args ...any) error {
	return Validation(fmt.Sprintf(format, args...))
}

// IsValidation reports whether err wraps a Validation error.
func IsValidation(err error) bool {
	var v Validation
	return errors.As(err, &v)
}

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/artem13815/recruitment/pkg/apperr"
)

// Login and provisioning errors. ErrNotFound and ErrUserAlreadyExists wrap
// the shared apperr values so the API maps them like any other entity.
var (
	ErrNotFound           = fmt.Errorf("user %w", apperr.ErrNotFound)
	ErrUserAlreadyExists  = fmt.Errorf("user %w", apperr.ErrDuplicate)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveUser       = errors.New("user is not active")
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}

// TokenGenerator issues access tokens (JWT in production) for a user.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}

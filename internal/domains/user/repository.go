package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence contract for accounts. The email
// column carries a uniqueness constraint; Create surfaces a violation
// as ErrEmailTaken.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error

	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Service is the auth logic consumed by the HTTP handler.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	Me(ctx context.Context, userID string) (*User, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) (*AuthResult, error)
}

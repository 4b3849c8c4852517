// Package usecase defines the application's business logic interfaces and the
// input/output DTOs exchanged with the delivery layer.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegisterInput carries a registration request payload.
type RegisterInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput carries a login request payload. Password strength rules are not
// re-applied here; presence is the only requirement.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserView is the public projection of a user: every stored field except the
// password hash. It is the only user shape that ever crosses the HTTP boundary.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginOutput pairs the authenticated user's public view with a freshly minted
// token.
type LoginOutput struct {
	User  *UserView `json:"user"`
	Token string    `json:"token"`
}

// AuthUsecase defines the registration and login operations.
type AuthUsecase interface {
	// Register validates the password against the strength policy, rejects
	// duplicate emails, and persists a new user with a hashed credential.
	Register(ctx context.Context, input *RegisterInput) (*UserView, error)

	// Login verifies credentials and mints a token. Unknown email and wrong
	// password produce the same error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

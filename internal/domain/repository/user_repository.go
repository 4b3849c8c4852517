// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"portal/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the credential store operations the auth flow consumes.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact email match.
	// Returns ErrUserNotFound when no user exists for the email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}

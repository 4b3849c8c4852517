// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account, keyed by a globally unique email address.
// PasswordHash holds the bcrypt hash of the credential; the raw password never
// leaves the request that carried it.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The login identifier. Unique across all users, enforced by the store.
	PasswordHash string    // The bcrypt hash of the user's password, salt embedded.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

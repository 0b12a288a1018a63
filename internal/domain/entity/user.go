package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the registry: an NGO, a community group, or a
// registry administrator. The username is the login identifier and is unique.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	Username     string    // Unique login identifier.
	Email        string    // Contact email address.
	Role         Role      // Closed role enum; fixed set of three values.
	Organization string    // Optional organization name.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the authenticated caller handed to every operation. Domain logic
// receives it explicitly instead of reading ambient request state.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// Authentication represents a login credential for a user. Only password
// credentials exist today; the provider field keeps room for federated logins.
type Authentication struct {
	ID           uuid.UUID // The unique ID for this credential record.
	UserID       uuid.UUID // Links this credential to the User it belongs to.
	Provider     string    // The authentication provider, currently always "password".
	PasswordHash string    // The bcrypt-hashed password.
	CreatedAt    time.Time
}

// ProviderTypePassword is the provider value for username/password credentials.
const ProviderTypePassword = "password"

// RefreshToken represents a long-lived, authorized session. It is used to
// obtain a new access token after the old one expires, and is revoked on logout.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time // When this refresh token becomes invalid.
	CreatedAt time.Time // When this session was created.
}

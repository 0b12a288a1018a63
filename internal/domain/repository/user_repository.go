package repository

import (
	"context"

	"bluecarbon/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create persists a new user. Returns a unique-constraint error when the
	// username or email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their login identifier.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthRepository defines persistence operations for login credentials.
type AuthRepository interface {
	// Create persists a new credential record.
	Create(ctx context.Context, auth *entity.Authentication) error

	// FindByUserID retrieves the password credential for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Authentication, error)
}

// RefreshTokenRepository defines persistence operations for login sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its stored hash. Expired
	// tokens yield ErrRefreshTokenExpired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash revokes the session identified by the token hash.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all expired sessions and reports how many were removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

package service

import (
	"time"

	"bluecarbon/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the identity information embedded in an access token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
	Type   string // "access" or "refresh"
}

// TokenService defines the interface for generating and validating tokens.
// This abstracts the details of token creation from the usecases.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a user.
	GenerateTokens(userID uuid.UUID, role entity.Role) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashRefreshToken derives the storage hash for a raw refresh token.
	HashRefreshToken(raw string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}

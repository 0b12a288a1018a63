package middleware

import (
	"strings"

	"bluecarbon/internal/delivery/http/response"
	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the echo context key holding the authenticated caller.
const KeyIdentity = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the echo context for handlers to pick up.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(KeyIdentity, entity.Identity{
			UserID: claims.UserID,
			Role:   claims.Role,
		})

		return next(c)
	}
}

// RequireRole gates a route to the given roles. It must run after
// Authenticate. The denial message stays generic on purpose.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := GetIdentity(c)
			if !ok {
				return response.Forbidden(c, "ACCESS_DENIED", "Access denied")
			}

			for _, role := range roles {
				if identity.Role == role {
					return next(c)
				}
			}

			return response.Forbidden(c, "ACCESS_DENIED", "Access denied")
		}
	}
}

// GetIdentity extracts the authenticated caller from the echo context.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(KeyIdentity).(entity.Identity)

	return identity, ok
}

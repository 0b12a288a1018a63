package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bluecarbon/internal/domain/entity"
	"bluecarbon/internal/domain/service"
	mockService "bluecarbon/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, m *AuthMiddleware, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(next)(c))

	return rec
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateAccessToken("good-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleNGO, Type: "access"}, nil)

	m := NewAuthMiddleware(tokenSvc)

	var seen entity.Identity
	rec := runAuthenticated(t, m, "Bearer good-token", func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		require.True(t, ok)
		seen = identity

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, entity.RoleNGO, seen.Role)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec := runAuthenticated(t, m, "", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec := runAuthenticated(t, m, "Basic dXNlcjpwYXNz", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("bad-token").
		Return(nil, errors.New("invalid or expired token"))

	m := NewAuthMiddleware(tokenSvc)

	rec := runAuthenticated(t, m, "Bearer bad-token", func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	tests := []struct {
		name     string
		identity *entity.Identity
		allowed  []entity.Role
		wantCode int
	}{
		{
			name:     "matching role passes",
			identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin},
			allowed:  []entity.Role{entity.RoleAdmin},
			wantCode: http.StatusOK,
		},
		{
			name:     "one of several roles passes",
			identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleCommunity},
			allowed:  []entity.Role{entity.RoleNGO, entity.RoleCommunity},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong role denied",
			identity: &entity.Identity{UserID: uuid.New(), Role: entity.RoleNGO},
			allowed:  []entity.Role{entity.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "unauthenticated denied",
			identity: nil,
			allowed:  []entity.Role{entity.RoleAdmin},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tt.identity != nil {
				c.Set(KeyIdentity, *tt.identity)
			}

			handler := m.RequireRole(tt.allowed...)(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bluecarbon/internal/delivery/http/validator"
	"bluecarbon/internal/domain/entity"
	mockusecase "bluecarbon/internal/mocks/usecase"
	"bluecarbon/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newHandlerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	userID := uuid.New()
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{
			Username:     "mangrove-collective",
			Email:        "ops@mangrove.example",
			Password:     "s3cret-pass",
			Role:         "NGO",
			Organization: "Mangrove Collective",
		}).
		Return(&usecase.RegisterOutput{
			User: &entity.User{
				ID:           userID,
				Username:     "mangrove-collective",
				Email:        "ops@mangrove.example",
				Role:         entity.RoleNGO,
				Organization: "Mangrove Collective",
			},
		}, nil)

	body := `{"username":"mangrove-collective","email":"ops@mangrove.example","password":"s3cret-pass","role":"NGO","organization":"Mangrove Collective"}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/auth/register", body)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), `"dashboard":"/ngo-dashboard"`)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}

func TestUserHandler_Register_ValidationFailure(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Password below the minimum length never reaches the usecase.
	body := `{"username":"ab","email":"not-an-email","password":"short","role":"NGO"}`
	c, _ := newHandlerContext(t, http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Username: "reef-watch", Password: "s3cret-pass"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			User: &entity.User{
				ID:       uuid.New(),
				Username: "reef-watch",
				Email:    "crew@reef.example",
				Role:     entity.RoleCommunity,
			},
		}, nil)

	body := `{"username":"reef-watch","password":"s3cret-pass"}`
	c, rec := newHandlerContext(t, http.MethodPost, "/api/auth/login", body)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"access-token"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"refresh-token"`)
	assert.Contains(t, rec.Body.String(), `"dashboard":"/ngo-dashboard"`)
}

func TestUserHandler_Refresh(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Refresh(mock.Anything, usecase.RefreshInput{RefreshToken: "old-refresh"}).
		Return(&usecase.RefreshOutput{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"old-refresh"}`)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"new-access"`)
	assert.Contains(t, rec.Body.String(), `"refresh_token":"new-refresh"`)
}

func TestUserHandler_Logout(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Logout(mock.Anything, usecase.LogoutInput{RefreshToken: "old-refresh"}).
		Return(nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/api/auth/logout", `{"refresh_token":"old-refresh"}`)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Logout successful")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerContext(t, http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bluecarbon/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID string
	handler := m.Handle(func(c echo.Context) error {
		ctxID = deliverycontext.GetRequestID(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxID)
	_, err := uuid.Parse(headerID)
	assert.NoError(t, err)
}

func TestRequestIDMiddleware_HonorsInboundID(t *testing.T) {
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "upstream-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Handle(func(c echo.Context) error {
		assert.Equal(t, "upstream-id", deliverycontext.GetRequestID(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "upstream-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

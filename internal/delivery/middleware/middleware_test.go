package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"notifyd/config"
	deliverycontext "notifyd/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsIncomingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxRequestID string
	var ctxLogger *slog.Logger
	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		ctxRequestID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		ctxLogger = deliverycontext.GetLogger(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "req-123", ctxRequestID)
	assert.Equal(t, "req-123", deliverycontext.GetRequestID(c))
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.NotNil(t, ctxLogger)
}

func TestRequestIDMiddleware_GeneratesMissingID(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		status  int
		wantLog bool
	}{
		{name: "success without debug", debug: false, status: http.StatusOK, wantLog: false},
		{name: "success with debug", debug: true, status: http.StatusOK, wantLog: true},
		{name: "client error without debug", debug: false, status: http.StatusNotFound, wantLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/devices", nil), httptest.NewRecorder())

			handler := NewLoggerMiddleware(logger, cfg).Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			require.NoError(t, handler(c))
			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
				assert.Contains(t, buf.String(), "uri=/v1/devices")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

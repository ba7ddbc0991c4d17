package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notifyd/config"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/constants"
	domainerrors "notifyd/internal/domain/errors"
	mockUC "notifyd/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUC.MockDispatchUsecase) {
	t.Helper()

	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		DispatchUC: dispatchUC,
	})

	return h, dispatchUC
}

func newDevelopConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, signal map[string]string, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(signal)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	msg.Subscription = "projects/local/subscriptions/dispatch-signals"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_ProcessesEvent(t *testing.T) {
	h, dispatchUC := newTestPushHandler(t, newDevelopConfig())
	eventID := uuid.New()

	dispatchUC.EXPECT().
		ProcessEventByID(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "req-42"
		}), eventID).
		Return(nil)

	body := pushBody(t,
		map[string]string{"event_id": eventID.String(), "user_id": uuid.NewString(), "event_type": "POST_LIKED"},
		map[string]string{"request_id": "req-42"},
	)
	rec := servePush(h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "store failure is redelivered", err: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable},
		{name: "missing event is acknowledged", err: domainerrors.ErrEventNotFound, wantCode: http.StatusOK},
		{name: "invalid event is acknowledged", err: errors.Wrap(domainerrors.ErrInvalidEvent, "process"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, dispatchUC := newTestPushHandler(t, newDevelopConfig())
			eventID := uuid.New()

			dispatchUC.EXPECT().ProcessEventByID(mock.Anything, eventID).Return(tt.err)

			rec := servePush(h, pushBody(t, map[string]string{"event_id": eventID.String()}, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body func(t *testing.T) string
	}{
		{name: "not json", body: func(*testing.T) string { return "{" }},
		{name: "bad base64", body: func(*testing.T) string { return `{"message":{"data":"%%%"}}` }},
		{name: "missing event id", body: func(t *testing.T) string { return pushBody(t, map[string]string{"user_id": "u1"}, nil) }},
		{name: "event id not a uuid", body: func(t *testing.T) string { return pushBody(t, map[string]string{"event_id": "abc"}, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, newDevelopConfig())

			rec := servePush(h, tt.body(t))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	h, _ := newTestPushHandler(t, cfg)
	require.True(t, h.verifyPushAuth)

	h.verifyToken = func(*http.Request) error { return errors.New("bad token") }

	rec := servePush(h, pushBody(t, map[string]string{"event_id": uuid.NewString()}, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyPubSubToken_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.EqualError(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.EqualError(t, verifyPubSubToken(req), "invalid authorization header format")
}

package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"notifyd/config"
	"notifyd/internal/domain/constants"
	"notifyd/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	gcpubsub "gocloud.dev/pubsub"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSignal() *service.DispatchSignal {
	return &service.DispatchSignal{
		RequestID: "req-1",
		EventID:   "7c0c4a3e-5d7b-4b53-9a55-3c1f3f0f2a11",
		UserID:    "0b9f6d4e-2f3a-4c7d-8e1b-6a5c4d3e2f10",
		EventType: "POST_LIKED",
	}
}

func TestDecodeSignal(t *testing.T) {
	t.Run("request id from attributes", func(t *testing.T) {
		signal, err := DecodeSignal([]byte(`{"event_id":"e1","user_id":"u1","event_type":"POST_LIKED"}`),
			map[string]string{"request_id": "req-9"})
		require.NoError(t, err)
		assert.Equal(t, "e1", signal.EventID)
		assert.Equal(t, "req-9", signal.RequestID)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, err := DecodeSignal([]byte(`{"user_id":"u1"}`), nil)
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := DecodeSignal([]byte(`not json`), nil)
		assert.Error(t, err)
	})
}

func TestMemoryBus_PublishAndReceive(t *testing.T) {
	bus := NewMemoryBus()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer func() { assert.NoError(t, bus.Shutdown(context.Background())) }()

	publisher := NewMemoryPublisher(bus, newTestLogger())
	require.NoError(t, publisher.PublishDispatchSignal(ctx, newTestSignal()))

	signal, ack, err := bus.Receive(ctx)
	require.NoError(t, err)
	ack()

	assert.Equal(t, newTestSignal(), signal)
	assert.NoError(t, publisher.Close())
}

func TestMemoryBus_ReceiveMalformed(t *testing.T) {
	bus := NewMemoryBus()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	defer func() { assert.NoError(t, bus.Shutdown(context.Background())) }()

	require.NoError(t, bus.topic.Send(ctx, &gcpubsub.Message{Body: []byte("not json")}))

	_, _, err := bus.Receive(ctx)
	assert.ErrorIs(t, err, ErrMalformedSignal)
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	require.NoError(t, publisher.PublishDispatchSignal(context.Background(), newTestSignal()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, newTestSignal().EventID, received.Message.MessageID)
	assert.Equal(t, "POST_LIKED", received.Message.Attributes["event_type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	signal, err := DecodeSignal(data, received.Message.Attributes)
	require.NoError(t, err)
	assert.Equal(t, newTestSignal(), signal)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newTestLogger())
	err := publisher.PublishDispatchSignal(context.Background(), newTestSignal())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		bus      bool
		wantType any
		wantErr  bool
	}{
		{name: "not configured", pubsub: nil, wantType: &noopPublisher{}},
		{name: "memory", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderMemory}, bus: true, wantType: &memoryPublisher{}},
		{name: "memory without bus", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderMemory}, wantType: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "signals"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			params := PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: newTestLogger(),
			}
			if tt.bus {
				params.Bus = NewMemoryBus()
			}

			publisher, err := NewEventPublisher(params)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, publisher)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

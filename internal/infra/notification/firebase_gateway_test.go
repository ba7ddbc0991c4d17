package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"notifyd/config"
	"notifyd/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUnregistered = errors.New("requested entity was not found")

// fakeSender answers every token with the configured per-token error, or success.
type fakeSender struct {
	messages []*messaging.MulticastMessage
	failures map[string]error
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.messages = append(f.messages, message)
	if f.err != nil {
		return nil, f.err
	}

	response := &messaging.BatchResponse{}
	for _, token := range message.Tokens {
		if err, ok := f.failures[token]; ok {
			response.FailureCount++
			response.Responses = append(response.Responses, &messaging.SendResponse{Error: err})

			continue
		}
		response.SuccessCount++
		response.Responses = append(response.Responses, &messaging.SendResponse{Success: true, MessageID: "msg-" + token})
	}

	return response, nil
}

func newTestGateway(sender *fakeSender) *firebaseGateway {
	gateway := newFirebaseGateway(sender, &config.FirebaseConfig{SendRatePerSecond: 10000, SendBurst: 100},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	gateway.isInvalidToken = func(err error) bool {
		return errors.Is(err, errUnregistered)
	}

	return gateway
}

func makeTargets(n int) []service.PushTarget {
	targets := make([]service.PushTarget, 0, n)
	for i := range n {
		targets = append(targets, service.PushTarget{
			DeviceID: fmt.Sprintf("device-%d", i),
			Token:    fmt.Sprintf("token-%d", i),
			Platform: "android",
		})
	}

	return targets
}

func TestFirebaseGateway_SendToDevices_AllDelivered(t *testing.T) {
	sender := &fakeSender{}
	gateway := newTestGateway(sender)

	payload := service.PushPayload{Title: "Alice liked your post", Body: "sunset", Data: map[string]string{"deeplink": "app://posts/1"}}
	result, err := gateway.SendToDevices(context.Background(), makeTargets(2), payload)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	require.Len(t, sender.messages, 1)
	message := sender.messages[0]
	assert.Equal(t, []string{"token-0", "token-1"}, message.Tokens)
	assert.Equal(t, "Alice liked your post", message.Notification.Title)
	assert.Equal(t, "sunset", message.Notification.Body)
	assert.Equal(t, "app://posts/1", message.Data["deeplink"])
	assert.Equal(t, "high", message.Android.Priority)
}

func TestFirebaseGateway_SendToDevices_PerDeviceFailures(t *testing.T) {
	sender := &fakeSender{failures: map[string]error{
		"token-1": errUnregistered,
		"token-2": errors.New("internal error"),
	}}
	gateway := newTestGateway(sender)

	result, err := gateway.SendToDevices(context.Background(), makeTargets(3), service.PushPayload{Title: "t"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "device-1", result.Errors[0].DeviceID)
	assert.True(t, result.Errors[0].InvalidToken)
	assert.Equal(t, "device-2", result.Errors[1].DeviceID)
	assert.False(t, result.Errors[1].InvalidToken)
	assert.Contains(t, result.Errors[1].Error, "internal error")
	assert.Equal(t, []string{"device-1"}, result.InvalidDeviceIDs())
}

func TestFirebaseGateway_SendToDevices_ChunksLargeFanOut(t *testing.T) {
	sender := &fakeSender{}
	gateway := newTestGateway(sender)

	result, err := gateway.SendToDevices(context.Background(), makeTargets(1201), service.PushPayload{Title: "t"})
	require.NoError(t, err)

	assert.Equal(t, 1201, result.Success)
	require.Len(t, sender.messages, 3)
	assert.Len(t, sender.messages[0].Tokens, 500)
	assert.Len(t, sender.messages[1].Tokens, 500)
	assert.Len(t, sender.messages[2].Tokens, 201)
	assert.Equal(t, "token-1000", sender.messages[2].Tokens[0])
}

func TestFirebaseGateway_SendToDevices_TransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection reset")}
	gateway := newTestGateway(sender)

	result, err := gateway.SendToDevices(context.Background(), makeTargets(1), service.PushPayload{Title: "t"})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestFirebaseGateway_SendToDevices_CanceledContext(t *testing.T) {
	sender := &fakeSender{}
	gateway := newTestGateway(sender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.SendToDevices(ctx, makeTargets(1), service.PushPayload{Title: "t"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.messages)
}

func TestFirebaseGateway_SendToDevices_NoTargets(t *testing.T) {
	sender := &fakeSender{}
	gateway := newTestGateway(sender)

	result, err := gateway.SendToDevices(context.Background(), nil, service.PushPayload{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
	assert.Empty(t, sender.messages)
}

func TestLogGateway_ReportsEveryTargetDelivered(t *testing.T) {
	gateway := NewLogGateway(slog.New(slog.NewTextHandler(io.Discard, nil)))

	result, err := gateway.SendToDevices(context.Background(), makeTargets(3), service.PushPayload{Title: "t"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Success)
	assert.Equal(t, 0, result.Failed)
}

func TestNewPushGateway_FallsBackToLogGateway(t *testing.T) {
	gateway, err := NewPushGateway(GatewayParams{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, &logGateway{}, gateway)
}

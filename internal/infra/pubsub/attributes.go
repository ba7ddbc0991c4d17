package pubsub

import (
	"encoding/json"

	"notifyd/internal/domain/service"

	"github.com/pkg/errors"
)

// signalAttributes carries routing and tracing metadata next to the message body.
func signalAttributes(signal *service.DispatchSignal) map[string]string {
	attributes := map[string]string{
		"event_id":   signal.EventID,
		"user_id":    signal.UserID,
		"event_type": signal.EventType,
	}
	if signal.RequestID != "" {
		attributes["request_id"] = signal.RequestID
	}

	return attributes
}

// EncodeSignal serializes a dispatch signal into a message body.
func EncodeSignal(signal *service.DispatchSignal) ([]byte, error) {
	data, err := json.Marshal(signal)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// DecodeSignal parses a message body and fills the request ID from attributes when the body lacks it.
func DecodeSignal(data []byte, attributes map[string]string) (*service.DispatchSignal, error) {
	var signal service.DispatchSignal
	if err := json.Unmarshal(data, &signal); err != nil {
		return nil, errors.Wrap(err, "failed to parse dispatch signal")
	}

	if signal.EventID == "" {
		return nil, errors.New("dispatch signal has no event id")
	}

	if signal.RequestID == "" {
		signal.RequestID = attributes["request_id"]
	}

	return &signal, nil
}

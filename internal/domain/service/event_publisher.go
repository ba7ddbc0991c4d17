package service

import (
	"context"
)

// DispatchSignal tells a consumer that an event is ready to be processed.
type DispatchSignal struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventID   string `json:"event_id"`
	UserID    string `json:"user_id"`
	EventType string `json:"event_type"`
}

// EventPublisher defines the interface for publishing dispatch signals to a message queue.
type EventPublisher interface {
	// PublishDispatchSignal publishes a signal for async processing.
	PublishDispatchSignal(ctx context.Context, signal *DispatchSignal) error

	// Close releases any resources held by the publisher
	Close() error
}

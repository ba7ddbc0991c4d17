package usecase

import (
	"context"
	"time"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
)

// EnqueueRequest represents a business event submitted by a producer
type EnqueueRequest struct {
	UserID      uuid.UUID           `json:"user_id" validate:"required"`
	EventType   entity.EventType    `json:"event_type" validate:"required"`
	Payload     entity.EventPayload `json:"payload"`
	DedupeKey   string              `json:"dedupe_key,omitempty" validate:"max=512"`
	ScheduledAt *time.Time          `json:"scheduled_at,omitempty"`
}

// BatchResult summarizes one batch run
type BatchResult struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// DispatchUsecase defines the interface for the notification dispatcher
type DispatchUsecase interface {
	// Enqueue validates and stores an event as PENDING, then signals consumers
	Enqueue(ctx context.Context, req *EnqueueRequest) (*entity.NotificationEvent, error)

	// ProcessEvent runs the decision pipeline for one event and records its outcome
	ProcessEvent(ctx context.Context, event *entity.NotificationEvent) error

	// ProcessEventByID loads an event and processes it if it is still due
	ProcessEventByID(ctx context.Context, eventID uuid.UUID) error

	// ProcessPendingEventsBatch processes up to limit due events sequentially
	ProcessPendingEventsBatch(ctx context.Context, limit int) (*BatchResult, error)

	// PurgeStaleEvents deletes terminal events older than the retention period
	PurgeStaleEvents(ctx context.Context) (int64, error)
}

package repository

import (
	"context"
	"time"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("notification event not found")
	// ErrEventConflict is returned when an event was modified by another worker.
	ErrEventConflict = errors.New("notification event was modified concurrently")
)

// EventRepository defines the interface for the notification event queue.
type EventRepository interface {
	// CreateEvent persists a new event.
	CreateEvent(ctx context.Context, event *entity.NotificationEvent) error

	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.NotificationEvent, error)

	// FindDispatchableEvents returns up to limit events that are due at now, oldest first:
	// PENDING events whose schedule has passed, and FAILED events below maxAttempts whose retry time has passed.
	FindDispatchableEvents(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.NotificationEvent, error)

	// ExistsCompletedByDedupeKey reports whether a COMPLETED event other than excludeID
	// with the given dedupe key was created at or after since.
	ExistsCompletedByDedupeKey(ctx context.Context, dedupeKey string, since time.Time, excludeID uuid.UUID) (bool, error)

	// UpdateEventOutcome writes the status and retry bookkeeping of an event if its stored status
	// and attempt count still match the expected values. Otherwise it returns ErrEventConflict.
	UpdateEventOutcome(ctx context.Context, event *entity.NotificationEvent, expectedStatus entity.EventStatus, expectedAttempts int) error

	// DeleteTerminalEventsBefore removes COMPLETED, DEDUPLICATED, RATE_LIMITED and exhausted FAILED
	// events created before the cutoff. It returns the number of deleted rows.
	DeleteTerminalEventsBefore(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error)
}

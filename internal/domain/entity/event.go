package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventStatus is the processing state of a notification event.
type EventStatus string

const (
	EventStatusPending      EventStatus = "PENDING"
	EventStatusDeduplicated EventStatus = "DEDUPLICATED"
	EventStatusRateLimited  EventStatus = "RATE_LIMITED"
	EventStatusCompleted    EventStatus = "COMPLETED"
	EventStatusFailed       EventStatus = "FAILED"
)

// EventPayload carries the business context of an event.
type EventPayload struct {
	ActorID    string `json:"actor_id,omitempty"`
	ActorName  string `json:"actor_name,omitempty"`
	TargetID   string `json:"target_id" validate:"required"`
	TargetType string `json:"target_type" validate:"required"`
	Snippet    string `json:"snippet,omitempty"`
}

// Deeplink returns the in-app route for the payload's target.
func (p EventPayload) Deeplink() string {
	return fmt.Sprintf("%s/%s", p.TargetType, p.TargetID)
}

// NotificationEvent represents an inbound business event queued for dispatch.
type NotificationEvent struct {
	ID           uuid.UUID    `json:"id"`             // The Global Unique Identifier (GUID) for the event.
	UserID       uuid.UUID    `json:"user_id"`        // The recipient of the notification.
	EventType    EventType    `json:"event_type"`     // The business event that occurred.
	Category     Category     `json:"category"`       // Derived from EventType.
	Payload      EventPayload `json:"payload"`        // Actor and target details.
	Status       EventStatus  `json:"status"`         // Processing status, owned by the dispatcher.
	AttemptCount int          `json:"attempt_count"`  // Number of failed delivery attempts.
	DedupeKey    string       `json:"dedupe_key"`     // Key used to coalesce equivalent events.
	CreatedAt    time.Time    `json:"created_at"`     // Timestamp of when the event was enqueued.
	ScheduledAt  *time.Time   `json:"scheduled_at"`   // Optional earliest processing time.
	ProcessedAt  *time.Time   `json:"processed_at"`   // Timestamp of the last status transition.
	NextRetryAt  *time.Time   `json:"next_retry_at"`  // Earliest retry time for FAILED events.
	LastError    string       `json:"last_error"`     // Message of the last delivery failure.
	UpdatedAt    time.Time    `json:"updated_at"`     // Timestamp of the last modification.
}

// DefaultDedupeKey derives the dedupe key used when the producer does not supply one.
func DefaultDedupeKey(userID uuid.UUID, eventType EventType, targetID string) string {
	return fmt.Sprintf("%s:%s:%s", userID, eventType, targetID)
}

// IsTerminal reports whether no further automatic processing will happen for the event.
func (e *NotificationEvent) IsTerminal(maxAttempts int) bool {
	switch e.Status {
	case EventStatusCompleted, EventStatusDeduplicated, EventStatusRateLimited:
		return true
	case EventStatusFailed:
		return e.AttemptCount >= maxAttempts
	default:
		return false
	}
}

// IsDue reports whether the event may be processed at now.
func (e *NotificationEvent) IsDue(now time.Time) bool {
	switch e.Status {
	case EventStatusPending:
		return e.ScheduledAt == nil || !e.ScheduledAt.After(now)
	case EventStatusFailed:
		return e.NextRetryAt == nil || !e.NextRetryAt.After(now)
	default:
		return false
	}
}

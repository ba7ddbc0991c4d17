package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents an entry in a user's in-app notification center.
type Notification struct {
	ID          uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the notification.
	EventID     uuid.UUID  `json:"event_id"`     // The event this notification was created from.
	UserID      uuid.UUID  `json:"user_id"`      // The owner of the notification.
	Category    Category   `json:"category"`     // Category of the originating event.
	EventType   EventType  `json:"event_type"`   // Type of the originating event.
	Title       string     `json:"title"`        // Rendered title.
	Body        string     `json:"body"`         // Rendered body.
	Deeplink    string     `json:"deeplink"`     // In-app route, {targetType}/{targetId}.
	TargetID    string     `json:"target_id"`    // The target of the event.
	TargetType  string     `json:"target_type"`  // The kind of target (post, comment, user).
	ReadAt      *time.Time `json:"read_at"`      // Set once the user reads the notification.
	DismissedAt *time.Time `json:"dismissed_at"` // Set once the user dismisses the notification.
	CreatedAt   time.Time  `json:"created_at"`   // Timestamp of when the notification was created.
	ExpiresAt   time.Time  `json:"expires_at"`   // Listings ignore the notification after this instant.
	UpdatedAt   time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}

// IsRead reports whether the user has read the notification.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// IsDismissed reports whether the user has dismissed the notification.
func (n *Notification) IsDismissed() bool {
	return n.DismissedAt != nil
}

// IsVisible reports whether the notification should appear in listings at now.
func (n *Notification) IsVisible(now time.Time) bool {
	return !n.IsDismissed() && now.Before(n.ExpiresAt)
}

package repository

import (
	"context"
	"errors"
	"time"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification is returned when a notification already exists for an event.
	ErrDuplicateNotification = errors.New("notification already exists for event")
)

// NotificationRepository defines the interface for the in-app notification center.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByEventID retrieves the notification created from an event.
	FindNotificationByEventID(ctx context.Context, eventID uuid.UUID) (*entity.Notification, error)

	// UpdateNotificationContent rewrites the rendered content of an existing notification.
	UpdateNotificationContent(ctx context.Context, notification *entity.Notification) error

	// CountRecentByCategory counts a user's notifications of a category created at or after since,
	// ignoring the entry of excludeEventID.
	CountRecentByCategory(ctx context.Context, userID uuid.UUID, category entity.Category, since time.Time, excludeEventID uuid.UUID) (int64, error)

	// FindVisibleNotificationsByUser lists notifications that are neither dismissed nor expired at now, newest first.
	FindVisibleNotificationsByUser(ctx context.Context, userID uuid.UUID, now time.Time, limit, offset int) ([]*entity.Notification, error)

	// CountUnread counts visible notifications the user has not read.
	CountUnread(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error)

	// MarkRead sets the read time of a user's notification if unset.
	MarkRead(ctx context.Context, userID, id uuid.UUID, readAt time.Time) error

	// MarkAllRead marks every visible unread notification of the user as read and returns the count.
	MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error)

	// Dismiss sets the dismissed time of a user's notification if unset.
	Dismiss(ctx context.Context, userID, id uuid.UUID, dismissedAt time.Time) error

	// DeleteExpired removes notifications whose expiry is before now and returns the count.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

package usecase

import (
	"context"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationPage is one page of a user's notification center
type NotificationPage struct {
	Notifications []*entity.Notification `json:"notifications"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// InboxUsecase defines the interface for the in-app notification center
type InboxUsecase interface {
	// List returns visible notifications of a user, newest first
	List(ctx context.Context, userID uuid.UUID, limit, offset int) (*NotificationPage, error)

	// UnreadCount counts visible unread notifications
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one notification as read
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every visible notification as read and returns how many changed
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Dismiss hides a notification from listings
	Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error

	// PurgeExpired deletes notifications past their expiry
	PurgeExpired(ctx context.Context) (int64, error)
}

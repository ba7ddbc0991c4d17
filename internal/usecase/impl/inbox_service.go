package impl

import (
	"context"
	"log/slog"

	deliverycontext "notifyd/internal/delivery/context"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/domain/service"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultInboxPageSize = 20
	maxInboxPageSize     = 100
)

// inboxService implements the InboxUsecase interface.
type inboxService struct {
	notificationRepo repository.NotificationRepository
	clock            service.Clock
	logger           *slog.Logger
}

// InboxServiceParams holds dependencies for InboxService, injected by Fx.
type InboxServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(params InboxServiceParams) usecase.InboxUsecase {
	return &inboxService{
		notificationRepo: params.NotificationRepo,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

func (srv *inboxService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns visible notifications of a user, newest first.
func (srv *inboxService) List(ctx context.Context, userID uuid.UUID, limit, offset int) (*usecase.NotificationPage, error) {
	if limit <= 0 {
		limit = defaultInboxPageSize
	}
	limit = min(limit, maxInboxPageSize)
	offset = max(offset, 0)

	notifications, err := srv.notificationRepo.FindVisibleNotificationsByUser(ctx, userID, srv.clock.Now(), limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// UnreadCount counts visible unread notifications.
func (srv *inboxService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks one notification as read.
func (srv *inboxService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.notificationRepo.MarkRead(ctx, userID, notificationID, srv.clock.Now())
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to mark notification read")
}

// MarkAllRead marks every visible notification as read.
func (srv *inboxService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.MarkAllRead(ctx, userID, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	srv.log(ctx).Debug("Marked notifications read", slog.String("userID", userID.String()), slog.Int64("count", count))

	return count, nil
}

// Dismiss hides a notification from listings.
func (srv *inboxService) Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.notificationRepo.Dismiss(ctx, userID, notificationID, srv.clock.Now())
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to dismiss notification")
}

// PurgeExpired deletes notifications past their expiry.
func (srv *inboxService) PurgeExpired(ctx context.Context) (int64, error) {
	count, err := srv.notificationRepo.DeleteExpired(ctx, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired notifications")
	}

	if count > 0 {
		srv.log(ctx).Info("Purged expired notifications", slog.Int64("count", count))
	}

	return count, nil
}

package postgres

import (
	"context"
	"time"

	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new in-app notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// FindNotificationByEventID retrieves the notification created from an event.
func (repo *notificationRepository) FindNotificationByEventID(ctx context.Context, eventID uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by event ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// UpdateNotificationContent rewrites the rendered content of an existing notification.
func (repo *notificationRepository) UpdateNotificationContent(ctx context.Context, notification *entity.Notification) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Select("category", "event_type", "title", "body", "deeplink", "target_id", "target_type", "updated_at").
		Updates(fromNotificationDomain(notification))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification content")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// CountRecentByCategory counts a user's notifications of a category created at or after since.
// The entry written for excludeEventID is not counted.
func (repo *notificationRepository) CountRecentByCategory(ctx context.Context, userID uuid.UUID, category entity.Category, since time.Time, excludeEventID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND category = ? AND created_at >= ?", userID, category, since).
		Where("event_id <> ?", excludeEventID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count recent notifications")
	}

	return count, nil
}

// FindVisibleNotificationsByUser lists notifications that are neither dismissed nor expired, newest first.
func (repo *notificationRepository) FindVisibleNotificationsByUser(ctx context.Context, userID uuid.UUID, now time.Time, limit, offset int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.visible(ctx, userID, now).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread counts visible notifications the user has not read.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID, now time.Time) (int64, error) {
	var count int64

	if err := repo.visible(ctx, userID, now).
		Where("read_at IS NULL").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead sets the read time of a user's notification if unset.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID, readAt time.Time) error {
	return repo.stampOnce(ctx, userID, id, "read_at", readAt)
}

// MarkAllRead marks every visible unread notification of the user as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID, readAt time.Time) (int64, error) {
	result := repo.visible(ctx, userID, readAt).
		Where("read_at IS NULL").
		Update("read_at", readAt)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// Dismiss sets the dismissed time of a user's notification if unset.
func (repo *notificationRepository) Dismiss(ctx context.Context, userID, id uuid.UUID, dismissedAt time.Time) error {
	return repo.stampOnce(ctx, userID, id, "dismissed_at", dismissedAt)
}

// DeleteExpired removes notifications whose expiry is before now.
func (repo *notificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired notifications")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) visible(ctx context.Context, userID uuid.UUID, now time.Time) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND dismissed_at IS NULL AND expires_at > ?", userID, now)
}

// stampOnce sets a nullable timestamp column on a user's notification if it is still null.
func (repo *notificationRepository) stampOnce(ctx context.Context, userID, id uuid.UUID, column string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Where(column+" IS NULL").
		Update(column, at)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to set notification %s", column)
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check notification")
	}

	if count == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:          data.ID,
		EventID:     data.EventID,
		UserID:      data.UserID,
		Category:    entity.Category(data.Category),
		EventType:   entity.EventType(data.EventType),
		Title:       data.Title,
		Body:        data.Body,
		Deeplink:    data.Deeplink,
		TargetID:    data.TargetID,
		TargetType:  data.TargetType,
		ReadAt:      data.ReadAt,
		DismissedAt: data.DismissedAt,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:          data.ID,
		EventID:     data.EventID,
		UserID:      data.UserID,
		Category:    string(data.Category),
		EventType:   string(data.EventType),
		Title:       data.Title,
		Body:        data.Body,
		Deeplink:    data.Deeplink,
		TargetID:    data.TargetID,
		TargetType:  data.TargetType,
		ReadAt:      data.ReadAt,
		DismissedAt: data.DismissedAt,
		CreatedAt:   data.CreatedAt,
		ExpiresAt:   data.ExpiresAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

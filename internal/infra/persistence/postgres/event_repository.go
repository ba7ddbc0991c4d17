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

var terminalEventStatuses = []string{
	string(entity.EventStatusCompleted),
	string(entity.EventStatusDeduplicated),
	string(entity.EventStatusRateLimited),
}

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new event.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.NotificationEvent) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}

	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification event")
	}

	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.NotificationEvent, error) {
	var eventM model.NotificationEventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindDispatchableEvents returns up to limit due events, oldest first.
func (repo *eventRepository) FindDispatchableEvents(ctx context.Context, now time.Time, maxAttempts, limit int) ([]*entity.NotificationEvent, error) {
	var eventModels []*model.NotificationEventModel

	pending := repo.db.
		Where("status = ?", entity.EventStatusPending).
		Where("(scheduled_at IS NULL OR scheduled_at <= ?)", now)

	retryable := repo.db.
		Where("status = ?", entity.EventStatusFailed).
		Where("attempt_count < ?", maxAttempts).
		Where("(next_retry_at IS NULL OR next_retry_at <= ?)", now)

	if err := repo.db.WithContext(ctx).
		Where(pending).
		Or(retryable).
		Order("created_at ASC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dispatchable events")
	}

	events := make([]*entity.NotificationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// ExistsCompletedByDedupeKey reports whether another COMPLETED event with the key was created at or after since.
func (repo *eventRepository) ExistsCompletedByDedupeKey(ctx context.Context, dedupeKey string, since time.Time, excludeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("dedupe_key = ? AND status = ? AND created_at >= ? AND id <> ?",
			dedupeKey, entity.EventStatusCompleted, since, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check dedupe key")
	}

	return count > 0, nil
}

// UpdateEventOutcome writes the processing outcome if the stored status and attempt count are unchanged.
func (repo *eventRepository) UpdateEventOutcome(ctx context.Context, event *entity.NotificationEvent, expectedStatus entity.EventStatus, expectedAttempts int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationEventModel{}).
		Where("id = ? AND status = ? AND attempt_count = ?", event.ID, expectedStatus, expectedAttempts).
		Updates(map[string]any{
			"status":        string(event.Status),
			"attempt_count": event.AttemptCount,
			"processed_at":  event.ProcessedAt,
			"next_retry_at": event.NextRetryAt,
			"last_error":    event.LastError,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification event outcome")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	if _, err := repo.FindEventByID(ctx, event.ID); err != nil {
		return err
	}

	return repository.ErrEventConflict
}

// DeleteTerminalEventsBefore removes terminal events created before the cutoff.
func (repo *eventRepository) DeleteTerminalEventsBefore(ctx context.Context, cutoff time.Time, maxAttempts int) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Where(repo.db.
			Where("status IN ?", terminalEventStatuses).
			Or("(status = ? AND attempt_count >= ?)", entity.EventStatusFailed, maxAttempts)).
		Delete(&model.NotificationEventModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete terminal events")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM NotificationEventModel to a domain NotificationEvent entity.
func toEventDomain(data *model.NotificationEventModel) *entity.NotificationEvent {
	if data == nil {
		return nil
	}

	return &entity.NotificationEvent{
		ID:        data.ID,
		UserID:    data.UserID,
		EventType: entity.EventType(data.EventType),
		Category:  entity.Category(data.Category),
		Payload: entity.EventPayload{
			ActorID:    data.Payload.ActorID,
			ActorName:  data.Payload.ActorName,
			TargetID:   data.Payload.TargetID,
			TargetType: data.Payload.TargetType,
			Snippet:    data.Payload.Snippet,
		},
		Status:       entity.EventStatus(data.Status),
		AttemptCount: data.AttemptCount,
		DedupeKey:    data.DedupeKey,
		CreatedAt:    data.CreatedAt,
		ScheduledAt:  data.ScheduledAt,
		ProcessedAt:  data.ProcessedAt,
		NextRetryAt:  data.NextRetryAt,
		LastError:    data.LastError,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromEventDomain converts a domain NotificationEvent entity to a GORM NotificationEventModel.
func fromEventDomain(data *entity.NotificationEvent) *model.NotificationEventModel {
	if data == nil {
		return nil
	}

	return &model.NotificationEventModel{
		ID:        data.ID,
		UserID:    data.UserID,
		EventType: string(data.EventType),
		Category:  string(data.Category),
		Payload: model.EventPayloadData{
			ActorID:    data.Payload.ActorID,
			ActorName:  data.Payload.ActorName,
			TargetID:   data.Payload.TargetID,
			TargetType: data.Payload.TargetType,
			Snippet:    data.Payload.Snippet,
		},
		Status:       string(data.Status),
		AttemptCount: data.AttemptCount,
		DedupeKey:    data.DedupeKey,
		CreatedAt:    data.CreatedAt,
		ScheduledAt:  data.ScheduledAt,
		ProcessedAt:  data.ProcessedAt,
		NextRetryAt:  data.NextRetryAt,
		LastError:    data.LastError,
		UpdatedAt:    data.UpdatedAt,
	}
}

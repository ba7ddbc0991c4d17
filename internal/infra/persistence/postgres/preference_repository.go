package postgres

import (
	"context"

	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceRepository implements the repository.PreferenceRepository interface.
type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository is the constructor for preferenceRepository.
func NewPreferenceRepository(db *gorm.DB) repository.PreferenceRepository {
	return &preferenceRepository{
		db: db,
	}
}

// FindPreferences retrieves the preferences of a user.
func (repo *preferenceRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreferences, error) {
	var prefsM model.NotificationPreferenceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPreferencesNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification preferences")
	}

	return toPreferencesDomain(&prefsM), nil
}

// CreatePreferences persists preferences for a user.
func (repo *preferenceRepository) CreatePreferences(ctx context.Context, prefs *entity.UserNotificationPreferences) error {
	prefsM := fromPreferencesDomain(prefs)

	if err := repo.db.WithContext(ctx).Create(prefsM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePreferences
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification preferences")
	}

	prefs.CreatedAt = prefsM.CreatedAt
	prefs.UpdatedAt = prefsM.UpdatedAt

	return nil
}

// UpdatePreferences overwrites the stored preferences of a user if the stored version equals expectedVersion.
func (repo *preferenceRepository) UpdatePreferences(ctx context.Context, prefs *entity.UserNotificationPreferences, expectedVersion int64) error {
	prefsM := fromPreferencesDomain(prefs)
	prefsM.Version = expectedVersion + 1

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationPreferenceModel{}).
		Where("user_id = ? AND version = ?", prefs.UserID, expectedVersion).
		Select("timezone", "quiet_hours", "categories", "updated_at", "version").
		Updates(prefsM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification preferences")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.FindPreferences(ctx, prefs.UserID); err != nil {
			return err
		}

		return repository.ErrPreferencesConflict
	}

	prefs.Version = prefsM.Version

	return nil
}

// --- Mapper Functions ---

// toPreferencesDomain converts a GORM NotificationPreferenceModel to a domain entity.
func toPreferencesDomain(data *model.NotificationPreferenceModel) *entity.UserNotificationPreferences {
	if data == nil {
		return nil
	}

	quietHours := make([]bool, entity.HoursPerDay)
	copy(quietHours, data.QuietHours)

	categories := make(map[entity.Category]bool, len(data.Categories))
	for category, enabled := range data.Categories {
		categories[entity.Category(category)] = enabled
	}

	return &entity.UserNotificationPreferences{
		UserID:     data.UserID,
		Timezone:   data.Timezone,
		QuietHours: quietHours,
		Categories: categories,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Version:    data.Version,
	}
}

// fromPreferencesDomain converts a domain UserNotificationPreferences entity to a GORM model.
func fromPreferencesDomain(data *entity.UserNotificationPreferences) *model.NotificationPreferenceModel {
	if data == nil {
		return nil
	}

	categories := make(map[string]bool, len(data.Categories))
	for category, enabled := range data.Categories {
		categories[string(category)] = enabled
	}

	return &model.NotificationPreferenceModel{
		UserID:     data.UserID,
		Timezone:   data.Timezone,
		QuietHours: data.QuietHours,
		Categories: categories,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Version:    data.Version,
	}
}

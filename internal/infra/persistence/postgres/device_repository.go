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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}

	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidDevice.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByDeviceID retrieves the most recent record for a client device ID, revoked or not.
func (repo *deviceRepository) FindDeviceByDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ?", userID, deviceID).
		Order("created_at DESC").
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDeviceByDeviceID retrieves the active record for a client device ID.
func (repo *deviceRepository) FindActiveDeviceByDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND device_id = ? AND revoked_at IS NULL", userID, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find active device by device ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindActiveDevicesByUser retrieves all active devices for a user, most recently seen first.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Order("last_seen_at DESC").
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// RefreshDevice updates the token, platform, label and last-seen time of an active device.
func (repo *deviceRepository) RefreshDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ? AND revoked_at IS NULL", device.ID).
		Select("push_token", "platform", "label", "last_seen_at", "updated_at").
		Updates(deviceM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to refresh device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// RevokeDevice marks a device as revoked. Revoking an already revoked device is a no-op.
func (repo *deviceRepository) RevokeDevice(ctx context.Context, id uuid.UUID, revokedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", revokedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to revoke device")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check revoked device")
	}

	if count == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// FindDeviceSlot returns the user's device slot, creating it at version zero if absent.
func (repo *deviceRepository) FindDeviceSlot(ctx context.Context, userID uuid.UUID) (*entity.DeviceSlot, error) {
	seed := model.DeviceSlotModel{UserID: userID}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&seed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to seed device slot")
	}

	var slotM model.DeviceSlotModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&slotM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device slot")
	}

	return &entity.DeviceSlot{
		UserID:      slotM.UserID,
		Version:     slotM.Version,
		ActiveCount: slotM.ActiveCount,
		UpdatedAt:   slotM.UpdatedAt,
	}, nil
}

// AdvanceDeviceSlot bumps the slot version if it still equals expectedVersion.
func (repo *deviceRepository) AdvanceDeviceSlot(ctx context.Context, userID uuid.UUID, expectedVersion int64, activeCount int, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceSlotModel{}).
		Where("user_id = ? AND version = ?", userID, expectedVersion).
		Updates(map[string]any{
			"version":      gorm.Expr("version + 1"),
			"active_count": activeCount,
			"updated_at":   updatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to advance device slot")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceSlotConflict
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM UserDeviceModel to a domain UserDevice entity.
func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		PushToken:  data.PushToken,
		Platform:   data.Platform,
		Label:      data.Label,
		CreatedAt:  data.CreatedAt,
		LastSeenAt: data.LastSeenAt,
		RevokedAt:  data.RevokedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a GORM UserDeviceModel.
func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:         data.ID,
		UserID:     data.UserID,
		DeviceID:   data.DeviceID,
		PushToken:  data.PushToken,
		Platform:   data.Platform,
		Label:      data.Label,
		CreatedAt:  data.CreatedAt,
		LastSeenAt: data.LastSeenAt,
		RevokedAt:  data.RevokedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

package impl

import (
	"context"
	"log/slog"
	"time"

	"notifyd/config"
	deliverycontext "notifyd/internal/delivery/context"
	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/domain/service"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Revocation reasons reported to metrics.
const (
	revokeReasonEvicted      = "evicted"
	revokeReasonInvalidToken = "invalid_token"
	revokeReasonUser         = "user"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	txManager           repository.TransactionManager
	deviceRepo          repository.DeviceRepository
	clock               service.Clock
	metrics             service.DispatchMetrics
	maxActive           int
	maxRegisterAttempts int
	logger              *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Clock      service.Clock
	Metrics    service.DispatchMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	devicesCfg := config.DefaultDevicesConfig()
	if params.Config != nil && params.Config.Devices != nil {
		devicesCfg = params.Config.Devices
	}

	return &deviceService{
		txManager:           params.TxManager,
		deviceRepo:          params.DeviceRepo,
		clock:               params.Clock,
		metrics:             params.Metrics,
		maxActive:           devicesCfg.MaxActive,
		maxRegisterAttempts: devicesCfg.MaxRegisterAttempts,
		logger:              params.Logger,
	}
}

func (s *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// slotMutation runs inside a device-slot transaction and returns the resulting active device count.
type slotMutation func(devices repository.DeviceRepository, now time.Time) (activeCount int, err error)

// withDeviceSlot runs fn in a transaction that ends with a compare-and-swap on the user's device slot.
// A lost swap or a duplicate active device rolls the transaction back and retries.
func (s *deviceService) withDeviceSlot(ctx context.Context, userID uuid.UUID, fn slotMutation) error {
	var lastErr error

	for attempt := 1; attempt <= s.maxRegisterAttempts; attempt++ {
		lastErr = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			devices := factory.NewDeviceRepository()

			slot, err := devices.FindDeviceSlot(ctx, userID)
			if err != nil {
				return errors.Wrap(err, "failed to load device slot")
			}

			now := s.clock.Now()
			activeCount, err := fn(devices, now)
			if err != nil {
				return err
			}

			return devices.AdvanceDeviceSlot(ctx, userID, slot.Version, activeCount, now)
		})

		if lastErr == nil {
			return nil
		}
		if !isSlotConflict(lastErr) {
			return lastErr
		}

		s.log(ctx).Warn("Device slot conflict, retrying",
			slog.String("userID", userID.String()),
			slog.Int("attempt", attempt),
			slog.Any("error", lastErr),
		)
	}

	return domainerrors.ErrDeviceRegistrationConflict.WrapMessage(lastErr.Error())
}

func isSlotConflict(err error) bool {
	return errors.Is(err, repository.ErrDeviceSlotConflict) || errors.Is(err, repository.ErrDuplicateDevice)
}

// Register registers a new device or refreshes an active one, evicting the least recently seen device at the cap.
func (s *deviceService) Register(ctx context.Context, userID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*usecase.RegisterResult, error) {
	if deviceInfo == nil {
		return nil, domainerrors.ErrInvalidDevice.WrapMessage("missing device information")
	}
	if err := validateInput(deviceInfo, domainerrors.ErrInvalidDevice); err != nil {
		return nil, err
	}

	var result *usecase.RegisterResult
	err := s.withDeviceSlot(ctx, userID, func(devices repository.DeviceRepository, now time.Time) (int, error) {
		// Reset per attempt so a rolled-back attempt leaves nothing behind.
		result = &usecase.RegisterResult{}

		existing, err := devices.FindActiveDeviceByDeviceID(ctx, userID, deviceInfo.DeviceID)
		switch {
		case err == nil:
			return s.refresh(ctx, devices, existing, deviceInfo, now, result)
		case errors.Is(err, repository.ErrDeviceNotFound):
			return s.createWithEviction(ctx, devices, userID, deviceInfo, now, result)
		default:
			return 0, errors.Wrap(err, "failed to find device by device ID")
		}
	})
	if err != nil {
		s.log(ctx).Error("Failed to register device",
			slog.String("userID", userID.String()),
			slog.String("deviceID", deviceInfo.DeviceID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to register device")
	}

	if result.EvictedDevice != nil {
		s.metrics.DevicesRevoked(revokeReasonEvicted, 1)
		s.log(ctx).Info("Evicted least recently seen device",
			slog.String("userID", userID.String()),
			slog.String("evictedDeviceID", result.EvictedDevice.DeviceID),
		)
	}

	return result, nil
}

func (s *deviceService) refresh(
	ctx context.Context,
	devices repository.DeviceRepository,
	existing *entity.UserDevice,
	deviceInfo *usecase.DeviceInfo,
	now time.Time,
	result *usecase.RegisterResult,
) (int, error) {
	existing.PushToken = deviceInfo.PushToken
	existing.Platform = deviceInfo.Platform
	existing.Label = deviceInfo.Label
	existing.LastSeenAt = now
	existing.UpdatedAt = now

	if err := devices.RefreshDevice(ctx, existing); err != nil {
		return 0, errors.Wrap(err, "failed to refresh device")
	}

	active, err := devices.FindActiveDevicesByUser(ctx, existing.UserID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find active devices")
	}

	result.Device = existing

	return len(active), nil
}

func (s *deviceService) createWithEviction(
	ctx context.Context,
	devices repository.DeviceRepository,
	userID uuid.UUID,
	deviceInfo *usecase.DeviceInfo,
	now time.Time,
	result *usecase.RegisterResult,
) (int, error) {
	// Most recently seen first, so the eviction candidate is last.
	active, err := devices.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find active devices")
	}

	for len(active) >= s.maxActive {
		oldest := active[len(active)-1]
		if err := devices.RevokeDevice(ctx, oldest.ID, now); err != nil {
			return 0, errors.Wrap(err, "failed to evict device")
		}

		revokedAt := now
		oldest.RevokedAt = &revokedAt
		if result.EvictedDevice == nil {
			result.EvictedDevice = oldest
		}
		active = active[:len(active)-1]
	}

	device := &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   deviceInfo.DeviceID,
		PushToken:  deviceInfo.PushToken,
		Platform:   deviceInfo.Platform,
		Label:      deviceInfo.Label,
		CreatedAt:  now,
		LastSeenAt: now,
		UpdatedAt:  now,
	}

	if err := devices.CreateDevice(ctx, device); err != nil {
		return 0, errors.Wrap(err, "failed to create device")
	}

	result.Device = device

	return len(active) + 1, nil
}

// ListActive retrieves the active devices of a user, most recently seen first.
func (s *deviceService) ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// Revoke revokes a device by its client device ID.
func (s *deviceService) Revoke(ctx context.Context, userID uuid.UUID, deviceID string) error {
	device, err := s.deviceRepo.FindDeviceByDeviceID(ctx, userID, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return domainerrors.ErrDeviceNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find device")
	}

	if !device.IsActive() {
		return nil
	}

	err = s.withDeviceSlot(ctx, userID, func(devices repository.DeviceRepository, now time.Time) (int, error) {
		if err := devices.RevokeDevice(ctx, device.ID, now); err != nil {
			return 0, errors.Wrap(err, "failed to revoke device")
		}

		active, err := devices.FindActiveDevicesByUser(ctx, userID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to find active devices")
		}

		return len(active), nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to revoke device")
	}

	s.metrics.DevicesRevoked(revokeReasonUser, 1)
	s.log(ctx).Info("Revoked device", slog.String("userID", userID.String()), slog.String("deviceID", deviceID))

	return nil
}

// RevokeInvalidTokens revokes the user's active devices whose tokens the gateway rejected.
func (s *deviceService) RevokeInvalidTokens(ctx context.Context, userID uuid.UUID, deviceRowIDs []uuid.UUID) (int, error) {
	if len(deviceRowIDs) == 0 {
		return 0, nil
	}

	wanted := make(map[uuid.UUID]struct{}, len(deviceRowIDs))
	for _, id := range deviceRowIDs {
		wanted[id] = struct{}{}
	}

	var revoked int
	err := s.withDeviceSlot(ctx, userID, func(devices repository.DeviceRepository, now time.Time) (int, error) {
		revoked = 0

		active, err := devices.FindActiveDevicesByUser(ctx, userID)
		if err != nil {
			return 0, errors.Wrap(err, "failed to find active devices")
		}

		for _, device := range active {
			if _, ok := wanted[device.ID]; !ok {
				continue
			}
			if err := devices.RevokeDevice(ctx, device.ID, now); err != nil {
				return 0, errors.Wrap(err, "failed to revoke device")
			}
			revoked++
		}

		return len(active) - revoked, nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke invalid tokens")
	}

	s.metrics.DevicesRevoked(revokeReasonInvalidToken, revoked)

	return revoked, nil
}

package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/model"
	"notifyd/internal/infra/persistence/postgres"
	"notifyd/internal/infra/persistence/testdb"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoreBackedDeviceService(t *testing.T, db *gorm.DB, clock *fixedClock) usecase.DeviceUsecase {
	t.Helper()

	return NewDeviceService(DeviceServiceParams{
		TxManager:  postgres.NewTransactionManager(db),
		DeviceRepo: postgres.NewDeviceRepository(db),
		Clock:      clock,
		Metrics:    newTestMetrics(t),
		Config:     newTestConfig(),
		Logger:     newTestLogger(),
	})
}

// contendedTxManager advances the device slot right after a registration reads it,
// so the registration's own swap runs against a stale version.
type contendedTxManager struct {
	repository.TransactionManager
	contentions int
	slotReads   int
}

func (m *contendedTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return m.TransactionManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return fn(&contendedFactory{RepositoryFactory: factory, manager: m})
	})
}

type contendedFactory struct {
	repository.RepositoryFactory
	manager *contendedTxManager
}

func (f *contendedFactory) NewDeviceRepository() repository.DeviceRepository {
	return &contendedDeviceRepository{DeviceRepository: f.RepositoryFactory.NewDeviceRepository(), manager: f.manager}
}

type contendedDeviceRepository struct {
	repository.DeviceRepository
	manager *contendedTxManager
}

func (r *contendedDeviceRepository) FindDeviceSlot(ctx context.Context, userID uuid.UUID) (*entity.DeviceSlot, error) {
	slot, err := r.DeviceRepository.FindDeviceSlot(ctx, userID)
	if err != nil {
		return nil, err
	}

	r.manager.slotReads++
	if r.manager.contentions > 0 {
		r.manager.contentions--
		if err := r.DeviceRepository.AdvanceDeviceSlot(ctx, userID, slot.Version, slot.ActiveCount, slot.UpdatedAt); err != nil {
			return nil, err
		}
	}

	return slot, nil
}

func deviceInfo(deviceID string) *usecase.DeviceInfo {
	return &usecase.DeviceInfo{DeviceID: deviceID, PushToken: "token-" + deviceID, Platform: entity.PlatformIOS}
}

func deviceIDs(devices []*entity.UserDevice) []string {
	ids := make([]string, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.DeviceID)
	}

	return ids
}

func TestDeviceService_Integration_CapsActiveDevices(t *testing.T) {
	db := testdb.New(t)
	clock := &fixedClock{now: testNow}
	svc := newStoreBackedDeviceService(t, db, clock)
	ctx := context.Background()
	userID := uuid.New()

	for i, id := range []string{"d1", "d2", "d3"} {
		clock.now = testNow.Add(time.Duration(i) * time.Minute)
		result, err := svc.Register(ctx, userID, deviceInfo(id))
		require.NoError(t, err)
		assert.Nil(t, result.EvictedDevice)
	}

	clock.now = testNow.Add(10 * time.Minute)
	result, err := svc.Register(ctx, userID, deviceInfo("d4"))
	require.NoError(t, err)
	require.NotNil(t, result.EvictedDevice)
	assert.Equal(t, "d1", result.EvictedDevice.DeviceID)

	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"d4", "d3", "d2"}, deviceIDs(active))

	// An evicted device registering again is a new registration and evicts the next oldest.
	clock.now = testNow.Add(20 * time.Minute)
	result, err = svc.Register(ctx, userID, deviceInfo("d1"))
	require.NoError(t, err)
	require.NotNil(t, result.EvictedDevice)
	assert.Equal(t, "d2", result.EvictedDevice.DeviceID)

	active, err = svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "d4", "d3"}, deviceIDs(active))

	var slot model.DeviceSlotModel
	require.NoError(t, db.Where("user_id = ?", userID).First(&slot).Error)
	assert.Equal(t, 3, slot.ActiveCount)
	assert.Equal(t, int64(5), slot.Version)
}

func TestDeviceService_Integration_RefreshKeepsSingleRow(t *testing.T) {
	db := testdb.New(t)
	clock := &fixedClock{now: testNow}
	svc := newStoreBackedDeviceService(t, db, clock)
	ctx := context.Background()
	userID := uuid.New()

	first, err := svc.Register(ctx, userID, deviceInfo("phone"))
	require.NoError(t, err)

	clock.now = testNow.Add(time.Hour)
	info := deviceInfo("phone")
	info.PushToken = "rotated-token"
	second, err := svc.Register(ctx, userID, info)
	require.NoError(t, err)

	assert.Equal(t, first.Device.ID, second.Device.ID)

	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "rotated-token", active[0].PushToken)
	assert.True(t, active[0].LastSeenAt.Equal(testNow.Add(time.Hour)))
}

func TestDeviceService_Integration_RevokeIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	svc := newStoreBackedDeviceService(t, db, &fixedClock{now: testNow})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Register(ctx, userID, deviceInfo("phone"))
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(ctx, userID, "phone"))
	require.NoError(t, svc.Revoke(ctx, userID, "phone"))

	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Another user cannot revoke the device.
	assert.Error(t, svc.Revoke(ctx, uuid.New(), "phone"))
}

func TestDeviceService_Integration_ConcurrentRegistrationsRespectCap(t *testing.T) {
	db := testdb.New(t)
	svc := newStoreBackedDeviceService(t, db, &fixedClock{now: testNow})
	ctx := context.Background()
	userID := uuid.New()

	const registrations = 8

	var wg sync.WaitGroup
	errs := make(chan error, registrations)
	for i := range registrations {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			_, err := svc.Register(ctx, userID, deviceInfo(fmt.Sprintf("device-%d", i)))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, active, 3)

	var slot model.DeviceSlotModel
	require.NoError(t, db.Where("user_id = ?", userID).First(&slot).Error)
	assert.Equal(t, 3, slot.ActiveCount)
	assert.Equal(t, int64(registrations), slot.Version)
}

func newContendedDeviceService(t *testing.T, db *gorm.DB, contentions int) (usecase.DeviceUsecase, *contendedTxManager) {
	t.Helper()

	txManager := &contendedTxManager{
		TransactionManager: postgres.NewTransactionManager(db),
		contentions:        contentions,
	}

	return NewDeviceService(DeviceServiceParams{
		TxManager:  txManager,
		DeviceRepo: postgres.NewDeviceRepository(db),
		Clock:      &fixedClock{now: testNow},
		Metrics:    newTestMetrics(t),
		Config:     newTestConfig(),
		Logger:     newTestLogger(),
	}), txManager
}

func TestDeviceService_Integration_StaleSlotVersionRetries(t *testing.T) {
	db := testdb.New(t)
	svc, txManager := newContendedDeviceService(t, db, 2)
	ctx := context.Background()
	userID := uuid.New()

	result, err := svc.Register(ctx, userID, deviceInfo("phone"))
	require.NoError(t, err)
	assert.Nil(t, result.EvictedDevice)
	assert.Equal(t, 3, txManager.slotReads, "two lost swaps, then success")

	// Lost attempts were rolled back and left no device rows behind.
	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"phone"}, deviceIDs(active))

	var devices int64
	require.NoError(t, db.Model(&model.UserDeviceModel{}).Where("user_id = ?", userID).Count(&devices).Error)
	assert.Equal(t, int64(1), devices)

	var slot model.DeviceSlotModel
	require.NoError(t, db.Where("user_id = ?", userID).First(&slot).Error)
	assert.Equal(t, int64(1), slot.Version)
	assert.Equal(t, 1, slot.ActiveCount)
}

func TestDeviceService_Integration_StaleSlotVersionGivesUp(t *testing.T) {
	db := testdb.New(t)
	attempts := newTestConfig().Devices.MaxRegisterAttempts
	svc, txManager := newContendedDeviceService(t, db, attempts)
	ctx := context.Background()
	userID := uuid.New()

	result, err := svc.Register(ctx, userID, deviceInfo("phone"))
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceRegistrationConflict)
	assert.Equal(t, attempts, txManager.slotReads)

	active, err := svc.ListActive(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, active)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"notifyd/config"
	"notifyd/internal/domain/entity"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/metrics"
	mockRepo "notifyd/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Dispatch: config.DefaultDispatchConfig(),
		Devices:  config.DefaultDevicesConfig(),
	}
}

func newTestMetrics(t *testing.T) *metrics.DispatchMetrics {
	t.Helper()

	m, err := metrics.NewDispatchMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	return m
}

// expectTransactions routes every transaction to the given device repository.
func expectTransactions(t *testing.T, txManager *mockRepo.MockTransactionManager, deviceRepo *mockRepo.MockDeviceRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewDeviceRepository().Return(deviceRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

func newTestDevice(userID uuid.UUID, deviceID string, lastSeen time.Time) *entity.UserDevice {
	return &entity.UserDevice{
		ID:         uuid.New(),
		UserID:     userID,
		DeviceID:   deviceID,
		PushToken:  "token-" + deviceID,
		Platform:   entity.PlatformIOS,
		CreatedAt:  lastSeen,
		LastSeenAt: lastSeen,
		UpdatedAt:  lastSeen,
	}
}

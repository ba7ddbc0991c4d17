package impl

import (
	"context"
	"testing"
	"time"

	"notifyd/internal/domain/entity"
	"notifyd/internal/domain/repository"
	"notifyd/internal/domain/service"
	"notifyd/internal/infra/persistence/postgres"
	"notifyd/internal/infra/persistence/testdb"
	mockSvc "notifyd/internal/mocks/service"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// failingOutcomeRepository fails the next failures outcome writes.
type failingOutcomeRepository struct {
	repository.EventRepository
	failures int
}

func (r *failingOutcomeRepository) UpdateEventOutcome(ctx context.Context, event *entity.NotificationEvent, expectedStatus entity.EventStatus, expectedAttempts int) error {
	if r.failures > 0 {
		r.failures--

		return errors.New("store unavailable")
	}

	return r.EventRepository.UpdateEventOutcome(ctx, event, expectedStatus, expectedAttempts)
}

type storeBackedDispatcher struct {
	service          usecase.DispatchUsecase
	devices          usecase.DeviceUsecase
	eventRepo        *failingOutcomeRepository
	notificationRepo repository.NotificationRepository
	gateway          *mockSvc.MockPushGateway
}

func newStoreBackedDispatcher(t *testing.T, db *gorm.DB) *storeBackedDispatcher {
	t.Helper()

	clock := &fixedClock{now: testNow}
	cfg := newTestConfig()
	logger := newTestLogger()
	dispatchMetrics := newTestMetrics(t)

	d := &storeBackedDispatcher{
		devices:          newStoreBackedDeviceService(t, db, clock),
		eventRepo:        &failingOutcomeRepository{EventRepository: postgres.NewEventRepository(db)},
		notificationRepo: postgres.NewNotificationRepository(db),
		gateway:          mockSvc.NewMockPushGateway(t),
	}
	d.service = NewDispatchService(DispatchServiceParams{
		EventRepo:        d.eventRepo,
		NotificationRepo: d.notificationRepo,
		Preferences: NewPreferenceService(PreferenceServiceParams{
			PrefRepo: postgres.NewPreferenceRepository(db),
			Clock:    clock,
			Config:   cfg,
			Logger:   logger,
		}),
		Devices:   d.devices,
		Gateway:   d.gateway,
		Publisher: mockSvc.NewMockEventPublisher(t),
		Clock:     clock,
		Metrics:   dispatchMetrics,
		Config:    cfg,
		Logger:    logger,
	})

	return d
}

func (d *storeBackedDispatcher) seedSocialEntry(t *testing.T, userID uuid.UUID, createdAt time.Time) {
	t.Helper()

	require.NoError(t, d.notificationRepo.CreateNotification(context.Background(), &entity.Notification{
		ID:         uuid.New(),
		EventID:    uuid.New(),
		UserID:     userID,
		Category:   entity.CategorySocial,
		EventType:  entity.EventPostLiked,
		Title:      "Bob liked your post",
		Deeplink:   "post/post-0",
		TargetID:   "post-0",
		TargetType: "post",
		CreatedAt:  createdAt,
		ExpiresAt:  createdAt.Add(30 * 24 * time.Hour),
		UpdatedAt:  createdAt,
	}))
}

func TestDispatchService_Integration_ReprocessedEventIgnoresOwnEntryForRateLimit(t *testing.T) {
	db := testdb.New(t)
	d := newStoreBackedDispatcher(t, db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := d.devices.Register(ctx, userID, deviceInfo("phone"))
	require.NoError(t, err)

	// Two of the three SOCIAL slots are already used in the trailing hour.
	d.seedSocialEntry(t, userID, testNow.Add(-30*time.Minute))
	d.seedSocialEntry(t, userID, testNow.Add(-10*time.Minute))

	event := newPendingEvent(userID, entity.EventPostLiked)
	require.NoError(t, d.eventRepo.CreateEvent(ctx, event))

	d.gateway.EXPECT().
		SendToDevices(mock.Anything, mock.Anything, mock.Anything).
		Return(&service.PushResult{Success: 1}, nil).
		Times(2)

	// Push and in-app write succeed, the outcome write does not.
	d.eventRepo.failures = 1
	err = d.service.ProcessEvent(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record event outcome")

	stored, err := d.eventRepo.FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusPending, stored.Status)

	_, err = d.notificationRepo.FindNotificationByEventID(ctx, event.ID)
	require.NoError(t, err)

	// The next cycle must not count the event's own entry against the cap.
	result, err := d.service.ProcessPendingEventsBatch(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Failed)

	stored, err = d.eventRepo.FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusCompleted, stored.Status)

	count, err := d.notificationRepo.CountRecentByCategory(ctx, userID, entity.CategorySocial, testNow.Add(-time.Hour), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count, "one entry for the event, no duplicate")
}

func TestDispatchService_Integration_RateLimitStillAppliesToOtherEvents(t *testing.T) {
	db := testdb.New(t)
	d := newStoreBackedDispatcher(t, db)
	ctx := context.Background()
	userID := uuid.New()

	for _, age := range []time.Duration{50 * time.Minute, 20 * time.Minute, 5 * time.Minute} {
		d.seedSocialEntry(t, userID, testNow.Add(-age))
	}

	event := newPendingEvent(userID, entity.EventPostCommented)
	require.NoError(t, d.eventRepo.CreateEvent(ctx, event))

	require.NoError(t, d.service.ProcessEvent(ctx, event))

	stored, err := d.eventRepo.FindEventByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EventStatusRateLimited, stored.Status)

	_, err = d.notificationRepo.FindNotificationByEventID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
	d.gateway.AssertNotCalled(t, "SendToDevices", mock.Anything, mock.Anything, mock.Anything)
}

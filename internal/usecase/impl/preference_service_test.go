package impl

import (
	"context"
	"testing"
	"time"

	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	"notifyd/internal/domain/repository"
	mockRepo "notifyd/internal/mocks/repository"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (usecase.PreferenceUsecase, *mockRepo.MockPreferenceRepository) {
	t.Helper()

	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	svc := NewPreferenceService(PreferenceServiceParams{
		PrefRepo: prefRepo,
		Clock:    &fixedClock{now: testNow},
		Config:   newTestConfig(),
		Logger:   newTestLogger(),
	})

	return svc, prefRepo
}

func TestPreferenceService_GetOrCreate_ReturnsStoredPreferences(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	stored := entity.NewDefaultPreferences(uuid.New(), "Europe/Berlin", testNow)

	prefRepo.EXPECT().FindPreferences(ctx, stored.UserID).Return(stored, nil)

	prefs, err := svc.GetOrCreate(ctx, stored.UserID, "Asia/Tokyo")
	require.NoError(t, err)
	assert.Same(t, stored, prefs)
}

func TestPreferenceService_GetOrCreate_CreatesDefaults(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
	}{
		{name: "requested timezone", timezone: "Asia/Tokyo", want: "Asia/Tokyo"},
		{name: "empty timezone", timezone: "", want: "UTC"},
		{name: "unknown timezone", timezone: "Mars/Olympus", want: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, prefRepo := createTestPreferenceService(t)
			ctx := context.Background()
			userID := uuid.New()

			prefRepo.EXPECT().FindPreferences(ctx, userID).Return(nil, repository.ErrPreferencesNotFound)
			prefRepo.EXPECT().CreatePreferences(ctx, mock.AnythingOfType("*entity.UserNotificationPreferences")).Return(nil)

			prefs, err := svc.GetOrCreate(ctx, userID, tt.timezone)
			require.NoError(t, err)

			assert.Equal(t, tt.want, prefs.Timezone)
			assert.Len(t, prefs.QuietHours, entity.HoursPerDay)
			assert.NotContains(t, prefs.QuietHours, true)
			for _, category := range entity.AllCategories {
				assert.True(t, prefs.CategoryEnabled(category))
			}
		})
	}
}

func TestPreferenceService_GetOrCreate_ConcurrentCreateRereads(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()
	winner := entity.NewDefaultPreferences(userID, "Asia/Taipei", testNow)

	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(nil, repository.ErrPreferencesNotFound).Once()
	prefRepo.EXPECT().CreatePreferences(ctx, mock.Anything).Return(repository.ErrDuplicatePreferences)
	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(winner, nil).Once()

	prefs, err := svc.GetOrCreate(ctx, userID, "UTC")
	require.NoError(t, err)
	assert.Same(t, winner, prefs)
}

func TestPreferenceService_GetOrCreate_StoreFailure(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(nil, errors.New("connection refused"))

	prefs, err := svc.GetOrCreate(ctx, userID, "UTC")
	require.Error(t, err)
	assert.Nil(t, prefs)
}

func TestPreferenceService_Update_MergesPatch(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()
	stored := entity.NewDefaultPreferences(userID, "UTC", testNow.AddDate(0, -1, 0))

	quiet := make([]bool, entity.HoursPerDay)
	for hour := 22; hour < entity.HoursPerDay; hour++ {
		quiet[hour] = true
	}
	timezone := "America/New_York"

	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(stored, nil)
	prefRepo.EXPECT().UpdatePreferences(ctx, stored, int64(0)).Return(nil)

	prefs, err := svc.Update(ctx, userID, &usecase.PreferencesPatch{
		Timezone:   &timezone,
		QuietHours: quiet,
		Categories: map[entity.Category]bool{entity.CategorySocial: false},
	})
	require.NoError(t, err)

	assert.Equal(t, timezone, prefs.Timezone)
	assert.Equal(t, quiet, prefs.QuietHours)
	assert.False(t, prefs.CategoryEnabled(entity.CategorySocial))
	assert.True(t, prefs.CategoryEnabled(entity.CategorySystem))
	assert.Equal(t, testNow, prefs.UpdatedAt)

	// The patch slice is copied, later edits by the caller do not leak in.
	quiet[0] = true
	assert.False(t, prefs.QuietHours[0])
}

func TestPreferenceService_Update_RetriesOnVersionConflict(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	stale := entity.NewDefaultPreferences(userID, "UTC", testNow.Add(-time.Hour))
	fresh := entity.NewDefaultPreferences(userID, "UTC", testNow.Add(-time.Minute))
	fresh.Categories[entity.CategorySystem] = false
	fresh.Version = 1

	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(stale, nil).Once()
	prefRepo.EXPECT().UpdatePreferences(ctx, stale, int64(0)).Return(repository.ErrPreferencesConflict).Once()
	prefRepo.EXPECT().FindPreferences(ctx, userID).Return(fresh, nil).Once()
	prefRepo.EXPECT().UpdatePreferences(ctx, fresh, int64(1)).Return(nil).Once()

	prefs, err := svc.Update(ctx, userID, &usecase.PreferencesPatch{
		Categories: map[entity.Category]bool{entity.CategorySocial: false},
	})
	require.NoError(t, err)

	assert.Same(t, fresh, prefs)
	assert.False(t, prefs.CategoryEnabled(entity.CategorySocial))
	assert.False(t, prefs.CategoryEnabled(entity.CategorySystem), "concurrent change is kept")
}

func TestPreferenceService_Update_GivesUpAfterRepeatedConflicts(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	userID := uuid.New()

	prefRepo.EXPECT().
		FindPreferences(ctx, userID).
		RunAndReturn(func(context.Context, uuid.UUID) (*entity.UserNotificationPreferences, error) {
			return entity.NewDefaultPreferences(userID, "UTC", testNow), nil
		}).
		Times(maxPreferenceUpdateAttempts)
	prefRepo.EXPECT().
		UpdatePreferences(ctx, mock.Anything, int64(0)).
		Return(repository.ErrPreferencesConflict).
		Times(maxPreferenceUpdateAttempts)

	prefs, err := svc.Update(ctx, userID, &usecase.PreferencesPatch{
		Categories: map[entity.Category]bool{entity.CategorySocial: false},
	})
	require.Error(t, err)
	assert.Nil(t, prefs)
	assert.ErrorIs(t, err, domainerrors.ErrPreferencesConflict)
}

func TestPreferenceService_Update_PropagatesStoreError(t *testing.T) {
	svc, prefRepo := createTestPreferenceService(t)
	ctx := context.Background()
	stored := entity.NewDefaultPreferences(uuid.New(), "UTC", testNow)

	prefRepo.EXPECT().FindPreferences(ctx, stored.UserID).Return(stored, nil).Once()
	prefRepo.EXPECT().UpdatePreferences(ctx, stored, int64(0)).Return(errors.New("connection reset")).Once()

	prefs, err := svc.Update(ctx, stored.UserID, &usecase.PreferencesPatch{
		Categories: map[entity.Category]bool{entity.CategorySocial: false},
	})
	require.Error(t, err)
	assert.Nil(t, prefs)
	assert.NotErrorIs(t, err, domainerrors.ErrPreferencesConflict)
}

func TestPreferenceService_Update_RejectsInvalidPatch(t *testing.T) {
	badZone := "Nowhere/Land"

	tests := []struct {
		name  string
		patch *usecase.PreferencesPatch
	}{
		{name: "nil patch", patch: nil},
		{name: "unknown timezone", patch: &usecase.PreferencesPatch{Timezone: &badZone}},
		{name: "short quiet hours", patch: &usecase.PreferencesPatch{QuietHours: make([]bool, 12)}},
		{name: "unknown category", patch: &usecase.PreferencesPatch{Categories: map[entity.Category]bool{"MARKETING": true}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := createTestPreferenceService(t)

			prefs, err := svc.Update(context.Background(), uuid.New(), tt.patch)
			require.Error(t, err)
			assert.Nil(t, prefs)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidPreferences)
		})
	}
}

package impl

import (
	"context"
	"testing"

	"notifyd/internal/domain/entity"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/postgres"
	"notifyd/internal/infra/persistence/testdb"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interleavingPreferenceRepository runs a competing write right after the next read.
type interleavingPreferenceRepository struct {
	repository.PreferenceRepository
	interleave func()
}

func (r *interleavingPreferenceRepository) FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreferences, error) {
	prefs, err := r.PreferenceRepository.FindPreferences(ctx, userID)
	if r.interleave != nil {
		interleave := r.interleave
		r.interleave = nil
		interleave()
	}

	return prefs, err
}

func newStoreBackedPreferenceService(repo repository.PreferenceRepository) usecase.PreferenceUsecase {
	return NewPreferenceService(PreferenceServiceParams{
		PrefRepo: repo,
		Clock:    &fixedClock{now: testNow},
		Config:   newTestConfig(),
		Logger:   newTestLogger(),
	})
}

func TestPreferenceService_Integration_ConcurrentPatchesKeepBothCategories(t *testing.T) {
	db := testdb.New(t)
	ctx := context.Background()
	userID := uuid.New()

	store := postgres.NewPreferenceRepository(db)
	other := newStoreBackedPreferenceService(store)
	_, err := other.GetOrCreate(ctx, userID, "UTC")
	require.NoError(t, err)

	interleaving := &interleavingPreferenceRepository{PreferenceRepository: store}
	svc := newStoreBackedPreferenceService(interleaving)

	// Another writer disables SYSTEM between this update's read and write.
	interleaving.interleave = func() {
		_, err := other.Update(ctx, userID, &usecase.PreferencesPatch{
			Categories: map[entity.Category]bool{entity.CategorySystem: false},
		})
		require.NoError(t, err)
	}

	prefs, err := svc.Update(ctx, userID, &usecase.PreferencesPatch{
		Categories: map[entity.Category]bool{entity.CategorySocial: false},
	})
	require.NoError(t, err)
	assert.False(t, prefs.CategoryEnabled(entity.CategorySocial))
	assert.False(t, prefs.CategoryEnabled(entity.CategorySystem))

	stored, err := store.FindPreferences(ctx, userID)
	require.NoError(t, err)
	assert.False(t, stored.CategoryEnabled(entity.CategorySocial))
	assert.False(t, stored.CategoryEnabled(entity.CategorySystem))
	assert.Equal(t, int64(2), stored.Version)
}

package postgres

import (
	"context"
	"testing"

	"notifyd/internal/domain/entity"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_Lifecycle(t *testing.T) {
	repo := NewPreferenceRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.FindPreferences(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrPreferencesNotFound)

	prefs := entity.NewDefaultPreferences(userID, "Asia/Taipei", repoNow)
	require.NoError(t, repo.CreatePreferences(ctx, prefs))
	assert.ErrorIs(t, repo.CreatePreferences(ctx, entity.NewDefaultPreferences(userID, "UTC", repoNow)), repository.ErrDuplicatePreferences)

	prefs.QuietHours[23] = true
	prefs.Categories[entity.CategorySocial] = false
	prefs.Timezone = "Europe/Paris"
	require.NoError(t, repo.UpdatePreferences(ctx, prefs, 0))
	assert.Equal(t, int64(1), prefs.Version)

	stored, err := repo.FindPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", stored.Timezone)
	assert.Len(t, stored.QuietHours, entity.HoursPerDay)
	assert.True(t, stored.QuietHours[23])
	assert.False(t, stored.QuietHours[0])
	assert.False(t, stored.CategoryEnabled(entity.CategorySocial))
	assert.True(t, stored.CategoryEnabled(entity.CategorySystem))
}

func TestPreferenceRepository_UpdateRejectsStaleVersion(t *testing.T) {
	repo := NewPreferenceRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.CreatePreferences(ctx, entity.NewDefaultPreferences(userID, "UTC", repoNow)))

	first, err := repo.FindPreferences(ctx, userID)
	require.NoError(t, err)
	second, err := repo.FindPreferences(ctx, userID)
	require.NoError(t, err)

	first.Categories[entity.CategorySocial] = false
	require.NoError(t, repo.UpdatePreferences(ctx, first, first.Version))

	second.Categories[entity.CategorySystem] = false
	assert.ErrorIs(t, repo.UpdatePreferences(ctx, second, second.Version), repository.ErrPreferencesConflict)
	assert.Equal(t, int64(0), second.Version)

	stored, err := repo.FindPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	assert.False(t, stored.CategoryEnabled(entity.CategorySocial))
	assert.True(t, stored.CategoryEnabled(entity.CategorySystem))

	missing := entity.NewDefaultPreferences(uuid.New(), "UTC", repoNow)
	assert.ErrorIs(t, repo.UpdatePreferences(ctx, missing, 0), repository.ErrPreferencesNotFound)
}

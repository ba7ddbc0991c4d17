package handler

import (
	"net/http"
	"testing"
	"time"

	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	mockUC "notifyd/internal/mocks/usecase"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceHandler(t *testing.T) (*PreferenceHandler, *mockUC.MockPreferenceUsecase) {
	t.Helper()

	preferenceUC := mockUC.NewMockPreferenceUsecase(t)

	return NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: preferenceUC, Logger: newTestLogger()}), preferenceUC
}

func TestPreferenceHandler_GetPreferences(t *testing.T) {
	h, preferenceUC := createTestPreferenceHandler(t)
	userID := uuid.New()
	prefs := entity.NewDefaultPreferences(userID, "Asia/Taipei", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))

	preferenceUC.EXPECT().GetOrCreate(mock.Anything, userID, "Asia/Taipei").Return(prefs, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/preferences?timezone=Asia/Taipei", "")
	require.NoError(t, authenticated(t, userID, h.GetPreferences)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var got entity.UserNotificationPreferences
	decodeData(t, rec, &got)
	assert.Equal(t, "Asia/Taipei", got.Timezone)
	assert.Len(t, got.QuietHours, 24)
}

func TestPreferenceHandler_UpdatePreferences(t *testing.T) {
	h, preferenceUC := createTestPreferenceHandler(t)
	userID := uuid.New()
	prefs := entity.NewDefaultPreferences(userID, "UTC", time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	prefs.Categories[entity.CategorySocial] = false

	preferenceUC.EXPECT().
		Update(mock.Anything, userID, mock.MatchedBy(func(patch *usecase.PreferencesPatch) bool {
			enabled, ok := patch.Categories[entity.CategorySocial]

			return patch.Timezone == nil && ok && !enabled
		})).
		Return(prefs, nil)

	c, rec := newTestContext(http.MethodPatch, "/v1/preferences", `{"categories":{"SOCIAL":false}}`)
	require.NoError(t, authenticated(t, userID, h.UpdatePreferences)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPreferenceHandler_UpdatePreferences_Invalid(t *testing.T) {
	h, preferenceUC := createTestPreferenceHandler(t)

	preferenceUC.EXPECT().
		Update(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidPreferences.WrapMessage("unknown timezone Mars/Olympus"))

	c, rec := newTestContext(http.MethodPatch, "/v1/preferences", `{"timezone":"Mars/Olympus"}`)
	require.NoError(t, authenticated(t, uuid.New(), h.UpdatePreferences)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PREFERENCES", decodeEnvelope(t, rec).Error.Code)
}

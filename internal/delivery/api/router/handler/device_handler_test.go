package handler

import (
	"net/http"
	"testing"
	"time"

	"notifyd/internal/delivery/api/middleware"
	"notifyd/internal/domain/entity"
	domainerrors "notifyd/internal/domain/errors"
	mockSvc "notifyd/internal/mocks/service"
	mockUC "notifyd/internal/mocks/usecase"
	"notifyd/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceHandler(t *testing.T) (*DeviceHandler, *mockUC.MockDeviceUsecase) {
	t.Helper()

	deviceUC := mockUC.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newTestLogger()}), deviceUC
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	userID := uuid.New()
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	evicted := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "old-phone"}
	deviceUC.EXPECT().
		Register(mock.Anything, userID, &usecase.DeviceInfo{DeviceID: "phone", PushToken: "tok", Platform: entity.PlatformIOS}).
		Return(&usecase.RegisterResult{
			Device:        &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "phone", LastSeenAt: now},
			EvictedDevice: evicted,
		}, nil)

	c, rec := newTestContext(http.MethodPost, "/v1/devices", `{"device_id":"phone","push_token":"tok","platform":"ios"}`)
	require.NoError(t, authenticated(t, userID, h.RegisterDevice)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var result usecase.RegisterResult
	decodeData(t, rec, &result)
	assert.Equal(t, "phone", result.Device.DeviceID)
	require.NotNil(t, result.EvictedDevice)
	assert.Equal(t, "old-phone", result.EvictedDevice.DeviceID)
}

func TestDeviceHandler_RegisterDevice_ValidationFailure(t *testing.T) {
	h, _ := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodPost, "/v1/devices", `{"device_id":"phone","platform":"blackberry"}`)
	require.NoError(t, authenticated(t, uuid.New(), h.RegisterDevice)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_FAILED", envelope.Error.Code)
	assert.Equal(t, "required", envelope.Error.Details["push_token"])
	assert.Equal(t, "oneof", envelope.Error.Details["platform"])
}

func TestDeviceHandler_RegisterDevice_Conflict(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)

	deviceUC.EXPECT().
		Register(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrDeviceRegistrationConflict.WrapMessage("slot contention"))

	c, rec := newTestContext(http.MethodPost, "/v1/devices", `{"device_id":"phone","push_token":"tok","platform":"android"}`)
	require.NoError(t, authenticated(t, uuid.New(), h.RegisterDevice)(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DEVICE_REGISTRATION_CONFLICT", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_MissingToken(t *testing.T) {
	h, _ := createTestDeviceHandler(t)

	c, rec := newTestContext(http.MethodGet, "/v1/devices", "")
	c.Request().Header.Del("Authorization")

	authMiddleware := middleware.NewAuthMiddleware(mockSvc.NewMockTokenService(t), newTestLogger())
	require.NoError(t, authMiddleware.Authenticate(h.ListDevices)(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeEnvelope(t, rec).Error.Code)
}

func TestDeviceHandler_ListDevices(t *testing.T) {
	h, deviceUC := createTestDeviceHandler(t)
	userID := uuid.New()

	deviceUC.EXPECT().ListActive(mock.Anything, userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: userID, DeviceID: "d2"},
		{ID: uuid.New(), UserID: userID, DeviceID: "d1"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/v1/devices", "")
	require.NoError(t, authenticated(t, userID, h.ListDevices)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var devices []*entity.UserDevice
	decodeData(t, rec, &devices)
	require.Len(t, devices, 2)
	assert.Equal(t, "d2", devices[0].DeviceID)
}

func TestDeviceHandler_RevokeDevice(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "revoked", err: nil, wantStatus: http.StatusNoContent},
		{name: "unknown device", err: domainerrors.ErrDeviceNotFound.WrapMessage("phone"), wantStatus: http.StatusNotFound},
		{name: "store failure", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deviceUC := createTestDeviceHandler(t)
			userID := uuid.New()

			deviceUC.EXPECT().Revoke(mock.Anything, userID, "phone").Return(tt.err)

			c, rec := newTestContext(http.MethodDelete, "/v1/devices/phone", "")
			c.SetParamNames("deviceId")
			c.SetParamValues("phone")

			err := authenticated(t, userID, h.RevokeDevice)(c)
			if tt.wantStatus == http.StatusInternalServerError {
				// Unmapped errors propagate to the centralized error handler.
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

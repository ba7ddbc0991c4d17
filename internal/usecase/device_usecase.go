package usecase

import (
	"context"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	DeviceID  string `json:"device_id" validate:"required,max=255"`
	PushToken string `json:"push_token" validate:"required"`
	Platform  string `json:"platform" validate:"required,oneof=ios android web"`
	Label     string `json:"label,omitempty" validate:"max=255"`
}

// RegisterResult is the outcome of a device registration
type RegisterResult struct {
	Device        *entity.UserDevice `json:"device"`
	EvictedDevice *entity.UserDevice `json:"evicted_device,omitempty"`
}

// DeviceUsecase defines the interface for the bounded per-user device registry
type DeviceUsecase interface {
	// Register registers a new device or refreshes an active one, evicting the least recently seen device when the cap is reached
	Register(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*RegisterResult, error)

	// ListActive retrieves the active devices of a user, most recently seen first
	ListActive(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// Revoke revokes a device by its client device ID. Revoking an already revoked device succeeds.
	Revoke(ctx context.Context, userID uuid.UUID, deviceID string) error

	// RevokeInvalidTokens revokes devices whose push tokens the gateway rejected as invalid
	RevokeInvalidTokens(ctx context.Context, userID uuid.UUID, deviceRowIDs []uuid.UUID) (int, error)
}

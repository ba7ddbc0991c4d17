// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when an active device with the same device ID already exists.
	ErrDuplicateDevice = errors.New("device already exists")
	// ErrDeviceSlotConflict is returned when the device slot version changed underneath a registration.
	ErrDeviceSlotConflict = errors.New("device slot version conflict")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByDeviceID retrieves the most recent record for a client device ID, revoked or not.
	FindDeviceByDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveDeviceByDeviceID retrieves the active record for a client device ID.
	FindActiveDeviceByDeviceID(ctx context.Context, userID uuid.UUID, deviceID string) (*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a user, most recently seen first.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// RefreshDevice updates the token, platform, label and last-seen time of an existing device.
	RefreshDevice(ctx context.Context, device *entity.UserDevice) error

	// RevokeDevice marks a device as revoked. Revoking an already revoked device is a no-op.
	RevokeDevice(ctx context.Context, id uuid.UUID, revokedAt time.Time) error

	// FindDeviceSlot returns the user's device slot, creating it at version zero if absent.
	FindDeviceSlot(ctx context.Context, userID uuid.UUID) (*entity.DeviceSlot, error)

	// AdvanceDeviceSlot bumps the slot version if it still equals expectedVersion.
	// It returns ErrDeviceSlotConflict when another writer advanced the slot first.
	AdvanceDeviceSlot(ctx context.Context, userID uuid.UUID, expectedVersion int64, activeCount int, updatedAt time.Time) error
}

// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supported device platforms.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// UserDevice represents a user's device registered for push notifications.
type UserDevice struct {
	ID         uuid.UUID  `json:"id"`           // The Global Unique Identifier (GUID) for the record.
	UserID     uuid.UUID  `json:"user_id"`      // The ID of the user who owns this device.
	DeviceID   string     `json:"device_id"`    // Unique device identifier from the client.
	PushToken  string     `json:"push_token"`   // Push gateway token for the device.
	Platform   string     `json:"platform"`     // Device platform (ios, android, web).
	Label      string     `json:"label"`        // Optional human-readable name.
	CreatedAt  time.Time  `json:"created_at"`   // Timestamp of when this device was registered.
	LastSeenAt time.Time  `json:"last_seen_at"` // Timestamp of the last registration refresh.
	RevokedAt  *time.Time `json:"revoked_at"`   // Set when the device is evicted or revoked.
	UpdatedAt  time.Time  `json:"updated_at"`   // Timestamp of the last modification.
}

// IsActive reports whether the device may receive push notifications.
func (d *UserDevice) IsActive() bool {
	return d.RevokedAt == nil
}

// DeviceSlot tracks the per-user device pool. Version is the compare-and-swap token for registrations.
type DeviceSlot struct {
	UserID      uuid.UUID `json:"user_id"`
	Version     int64     `json:"version"`
	ActiveCount int       `json:"active_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

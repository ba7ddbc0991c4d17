package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// It represents a user's device registered for push notifications.
// At most one active (unrevoked) row may exist per user and client device ID.
type UserDeviceModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_devices_user_seen,priority:1;uniqueIndex:idx_user_devices_active_device,priority:1,where:revoked_at IS NULL"`
	DeviceID   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_active_device,priority:2,where:revoked_at IS NULL"`
	PushToken  string     `gorm:"type:text;not null"`
	Platform   string     `gorm:"type:varchar(16);not null"`
	Label      string     `gorm:"type:varchar(255)"`
	CreatedAt  time.Time  `gorm:"not null"`
	LastSeenAt time.Time  `gorm:"not null;index:idx_user_devices_user_seen,priority:2"`
	RevokedAt  *time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// DeviceSlotModel is the GORM-specific struct for the 'user_device_slots' table.
// Version is the compare-and-swap token guarding device registrations of a user.
type DeviceSlotModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Version     int64     `gorm:"not null;default:0"`
	ActiveCount int       `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceSlotModel) TableName() string {
	return "user_device_slots"
}

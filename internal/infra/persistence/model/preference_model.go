package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Timezone   string          `gorm:"type:varchar(64);not null"`
	QuietHours []bool          `gorm:"type:jsonb;not null;serializer:json"`
	Categories map[string]bool `gorm:"type:jsonb;not null;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Version    int64 `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents an entry in a user's in-app notification center.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EventID     uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_category_created,priority:1;index:idx_notifications_user_created,priority:1"`
	Category    string     `gorm:"type:varchar(32);not null;index:idx_notifications_user_category_created,priority:2"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Title       string     `gorm:"type:text;not null"`
	Body        string     `gorm:"type:text"`
	Deeplink    string     `gorm:"type:text"`
	TargetID    string     `gorm:"type:varchar(255)"`
	TargetType  string     `gorm:"type:varchar(64)"`
	ReadAt      *time.Time
	DismissedAt *time.Time
	CreatedAt   time.Time `gorm:"not null;index:idx_notifications_user_category_created,priority:3;index:idx_notifications_user_created,priority:2"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// EventPayloadData is the JSON document stored in the payload column.
type EventPayloadData struct {
	ActorID    string `json:"actor_id,omitempty"`
	ActorName  string `json:"actor_name,omitempty"`
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	Snippet    string `json:"snippet,omitempty"`
}

// NotificationEventModel is the GORM-specific struct for the 'notification_events' table.
// It represents an inbound business event waiting to be dispatched.
type NotificationEventModel struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	EventType    string           `gorm:"type:varchar(64);not null"`
	Category     string           `gorm:"type:varchar(32);not null"`
	Payload      EventPayloadData `gorm:"type:jsonb;not null;serializer:json"`
	Status       string           `gorm:"type:varchar(32);not null;index:idx_notification_events_status_created,priority:1"`
	AttemptCount int              `gorm:"not null;default:0"`
	DedupeKey    string           `gorm:"type:varchar(512);not null;index:idx_notification_events_dedupe,priority:1"`
	CreatedAt    time.Time        `gorm:"not null;index:idx_notification_events_status_created,priority:2;index:idx_notification_events_dedupe,priority:2"`
	ScheduledAt  *time.Time
	ProcessedAt  *time.Time
	NextRetryAt  *time.Time
	LastError    string `gorm:"type:text"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationEventModel) TableName() string {
	return "notification_events"
}

package usecase

import (
	"context"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferencesPatch is a partial preferences update. Nil fields are left unchanged.
type PreferencesPatch struct {
	Timezone   *string                  `json:"timezone,omitempty"`
	QuietHours []bool                   `json:"quiet_hours,omitempty"`
	Categories map[entity.Category]bool `json:"categories,omitempty"`
}

// PreferenceUsecase defines the interface for user notification preferences
type PreferenceUsecase interface {
	// GetOrCreate returns the user's preferences, creating permissive defaults on first access
	GetOrCreate(ctx context.Context, userID uuid.UUID, timezone string) (*entity.UserNotificationPreferences, error)

	// Update merges a partial update into the user's preferences
	Update(ctx context.Context, userID uuid.UUID, patch *PreferencesPatch) (*entity.UserNotificationPreferences, error)
}

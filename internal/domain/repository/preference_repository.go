package repository

import (
	"context"

	"notifyd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for preference persistence.
var (
	// ErrPreferencesNotFound is returned when a user has no stored preferences.
	ErrPreferencesNotFound = errors.New("notification preferences not found")
	// ErrDuplicatePreferences is returned when preferences already exist for a user.
	ErrDuplicatePreferences = errors.New("notification preferences already exist")
	// ErrPreferencesConflict is returned when preferences changed since they were read.
	ErrPreferencesConflict = errors.New("notification preferences version conflict")
)

// PreferenceRepository defines the interface for user notification preferences.
type PreferenceRepository interface {
	// FindPreferences retrieves the preferences of a user.
	FindPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserNotificationPreferences, error)

	// CreatePreferences persists preferences for a user.
	CreatePreferences(ctx context.Context, prefs *entity.UserNotificationPreferences) error

	// UpdatePreferences overwrites the stored preferences of a user if the stored version equals
	// expectedVersion. Otherwise it returns ErrPreferencesConflict.
	UpdatePreferences(ctx context.Context, prefs *entity.UserNotificationPreferences, expectedVersion int64) error
}

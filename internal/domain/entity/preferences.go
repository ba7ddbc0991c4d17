package entity

import (
	"time"

	"github.com/google/uuid"
)

// HoursPerDay is the length of the quiet-hours mask.
const HoursPerDay = 24

// UserNotificationPreferences holds a user's delivery preferences.
type UserNotificationPreferences struct {
	UserID     uuid.UUID         `json:"user_id"`     // The owner of the preferences.
	Timezone   string            `json:"timezone"`    // IANA timezone used to evaluate quiet hours.
	QuietHours []bool            `json:"quiet_hours"` // 24 entries indexed by local hour-of-day.
	Categories map[Category]bool `json:"categories"`  // Per-category enable flags.
	CreatedAt  time.Time         `json:"created_at"`  // Timestamp of when the preferences were created.
	UpdatedAt  time.Time         `json:"updated_at"`  // Timestamp of the last modification.
	Version    int64             `json:"-"`           // Compare-and-swap token for updates.
}

// NewDefaultPreferences returns permissive preferences: no quiet hours, every category enabled.
func NewDefaultPreferences(userID uuid.UUID, timezone string, now time.Time) *UserNotificationPreferences {
	categories := make(map[Category]bool, len(AllCategories))
	for _, category := range AllCategories {
		categories[category] = true
	}

	return &UserNotificationPreferences{
		UserID:     userID,
		Timezone:   timezone,
		QuietHours: make([]bool, HoursPerDay),
		Categories: categories,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CategoryEnabled reports whether the category is enabled. Unknown entries default to enabled.
func (p *UserNotificationPreferences) CategoryEnabled(category Category) bool {
	enabled, ok := p.Categories[category]

	return !ok || enabled
}

// Location resolves the preference timezone, falling back to UTC.
func (p *UserNotificationPreferences) Location() *time.Location {
	if p.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// ValidTimezone reports whether name is a loadable IANA zone.
func ValidTimezone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)

	return err == nil
}

// LocalHour returns the user's hour-of-day at the given instant.
func (p *UserNotificationPreferences) LocalHour(at time.Time) int {
	return at.In(p.Location()).Hour()
}

// InQuietHours reports whether push delivery is suppressed at the given instant.
func (p *UserNotificationPreferences) InQuietHours(at time.Time) bool {
	hour := p.LocalHour(at)
	if hour < 0 || hour >= len(p.QuietHours) {
		return false
	}

	return p.QuietHours[hour]
}

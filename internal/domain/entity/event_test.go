package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNotificationEvent_IsDue(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name  string
		event NotificationEvent
		want  bool
	}{
		{name: "pending unscheduled", event: NotificationEvent{Status: EventStatusPending}, want: true},
		{name: "pending scheduled in past", event: NotificationEvent{Status: EventStatusPending, ScheduledAt: &past}, want: true},
		{name: "pending scheduled now", event: NotificationEvent{Status: EventStatusPending, ScheduledAt: &now}, want: true},
		{name: "pending scheduled in future", event: NotificationEvent{Status: EventStatusPending, ScheduledAt: &future}, want: false},
		{name: "failed retry elapsed", event: NotificationEvent{Status: EventStatusFailed, NextRetryAt: &past}, want: true},
		{name: "failed retry pending", event: NotificationEvent{Status: EventStatusFailed, NextRetryAt: &future}, want: false},
		{name: "completed", event: NotificationEvent{Status: EventStatusCompleted}, want: false},
		{name: "rate limited", event: NotificationEvent{Status: EventStatusRateLimited}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.IsDue(now))
		})
	}
}

func TestNotificationEvent_IsTerminal(t *testing.T) {
	const maxAttempts = 3

	assert.False(t, (&NotificationEvent{Status: EventStatusPending}).IsTerminal(maxAttempts))
	assert.False(t, (&NotificationEvent{Status: EventStatusFailed, AttemptCount: 2}).IsTerminal(maxAttempts))
	assert.True(t, (&NotificationEvent{Status: EventStatusFailed, AttemptCount: 3}).IsTerminal(maxAttempts))
	assert.True(t, (&NotificationEvent{Status: EventStatusCompleted}).IsTerminal(maxAttempts))
	assert.True(t, (&NotificationEvent{Status: EventStatusDeduplicated}).IsTerminal(maxAttempts))
	assert.True(t, (&NotificationEvent{Status: EventStatusRateLimited}).IsTerminal(maxAttempts))
}

func TestDefaultDedupeKey(t *testing.T) {
	userID := uuid.MustParse("6f1c1b4e-6a43-4c55-9d0a-2f8a1e0d6b11")

	key := DefaultDedupeKey(userID, EventPostLiked, "post-9")
	assert.Equal(t, "6f1c1b4e-6a43-4c55-9d0a-2f8a1e0d6b11:POST_LIKED:post-9", key)
	assert.NotEqual(t, key, DefaultDedupeKey(userID, EventPostCommented, "post-9"))
}

package postgres

import (
	"context"
	"testing"
	"time"

	"notifyd/internal/domain/entity"
	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredNotification(t *testing.T, repo repository.NotificationRepository, userID uuid.UUID, mutate func(*entity.Notification)) *entity.Notification {
	t.Helper()

	notification := &entity.Notification{
		ID:         uuid.New(),
		EventID:    uuid.New(),
		UserID:     userID,
		Category:   entity.CategorySocial,
		EventType:  entity.EventPostLiked,
		Title:      "Alice liked your post",
		Deeplink:   "post/post-1",
		TargetID:   "post-1",
		TargetType: "post",
		CreatedAt:  repoNow.Add(-time.Hour),
		ExpiresAt:  repoNow.Add(30 * 24 * time.Hour),
		UpdatedAt:  repoNow.Add(-time.Hour),
	}
	if mutate != nil {
		mutate(notification)
	}

	require.NoError(t, repo.CreateNotification(context.Background(), notification))

	return notification
}

func TestNotificationRepository_OneEntryPerEvent(t *testing.T) {
	repo := NewNotificationRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	first := newStoredNotification(t, repo, userID, nil)

	duplicate := *first
	duplicate.ID = uuid.New()
	err := repo.CreateNotification(ctx, &duplicate)
	assert.ErrorIs(t, err, repository.ErrDuplicateNotification)

	found, err := repo.FindNotificationByEventID(ctx, first.EventID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	found.Title = "Bob liked your post"
	found.UpdatedAt = repoNow
	require.NoError(t, repo.UpdateNotificationContent(ctx, found))

	reloaded, err := repo.FindNotificationByEventID(ctx, first.EventID)
	require.NoError(t, err)
	assert.Equal(t, "Bob liked your post", reloaded.Title)

	_, err = repo.FindNotificationByEventID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotificationNotFound)
}

func TestNotificationRepository_VisibleListing(t *testing.T) {
	repo := NewNotificationRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()
	dismissedAt := repoNow.Add(-time.Minute)

	newest := newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.CreatedAt = repoNow.Add(-time.Minute)
	})
	older := newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.CreatedAt = repoNow.Add(-2 * time.Hour)
	})
	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.DismissedAt = &dismissedAt
	})
	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.ExpiresAt = repoNow.Add(-time.Second)
	})
	newStoredNotification(t, repo, uuid.New(), nil)

	visible, err := repo.FindVisibleNotificationsByUser(ctx, userID, repoNow, 10, 0)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, newest.ID, visible[0].ID)
	assert.Equal(t, older.ID, visible[1].ID)

	page, err := repo.FindVisibleNotificationsByUser(ctx, userID, repoNow, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older.ID, page[0].ID)

	unread, err := repo.CountUnread(ctx, userID, repoNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)
}

func TestNotificationRepository_MarkReadAndDismiss(t *testing.T) {
	repo := NewNotificationRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()
	first := newStoredNotification(t, repo, userID, nil)
	second := newStoredNotification(t, repo, userID, nil)

	require.NoError(t, repo.MarkRead(ctx, userID, first.ID, repoNow))
	require.NoError(t, repo.MarkRead(ctx, userID, first.ID, repoNow.Add(time.Hour)), "marking twice is a no-op")

	reloaded, err := repo.FindNotificationByEventID(ctx, first.EventID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ReadAt)
	assert.True(t, repoNow.Equal(*reloaded.ReadAt))

	assert.ErrorIs(t, repo.MarkRead(ctx, uuid.New(), first.ID, repoNow), repository.ErrNotificationNotFound)

	count, err := repo.MarkAllRead(ctx, userID, repoNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	unread, err := repo.CountUnread(ctx, userID, repoNow)
	require.NoError(t, err)
	assert.Zero(t, unread)

	require.NoError(t, repo.Dismiss(ctx, userID, second.ID, repoNow))
	require.NoError(t, repo.Dismiss(ctx, userID, second.ID, repoNow))
	assert.ErrorIs(t, repo.Dismiss(ctx, userID, uuid.New(), repoNow), repository.ErrNotificationNotFound)

	visible, err := repo.FindVisibleNotificationsByUser(ctx, userID, repoNow, 10, 0)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, first.ID, visible[0].ID)
}

func TestNotificationRepository_CountRecentByCategory(t *testing.T) {
	repo := NewNotificationRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	recent := newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.CreatedAt = repoNow.Add(-10 * time.Minute)
	})
	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.CreatedAt = repoNow.Add(-50 * time.Minute)
	})
	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.CreatedAt = repoNow.Add(-2 * time.Hour)
	})
	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.Category = entity.CategorySystem
		n.CreatedAt = repoNow.Add(-time.Minute)
	})

	count, err := repo.CountRecentByCategory(ctx, userID, entity.CategorySocial, repoNow.Add(-time.Hour), uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The entry of the event being processed does not count against its own cap.
	count, err = repo.CountRecentByCategory(ctx, userID, entity.CategorySocial, repoNow.Add(-time.Hour), recent.EventID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationRepository_DeleteExpired(t *testing.T) {
	repo := NewNotificationRepository(testdb.New(t))
	ctx := context.Background()
	userID := uuid.New()

	newStoredNotification(t, repo, userID, func(n *entity.Notification) {
		n.ExpiresAt = repoNow.Add(-time.Hour)
	})
	kept := newStoredNotification(t, repo, userID, nil)

	deleted, err := repo.DeleteExpired(ctx, repoNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindNotificationByEventID(ctx, kept.EventID)
	assert.NoError(t, err)
}

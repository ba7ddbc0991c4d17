package postgres

import (
	"context"
	"testing"

	"notifyd/internal/domain/repository"
	"notifyd/internal/infra/persistence/testdb"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := testdb.New(t)
	txManager := NewTransactionManager(db)
	devices := NewDeviceRepository(db)
	ctx := context.Background()

	committed := newDevice(uuid.New(), "phone", repoNow)
	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewDeviceRepository().CreateDevice(ctx, committed)
	}))

	rolledBack := newDevice(uuid.New(), "tablet", repoNow)
	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewDeviceRepository().CreateDevice(ctx, rolledBack); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = devices.FindActiveDeviceByDeviceID(ctx, committed.UserID, "phone")
	assert.NoError(t, err)

	_, err = devices.FindActiveDeviceByDeviceID(ctx, rolledBack.UserID, "tablet")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := testdb.New(t)
	txManager := NewTransactionManager(db)
	devices := NewDeviceRepository(db)
	ctx := context.Background()

	device := newDevice(uuid.New(), "phone", repoNow)
	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
			if err := factory.NewDeviceRepository().CreateDevice(ctx, device); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := devices.FindActiveDeviceByDeviceID(ctx, device.UserID, "phone")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

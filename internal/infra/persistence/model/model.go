// Package model contains the GORM models of the notification tables.
package model

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All returns every model managed by the service.
func All() []any {
	return []any{
		&NotificationEventModel{},
		&NotificationModel{},
		&NotificationPreferenceModel{},
		&UserDeviceModel{},
		&DeviceSlotModel{},
	}
}

// AutoMigrate creates or updates the tables of every model.
func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(All()...), "auto migrate notification tables")
}

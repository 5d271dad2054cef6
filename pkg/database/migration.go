package database

import (
	"github.com/brevetti-digital/backend/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Holder{},
		&model.Patent{},
	)
}

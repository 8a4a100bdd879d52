package database

import (
	"fmt"

	"vetify/config"
	"vetify/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewSQLiteConnection(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	logrus.Infof("Successfully connected to SQLite database at %s", cfg.Path)

	return db, nil
}

// Migrate creates or updates the five clinic tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Owner{},
		&entity.Pet{},
		&entity.Veterinarian{},
		&entity.Appointment{},
		&entity.User{},
	)
}

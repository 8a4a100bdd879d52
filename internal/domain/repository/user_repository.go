package repository

import (
	"vetify/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	// FindByUsername returns (nil, nil) when no user matches.
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	Count(db *gorm.DB) (int64, error)
}

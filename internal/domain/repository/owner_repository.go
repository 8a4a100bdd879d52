package repository

import (
	"vetify/internal/domain/entity"

	"gorm.io/gorm"
)

type OwnerRepository interface {
	Create(db *gorm.DB, owner *entity.Owner) error
	Count(db *gorm.DB) (int64, error)
}

package repository

import (
	"vetify/internal/domain/entity"

	"gorm.io/gorm"
)

type VeterinarianRepository interface {
	FindAll(db *gorm.DB) ([]entity.Veterinarian, error)
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, vets []entity.Veterinarian) error
}

package repository

import (
	"vetify/internal/domain/entity"

	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet) error
	Count(db *gorm.DB) (int64, error)
	FindAllRows(db *gorm.DB) ([]entity.PetRow, error)
	FindAllDetails(db *gorm.DB) ([]entity.PetDetail, error)
}

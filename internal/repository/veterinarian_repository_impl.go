package repository

import (
	"vetify/internal/domain/entity"
	domainRepo "vetify/internal/domain/repository"

	"gorm.io/gorm"
)

type veterinarianRepository struct{}

func NewVeterinarianRepository() domainRepo.VeterinarianRepository {
	return &veterinarianRepository{}
}

func (r *veterinarianRepository) FindAll(db *gorm.DB) ([]entity.Veterinarian, error) {
	var vets []entity.Veterinarian
	err := db.Order("name").Find(&vets).Error
	if err != nil {
		return nil, err
	}
	return vets, nil
}

func (r *veterinarianRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Veterinarian{}).Count(&count).Error
	return count, err
}

func (r *veterinarianRepository) CreateBatch(db *gorm.DB, vets []entity.Veterinarian) error {
	return db.Create(&vets).Error
}

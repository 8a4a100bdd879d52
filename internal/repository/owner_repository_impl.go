package repository

import (
	"vetify/internal/domain/entity"
	domainRepo "vetify/internal/domain/repository"

	"gorm.io/gorm"
)

type ownerRepository struct{}

func NewOwnerRepository() domainRepo.OwnerRepository {
	return &ownerRepository{}
}

func (r *ownerRepository) Create(db *gorm.DB, owner *entity.Owner) error {
	return db.Create(owner).Error
}

func (r *ownerRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Owner{}).Count(&count).Error
	return count, err
}

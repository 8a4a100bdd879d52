package repository

import (
	"vetify/internal/domain/entity"
	domainRepo "vetify/internal/domain/repository"

	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet) error {
	return db.Create(pet).Error
}

func (r *petRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Pet{}).Count(&count).Error
	return count, err
}

func (r *petRepository) FindAllRows(db *gorm.DB) ([]entity.PetRow, error) {
	var rows []entity.PetRow
	err := db.Table("pets AS p").
		Select("p.id, p.name, p.species, o.name AS owner_name").
		Joins("JOIN owners o ON p.owner_id = o.id").
		Order("p.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *petRepository) FindAllDetails(db *gorm.DB) ([]entity.PetDetail, error) {
	var rows []entity.PetDetail
	err := db.Table("pets AS p").
		Select(`p.id, p.name, p.species, p.breed, p.age, p.weight, p.registered_at,
			o.name AS owner_name, o.phone AS owner_phone, o.email AS owner_email`).
		Joins("JOIN owners o ON p.owner_id = o.id").
		Order("p.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

package usecase

import (
	"context"
	"time"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DirectoryUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (ownerID, petID int, err error)
	ListPets(ctx context.Context) ([]entity.PetRow, error)
	ListPatientsDetail(ctx context.Context) ([]entity.PetDetail, error)
	ListVeterinarians(ctx context.Context) ([]entity.Veterinarian, error)
	CountOwners(ctx context.Context) (int64, error)
	CountPets(ctx context.Context) (int64, error)
}

type directoryUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	ownerRepo repository.OwnerRepository
	petRepo   repository.PetRepository
	vetRepo   repository.VeterinarianRepository
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	ownerRepo repository.OwnerRepository,
	petRepo repository.PetRepository,
	vetRepo repository.VeterinarianRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		db:        db,
		log:       log,
		ownerRepo: ownerRepo,
		petRepo:   petRepo,
		vetRepo:   vetRepo,
	}
}

// RegisterPatient creates the owner and the pet in one transaction; the
// registration timestamp is stamped server-side.
func (u *directoryUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (int, int, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	owner := &entity.Owner{
		Name:  req.OwnerName,
		Phone: req.OwnerPhone,
		Email: req.OwnerEmail,
	}
	if err := u.ownerRepo.Create(tx, owner); err != nil {
		u.log.Warnf("Failed to create owner: %+v", err)
		return 0, 0, err
	}

	pet := &entity.Pet{
		Name:         req.PetName,
		Species:      req.PetSpecies,
		Breed:        req.PetBreed,
		Age:          req.PetAge,
		Weight:       req.PetWeight,
		OwnerID:      owner.ID,
		RegisteredAt: time.Now().Format(entity.RegisteredAtLayout),
	}
	if err := u.petRepo.Create(tx, pet); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return 0, 0, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit patient registration: %+v", err)
		return 0, 0, err
	}

	return owner.ID, pet.ID, nil
}

func (u *directoryUsecase) ListPets(ctx context.Context) ([]entity.PetRow, error) {
	return u.petRepo.FindAllRows(u.db.WithContext(ctx))
}

func (u *directoryUsecase) ListPatientsDetail(ctx context.Context) ([]entity.PetDetail, error) {
	return u.petRepo.FindAllDetails(u.db.WithContext(ctx))
}

func (u *directoryUsecase) ListVeterinarians(ctx context.Context) ([]entity.Veterinarian, error) {
	return u.vetRepo.FindAll(u.db.WithContext(ctx))
}

func (u *directoryUsecase) CountOwners(ctx context.Context) (int64, error) {
	return u.ownerRepo.Count(u.db.WithContext(ctx))
}

func (u *directoryUsecase) CountPets(ctx context.Context) (int64, error) {
	return u.petRepo.Count(u.db.WithContext(ctx))
}

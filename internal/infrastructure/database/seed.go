package database

import (
	"vetify/config"
	"vetify/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedVeterinarians inserts the clinic's fixed staff when the table is
// empty. Subsequent startups are no-ops.
func SeedVeterinarians(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Veterinarian{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vets := []entity.Veterinarian{
		{Name: "Dr. Pérez", Specialty: "Perros", Phone: "7777-0001"},
		{Name: "Dra. López", Specialty: "Gatos", Phone: "7777-0002"},
		{Name: "Dr. Martínez", Specialty: "Aves", Phone: "7777-0003"},
		{Name: "Dra. Rivera", Specialty: "General", Phone: "7777-0004"},
	}

	if err := db.Create(&vets).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded %d veterinarians", len(vets))
	return nil
}

// SeedAdmin creates the initial admin account when the users table is
// empty. The default password is an operational risk documented in the
// deployment notes; override it through ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB, cfg config.SeedConfig) error {
	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Role:     entity.RoleAdmin,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logrus.Infof("Seeded admin user %q", admin.Username)
	return nil
}

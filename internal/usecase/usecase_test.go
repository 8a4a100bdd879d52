package usecase

import (
	"io"
	"testing"

	"vetify/internal/domain/entity"
	"vetify/internal/infrastructure/database"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory SQLite database with the full
// schema. Max open connections is pinned to one so every statement
// sees the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// seedClinic inserts one owner with a pet and two veterinarians.
func seedClinic(t *testing.T, db *gorm.DB) (petID int, vetIDs [2]int) {
	t.Helper()

	owner := &entity.Owner{Name: "Laura Gómez", Phone: "555-0101", Email: "laura@example.com"}
	require.NoError(t, db.Create(owner).Error)

	pet := &entity.Pet{
		Name:         "Rocky",
		Species:      "Perro",
		Breed:        "Beagle",
		Age:          4,
		Weight:       11.5,
		OwnerID:      owner.ID,
		RegisteredAt: "2026-01-01 10:00:00",
	}
	require.NoError(t, db.Create(pet).Error)

	vets := []entity.Veterinarian{
		{Name: "Dr. Pérez", Specialty: "Perros", Phone: "7777-0001"},
		{Name: "Dra. López", Specialty: "Gatos", Phone: "7777-0002"},
	}
	require.NoError(t, db.Create(&vets).Error)

	return pet.ID, [2]int{vets[0].ID, vets[1].ID}
}

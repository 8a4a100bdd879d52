package repository

import (
	"vetify/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindDetailByID(db *gorm.DB, id int) (*entity.AppointmentDetail, error)
	FindAllRows(db *gorm.DB) ([]entity.AppointmentRow, error)
	FindRowsByDate(db *gorm.DB, dateISO string) ([]entity.AppointmentRow, error)
	CountByDate(db *gorm.DB, dateISO string) (int64, error)
	CountByUrgencyOnDate(db *gorm.DB, dateISO string) (map[string]int, error)
	// CountAtSlot counts appointments for the veterinarian at the exact
	// timestamp, optionally excluding one appointment id (0 = none).
	CountAtSlot(db *gorm.DB, vetID int, scheduledAt string, excludeID int) (int64, error)
}

package repository

import (
	"errors"

	"vetify/internal/domain/entity"
	domainRepo "vetify/internal/domain/repository"

	"gorm.io/gorm"
)

// appointmentRowColumns is the joined list projection shared by the
// agenda and the full listing. Ordering by the ISO-8601 text timestamp
// is chronological by construction.
const appointmentRowColumns = `a.id, a.scheduled_at, a.service_type, a.urgency, a.symptoms, a.status,
	p.name AS pet_name, p.species AS pet_species, o.name AS owner_name, v.name AS vet_name,
	a.pet_id, a.vet_id`

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

// Update overwrites the mutable fields of an appointment. Status is not
// part of the edit flow and stays untouched.
func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Model(&entity.Appointment{ID: appointment.ID}).
		Select("pet_id", "vet_id", "scheduled_at", "service_type", "symptoms", "urgency").
		Updates(map[string]interface{}{
			"pet_id":       appointment.PetID,
			"vet_id":       appointment.VetID,
			"scheduled_at": appointment.ScheduledAt,
			"service_type": appointment.ServiceType,
			"symptoms":     appointment.Symptoms,
			"urgency":      appointment.Urgency,
		}).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) error {
	return db.Delete(&entity.Appointment{}, id).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindDetailByID(db *gorm.DB, id int) (*entity.AppointmentDetail, error) {
	var detail entity.AppointmentDetail
	result := db.Table("appointments AS a").
		Select(`a.id, a.scheduled_at, a.service_type, a.urgency, a.symptoms, a.status,
			p.name AS pet_name, p.species AS pet_species,
			o.name AS owner_name, o.phone AS owner_phone, o.email AS owner_email,
			v.name AS vet_name, v.specialty AS vet_specialty, v.phone AS vet_phone`).
		Joins("JOIN pets p ON a.pet_id = p.id").
		Joins("JOIN owners o ON p.owner_id = o.id").
		Joins("JOIN veterinarians v ON a.vet_id = v.id").
		Where("a.id = ?", id).
		Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &detail, nil
}

func (r *appointmentRepository) FindAllRows(db *gorm.DB) ([]entity.AppointmentRow, error) {
	var rows []entity.AppointmentRow
	err := r.rowQuery(db).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) FindRowsByDate(db *gorm.DB, dateISO string) ([]entity.AppointmentRow, error) {
	var rows []entity.AppointmentRow
	err := r.rowQuery(db).
		Where("substr(a.scheduled_at, 1, 10) = ?", dateISO).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) rowQuery(db *gorm.DB) *gorm.DB {
	return db.Table("appointments AS a").
		Select(appointmentRowColumns).
		Joins("JOIN pets p ON a.pet_id = p.id").
		Joins("JOIN owners o ON p.owner_id = o.id").
		Joins("JOIN veterinarians v ON a.vet_id = v.id").
		Order("a.scheduled_at ASC")
}

func (r *appointmentRepository) CountByDate(db *gorm.DB, dateISO string) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("substr(scheduled_at, 1, 10) = ?", dateISO).
		Count(&count).Error
	return count, err
}

// CountByUrgencyOnDate groups the day's appointments by urgency. A NULL
// or empty urgency folds into the "" key.
func (r *appointmentRepository) CountByUrgencyOnDate(db *gorm.DB, dateISO string) (map[string]int, error) {
	var rows []struct {
		Urgency string
		Total   int
	}
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(urgency, '') AS urgency, COUNT(*) AS total").
		Where("substr(scheduled_at, 1, 10) = ?", dateISO).
		Group("urgency").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Urgency] = row.Total
	}
	return counts, nil
}

// CountAtSlot is a point check on the exact timestamp, not an interval
// overlap check. Adjacent minutes never conflict.
func (r *appointmentRepository) CountAtSlot(db *gorm.DB, vetID int, scheduledAt string, excludeID int) (int64, error) {
	query := db.Model(&entity.Appointment{}).
		Where("vet_id = ? AND scheduled_at = ?", vetID, scheduledAt)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}

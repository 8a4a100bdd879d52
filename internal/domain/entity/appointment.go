package entity

// UrgencyLevel is the triage outcome assigned to an appointment.
type UrgencyLevel string

const (
	UrgencyAlta  UrgencyLevel = "alta"
	UrgencyMedia UrgencyLevel = "media"
	UrgencyBaja  UrgencyLevel = "baja"
)

// StatusPendiente is the status every new appointment starts with.
const StatusPendiente = "pendiente"

// ScheduledAtLayout is how appointment timestamps are stored: ISO-8601
// text, minute precision padded with seconds. Exact-slot conflict checks
// and date grouping both rely on plain string comparison of this format.
const ScheduledAtLayout = "2006-01-02T15:04:05"

// Appointment is a booking of one pet with one veterinarian at an exact
// instant. The unique index on (vet_id, scheduled_at) makes double-booking
// a constraint violation rather than a pure check-then-insert race.
type Appointment struct {
	ID          int          `gorm:"primaryKey;autoIncrement" json:"id"`
	PetID       int          `gorm:"not null;index" json:"pet_id"`
	VetID       int          `gorm:"not null;uniqueIndex:idx_vet_slot" json:"vet_id"`
	ScheduledAt string       `gorm:"type:text;not null;uniqueIndex:idx_vet_slot" json:"scheduled_at"`
	ServiceType string       `gorm:"type:text;not null" json:"service_type"`
	Symptoms    string       `gorm:"type:text" json:"symptoms,omitempty"`
	Urgency     UrgencyLevel `gorm:"type:text" json:"urgency"`
	Status      string       `gorm:"type:text;not null;default:pendiente" json:"status"`

	// Relationships
	Pet Pet          `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Vet Veterinarian `gorm:"foreignKey:VetID" json:"vet,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DateISO returns the calendar-date part of the scheduled timestamp.
func (a *Appointment) DateISO() string {
	if len(a.ScheduledAt) < 10 {
		return a.ScheduledAt
	}
	return a.ScheduledAt[:10]
}

package dto

import (
	"time"

	"vetify/internal/domain/entity"
)

// AppointmentRequest is the validated booking/edit input. Date and time
// are parsed at the boundary; this layer always sees a valid instant.
type AppointmentRequest struct {
	PetID       int       `validate:"required,min=1"`
	VetID       int       `validate:"required,min=1"`
	ScheduledAt time.Time `validate:"required"`
	ServiceType string    `validate:"required"`
	Symptoms    string    `validate:"omitempty"`
}

// AppointmentForm is the prefilled edit-form view of a raw appointment,
// with the stored timestamp split back into date and time inputs.
type AppointmentForm struct {
	ID          int
	PetID       int
	VetID       int
	Date        string
	Time        string
	ServiceType string
	Symptoms    string
	Urgency     string
	Status      string
}

// DayGroup is a contiguous run of appointments sharing a calendar date,
// in ascending time order.
type DayGroup struct {
	DateISO string
	Label   string
	Items   []entity.AppointmentRow
}

// AgendaView backs the filtered appointment browser. Counts are always
// computed over the unfiltered list; Total is the filtered row count.
type AgendaView struct {
	Groups []DayGroup
	Counts map[string]int
	Total  int
	Filter string
}

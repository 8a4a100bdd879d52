package converter

import (
	"time"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
)

// AppointmentToForm converts a raw appointment into the edit-form view,
// splitting the stored ISO timestamp into separate date and time inputs.
func AppointmentToForm(appointment *entity.Appointment) *dto.AppointmentForm {
	if appointment == nil {
		return nil
	}

	form := &dto.AppointmentForm{
		ID:          appointment.ID,
		PetID:       appointment.PetID,
		VetID:       appointment.VetID,
		ServiceType: appointment.ServiceType,
		Symptoms:    appointment.Symptoms,
		Urgency:     string(appointment.Urgency),
		Status:      appointment.Status,
	}

	if ts, err := time.Parse(entity.ScheduledAtLayout, appointment.ScheduledAt); err == nil {
		form.Date = ts.Format("2006-01-02")
		form.Time = ts.Format("15:04")
	}

	return form
}

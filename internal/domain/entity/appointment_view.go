package entity

// Read projections for appointment queries. The list view, the detail
// view and the raw Appointment entity are deliberately distinct shapes;
// they back different screens and must not be merged.

// AppointmentRow is the joined list projection used by the agenda and
// the full appointment listing.
type AppointmentRow struct {
	ID          int    `json:"id"`
	ScheduledAt string `json:"scheduled_at"`
	ServiceType string `json:"service_type"`
	Urgency     string `json:"urgency"`
	Symptoms    string `json:"symptoms"`
	Status      string `json:"status"`
	PetName     string `json:"pet_name"`
	PetSpecies  string `json:"pet_species"`
	OwnerName   string `json:"owner_name"`
	VetName     string `json:"vet_name"`
	PetID       int    `json:"pet_id"`
	VetID       int    `json:"vet_id"`
}

// DateISO returns the calendar-date part of the scheduled timestamp.
func (r *AppointmentRow) DateISO() string {
	if len(r.ScheduledAt) < 10 {
		return r.ScheduledAt
	}
	return r.ScheduledAt[:10]
}

// AppointmentDetail is the single-appointment projection including the
// owner and veterinarian contact data.
type AppointmentDetail struct {
	ID           int    `json:"id"`
	ScheduledAt  string `json:"scheduled_at"`
	ServiceType  string `json:"service_type"`
	Urgency      string `json:"urgency"`
	Symptoms     string `json:"symptoms"`
	Status       string `json:"status"`
	PetName      string `json:"pet_name"`
	PetSpecies   string `json:"pet_species"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	OwnerEmail   string `json:"owner_email"`
	VetName      string `json:"vet_name"`
	VetSpecialty string `json:"vet_specialty"`
	VetPhone     string `json:"vet_phone"`
}

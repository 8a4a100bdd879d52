package dto

// RegisterPatientRequest carries the owner+pet intake form. Owner data
// and the pet name are mandatory; numeric fields are coerced at the
// handler and only range-checked here.
type RegisterPatientRequest struct {
	OwnerName  string  `validate:"required"`
	OwnerPhone string  `validate:"required"`
	OwnerEmail string  `validate:"required"`
	PetName    string  `validate:"required"`
	PetSpecies string  `validate:"required"`
	PetBreed   string  `validate:"omitempty"`
	PetAge     int     `validate:"gte=0"`
	PetWeight  float64 `validate:"gte=0"`
}

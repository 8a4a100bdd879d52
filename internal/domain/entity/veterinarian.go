package entity

// Veterinarian is a practitioner appointments are booked against.
type Veterinarian struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	Specialty string `gorm:"type:text;not null" json:"specialty"`
	Phone     string `gorm:"type:text;not null" json:"phone"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:VetID" json:"appointments,omitempty"`
}

func (Veterinarian) TableName() string {
	return "veterinarians"
}

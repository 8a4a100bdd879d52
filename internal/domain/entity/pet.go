package entity

// RegisteredAtLayout is how pet registration timestamps are stored.
const RegisteredAtLayout = "2006-01-02 15:04:05"

// Pet is a clinic patient, always attached to an Owner.
type Pet struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:text;not null" json:"name"`
	Species      string  `gorm:"type:text;not null" json:"species"`
	Breed        string  `gorm:"type:text" json:"breed,omitempty"`
	Age          int     `gorm:"not null" json:"age"`
	Weight       float64 `gorm:"not null" json:"weight"`
	OwnerID      int     `gorm:"not null;index" json:"owner_id"`
	RegisteredAt string  `gorm:"type:text" json:"registered_at"`

	// Relationships
	Owner        Owner         `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}

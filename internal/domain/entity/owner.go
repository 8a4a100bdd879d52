package entity

// Owner is the person responsible for one or more pets.
type Owner struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Phone string `gorm:"type:text;not null" json:"phone"`
	Email string `gorm:"type:text;not null" json:"email"`

	// Relationships
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (Owner) TableName() string {
	return "owners"
}

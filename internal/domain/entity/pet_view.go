package entity

// PetRow is the short pet listing joined with the owner name, used to
// populate booking forms and the simple pet list.
type PetRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Species   string `json:"species"`
	OwnerName string `json:"owner_name"`
}

// PetDetail is the full patient record including owner contact data.
type PetDetail struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Species      string  `json:"species"`
	Breed        string  `json:"breed"`
	Age          int     `json:"age"`
	Weight       float64 `json:"weight"`
	RegisteredAt string  `json:"registered_at"`
	OwnerName    string  `json:"owner_name"`
	OwnerPhone   string  `json:"owner_phone"`
	OwnerEmail   string  `json:"owner_email"`
}

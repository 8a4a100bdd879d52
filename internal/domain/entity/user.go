package entity

// User is a staff login. The role is stored and carried in the session
// but no route enforces it.
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null" json:"-"`
	Role     string `gorm:"type:text;not null;default:secretaria" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Role name constants
const (
	RoleAdmin      = "admin"
	RoleSecretaria = "secretaria"
)

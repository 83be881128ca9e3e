package models

// User represents a registered account. The password column stores a bcrypt
// hash, never the plaintext.
type User struct {
	BaseModel
	Email    string `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Password string `gorm:"column:password" json:"-"`
}

// TableName specifies the static table name for GORM.
func (User) TableName() string {
	return "users"
}

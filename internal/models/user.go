package models

import "gorm.io/gorm"

// User represents a registered account. The email is stored lowercase and
// backed by a unique index; the password column holds a bcrypt hash.
type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" validate:"required,min=3"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `validate:"required,min=6"` // No json tag for security
	gorm.Model `json:"-"`
}

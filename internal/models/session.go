package models

// Session binds an opaque bearer token to a user. A session is created on
// login and lives until logout deletes it; there is no expiry.
type Session struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"userId" gorm:"index;not null"`
	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Token  string `json:"-" gorm:"index;type:varchar(64)"`
}

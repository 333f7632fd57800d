package models

import "time"

// User represents a registered account. Usernames are unique and
// case-sensitive as stored; Password only ever holds a bcrypt hash.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(30)" validate:"required,alphanum,min=3,max=30"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// User represents an account capable of authenticating against the API.
type User struct {
	ID        string    `json:"user_id" gorm:"primaryKey;type:varchar(36)"`
	Username  string    `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password  string    `gorm:"type:varchar(255)"` // bcrypt hash; no json tag so it never serializes
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// Employee represents an employee record.
// No gorm.Model embedding: deletes must be hard deletes, so there is no
// DeletedAt column.
type Employee struct {
	ID            string    `json:"employee_id" gorm:"primaryKey;type:varchar(36)"`
	FirstName     string    `json:"first_name" gorm:"type:varchar(100)"`
	LastName      string    `json:"last_name" gorm:"type:varchar(100)"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Position      string    `json:"position" gorm:"type:varchar(100)"`
	Salary        float64   `json:"salary"`
	DateOfJoining time.Time `json:"date_of_joining"`
	Department    string    `json:"department" gorm:"type:varchar(100)"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

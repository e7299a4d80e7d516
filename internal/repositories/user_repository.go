package repositories

import (
	"errors"

	"hrms/internal/models"
)

// ErrNotFound is returned by all repositories when a record does not exist.
// Callers branch on it with errors.Is rather than matching error strings.
var ErrNotFound = errors.New("record not found")

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
}

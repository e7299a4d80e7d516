package repositories

import "hrms/internal/models"

// EmployeeRepository defines the interface for employee data access.
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	GetByID(id string) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	Create(employee *models.Employee) error
	// UpdateFields applies a sparse update: only the supplied columns are
	// touched, and updated_at is refreshed regardless. The reloaded record
	// is returned.
	UpdateFields(id string, fields map[string]interface{}) (*models.Employee, error)
	Delete(id string) error
}

package repositories

import (
	"fmt"
	"time"

	"hrms/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEmployeeRepository is a GORM implementation of EmployeeRepository.
type GORMEmployeeRepository struct {
	db *gorm.DB
}

// NewGORMEmployeeRepository creates a new instance of GORMEmployeeRepository.
func NewGORMEmployeeRepository(db *gorm.DB) *GORMEmployeeRepository {
	return &GORMEmployeeRepository{
		db: db,
	}
}

// GetAll retrieves all employees from the database.
func (r *GORMEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("failed to get all employees: %w", err)
	}
	return employees, nil
}

// GetByID retrieves a single employee by its ID from the database.
func (r *GORMEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by ID %s: %w", id, err)
	}
	return &employee, nil
}

// GetByEmail retrieves a single employee by email from the database.
func (r *GORMEmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employee with email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get employee by email %s: %w", email, err)
	}
	return &employee, nil
}

// Create creates a new employee in the database, assigning a UUID if the
// caller did not supply one.
func (r *GORMEmployeeRepository) Create(employee *models.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	if err := r.db.Create(employee).Error; err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// UpdateFields applies a sparse update to the employee with the given ID.
// Only the supplied columns are written; updated_at is always refreshed,
// even when the field set is otherwise empty.
func (r *GORMEmployeeRepository) UpdateFields(id string, fields map[string]interface{}) (*models.Employee, error) {
	updates := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	res := r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update employee %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}
	return r.GetByID(id)
}

// Delete hard-deletes an employee by its ID.
func (r *GORMEmployeeRepository) Delete(id string) error {
	res := r.db.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete employee %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}
	return nil
}

package repositories

import (
	"fmt"
	"sync"
	"time"

	"hrms/internal/models"

	"github.com/google/uuid"
)

// MockEmployeeRepository is an in-memory implementation of EmployeeRepository.
type MockEmployeeRepository struct {
	employees map[string]models.Employee
	mu        sync.RWMutex
}

// NewMockEmployeeRepository creates a new instance of MockEmployeeRepository.
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{
		employees: make(map[string]models.Employee),
	}
}

// GetAll returns all employees.
func (r *MockEmployeeRepository) GetAll() ([]models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		list = append(list, emp)
	}
	return list, nil
}

// GetByID returns an employee by its ID.
func (r *MockEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}
	return &emp, nil
}

// GetByEmail returns an employee by email.
func (r *MockEmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.Email == email {
			found := emp
			return &found, nil
		}
	}
	return nil, fmt.Errorf("employee with email %s: %w", email, ErrNotFound)
}

// Create adds a new employee.
func (r *MockEmployeeRepository) Create(employee *models.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()
	r.employees[employee.ID] = *employee
	return nil
}

// UpdateFields applies a sparse update to a stored employee.
func (r *MockEmployeeRepository) UpdateFields(id string, fields map[string]interface{}) (*models.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[id]
	if !ok {
		return nil, fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}

	for column, value := range fields {
		switch column {
		case "first_name":
			emp.FirstName = value.(string)
		case "last_name":
			emp.LastName = value.(string)
		case "email":
			emp.Email = value.(string)
		case "position":
			emp.Position = value.(string)
		case "salary":
			emp.Salary = value.(float64)
		case "date_of_joining":
			emp.DateOfJoining = value.(time.Time)
		case "department":
			emp.Department = value.(string)
		}
	}
	emp.UpdatedAt = time.Now()
	r.employees[id] = emp
	return &emp, nil
}

// Delete removes an employee by its ID.
func (r *MockEmployeeRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return fmt.Errorf("employee with ID %s: %w", id, ErrNotFound)
	}
	delete(r.employees, id)
	return nil
}

package services

import (
	"errors"
	"fmt"
	"log"

	"hrms/internal/models"
	"hrms/internal/repositories"
	"hrms/pkg/rabbitmq"
)

// EmployeeService handles business logic related to employees.
type EmployeeService struct {
	repo     repositories.EmployeeRepository
	mqClient *rabbitmq.Client
}

// NewEmployeeService creates a new EmployeeService. mqClient may be nil, in
// which case lifecycle events are not published.
func NewEmployeeService(repo repositories.EmployeeRepository, mqClient *rabbitmq.Client) *EmployeeService {
	return &EmployeeService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// GetAllEmployees retrieves all employees.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// GetEmployeeByID retrieves a single employee by its ID.
func (s *EmployeeService) GetEmployeeByID(id string) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// CreateEmployee creates a new employee after checking for an email
// collision. The pre-check is not atomic with the insert; the unique index
// on email is the real guard. Publishes an employee.created event.
func (s *EmployeeService) CreateEmployee(employee *models.Employee) error {
	if _, err := s.repo.GetByEmail(employee.Email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("failed to check employee email: %w", err)
	}

	if err := s.repo.Create(employee); err != nil {
		return err
	}

	s.publishEvent("employee.created", employee)
	return nil
}

// UpdateEmployee applies a sparse update and returns the updated record.
// Publishes an employee.updated event.
func (s *EmployeeService) UpdateEmployee(id string, fields map[string]interface{}) (*models.Employee, error) {
	employee, err := s.repo.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}

	s.publishEvent("employee.updated", employee)
	return employee, nil
}

// DeleteEmployee hard-deletes an employee. Publishes an employee.deleted
// event.
func (s *EmployeeService) DeleteEmployee(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("employee.deleted", &models.Employee{ID: id})
	return nil
}

// publishEvent sends an employee lifecycle event to the message queue.
// Publishing is best-effort: failures are logged and never fail the request
// that triggered them.
func (s *EmployeeService) publishEvent(event string, employee *models.Employee) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]interface{}{
		"employee_id": employee.ID,
	}
	if employee.Email != "" {
		payload["email"] = employee.Email
	}
	if err := s.mqClient.PublishEmployeeEvent(event, payload); err != nil {
		log.Printf("Failed to publish %s event for employee %s: %v", event, employee.ID, err)
	}
}

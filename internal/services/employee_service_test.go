package services_test

import (
	"testing"
	"time"

	"hrms/internal/models"
	"hrms/internal/repositories"
	"hrms/internal/services"

	"github.com/stretchr/testify/assert"
)

func newTestEmployee(email string) *models.Employee {
	return &models.Employee{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         email,
		Position:      "Engineer",
		Salary:        75000,
		DateOfJoining: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Department:    "Engineering",
	}
}

func TestEmployeeService_CreateEmployee(t *testing.T) {
	repo := repositories.NewMockEmployeeRepository()
	// nil MQ client: event publishing must be optional.
	service := services.NewEmployeeService(repo, nil)

	emp := newTestEmployee("jane.doe@example.com")
	err := service.CreateEmployee(emp)
	assert.NoError(t, err)
	assert.NotEmpty(t, emp.ID)

	stored, err := service.GetEmployeeByID(emp.ID)
	assert.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", stored.Email)

	// Creating a second employee with the same email is rejected before
	// persistence.
	dup := newTestEmployee("jane.doe@example.com")
	err = service.CreateEmployee(dup)
	assert.ErrorIs(t, err, services.ErrDuplicateEmail)

	all, err := service.GetAllEmployees()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeService_UpdateEmployee(t *testing.T) {
	repo := repositories.NewMockEmployeeRepository()
	service := services.NewEmployeeService(repo, nil)

	emp := newTestEmployee("update@example.com")
	assert.NoError(t, service.CreateEmployee(emp))
	before, _ := service.GetEmployeeByID(emp.ID)

	// A sparse update touches only the supplied field plus updated_at.
	updated, err := service.UpdateEmployee(emp.ID, map[string]interface{}{
		"salary": float64(50000),
	})
	assert.NoError(t, err)
	assert.Equal(t, float64(50000), updated.Salary)
	assert.Equal(t, before.FirstName, updated.FirstName)
	assert.Equal(t, before.LastName, updated.LastName)
	assert.Equal(t, before.Email, updated.Email)
	assert.Equal(t, before.Position, updated.Position)
	assert.Equal(t, before.Department, updated.Department)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(before.UpdatedAt))

	// Updating a missing employee reports not found.
	_, err = service.UpdateEmployee("2b1f8bdc-0000-0000-0000-000000000000", map[string]interface{}{
		"salary": float64(1),
	})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestEmployeeService_DeleteEmployee(t *testing.T) {
	repo := repositories.NewMockEmployeeRepository()
	service := services.NewEmployeeService(repo, nil)

	emp := newTestEmployee("delete@example.com")
	assert.NoError(t, service.CreateEmployee(emp))

	err := service.DeleteEmployee(emp.ID)
	assert.NoError(t, err)

	// The record is gone for good.
	_, err = service.GetEmployeeByID(emp.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting again reports not found.
	err = service.DeleteEmployee(emp.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"hrms/internal/models"
	"hrms/internal/repositories"
	"hrms/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	service  *services.EmployeeService
	validate *validator.Validate
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the employee routes with the Fiber app. The
// caller is expected to mount these behind the auth middleware.
func (h *EmployeeHandler) RegisterRoutes(router fiber.Router) {
	empRoutes := router.Group("/employees")
	empRoutes.Get("/", h.HandleGetAllEmployees)
	empRoutes.Post("/", h.HandleCreateEmployee)
	empRoutes.Get("/:eid", h.HandleGetEmployeeByID)
	empRoutes.Put("/:eid", h.HandleUpdateEmployee)
	// Delete takes the ID as a query parameter, not a path parameter.
	empRoutes.Delete("/", h.HandleDeleteEmployee)
}

// serializeEmployee emits the outward-facing subset of an employee record.
// The raw model is never returned directly.
func serializeEmployee(emp *models.Employee) fiber.Map {
	return fiber.Map{
		"employee_id":     emp.ID,
		"first_name":      emp.FirstName,
		"last_name":       emp.LastName,
		"email":           emp.Email,
		"position":        emp.Position,
		"salary":          emp.Salary,
		"date_of_joining": emp.DateOfJoining,
		"department":      emp.Department,
		"created_at":      emp.CreatedAt,
		"updated_at":      emp.UpdatedAt,
	}
}

// invalidEmployeeID rejects a syntactically invalid employee identifier
// before any store access.
func invalidEmployeeID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  false,
		"message": "Validation failed",
		"errors":  map[string]string{"eid": "Invalid employee ID format"},
	})
}

// EmployeeRequest represents the request body for employee creation.
// Salary is a pointer so that an explicit 0 is distinguishable from an
// absent field.
type EmployeeRequest struct {
	FirstName     string   `json:"first_name" validate:"required,min=2"`
	LastName      string   `json:"last_name" validate:"required,min=2"`
	Email         string   `json:"email" validate:"required,email"`
	Position      string   `json:"position" validate:"required"`
	Salary        *float64 `json:"salary" validate:"required,gte=0"`
	DateOfJoining string   `json:"date_of_joining" validate:"omitempty,isodate"`
	Department    string   `json:"department" validate:"required"`
}

func (r *EmployeeRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Position = strings.TrimSpace(r.Position)
	r.Department = strings.TrimSpace(r.Department)
}

// HandleGetAllEmployees retrieves all employees.
func (h *EmployeeHandler) HandleGetAllEmployees(c *fiber.Ctx) error {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		log.Printf("Error fetching employees: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Error fetching employees",
			"error":   err.Error(),
		})
	}

	data := make([]fiber.Map, 0, len(employees))
	for i := range employees {
		data = append(data, serializeEmployee(&employees[i]))
	}
	return c.JSON(data)
}

// HandleCreateEmployee creates a new employee record.
func (h *EmployeeHandler) HandleCreateEmployee(c *fiber.Ctx) error {
	var req EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing employee request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	req.normalize()
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	dateOfJoining := time.Now()
	if req.DateOfJoining != "" {
		// Already checked by the isodate rule.
		dateOfJoining, _ = parseDate(req.DateOfJoining)
	}

	employee := models.Employee{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Position:      req.Position,
		Salary:        *req.Salary,
		DateOfJoining: dateOfJoining,
		Department:    req.Department,
	}
	if err := h.service.CreateEmployee(&employee); err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  false,
				"message": "Employee with this email already exists",
			})
		}
		log.Printf("Error creating employee: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Error creating employee",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Employee created successfully.",
		"employee_id": employee.ID,
	})
}

// HandleGetEmployeeByID retrieves a single employee by its ID.
func (h *EmployeeHandler) HandleGetEmployeeByID(c *fiber.Ctx) error {
	eid := c.Params("eid")
	if _, err := uuid.Parse(eid); err != nil {
		return invalidEmployeeID(c)
	}

	employee, err := h.service.GetEmployeeByID(eid)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  false,
				"message": "Employee not found",
			})
		}
		log.Printf("Error fetching employee %s: %v", eid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Error fetching employee",
			"error":   err.Error(),
		})
	}
	return c.JSON(serializeEmployee(employee))
}

// EmployeeUpdateRequest represents the request body for a sparse employee
// update. Nil fields are left untouched; a supplied field must satisfy the
// same rule as on create (omitnil, not omitempty, so a supplied empty
// string is still rejected).
type EmployeeUpdateRequest struct {
	FirstName     *string  `json:"first_name" validate:"omitnil,min=2"`
	LastName      *string  `json:"last_name" validate:"omitnil,min=2"`
	Email         *string  `json:"email" validate:"omitnil,email"`
	Position      *string  `json:"position" validate:"omitnil,min=1"`
	Salary        *float64 `json:"salary" validate:"omitnil,gte=0"`
	DateOfJoining *string  `json:"date_of_joining" validate:"omitnil,isodate"`
	Department    *string  `json:"department" validate:"omitnil,min=1"`
}

func (r *EmployeeUpdateRequest) normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.FirstName)
	trim(r.LastName)
	trim(r.Position)
	trim(r.Department)
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
}

// fields builds the sparse column set from the supplied fields only.
func (r *EmployeeUpdateRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		fields["last_name"] = *r.LastName
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Position != nil {
		fields["position"] = *r.Position
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.DateOfJoining != nil {
		// Already checked by the isodate rule.
		date, _ := parseDate(*r.DateOfJoining)
		fields["date_of_joining"] = date
	}
	if r.Department != nil {
		fields["department"] = *r.Department
	}
	return fields
}

// HandleUpdateEmployee applies a sparse update to an employee record.
func (h *EmployeeHandler) HandleUpdateEmployee(c *fiber.Ctx) error {
	eid := c.Params("eid")
	if _, err := uuid.Parse(eid); err != nil {
		return invalidEmployeeID(c)
	}

	var req EmployeeUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing employee update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	req.normalize()
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  false,
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	employee, err := h.service.UpdateEmployee(eid, req.fields())
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  false,
				"message": "Employee not found",
			})
		}
		log.Printf("Error updating employee %s: %v", eid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Error updating employee",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully.",
		"employee": serializeEmployee(employee),
	})
}

// HandleDeleteEmployee hard-deletes an employee identified by the eid query
// parameter. A successful delete responds with no body.
func (h *EmployeeHandler) HandleDeleteEmployee(c *fiber.Ctx) error {
	eid := c.Query("eid")
	if _, err := uuid.Parse(eid); err != nil {
		return invalidEmployeeID(c)
	}

	if err := h.service.DeleteEmployee(eid); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"status":  false,
				"message": "Employee not found",
			})
		}
		log.Printf("Error deleting employee %s: %v", eid, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  false,
			"message": "Error deleting employee",
			"error":   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

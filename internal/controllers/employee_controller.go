package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_logistics/internal/audit"
	"fleet_logistics/internal/httperr"
	"fleet_logistics/internal/integrity"
	"fleet_logistics/internal/models"
	"fleet_logistics/internal/store"
)

const (
	invalidRole      = "Role must be 'Driver' or 'Mechanic'"
	invalidSeniority = "seniorityLevel must be 'entry', 'mid', or 'senior'"
)

type EmployeeController struct {
	employees store.Repository[models.Employee]
	guard     *integrity.DependentGuard[models.Repair]
	events    audit.Recorder
}

func NewEmployeeController(employees store.Repository[models.Employee], repairs store.Repository[models.Repair], events audit.Recorder) *EmployeeController {
	return &EmployeeController{
		employees: employees,
		guard:     integrity.NewDependentGuard(repairs, "employee_id", "Cannot delete employee with associated repairs", "Error deleting employee"),
		events:    events,
	}
}

func (h *EmployeeController) ListEmployees(c *gin.Context) {
	employees, err := h.employees.Find(c.Request.Context(), nil)
	if err != nil {
		httperr.Write(c, httperr.Store(err, "Error fetching employees"))
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeController) GetEmployee(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid employee ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	employee, err := h.employees.FindOne(c.Request.Context(), store.ByID(id), "Repairs")
	if err != nil {
		httperr.Write(c, lookup(err, "Employee not found", "Error fetching employee by ID"))
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee stores a Driver or a Mechanic depending on role.
func (h *EmployeeController) CreateEmployee(c *gin.Context) {
	var input struct {
		Role           string  `json:"role" binding:"required"`
		Name           string  `json:"name" binding:"required"`
		Surname        string  `json:"surname" binding:"required"`
		SeniorityLevel string  `json:"seniorityLevel" binding:"required"`
		DriverCategory *string `json:"driverCategory"`
	}
	if err := bindCreate(c, &input, "Role, name, surname, and seniorityLevel are required"); err != nil {
		httperr.Write(c, err)
		return
	}

	role := models.Role(input.Role)
	if !role.Valid() {
		httperr.Write(c, httperr.Enum(invalidRole))
		return
	}
	seniority, ok := models.ParseSeniority(input.SeniorityLevel)
	if !ok {
		httperr.Write(c, httperr.Enum(invalidSeniority))
		return
	}

	employee := models.Employee{
		Role:           role,
		Name:           input.Name,
		Surname:        input.Surname,
		SeniorityLevel: seniority,
	}
	setNullableText(&employee.DriverCategory, input.DriverCategory)
	employee.Normalize()

	if err := h.employees.Create(c.Request.Context(), &employee); err != nil {
		httperr.Write(c, httperr.Store(err, "Error creating employee"))
		return
	}

	record(h.events, audit.ActionCreated, "employee", employee.ID)
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee validates role and seniority when they are given. Moving an
// employee to Mechanic drops the driver category.
func (h *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid employee ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	var input struct {
		Role           *string `json:"role"`
		Name           *string `json:"name"`
		Surname        *string `json:"surname"`
		SeniorityLevel *string `json:"seniorityLevel"`
		DriverCategory *string `json:"driverCategory"`
	}
	if err := bindUpdate(c, &input); err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employees.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Employee not found", "Error updating employee"))
		return
	}

	if input.Role != nil && *input.Role != "" {
		role := models.Role(*input.Role)
		if !role.Valid() {
			httperr.Write(c, httperr.Enum(invalidRole))
			return
		}
		employee.Role = role
	}
	if input.SeniorityLevel != nil && *input.SeniorityLevel != "" {
		seniority, ok := models.ParseSeniority(*input.SeniorityLevel)
		if !ok {
			httperr.Write(c, httperr.Enum(invalidSeniority))
			return
		}
		employee.SeniorityLevel = seniority
	}
	setText(&employee.Name, input.Name)
	setText(&employee.Surname, input.Surname)
	setNullableText(&employee.DriverCategory, input.DriverCategory)
	employee.Normalize()

	if err := h.employees.Save(ctx, employee); err != nil {
		httperr.Write(c, httperr.Store(err, "Error updating employee"))
		return
	}

	record(h.events, audit.ActionUpdated, "employee", employee.ID)
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee refuses while any repair still names the employee as mechanic.
func (h *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := parseID(c, "id", "Invalid employee ID")
	if err != nil {
		httperr.Write(c, err)
		return
	}

	ctx := c.Request.Context()
	employee, err := h.employees.FindOne(ctx, store.ByID(id))
	if err != nil {
		httperr.Write(c, lookup(err, "Employee not found", "Error deleting employee"))
		return
	}

	if err := h.guard.Check(ctx, employee.ID); err != nil {
		httperr.Write(c, err)
		return
	}

	if err := h.employees.Remove(ctx, employee); err != nil {
		httperr.Write(c, httperr.Store(err, "Error deleting employee"))
		return
	}

	record(h.events, audit.ActionDeleted, "employee", employee.ID)
	c.Status(http.StatusNoContent)
}

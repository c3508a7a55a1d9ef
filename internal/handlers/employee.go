package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// Create invites a new employee.
// POST /api/v1/employee
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req services.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, employee)
}

// List returns all employees.
// GET /api/v1/employee
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employees)
}

// Get returns one employee by id.
// GET /api/v1/employee/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	employee, err := h.employeeService.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

// Update patches mutable profile fields.
// PUT /api/v1/employee/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req services.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.Update(c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

// Deactivate retires an employee and removes them from all projects.
// POST /api/v1/employee/:id/deactivate
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	employee, err := h.employeeService.Deactivate(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

// UpdatePermissions records the desktop agent's system permission state.
// Employees may only report for their own account.
// POST /api/v1/employee/:id/permissions
func (h *EmployeeHandler) UpdatePermissions(c *gin.Context) {
	id := c.Param("id")
	if !middleware.IsAdmin(c) && middleware.GetEmployeeID(c) != id {
		response.Forbidden(c, "cannot update permissions for another employee")
		return
	}

	var perm models.EmployeeSystemPermission
	if err := c.ShouldBindJSON(&perm); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.employeeService.UpdateSystemPermissions(id, perm)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

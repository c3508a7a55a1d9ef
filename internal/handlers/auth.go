package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/middleware"
	"github.com/worklens/worklens/internal/services"
	"github.com/worklens/worklens/pkg/response"
)

type AuthHandler struct {
	authService     *services.AuthService
	employeeService *services.EmployeeService
}

func NewAuthHandler(authService *services.AuthService, employeeService *services.EmployeeService) *AuthHandler {
	return &AuthHandler{authService: authService, employeeService: employeeService}
}

// Login issues an access token for the desktop agent.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.authService.Login(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Activate consumes an invitation token and sets the account password.
// POST /api/auth/activate
func (h *AuthHandler) Activate(c *gin.Context) {
	var req services.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	employee, err := h.authService.Activate(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

// Me returns the authenticated employee.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	employee, err := h.employeeService.GetByID(middleware.GetEmployeeID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, employee)
}

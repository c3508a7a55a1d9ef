package services

import (
	"time"

	"github.com/worklens/worklens/internal/config"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/utils"
)

// AuthService issues JWT access tokens for the desktop agent login.
type AuthService struct {
	employeeSvc *EmployeeService
	jwtCfg      *config.JWTConfig
}

func NewAuthService(employeeSvc *EmployeeService, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{employeeSvc: employeeSvc, jwtCfg: jwtCfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResult struct {
	Token    string           `json:"token"`
	ExpireAt time.Time        `json:"expire_at"`
	Employee *models.Employee `json:"employee"`
}

type ActivateRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login authenticates an employee and returns a signed access token.
func (s *AuthService) Login(req *LoginRequest) (*LoginResult, error) {
	employee, err := s.employeeSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	expireHours := s.jwtCfg.ExpireHour
	if expireHours <= 0 {
		expireHours = 24
	}
	token, err := utils.GenerateToken(employee.ID, employee.Email, expireHours)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:    token,
		ExpireAt: time.Now().Add(time.Duration(expireHours) * time.Hour),
		Employee: employee,
	}, nil
}

// Activate consumes an invitation token and sets the account password.
func (s *AuthService) Activate(req *ActivateRequest) (*models.Employee, error) {
	return s.employeeSvc.Activate(req.Token, req.Password)
}

package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/utils"
	"github.com/worklens/worklens/pkg/logger"
	"github.com/worklens/worklens/pkg/response"
)

// EmployeeService owns the employee lifecycle: invitation, activation,
// updates and deactivation with its membership cascade.
type EmployeeService struct {
	employees EmployeeRepository
	projects  ProjectRepository
	email     *EmailService
	oplog     *OperationLogService
}

func NewEmployeeService(employees EmployeeRepository, projects ProjectRepository, email *EmailService, oplog *OperationLogService) *EmployeeService {
	return &EmployeeService{
		employees: employees,
		projects:  projects,
		email:     email,
		oplog:     oplog,
	}
}

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateEmployeeRequest patches an employee. Nil fields are left unchanged.
// The project set is never writable here; only the assignment syncer touches it.
type UpdateEmployeeRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
	Title *string `json:"title"`
}

// Create registers a new employee and sends the invitation email carrying the
// activation token. Email delivery failures are logged, not fatal.
func (s *EmployeeService) Create(req *CreateEmployeeRequest) (*models.Employee, error) {
	existing, err := s.employees.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, response.NewValidation("employee with this email already exists")
	}

	now := time.Now()
	employee := &models.Employee{
		ID:                uuid.NewString(),
		Name:              req.Name,
		Email:             req.Email,
		AccountID:         uuid.NewString(),
		OrganizationID:    "default-org",
		Identifier:        req.Email,
		Projects:          models.StringList{},
		SystemPermissions: models.PermissionList{},
		ActivationToken:   uuid.NewString(),
		IsActive:          false,
		CreatedAt:         now,
		Invited:           now,
	}

	if err := s.employees.Insert(employee); err != nil {
		return nil, err
	}

	go func(email, token string) {
		if err := s.email.SendInvitation(email, token); err != nil {
			logger.Warn().Err(err).Str("email", email).Msg("failed to send invitation email")
		}
	}(employee.Email, employee.ActivationToken)

	s.oplog.Info("employee", "create", "employee invited: "+employee.Email,
		map[string]interface{}{"employee_id": employee.ID})
	return employee, nil
}

// GetByID returns an employee or NotFound.
func (s *EmployeeService) GetByID(id string) (*models.Employee, error) {
	employee, err := s.employees.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, response.NewNotFound("employee not found")
	}
	return employee, nil
}

// List returns all employees.
func (s *EmployeeService) List() ([]models.Employee, error) {
	return s.employees.List()
}

// Update patches an employee's profile fields.
func (s *EmployeeService) Update(id string, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if len(updates) == 0 {
		return nil, response.NewValidation("no update data provided")
	}

	if err := s.employees.Update(id, updates); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Deactivate stamps the employee as deactivated, empties their project set
// and pulls them out of every project's membership list. The cascade follows
// the committed employee write and may fail independently; that failure is
// logged as a consistency warning, never swallowed. Deactivating twice is a
// conflict.
func (s *EmployeeService) Deactivate(id string) (*models.Employee, error) {
	employee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee.Deactivated() {
		return nil, response.NewConflict("employee is already deactivated")
	}

	now := time.Now()
	err = s.employees.Update(id, map[string]interface{}{
		"deactivated_at": &now,
		"is_active":      false,
		"projects":       models.StringList{},
	})
	if err != nil {
		return nil, err
	}

	if len(employee.Projects) > 0 {
		if err := s.projects.RemoveEmployee(employee.Projects, id); err != nil {
			logConsistencyWarning(s.oplog, "employee", "deactivate", err,
				map[string]interface{}{"employee_id": id, "projects": employee.Projects})
		}
	}

	s.oplog.Info("employee", "deactivate", "employee deactivated: "+employee.Email,
		map[string]interface{}{"employee_id": id})
	return s.GetByID(id)
}

// Activate sets the employee's password using the invitation token and marks
// the account active. The token is single-use.
func (s *EmployeeService) Activate(token, password string) (*models.Employee, error) {
	employee, err := s.employees.GetByActivationToken(token)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, response.NewValidation("invalid or expired activation token")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	err = s.employees.Update(employee.ID, map[string]interface{}{
		"hashed_password":  hash,
		"is_active":        true,
		"activation_token": "",
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(employee.ID)
}

// Authenticate verifies an email/password pair for login.
func (s *EmployeeService) Authenticate(email, password string) (*models.Employee, error) {
	employee, err := s.employees.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.IsActive || employee.HashedPassword == "" {
		return nil, response.NewUnauthorized("incorrect email or password")
	}
	if !utils.CheckPassword(password, employee.HashedPassword) {
		return nil, response.NewUnauthorized("incorrect email or password")
	}
	return employee, nil
}

// UpdateSystemPermissions upserts the permission record for one computer on
// an employee, keyed by computer name.
func (s *EmployeeService) UpdateSystemPermissions(id string, perm models.EmployeeSystemPermission) (*models.Employee, error) {
	employee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	nowMillis := time.Now().UnixMilli()
	perm.UpdatedAt = nowMillis

	permissions := employee.SystemPermissions
	found := false
	for i := range permissions {
		if permissions[i].Computer == perm.Computer {
			perm.CreatedAt = permissions[i].CreatedAt
			permissions[i] = perm
			found = true
			break
		}
	}
	if !found {
		perm.CreatedAt = nowMillis
		permissions = append(permissions, perm)
	}

	err = s.employees.Update(id, map[string]interface{}{"system_permissions": permissions})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/pkg/response"
)

// PayrollWildcard applies a default rate to any assigned employee without an
// explicit override.
const PayrollWildcard = "*"

// ProjectService owns project CRUD, payroll validation and the membership
// sync that follows every project mutation.
type ProjectService struct {
	projects  ProjectRepository
	employees EmployeeRepository
	syncer    *AssignmentSyncer
	oplog     *OperationLogService
}

func NewProjectService(projects ProjectRepository, employees EmployeeRepository, syncer *AssignmentSyncer, oplog *OperationLogService) *ProjectService {
	return &ProjectService{
		projects:  projects,
		employees: employees,
		syncer:    syncer,
		oplog:     oplog,
	}
}

type CreateProjectRequest struct {
	Name               string            `json:"name" binding:"required"`
	Description        string            `json:"description"`
	Billable           *bool             `json:"billable"`
	Employees          []string          `json:"employees"`
	ScreenshotsEnabled *bool             `json:"screenshotsEnabled"`
	Payroll            models.PayrollMap `json:"payroll"`
}

// UpdateProjectRequest patches a project. Nil fields are left unchanged;
// no field supports explicit clearing.
type UpdateProjectRequest struct {
	Name               *string            `json:"name"`
	Description        *string            `json:"description"`
	Billable           *bool              `json:"billable"`
	Employees          *[]string          `json:"employees"`
	ScreenshotsEnabled *bool              `json:"screenshotsEnabled"`
	Payroll            *models.PayrollMap `json:"payroll"`
	Archived           *bool              `json:"archived"`
}

// validatePayroll rejects any non-wildcard payroll key that is not in the
// final membership set. The caller passes the membership as it will be after
// the triggering update, so a combined membership-and-payroll change
// validates consistently.
func validatePayroll(payroll models.PayrollMap, memberIDs []string) error {
	if payroll == nil {
		return nil
	}
	members := make(map[string]struct{}, len(memberIDs))
	for _, id := range memberIDs {
		members[id] = struct{}{}
	}
	for employeeID := range payroll {
		if employeeID == PayrollWildcard {
			continue
		}
		if _, ok := members[employeeID]; !ok {
			return response.NewValidation(fmt.Sprintf(
				"cannot set payroll for employee '%s' who is not assigned to the project", employeeID))
		}
	}
	return nil
}

// validateActiveEmployees ensures every id references an existing,
// non-deactivated employee.
func (s *ProjectService) validateActiveEmployees(employeeIDs []string) error {
	for _, id := range employeeIDs {
		e, err := s.employees.GetByID(id)
		if err != nil {
			return err
		}
		if e == nil || e.Deactivated() {
			return response.NewValidation(fmt.Sprintf(
				"employee with ID '%s' is either deactivated or does not exist", id))
		}
	}
	return nil
}

// Create inserts a new project and mirrors its initial membership into the
// assigned employees' project sets.
func (s *ProjectService) Create(req *CreateProjectRequest, creatorID string) (*models.Project, error) {
	if err := s.validateActiveEmployees(req.Employees); err != nil {
		return nil, err
	}
	if err := validatePayroll(req.Payroll, req.Employees); err != nil {
		return nil, err
	}

	project := &models.Project{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Description:        req.Description,
		Billable:           true,
		Employees:          models.StringList(req.Employees),
		Payroll:            req.Payroll,
		ScreenshotsEnabled: true,
		CreatorID:          creatorID,
		OrganizationID:     "default-org",
		Statuses:           models.DefaultStatuses(),
		Priorities:         models.DefaultPriorities(),
		CreatedAt:          time.Now(),
	}
	if req.Billable != nil {
		project.Billable = *req.Billable
	}
	if req.ScreenshotsEnabled != nil {
		project.ScreenshotsEnabled = *req.ScreenshotsEnabled
	}
	if project.Payroll == nil {
		project.Payroll = models.PayrollMap{}
	}

	if err := s.projects.Insert(project); err != nil {
		return nil, err
	}

	if len(project.Employees) > 0 {
		if err := s.syncer.Sync(project.ID, project.Employees, nil); err != nil {
			logConsistencyWarning(s.oplog, "project", "create", err,
				map[string]interface{}{"project_id": project.ID, "added": project.Employees})
		}
	}

	s.oplog.Info("project", "create", "project created: "+project.Name,
		map[string]interface{}{"project_id": project.ID})
	return project, nil
}

// GetByID returns a project or NotFound.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	project, err := s.projects.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, response.NewNotFound("project not found")
	}
	return project, nil
}

// List returns all non-archived projects.
func (s *ProjectService) List() ([]models.Project, error) {
	return s.projects.List()
}

// Update patches a project. Payroll is validated against the final membership
// set (the patched one when the same request changes membership), and any
// membership change is mirrored into the affected employees' project sets
// after the project write commits.
func (s *ProjectService) Update(id string, req *UpdateProjectRequest) (*models.Project, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	finalMembership := []string(current.Employees)
	if req.Employees != nil {
		finalMembership = *req.Employees
		if err := s.validateActiveEmployees(finalMembership); err != nil {
			return nil, err
		}
	}
	if req.Payroll != nil {
		if err := validatePayroll(*req.Payroll, finalMembership); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Billable != nil {
		updates["billable"] = *req.Billable
	}
	if req.Employees != nil {
		updates["employees"] = models.StringList(*req.Employees)
	}
	if req.ScreenshotsEnabled != nil {
		updates["screenshots_enabled"] = *req.ScreenshotsEnabled
	}
	if req.Payroll != nil {
		updates["payroll"] = *req.Payroll
	}
	if req.Archived != nil {
		updates["archived"] = *req.Archived
	}
	if len(updates) == 0 {
		return nil, response.NewValidation("no update data provided")
	}

	if err := s.projects.Update(id, updates); err != nil {
		return nil, err
	}

	if req.Employees != nil {
		added, removed := diffMembership(current.Employees, *req.Employees)
		if len(added) > 0 || len(removed) > 0 {
			if err := s.syncer.Sync(id, added, removed); err != nil {
				logConsistencyWarning(s.oplog, "project", "update", err,
					map[string]interface{}{"project_id": id, "added": added, "removed": removed})
			}
		}
	}

	return s.GetByID(id)
}

// Delete removes a project and pulls its id from every previously assigned
// employee's project set.
func (s *ProjectService) Delete(id string) error {
	current, err := s.GetByID(id)
	if err != nil {
		return err
	}

	deleted, err := s.projects.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return response.NewNotFound("project not found")
	}

	if len(current.Employees) > 0 {
		if err := s.syncer.Sync(id, nil, current.Employees); err != nil {
			logConsistencyWarning(s.oplog, "project", "delete", err,
				map[string]interface{}{"project_id": id, "removed": current.Employees})
		}
	}

	s.oplog.Info("project", "delete", "project deleted: "+current.Name,
		map[string]interface{}{"project_id": id})
	return nil
}

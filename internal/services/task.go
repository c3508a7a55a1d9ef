package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/pkg/response"
)

// TaskService owns task CRUD and the parent-project assignment validation.
type TaskService struct {
	tasks    TaskRepository
	projects ProjectRepository
}

func NewTaskService(tasks TaskRepository, projects ProjectRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

type CreateTaskRequest struct {
	Name        string   `json:"name" binding:"required"`
	ProjectID   string   `json:"projectId" binding:"required"`
	Description string   `json:"description"`
	Billable    *bool    `json:"billable"`
	Employees   []string `json:"employees"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
}

// UpdateTaskRequest patches a task. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name        *string   `json:"name"`
	ProjectID   *string   `json:"projectId"`
	Description *string   `json:"description"`
	Billable    *bool     `json:"billable"`
	Employees   *[]string `json:"employees"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
}

// validateTaskAssignment checks that the parent project exists and that every
// task member is also a member of that project.
func (s *TaskService) validateTaskAssignment(projectID string, employeeIDs []string) error {
	project, err := s.projects.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return response.NewNotFound(fmt.Sprintf("project with ID '%s' does not exist", projectID))
	}

	for _, id := range employeeIDs {
		if !project.Employees.Contains(id) {
			return response.NewValidation(fmt.Sprintf(
				"employee with ID '%s' cannot be assigned to the task as they are not assigned to the parent project", id))
		}
	}
	return nil
}

// Create inserts a new task after validating it against its parent project.
func (s *TaskService) Create(req *CreateTaskRequest, creatorID string) (*models.Task, error) {
	if err := s.validateTaskAssignment(req.ProjectID, req.Employees); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:             uuid.NewString(),
		Name:           req.Name,
		ProjectID:      req.ProjectID,
		Description:    req.Description,
		Billable:       true,
		Employees:      models.StringList(req.Employees),
		Status:         "To Do",
		Priority:       "Medium",
		CreatorID:      creatorID,
		OrganizationID: "default-org",
		CreatedAt:      time.Now(),
	}
	if req.Billable != nil {
		task.Billable = *req.Billable
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Priority != "" {
		task.Priority = req.Priority
	}

	if err := s.tasks.Insert(task); err != nil {
		return nil, err
	}
	return task, nil
}

// GetByID returns a task or NotFound.
func (s *TaskService) GetByID(id string) (*models.Task, error) {
	task, err := s.tasks.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, response.NewNotFound("task not found")
	}
	return task, nil
}

// List returns tasks, optionally restricted to one project.
func (s *TaskService) List(projectID string) ([]models.Task, error) {
	return s.tasks.List(projectID)
}

// Update patches a task. Validation runs against the merged final state:
// the patch applied on top of the stored task. Supplying only one of
// projectId/employees therefore cannot leave the task inconsistent with its
// parent project.
func (s *TaskService) Update(id string, req *UpdateTaskRequest) (*models.Task, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	finalProjectID := current.ProjectID
	if req.ProjectID != nil {
		finalProjectID = *req.ProjectID
	}
	finalEmployees := []string(current.Employees)
	if req.Employees != nil {
		finalEmployees = *req.Employees
	}
	if err := s.validateTaskAssignment(finalProjectID, finalEmployees); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ProjectID != nil {
		updates["project_id"] = *req.ProjectID
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
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if len(updates) == 0 {
		return nil, response.NewValidation("no update data provided")
	}

	if err := s.tasks.Update(id, updates); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a task. No cascade: project membership is unaffected.
func (s *TaskService) Delete(id string) error {
	deleted, err := s.tasks.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return response.NewNotFound("task not found")
	}
	return nil
}

package services

import (
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/store"
)

// Repository capability interfaces consumed by the services. The gorm
// implementations live in internal/store; tests substitute in-memory fakes.
// Lookup methods return (nil, nil) when no document matches.

type EmployeeRepository interface {
	GetByID(id string) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	GetByActivationToken(token string) (*models.Employee, error)
	List() ([]models.Employee, error)
	Insert(e *models.Employee) error
	Update(id string, fields map[string]interface{}) error
	AddProject(employeeIDs []string, projectID string) error
	RemoveProject(employeeIDs []string, projectID string) error
}

type ProjectRepository interface {
	GetByID(id string) (*models.Project, error)
	List() ([]models.Project, error)
	Insert(p *models.Project) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) (bool, error)
	RemoveEmployee(projectIDs []string, employeeID string) error
}

type TaskRepository interface {
	GetByID(id string) (*models.Task, error)
	List(projectID string) ([]models.Task, error)
	Insert(t *models.Task) error
	Update(id string, fields map[string]interface{}) error
	Delete(id string) (bool, error)
}

type TimeWindowRepository interface {
	Insert(w *models.TimeWindow) error
	FindInRange(start, end int64, f store.WindowFilter) ([]models.TimeWindow, error)
	FindByEmployeeTask(employeeID, taskID string) ([]models.TimeWindow, error)
	UpdateMany(f store.WindowFilter, fields map[string]interface{}) (int64, error)
}

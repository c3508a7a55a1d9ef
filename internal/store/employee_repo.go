package store

import (
	"errors"

	"github.com/worklens/worklens/internal/models"
	"gorm.io/gorm"
)

// EmployeeRepo is the gorm-backed employee collection. Lookup methods return
// (nil, nil) when no document matches so callers can decide how absence maps
// onto their error taxonomy.
type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo {
	return &EmployeeRepo{db: db}
}

func (r *EmployeeRepo) GetByID(id string) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	var e models.Employee
	if err := r.db.First(&e, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) GetByActivationToken(token string) (*models.Employee, error) {
	var e models.Employee
	err := r.db.First(&e, "activation_token = ? AND is_active = ?", token, false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) List() ([]models.Employee, error) {
	var employees []models.Employee
	if err := r.db.Order("created_at").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepo) Insert(e *models.Employee) error {
	return r.db.Create(e).Error
}

func (r *EmployeeRepo) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Employee{}).Where("id = ?", id).Updates(fields).Error
}

// AddProject adds projectID to each listed employee's project set with set
// semantics. Membership lists live in a JSON column, so each document is
// rewritten individually; the store guarantees per-document atomicity only.
func (r *EmployeeRepo) AddProject(employeeIDs []string, projectID string) error {
	for _, id := range employeeIDs {
		e, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if e == nil || e.Projects.Contains(projectID) {
			continue
		}
		projects := append(e.Projects, projectID)
		if err := r.Update(id, map[string]interface{}{"projects": projects}); err != nil {
			return err
		}
	}
	return nil
}

// RemoveProject removes projectID from each listed employee's project set.
func (r *EmployeeRepo) RemoveProject(employeeIDs []string, projectID string) error {
	for _, id := range employeeIDs {
		e, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if e == nil || !e.Projects.Contains(projectID) {
			continue
		}
		projects := make(models.StringList, 0, len(e.Projects))
		for _, p := range e.Projects {
			if p != projectID {
				projects = append(projects, p)
			}
		}
		if err := r.Update(id, map[string]interface{}{"projects": projects}); err != nil {
			return err
		}
	}
	return nil
}

package store

import (
	"errors"

	"github.com/worklens/worklens/internal/models"
	"gorm.io/gorm"
)

// ProjectRepo is the gorm-backed project collection.
type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) GetByID(id string) (*models.Project, error) {
	var p models.Project
	if err := r.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns all non-archived projects.
func (r *ProjectRepo) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("archived = ?", false).Order("created_at").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepo) Insert(p *models.Project) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepo) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the project and reports whether a row was deleted.
func (r *ProjectRepo) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveEmployee pulls employeeID out of the membership list of every listed
// project. Used by the deactivation cascade.
func (r *ProjectRepo) RemoveEmployee(projectIDs []string, employeeID string) error {
	for _, id := range projectIDs {
		p, err := r.GetByID(id)
		if err != nil {
			return err
		}
		if p == nil || !p.Employees.Contains(employeeID) {
			continue
		}
		members := make(models.StringList, 0, len(p.Employees))
		for _, m := range p.Employees {
			if m != employeeID {
				members = append(members, m)
			}
		}
		if err := r.Update(id, map[string]interface{}{"employees": members}); err != nil {
			return err
		}
	}
	return nil
}

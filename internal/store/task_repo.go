package store

import (
	"errors"

	"github.com/worklens/worklens/internal/models"
	"gorm.io/gorm"
)

// TaskRepo is the gorm-backed task collection.
type TaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) GetByID(id string) (*models.Task, error) {
	var t models.Task
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// List returns tasks, optionally restricted to one project.
func (r *TaskRepo) List(projectID string) ([]models.Task, error) {
	query := r.db.Order("created_at")
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepo) Insert(t *models.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepo) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Task{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes the task and reports whether a row was deleted. Deleting a
// task does not cascade to project membership.
func (r *TaskRepo) Delete(id string) (bool, error) {
	result := r.db.Delete(&models.Task{}, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package store

import (
	"github.com/worklens/worklens/internal/models"
	"gorm.io/gorm"
)

// WindowFilter narrows time-window queries. Empty fields match everything.
type WindowFilter struct {
	EmployeeID string
	ProjectID  string
	TaskID     string
}

// Empty reports whether no filter field is set.
func (f WindowFilter) Empty() bool {
	return f.EmployeeID == "" && f.ProjectID == "" && f.TaskID == ""
}

// TimeWindowRepo is the gorm-backed time-window collection.
type TimeWindowRepo struct {
	db *gorm.DB
}

func NewTimeWindowRepo(db *gorm.DB) *TimeWindowRepo {
	return &TimeWindowRepo{db: db}
}

func (r *TimeWindowRepo) Insert(w *models.TimeWindow) error {
	return r.db.Create(w).Error
}

// FindInRange returns windows whose canonical interval lies within
// [start, end], both ends inclusive, matching the filter.
func (r *TimeWindowRepo) FindInRange(start, end int64, f WindowFilter) ([]models.TimeWindow, error) {
	query := r.db.Where("start_translated >= ? AND end_translated <= ?", start, end)
	query = applyFilter(query, f)

	var windows []models.TimeWindow
	if err := query.Find(&windows).Error; err != nil {
		return nil, err
	}
	return windows, nil
}

// FindByEmployeeTask returns every window of one employee on one task,
// with no time-range restriction.
func (r *TimeWindowRepo) FindByEmployeeTask(employeeID, taskID string) ([]models.TimeWindow, error) {
	var windows []models.TimeWindow
	err := r.db.Where("employee_id = ? AND task_id = ?", employeeID, taskID).Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

// UpdateMany applies one patch to every window matching the filter and
// returns the number of modified documents. Matching order is unspecified.
func (r *TimeWindowRepo) UpdateMany(f WindowFilter, fields map[string]interface{}) (int64, error) {
	query := applyFilter(r.db.Model(&models.TimeWindow{}), f)
	result := query.Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func applyFilter(query *gorm.DB, f WindowFilter) *gorm.DB {
	if f.EmployeeID != "" {
		query = query.Where("employee_id = ?", f.EmployeeID)
	}
	if f.ProjectID != "" {
		query = query.Where("project_id = ?", f.ProjectID)
	}
	if f.TaskID != "" {
		query = query.Where("task_id = ?", f.TaskID)
	}
	return query
}

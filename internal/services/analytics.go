package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/worklens/worklens/internal/store"
)

// AnalyticsService reduces stored time windows into billing reports.
type AnalyticsService struct {
	windows TimeWindowRepository
}

func NewAnalyticsService(windows TimeWindowRepository) *AnalyticsService {
	return &AnalyticsService{windows: windows}
}

// ProjectTime is the aggregated duration and financials of one project over
// the queried range.
type ProjectTime struct {
	ID     string  `json:"id"`   // project id
	Time   int64   `json:"time"` // total duration in milliseconds
	Costs  float64 `json:"costs"`
	Income float64 `json:"income"`
}

// TaskTime is the total time one employee has spent on one task.
type TaskTime struct {
	EmployeeID      string `json:"employeeId"`
	TaskID          string `json:"taskId"`
	TotalTimeMillis int64  `json:"totalTimeMillis"`
}

const millisPerHour = 3_600_000

// ProjectTimeReport groups the windows whose canonical interval lies within
// [start, end] (inclusive both ends) by project and totals duration, income
// (billRate per hour) and costs (payRate per hour). A missing rate counts as
// zero. Monetary totals are rounded to 2 decimals once per project after
// summation, so many short windows do not compound per-window rounding error.
// An inverted range matches no windows and yields an empty report.
func (s *AnalyticsService) ProjectTimeReport(start, end int64, employeeID, projectID, taskID string) ([]ProjectTime, error) {
	windows, err := s.windows.FindInRange(start, end, store.WindowFilter{
		EmployeeID: employeeID,
		ProjectID:  projectID,
		TaskID:     taskID,
	})
	if err != nil {
		return nil, err
	}

	type totals struct {
		time   int64
		costs  float64
		income float64
	}
	byProject := make(map[string]*totals)
	for _, w := range windows {
		t := byProject[w.ProjectID]
		if t == nil {
			t = &totals{}
			byProject[w.ProjectID] = t
		}
		duration := w.Duration()
		hours := float64(duration) / millisPerHour
		t.time += duration
		if w.BillRate != nil {
			t.income += hours * *w.BillRate
		}
		if w.PayRate != nil {
			t.costs += hours * *w.PayRate
		}
	}

	report := make([]ProjectTime, 0, len(byProject))
	for id, t := range byProject {
		report = append(report, ProjectTime{
			ID:     id,
			Time:   t.time,
			Costs:  round2(t.costs),
			Income: round2(t.income),
		})
	}
	sort.Slice(report, func(i, j int) bool { return report[i].ID < report[j].ID })
	return report, nil
}

// EmployeeTaskTotal sums the duration of every window matching both ids,
// with no time-range filter. No matching windows means a zero total, not an
// error.
func (s *AnalyticsService) EmployeeTaskTotal(employeeID, taskID string) (*TaskTime, error) {
	windows, err := s.windows.FindByEmployeeTask(employeeID, taskID)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, w := range windows {
		total += w.Duration()
	}
	return &TaskTime{
		EmployeeID:      employeeID,
		TaskID:          taskID,
		TotalTimeMillis: total,
	}, nil
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

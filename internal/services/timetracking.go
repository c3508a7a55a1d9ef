package services

import (
	"github.com/google/uuid"
	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/store"
	"github.com/worklens/worklens/pkg/response"
)

// millisPerMinute converts the reported timezone offset (minutes) into the
// millisecond unit of the raw timestamps.
const millisPerMinute = 60_000

// TimeTrackingService validates submitted time windows against the current
// assignment graph, translates them onto the canonical timeline and applies
// administrative bulk updates.
type TimeTrackingService struct {
	windows   TimeWindowRepository
	employees EmployeeRepository
	projects  ProjectRepository
	tasks     TaskRepository
}

func NewTimeTrackingService(windows TimeWindowRepository, employees EmployeeRepository, projects ProjectRepository, tasks TaskRepository) *TimeTrackingService {
	return &TimeTrackingService{
		windows:   windows,
		employees: employees,
		projects:  projects,
		tasks:     tasks,
	}
}

type SubmitTimeWindowRequest struct {
	Start                 int64  `json:"start" binding:"required"`
	End                   int64  `json:"end" binding:"required"`
	TimezoneOffsetMinutes int64  `json:"timezoneOffsetMinutes"`
	ProjectID             string `json:"projectId" binding:"required"`
	TaskID                string `json:"taskId" binding:"required"`
	TaskStatus            string `json:"taskStatus"`
	TaskPriority          string `json:"taskPriority"`
	Note                  string `json:"note"`
	Computer              string `json:"computer"`
	User                  string `json:"user"`
	Domain                string `json:"domain"`
	OS                    string `json:"os"`
	OSVersion             string `json:"osVersion"`
	HWID                  string `json:"hwid"`
}

// BulkUpdateTimeWindowsRequest is the administrative patch applied to every
// window matching the filter. Nil fields are left unchanged.
type BulkUpdateTimeWindowsRequest struct {
	TaskStatus       *string  `json:"taskStatus"`
	TaskPriority     *string  `json:"taskPriority"`
	Paid             *bool    `json:"paid"`
	Billable         *bool    `json:"billable"`
	Note             *string  `json:"note"`
	BillRate         *float64 `json:"billRate"`
	OvertimeBillRate *float64 `json:"overtimeBillRate"`
	PayRate          *float64 `json:"payRate"`
	OvertimePayRate  *float64 `json:"overtimePayRate"`
}

// validateSubmission checks a window against the current assignment graph.
// Fail-fast: the first violation wins. Assignments are checked at submission
// time only; later membership changes do not re-validate stored windows.
func (s *TimeTrackingService) validateSubmission(req *SubmitTimeWindowRequest, employeeID string) error {
	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return err
	}
	if employee == nil || employee.Deactivated() {
		return response.NewValidation("employee is not active or does not exist")
	}

	project, err := s.projects.GetByID(req.ProjectID)
	if err != nil {
		return err
	}
	if project == nil || project.Archived {
		return response.NewValidation("project does not exist or is archived")
	}
	if !project.Employees.Contains(employeeID) {
		return response.NewValidation("employee is not assigned to this project")
	}

	task, err := s.tasks.GetByID(req.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return response.NewValidation("task does not exist")
	}
	if !task.Employees.Contains(employeeID) {
		return response.NewValidation("employee is not assigned to this task")
	}

	if req.End < req.Start {
		return response.NewValidation("time window end precedes its start")
	}
	return nil
}

// Submit validates and stores one tracked window for employeeID. Nothing is
// written when validation fails. Billing rates are never taken from the
// submitting employee; admins set them later through BulkUpdate.
func (s *TimeTrackingService) Submit(req *SubmitTimeWindowRequest, employeeID string) (*models.TimeWindow, error) {
	if err := s.validateSubmission(req, employeeID); err != nil {
		return nil, err
	}

	offset := req.TimezoneOffsetMinutes * millisPerMinute
	window := &models.TimeWindow{
		ID:                    uuid.NewString(),
		EmployeeID:            employeeID,
		ProjectID:             req.ProjectID,
		TaskID:                req.TaskID,
		ShiftID:               uuid.NewString(),
		OrganizationID:        "default-org",
		Start:                 req.Start,
		End:                   req.End,
		TimezoneOffsetMinutes: req.TimezoneOffsetMinutes,
		StartTranslated:       req.Start - offset,
		EndTranslated:         req.End - offset,
		Type:                  "tracked",
		TaskStatus:            req.TaskStatus,
		TaskPriority:          req.TaskPriority,
		Note:                  req.Note,
		Computer:              req.Computer,
		User:                  req.User,
		Domain:                req.Domain,
		OS:                    req.OS,
		OSVersion:             req.OSVersion,
		HWID:                  req.HWID,
		Billable:              true,
	}

	if err := s.windows.Insert(window); err != nil {
		return nil, err
	}
	return window, nil
}

// ListInRange returns windows whose canonical interval lies within
// [start, end], optionally restricted to one employee.
func (s *TimeTrackingService) ListInRange(start, end int64, employeeID string) ([]models.TimeWindow, error) {
	return s.windows.FindInRange(start, end, store.WindowFilter{EmployeeID: employeeID})
}

// BulkUpdate applies the patch to every window matching the employee and/or
// project filter and returns the modified count. At least one filter is
// required; a filterless call is rejected before the store is touched.
func (s *TimeTrackingService) BulkUpdate(req *BulkUpdateTimeWindowsRequest, employeeID, projectID string) (int64, error) {
	if employeeID == "" && projectID == "" {
		return 0, response.NewValidation("either employeeId or projectId must be provided")
	}

	updates := make(map[string]interface{})
	if req.TaskStatus != nil {
		updates["task_status"] = *req.TaskStatus
	}
	if req.TaskPriority != nil {
		updates["task_priority"] = *req.TaskPriority
	}
	if req.Paid != nil {
		updates["paid"] = *req.Paid
	}
	if req.Billable != nil {
		updates["billable"] = *req.Billable
	}
	if req.Note != nil {
		updates["note"] = *req.Note
	}
	if req.BillRate != nil {
		updates["bill_rate"] = *req.BillRate
	}
	if req.OvertimeBillRate != nil {
		updates["overtime_bill_rate"] = *req.OvertimeBillRate
	}
	if req.PayRate != nil {
		updates["pay_rate"] = *req.PayRate
	}
	if req.OvertimePayRate != nil {
		updates["overtime_pay_rate"] = *req.OvertimePayRate
	}
	if len(updates) == 0 {
		return 0, response.NewValidation("no update data provided")
	}

	return s.windows.UpdateMany(store.WindowFilter{EmployeeID: employeeID, ProjectID: projectID}, updates)
}

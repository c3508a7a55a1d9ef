package services

import (
	"errors"
	"time"

	"github.com/worklens/worklens/internal/models"
	"github.com/worklens/worklens/internal/store"
)

// In-memory repository fakes. They mirror the store semantics relevant to the
// services: lookups return (nil, nil) when nothing matches, updates apply
// column-name keyed patches, membership helpers use set semantics.

type fakeEmployeeRepo struct {
	employees map[string]*models.Employee
	failOps   map[string]error // op name -> error to inject
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[string]*models.Employee),
		failOps:   make(map[string]error),
	}
}

func (f *fakeEmployeeRepo) add(e *models.Employee) {
	copied := *e
	f.employees[e.ID] = &copied
}

func (f *fakeEmployeeRepo) GetByID(id string) (*models.Employee, error) {
	if err := f.failOps["GetByID"]; err != nil {
		return nil, err
	}
	e, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *fakeEmployeeRepo) GetByEmail(email string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByActivationToken(token string) (*models.Employee, error) {
	for _, e := range f.employees {
		if e.ActivationToken == token && !e.IsActive {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeRepo) List() ([]models.Employee, error) {
	out := make([]models.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Insert(e *models.Employee) error {
	if err := f.failOps["Insert"]; err != nil {
		return err
	}
	f.add(e)
	return nil
}

func (f *fakeEmployeeRepo) Update(id string, fields map[string]interface{}) error {
	if err := f.failOps["Update"]; err != nil {
		return err
	}
	e, ok := f.employees[id]
	if !ok {
		return errors.New("employee not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			e.Name = value.(string)
		case "email":
			e.Email = value.(string)
		case "title":
			e.Title = value.(string)
		case "is_active":
			e.IsActive = value.(bool)
		case "deactivated_at":
			e.DeactivatedAt = value.(*time.Time)
		case "projects":
			e.Projects = value.(models.StringList)
		case "hashed_password":
			e.HashedPassword = value.(string)
		case "activation_token":
			e.ActivationToken = value.(string)
		case "system_permissions":
			e.SystemPermissions = value.(models.PermissionList)
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) AddProject(employeeIDs []string, projectID string) error {
	if err := f.failOps["AddProject"]; err != nil {
		return err
	}
	for _, id := range employeeIDs {
		e, ok := f.employees[id]
		if !ok {
			continue
		}
		if !e.Projects.Contains(projectID) {
			e.Projects = append(e.Projects, projectID)
		}
	}
	return nil
}

func (f *fakeEmployeeRepo) RemoveProject(employeeIDs []string, projectID string) error {
	if err := f.failOps["RemoveProject"]; err != nil {
		return err
	}
	for _, id := range employeeIDs {
		e, ok := f.employees[id]
		if !ok {
			continue
		}
		kept := e.Projects[:0]
		for _, p := range e.Projects {
			if p != projectID {
				kept = append(kept, p)
			}
		}
		e.Projects = kept
	}
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*models.Project
	failOps  map[string]error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{
		projects: make(map[string]*models.Project),
		failOps:  make(map[string]error),
	}
}

func (f *fakeProjectRepo) add(p *models.Project) {
	copied := *p
	f.projects[p.ID] = &copied
}

func (f *fakeProjectRepo) GetByID(id string) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakeProjectRepo) List() ([]models.Project, error) {
	out := make([]models.Project, 0, len(f.projects))
	for _, p := range f.projects {
		if !p.Archived {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Insert(p *models.Project) error {
	if err := f.failOps["Insert"]; err != nil {
		return err
	}
	f.add(p)
	return nil
}

func (f *fakeProjectRepo) Update(id string, fields map[string]interface{}) error {
	p, ok := f.projects[id]
	if !ok {
		return errors.New("project not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			p.Name = value.(string)
		case "description":
			p.Description = value.(string)
		case "billable":
			p.Billable = value.(bool)
		case "employees":
			p.Employees = value.(models.StringList)
		case "screenshots_enabled":
			p.ScreenshotsEnabled = value.(bool)
		case "payroll":
			p.Payroll = value.(models.PayrollMap)
		case "archived":
			p.Archived = value.(bool)
		}
	}
	return nil
}

func (f *fakeProjectRepo) Delete(id string) (bool, error) {
	if _, ok := f.projects[id]; !ok {
		return false, nil
	}
	delete(f.projects, id)
	return true, nil
}

func (f *fakeProjectRepo) RemoveEmployee(projectIDs []string, employeeID string) error {
	if err := f.failOps["RemoveEmployee"]; err != nil {
		return err
	}
	for _, id := range projectIDs {
		p, ok := f.projects[id]
		if !ok {
			continue
		}
		kept := p.Employees[:0]
		for _, e := range p.Employees {
			if e != employeeID {
				kept = append(kept, e)
			}
		}
		p.Employees = kept
	}
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*models.Task)}
}

func (f *fakeTaskRepo) add(t *models.Task) {
	copied := *t
	f.tasks[t.ID] = &copied
}

func (f *fakeTaskRepo) GetByID(id string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTaskRepo) List(projectID string) ([]models.Task, error) {
	out := make([]models.Task, 0, len(f.tasks))
	for _, t := range f.tasks {
		if projectID == "" || t.ProjectID == projectID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Insert(t *models.Task) error {
	f.add(t)
	return nil
}

func (f *fakeTaskRepo) Update(id string, fields map[string]interface{}) error {
	t, ok := f.tasks[id]
	if !ok {
		return errors.New("task not found")
	}
	for key, value := range fields {
		switch key {
		case "name":
			t.Name = value.(string)
		case "project_id":
			t.ProjectID = value.(string)
		case "description":
			t.Description = value.(string)
		case "billable":
			t.Billable = value.(bool)
		case "employees":
			t.Employees = value.(models.StringList)
		case "status":
			t.Status = value.(string)
		case "priority":
			t.Priority = value.(string)
		}
	}
	return nil
}

func (f *fakeTaskRepo) Delete(id string) (bool, error) {
	if _, ok := f.tasks[id]; !ok {
		return false, nil
	}
	delete(f.tasks, id)
	return true, nil
}

type fakeWindowRepo struct {
	windows []models.TimeWindow
}

func newFakeWindowRepo() *fakeWindowRepo {
	return &fakeWindowRepo{}
}

func (f *fakeWindowRepo) Insert(w *models.TimeWindow) error {
	f.windows = append(f.windows, *w)
	return nil
}

func matchesFilter(w *models.TimeWindow, filter store.WindowFilter) bool {
	if filter.EmployeeID != "" && w.EmployeeID != filter.EmployeeID {
		return false
	}
	if filter.ProjectID != "" && w.ProjectID != filter.ProjectID {
		return false
	}
	if filter.TaskID != "" && w.TaskID != filter.TaskID {
		return false
	}
	return true
}

func (f *fakeWindowRepo) FindInRange(start, end int64, filter store.WindowFilter) ([]models.TimeWindow, error) {
	var out []models.TimeWindow
	for _, w := range f.windows {
		if w.StartTranslated >= start && w.EndTranslated <= end && matchesFilter(&w, filter) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindowRepo) FindByEmployeeTask(employeeID, taskID string) ([]models.TimeWindow, error) {
	var out []models.TimeWindow
	for _, w := range f.windows {
		if w.EmployeeID == employeeID && w.TaskID == taskID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindowRepo) UpdateMany(filter store.WindowFilter, fields map[string]interface{}) (int64, error) {
	var count int64
	for i := range f.windows {
		w := &f.windows[i]
		if !matchesFilter(w, filter) {
			continue
		}
		count++
		for key, value := range fields {
			switch key {
			case "task_status":
				w.TaskStatus = value.(string)
			case "task_priority":
				w.TaskPriority = value.(string)
			case "paid":
				w.Paid = value.(bool)
			case "billable":
				w.Billable = value.(bool)
			case "note":
				w.Note = value.(string)
			case "bill_rate":
				rate := value.(float64)
				w.BillRate = &rate
			case "overtime_bill_rate":
				rate := value.(float64)
				w.OvertimeBillRate = &rate
			case "pay_rate":
				rate := value.(float64)
				w.PayRate = &rate
			case "overtime_pay_rate":
				rate := value.(float64)
				w.OvertimePayRate = &rate
			}
		}
	}
	return count, nil
}

// helpers shared by the service tests

var errAddProject = errors.New("store unavailable")

func activeEmployee(id string) *models.Employee {
	return &models.Employee{
		ID:       id,
		Name:     "Employee " + id,
		Email:    id + "@example.com",
		IsActive: true,
	}
}

func deactivatedEmployee(id string) *models.Employee {
	e := activeEmployee(id)
	now := time.Now()
	e.DeactivatedAt = &now
	e.IsActive = false
	return e
}

package models

// TimeWindow is one chunk of tracked time submitted by the desktop agent.
// Start/End are client-local unix milliseconds; StartTranslated/EndTranslated
// are the canonical instants (raw minus the reported timezone offset) used for
// every range query and aggregation. Billing rates are set later by
// administrative bulk updates, never by the submitting employee. A window is
// validated against assignments at creation time only.
type TimeWindow struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID     string `gorm:"size:36;index;not null" json:"employeeId"`
	ProjectID      string `gorm:"size:36;index;not null" json:"projectId"`
	TaskID         string `gorm:"size:36;index;not null" json:"taskId"`
	ShiftID        string `gorm:"size:36" json:"shiftId"`
	OrganizationID string `gorm:"size:100;default:default-org" json:"organizationId"`

	Start                 int64 `gorm:"not null" json:"start"`
	End                   int64 `gorm:"not null" json:"end"`
	TimezoneOffsetMinutes int64 `json:"timezoneOffsetMinutes"`
	StartTranslated       int64 `gorm:"index" json:"startTranslated"`
	EndTranslated         int64 `gorm:"index" json:"endTranslated"`

	Type         string `gorm:"size:20;default:tracked" json:"type"` // tracked, manual
	TaskStatus   string `gorm:"size:100" json:"taskStatus,omitempty"`
	TaskPriority string `gorm:"size:100" json:"taskPriority,omitempty"`
	Note         string `gorm:"size:2000" json:"note,omitempty"`

	// Device info reported alongside the window.
	Computer  string `gorm:"size:200" json:"computer,omitempty"`
	User      string `gorm:"size:200" json:"user,omitempty"`
	Domain    string `gorm:"size:200" json:"domain,omitempty"`
	OS        string `gorm:"size:100" json:"os,omitempty"`
	OSVersion string `gorm:"size:100" json:"osVersion,omitempty"`
	HWID      string `gorm:"size:200" json:"hwid,omitempty"`

	Billable bool `gorm:"default:true" json:"billable"`
	Overtime bool `gorm:"default:false" json:"overtime"`
	Paid     bool `gorm:"default:false" json:"paid"`

	BillRate         *float64 `json:"billRate,omitempty"`
	OvertimeBillRate *float64 `json:"overtimeBillRate,omitempty"`
	PayRate          *float64 `json:"payRate,omitempty"`
	OvertimePayRate  *float64 `json:"overtimePayRate,omitempty"`
}

func (TimeWindow) TableName() string { return "time_windows" }

// Duration returns the tracked span in milliseconds. Raw and canonical
// durations are equal since both ends shift by the same offset.
func (w *TimeWindow) Duration() int64 {
	return w.End - w.Start
}

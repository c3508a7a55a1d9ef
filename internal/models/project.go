package models

import (
	"time"
)

// Project groups tasks and carries the billing configuration for its members.
// Every non-wildcard key in Payroll must appear in Employees; archived
// projects accept no new time windows.
type Project struct {
	ID                 string     `gorm:"primaryKey;size:36" json:"id"`
	Name               string     `gorm:"size:200;not null" json:"name"`
	Description        string     `gorm:"size:1000" json:"description,omitempty"`
	Billable           bool       `gorm:"default:true" json:"billable"`
	Employees          StringList `gorm:"type:text" json:"employees"`
	Payroll            PayrollMap `gorm:"type:text" json:"payroll"`
	ScreenshotsEnabled bool       `gorm:"default:true" json:"screenshotsEnabled"`
	Archived           bool       `gorm:"default:false" json:"archived"`
	CreatorID          string     `gorm:"size:36" json:"creatorId"`
	OrganizationID     string     `gorm:"size:100;default:default-org" json:"organizationId"`
	Statuses           StringList `gorm:"type:text" json:"statuses"`
	Priorities         StringList `gorm:"type:text" json:"priorities"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func (Project) TableName() string { return "projects" }

// DefaultStatuses and DefaultPriorities seed new projects the same way the
// tracker UI expects them.
func DefaultStatuses() StringList   { return StringList{"To Do", "In Progress", "Done"} }
func DefaultPriorities() StringList { return StringList{"Low", "Medium", "High"} }

package models

import (
	"time"
)

// Task belongs to exactly one project. Its membership list must stay a subset
// of the parent project's membership; the parent must exist at creation and at
// every membership update.
type Task struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Name           string     `gorm:"size:200;not null" json:"name"`
	ProjectID      string     `gorm:"size:36;index;not null" json:"projectId"`
	Description    string     `gorm:"size:1000" json:"description,omitempty"`
	Billable       bool       `gorm:"default:true" json:"billable"`
	Employees      StringList `gorm:"type:text" json:"employees"`
	Status         string     `gorm:"size:100;default:To Do" json:"status"`
	Priority       string     `gorm:"size:100;default:Medium" json:"priority"`
	CreatorID      string     `gorm:"size:36" json:"creatorId"`
	OrganizationID string     `gorm:"size:100;default:default-org" json:"organizationId"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (Task) TableName() string { return "tasks" }

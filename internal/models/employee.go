package models

import (
	"time"
)

// Employee represents a tracked employee account.
// Projects always mirrors the set of projects whose membership list contains
// this employee's id; the two sides are linked only through the assignment
// synchronizer, never by direct field edits.
type Employee struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	Name              string         `gorm:"size:200;not null" json:"name"`
	Email             string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	AccountID         string         `gorm:"size:36" json:"accountId"`
	OrganizationID    string         `gorm:"size:100;default:default-org" json:"organizationId"`
	Identifier        string         `gorm:"size:255" json:"identifier"`
	Title             string         `gorm:"size:200" json:"title,omitempty"`
	Projects          StringList     `gorm:"type:text" json:"projects"`
	SystemPermissions PermissionList `gorm:"type:text" json:"systemPermissions"`
	HashedPassword    string         `gorm:"size:255" json:"-"`
	ActivationToken   string         `gorm:"size:64;index" json:"-"`
	IsActive          bool           `gorm:"default:false" json:"is_active"`
	CreatedAt         time.Time      `json:"createdAt"`
	Invited           time.Time      `json:"invited"`
	DeactivatedAt     *time.Time     `json:"deactivated_at,omitempty"`
}

func (Employee) TableName() string { return "employees" }

// Deactivated reports whether the employee has been deactivated.
func (e *Employee) Deactivated() bool {
	return e.DeactivatedAt != nil
}

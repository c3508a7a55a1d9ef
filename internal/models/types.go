package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// The entity graph keeps document-shaped fields (id sets, payroll overrides,
// per-device permission records) as JSON text columns so every driver the
// store supports can hold them.

// StringList is a JSON-encoded list of ids.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Contains reports whether id is in the list.
func (l StringList) Contains(id string) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// PayrollRate is a per-employee billing override on a project.
type PayrollRate struct {
	BillRate         float64  `json:"billRate"`
	OvertimeBillRate *float64 `json:"overtimeBillRate,omitempty"`
}

// PayrollMap maps an employee id, or the wildcard "*", to its billing rates.
type PayrollMap map[string]PayrollRate

func (m PayrollMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *PayrollMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// SystemPermissions mirrors the per-device permission states reported by the
// desktop agent.
type SystemPermissions struct {
	Accessibility                 string `json:"accessibility"`
	ScreenAndSystemAudioRecording string `json:"screenAndSystemAudioRecording"`
}

// EmployeeSystemPermission is one device's permission record.
type EmployeeSystemPermission struct {
	Computer    string            `json:"computer"`
	Permissions SystemPermissions `json:"permissions"`
	CreatedAt   int64             `json:"createdAt"` // unix millis
	UpdatedAt   int64             `json:"updatedAt"`
}

// PermissionList is the set of per-device permission records of an employee.
type PermissionList []EmployeeSystemPermission

func (l PermissionList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *PermissionList) Scan(value interface{}) error {
	return scanJSON(value, l)
}

func scanJSON(value interface{}, dst interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", value)
	}
}

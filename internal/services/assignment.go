package services

import (
	"github.com/worklens/worklens/pkg/logger"
)

// AssignmentSyncer maintains the employee side of the employee-project
// membership link. Project documents own the membership list; the syncer
// mirrors it into each employee's project set after the project write commits.
//
// The mirror write is not atomic with the triggering project mutation: the
// store offers per-document atomicity only, so a crash between the two leaves
// the graph transiently inconsistent. Callers log such failures as consistency
// warnings instead of rolling back.
type AssignmentSyncer struct {
	employees EmployeeRepository
}

func NewAssignmentSyncer(employees EmployeeRepository) *AssignmentSyncer {
	return &AssignmentSyncer{employees: employees}
}

// Sync adds projectID to the project set of every employee in added and
// removes it for every employee in removed. Add uses set semantics, so
// repeated syncs do not duplicate entries. Empty slices are a no-op. The two
// sets are disjoint by construction (callers compute them as a set
// difference), so ordering between adds and removes does not matter.
func (s *AssignmentSyncer) Sync(projectID string, added, removed []string) error {
	if len(added) > 0 {
		if err := s.employees.AddProject(added, projectID); err != nil {
			return err
		}
	}
	if len(removed) > 0 {
		if err := s.employees.RemoveProject(removed, projectID); err != nil {
			return err
		}
	}
	return nil
}

// logConsistencyWarning records a failed membership cascade in the process log
// and the operation log. The triggering entity write has already committed;
// the warning must never be swallowed.
func logConsistencyWarning(oplog *OperationLogService, module, action string, err error, extra interface{}) {
	logger.Warn().Err(err).Str("module", module).Str("action", action).
		Interface("detail", extra).Msg("membership cascade failed; graph may be inconsistent")
	oplog.Warning(module, action, "membership cascade failed: "+err.Error(), extra)
}

// diffMembership returns the ids present in next but not in prev, and the ids
// present in prev but not in next. Both results are duplicate-free.
func diffMembership(prev, next []string) (added, removed []string) {
	prevSet := make(map[string]struct{}, len(prev))
	for _, id := range prev {
		prevSet[id] = struct{}{}
	}
	nextSet := make(map[string]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
	}

	for id := range nextSet {
		if _, ok := prevSet[id]; !ok {
			added = append(added, id)
		}
	}
	for id := range prevSet {
		if _, ok := nextSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}

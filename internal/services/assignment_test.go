package services

import (
	"sort"
	"testing"

	"github.com/worklens/worklens/internal/models"
)

func TestAssignmentSyncer_AddAndRemove(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.add(activeEmployee("e1"))
	repo.add(activeEmployee("e2"))
	e3 := activeEmployee("e3")
	e3.Projects = models.StringList{"p1"}
	repo.add(e3)

	syncer := NewAssignmentSyncer(repo)
	if err := syncer.Sync("p1", []string{"e1", "e2"}, []string{"e3"}); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}

	for _, id := range []string{"e1", "e2"} {
		e, _ := repo.GetByID(id)
		if !e.Projects.Contains("p1") {
			t.Errorf("employee %s should be assigned to p1, got %v", id, e.Projects)
		}
	}
	removed, _ := repo.GetByID("e3")
	if removed.Projects.Contains("p1") {
		t.Errorf("employee e3 should no longer be assigned to p1, got %v", removed.Projects)
	}
}

func TestAssignmentSyncer_AddIsIdempotent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	e := activeEmployee("e1")
	e.Projects = models.StringList{"p1"}
	repo.add(e)

	syncer := NewAssignmentSyncer(repo)
	if err := syncer.Sync("p1", []string{"e1"}, nil); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}

	got, _ := repo.GetByID("e1")
	if len(got.Projects) != 1 {
		t.Errorf("project set should stay deduplicated, got %v", got.Projects)
	}
}

func TestAssignmentSyncer_EmptySetsAreNoOp(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.failOps["AddProject"] = errAddProject
	repo.failOps["RemoveProject"] = errAddProject

	syncer := NewAssignmentSyncer(repo)
	if err := syncer.Sync("p1", nil, nil); err != nil {
		t.Errorf("empty sync should not touch the store, got %v", err)
	}
}

func TestDiffMembership(t *testing.T) {
	tests := []struct {
		name        string
		prev, next  []string
		wantAdded   []string
		wantRemoved []string
	}{
		{"no change", []string{"a", "b"}, []string{"b", "a"}, nil, nil},
		{"pure add", []string{"a"}, []string{"a", "b"}, []string{"b"}, nil},
		{"pure remove", []string{"a", "b"}, []string{"a"}, nil, []string{"b"}},
		{"replace", []string{"a"}, []string{"b"}, []string{"b"}, []string{"a"}},
		{"from empty", nil, []string{"a", "b"}, []string{"a", "b"}, nil},
		{"to empty", []string{"a", "b"}, nil, nil, []string{"a", "b"}},
		{"duplicates collapse", []string{"a", "a"}, []string{"b", "b"}, []string{"b"}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := diffMembership(tt.prev, tt.next)
			sort.Strings(added)
			sort.Strings(removed)
			if !equalStrings(added, tt.wantAdded) {
				t.Errorf("added = %v, expected %v", added, tt.wantAdded)
			}
			if !equalStrings(removed, tt.wantRemoved) {
				t.Errorf("removed = %v, expected %v", removed, tt.wantRemoved)
			}
		})
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

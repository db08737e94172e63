package reconcile

import (
	"testing"

	"shortage-tracker/feature/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestOtherDepartments(t *testing.T) {
	snapshot := []models.Record{
		rec("1", "S1", "P1", "N1", 2, models.DepartmentAutomated),
		rec("2", "S1", "P1", "N1", 3, models.DepartmentPanels),
		rec("3", "S1", "P1", "N1", 1, models.DepartmentPanels),
		rec("4", "S2", "P2", "N2", 1, models.DepartmentFinal),
	}

	others := OtherDepartments(snapshot[0], snapshot)
	assert.Equal(t, []string{models.DepartmentPanels}, others)

	// The record confined to one department has no others.
	assert.Empty(t, OtherDepartments(snapshot[3], snapshot))
}

func TestOtherDepartments_ExcludesOwnDepartment(t *testing.T) {
	snapshot := []models.Record{
		rec("1", "S1", "P1", "N1", 1, models.DepartmentPanels),
		rec("2", "S1", "P1", "N1", 1, models.DepartmentPanels),
	}

	// A same-department copy never counts as "elsewhere".
	assert.Empty(t, OtherDepartments(snapshot[0], snapshot))
}

func TestResolveScope(t *testing.T) {
	r := rec("42", " s1", "p1 ", "n1", 1, models.DepartmentAutomated)

	tests := []struct {
		name string
		mode ScopeMode
		want DeleteScope
	}{
		{"single", ScopeSingle, DeleteScope{Mode: ScopeSingle, ID: "42"}},
		{"local", ScopeLocal, DeleteScope{Mode: ScopeLocal, ID: "42"}},
		{"global", ScopeGlobal, DeleteScope{Mode: ScopeGlobal, MSN: "S1", PNL: "P1", PartNumber: "N1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveScope(r, tt.mode))
		})
	}
}

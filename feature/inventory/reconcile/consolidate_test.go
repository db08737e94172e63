package reconcile

import (
	"testing"

	"shortage-tracker/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id, msn, pnl, pn string, qty int, dept string) models.Record {
	return models.Record{
		ID:         id,
		MSN:        msn,
		PNL:        pnl,
		PartNumber: pn,
		Quantity:   qty,
		Department: dept,
	}
}

func TestConsolidate_SingleDepartmentExcluded(t *testing.T) {
	// Two copies of the same key in the same department are not
	// cross-department duplicates.
	records := []models.Record{
		rec("1", "S1", "P1", "N1", 2, models.DepartmentPanels),
		rec("2", "S1", "P1", "N1", 3, models.DepartmentPanels),
	}

	assert.Empty(t, Consolidate(records))
}

func TestConsolidate_TwoDepartments(t *testing.T) {
	records := []models.Record{
		rec("1", "S1", "P1", "N1", 2, models.DepartmentAutomated),
		rec("2", "S1", "P1", "N1", 3, models.DepartmentPanels),
	}

	groups := Consolidate(records)
	require.Len(t, groups, 1)

	g := groups[0]
	assert.Equal(t, "S1", g.MSN)
	assert.Equal(t, "P1", g.PNL)
	assert.Equal(t, "N1", g.PartNumber)
	assert.Equal(t, []string{models.DepartmentAutomated, models.DepartmentPanels}, g.Departments)
	assert.Equal(t, 5, g.TotalQuantity)
}

func TestConsolidate_CaseInsensitiveGrouping(t *testing.T) {
	records := []models.Record{
		rec("1", " s1 ", "p1", "n1", 1, models.DepartmentAutomated),
		rec("2", "S1", "P1", "N1", 1, models.DepartmentFinal),
	}

	groups := Consolidate(records)
	require.Len(t, groups, 1)
	assert.Equal(t, 2, len(groups[0].Departments))
}

func TestConsolidate_DepartmentOrderFirstSeen(t *testing.T) {
	records := []models.Record{
		rec("1", "S1", "P1", "N1", 1, models.DepartmentFinal),
		rec("2", "S1", "P1", "N1", 1, models.DepartmentAutomated),
		rec("3", "S1", "P1", "N1", 4, models.DepartmentFinal),
	}

	groups := Consolidate(records)
	require.Len(t, groups, 1)
	assert.Equal(t, []string{models.DepartmentFinal, models.DepartmentAutomated}, groups[0].Departments)
	assert.Equal(t, 6, groups[0].TotalQuantity)
}

func TestConsolidate_MixedSnapshot(t *testing.T) {
	records := []models.Record{
		rec("1", "S1", "P1", "N1", 2, models.DepartmentAutomated),
		rec("2", "S1", "P1", "N1", 3, models.DepartmentPanels),
		rec("3", "S2", "P2", "N2", 7, models.DepartmentPanels),
	}

	groups := Consolidate(records)
	require.Len(t, groups, 1)
	assert.Equal(t, "S1", groups[0].MSN)
}

func TestConsolidate_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Consolidate(nil))
}

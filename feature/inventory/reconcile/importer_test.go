package reconcile

import (
	"testing"

	"shortage-tracker/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func importRow(msn, pnl, pn string) Row {
	return Row{"MSN": msn, "PNL": pnl, "PART NUMBER": pn}
}

func TestReconcileImport_SkipPolicyDropsExistingKeys(t *testing.T) {
	existing := []models.Record{
		rec("id-1", "A", "1", "X", 1, models.DepartmentPanels),
	}

	_, err := ReconcileImport(
		[]Row{importRow("A", "1", "X")},
		existing,
		models.DepartmentPanels,
		ImportOptions{DuplicatePolicy: PolicySkip},
	)
	assert.ErrorIs(t, err, ErrNothingToImport)
}

func TestReconcileImport_ReplacePolicySupersedesExisting(t *testing.T) {
	existing := []models.Record{
		rec("id-1", "A", "1", "X", 1, models.DepartmentPanels),
		rec("id-2", "B", "2", "Y", 1, models.DepartmentPanels),
	}

	plan, err := ReconcileImport(
		[]Row{importRow("A", "1", "X")},
		existing,
		models.DepartmentPanels,
		ImportOptions{DuplicatePolicy: PolicyReplace},
	)
	require.NoError(t, err)

	require.Len(t, plan.Insert, 1)
	assert.Equal(t, []string{"id-1"}, plan.DeleteIDs)
	assert.False(t, plan.DeleteDepartment)
}

func TestReconcileImport_CleanDepartmentTakesPrecedence(t *testing.T) {
	existing := []models.Record{
		rec("id-1", "A", "1", "X", 1, models.DepartmentPanels),
	}

	plan, err := ReconcileImport(
		[]Row{importRow("A", "1", "X")},
		existing,
		models.DepartmentPanels,
		ImportOptions{DuplicatePolicy: PolicyReplace, CleanDepartment: true},
	)
	require.NoError(t, err)

	assert.True(t, plan.DeleteDepartment)
	assert.Empty(t, plan.DeleteIDs)
	// With a wipe pending, the duplicate row is accepted, not skipped.
	assert.Len(t, plan.Insert, 1)
}

func TestReconcileImport_CleanDepartmentWithEmptyBatch(t *testing.T) {
	plan, err := ReconcileImport(nil, nil, models.DepartmentFinal, ImportOptions{
		DuplicatePolicy: PolicySkip,
		CleanDepartment: true,
	})
	require.NoError(t, err)

	// The caller must still wipe the department even with nothing to insert.
	assert.True(t, plan.DeleteDepartment)
	assert.Empty(t, plan.Insert)
}

func TestReconcileImport_EmptyBatchIsNoOp(t *testing.T) {
	_, err := ReconcileImport(nil, nil, models.DepartmentFinal, ImportOptions{DuplicatePolicy: PolicySkip})
	assert.ErrorIs(t, err, ErrNothingToImport)
}

func TestReconcileImport_IntraBatchDedupFirstWins(t *testing.T) {
	rows := []Row{
		{"MSN": "A", "PNL": "1", "PART NUMBER": "X", "QTY": "5"},
		{"MSN": " a ", "pnl": "1", "partnumber": "x", "QTY": "9"},
	}

	plan, err := ReconcileImport(rows, nil, models.DepartmentPanels, ImportOptions{DuplicatePolicy: PolicySkip})
	require.NoError(t, err)

	require.Len(t, plan.Insert, 1)
	assert.Equal(t, 5, plan.Insert[0].Quantity)
}

func TestReconcileImport_MalformedRowsSilentlyDropped(t *testing.T) {
	rows := []Row{
		{"MSN": "", "PNL": "1", "PART NUMBER": "X"},
		{"MSN": "A", "PNL": "  ", "PART NUMBER": "X"},
		{"PNL": "1", "PART NUMBER": "X"},
		importRow("A", "1", "X"),
	}

	plan, err := ReconcileImport(rows, nil, models.DepartmentPanels, ImportOptions{DuplicatePolicy: PolicySkip})
	require.NoError(t, err)
	assert.Len(t, plan.Insert, 1)
}

func TestReconcileImport_RecordDefaults(t *testing.T) {
	rows := []Row{
		{
			"MSN":               "a",
			"PNL":               "1",
			"PART NUMBER":       " x ",
			"QUANTITA'":         "3",
			"DATA MASTICIATURA": 44197,
			"NOTE":              "rework",
			"TIPO":              "frame",
		},
	}

	plan, err := ReconcileImport(rows, nil, models.DepartmentAutomated, ImportOptions{DuplicatePolicy: PolicySkip})
	require.NoError(t, err)
	require.Len(t, plan.Insert, 1)

	r := plan.Insert[0]
	assert.Equal(t, "A", r.MSN)
	assert.Equal(t, "1", r.PNL)
	assert.Equal(t, "X", r.PartNumber)
	assert.Equal(t, 3, r.Quantity)
	assert.Equal(t, models.UrgencyLow, r.Urgency)
	assert.Equal(t, models.DepartmentAutomated, r.Department)
	assert.Equal(t, models.ImportUser, r.CreatedBy)
	assert.Equal(t, "REWORK", r.Note)
	assert.Equal(t, "FRAME", r.Type)
	require.NotNil(t, r.ManufactureDate)
	assert.Equal(t, "2021-01-01", *r.ManufactureDate)
	assert.NotEmpty(t, r.ID)
}

func TestReconcileImport_HeaderAliasTolerance(t *testing.T) {
	tests := []struct {
		name string
		row  Row
	}{
		{"lowercase headers", Row{"msn": "A", "pnl": "1", "pn": "X"}},
		{"underscore part number", Row{"MSN": "A", "PNL": "1", "PART_NUMBER": "X"}},
		{"decorated headers", Row{" Msn ": "A", " Pnl ": "1", "Part Number ": "X"}},
		{"misencoded quantity", Row{"MSN": "A", "PNL": "1", "PART NUMBER": "X", "QUANTITÃ€": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ReconcileImport([]Row{tt.row}, nil, models.DepartmentPanels, ImportOptions{DuplicatePolicy: PolicySkip})
			require.NoError(t, err)
			require.Len(t, plan.Insert, 1)
			assert.Equal(t, "A|1|X", Key(plan.Insert[0].MSN, plan.Insert[0].PNL, plan.Insert[0].PartNumber))
		})
	}
}

func TestReconcileImport_QuantityDefaultsToOne(t *testing.T) {
	rows := []Row{
		{"MSN": "A", "PNL": "1", "PART NUMBER": "X", "QTY": "n/a"},
		{"MSN": "B", "PNL": "2", "PART NUMBER": "Y"},
	}

	plan, err := ReconcileImport(rows, nil, models.DepartmentPanels, ImportOptions{DuplicatePolicy: PolicySkip})
	require.NoError(t, err)
	require.Len(t, plan.Insert, 2)
	assert.Equal(t, 1, plan.Insert[0].Quantity)
	assert.Equal(t, 1, plan.Insert[1].Quantity)
}

func TestReconcileImport_ReplaceIgnoresKeysNotInBatch(t *testing.T) {
	existing := []models.Record{
		rec("id-1", "A", "1", "X", 1, models.DepartmentPanels),
	}

	plan, err := ReconcileImport(
		[]Row{importRow("B", "2", "Y")},
		existing,
		models.DepartmentPanels,
		ImportOptions{DuplicatePolicy: PolicyReplace},
	)
	require.NoError(t, err)
	assert.Empty(t, plan.DeleteIDs)
	assert.Len(t, plan.Insert, 1)
}

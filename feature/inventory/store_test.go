package inventory

import (
	"context"
	"testing"

	"shortage-tracker/core/database"
	"shortage-tracker/feature/inventory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.Record{}))
	return db
}

func seedRecord(t *testing.T, store *GormStore, id, msn, pnl, pn string, qty int, dept string) models.Record {
	t.Helper()

	record := models.Record{
		ID:         id,
		MSN:        msn,
		PNL:        pnl,
		PartNumber: pn,
		Quantity:   qty,
		Urgency:    models.UrgencyMedium,
		Department: dept,
		CreatedBy:  "tester",
	}
	require.NoError(t, store.Upsert(context.Background(), record))
	return record
}

func TestStore_UpsertAndListAll(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 2, models.DepartmentPanels)
	seedRecord(t, store, "id-2", "MSN200", "P2", "PN-2", 1, models.DepartmentFinal)

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestStore_UpsertUpdatesExisting(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	rec := seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 2, models.DepartmentPanels)

	rec.Quantity = 9
	rec.Urgency = models.UrgencyHigh
	require.NoError(t, store.Upsert(ctx, rec))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 9, records[0].Quantity)
	assert.Equal(t, models.UrgencyHigh, records[0].Urgency)
}

func TestStore_DeleteByID(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 1, models.DepartmentPanels)
	seedRecord(t, store, "id-2", "MSN200", "P2", "PN-2", 1, models.DepartmentFinal)

	require.NoError(t, store.DeleteByID(ctx, "id-1"))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id-2", records[0].ID)
}

func TestStore_DeleteByIDs(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 1, models.DepartmentPanels)
	seedRecord(t, store, "id-2", "MSN200", "P2", "PN-2", 1, models.DepartmentFinal)
	seedRecord(t, store, "id-3", "MSN300", "P3", "PN-3", 1, models.DepartmentAutomated)

	require.NoError(t, store.DeleteByIDs(ctx, []string{"id-1", "id-3"}))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id-2", records[0].ID)
}

func TestStore_DeleteByIDs_EmptyIsNoop(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 1, models.DepartmentPanels)

	require.NoError(t, store.DeleteByIDs(ctx, nil))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStore_DeleteByKey_AllDepartments(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	// Same identity key held by two departments, plus an unrelated record.
	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 1, models.DepartmentPanels)
	seedRecord(t, store, "id-2", "MSN100", "P1", "PN-1", 3, models.DepartmentFinal)
	seedRecord(t, store, "id-3", "MSN200", "P2", "PN-2", 1, models.DepartmentFinal)

	require.NoError(t, store.DeleteByKey(ctx, "MSN100", "P1", "PN-1"))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "id-3", records[0].ID)
}

func TestStore_DeleteByDepartment(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	seedRecord(t, store, "id-1", "MSN100", "P1", "PN-1", 1, models.DepartmentPanels)
	seedRecord(t, store, "id-2", "MSN200", "P2", "PN-2", 1, models.DepartmentPanels)
	seedRecord(t, store, "id-3", "MSN300", "P3", "PN-3", 1, models.DepartmentFinal)

	require.NoError(t, store.DeleteByDepartment(ctx, models.DepartmentPanels))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.DepartmentFinal, records[0].Department)
}

func TestStore_InsertBatch(t *testing.T) {
	store := NewStore(setupTestDB(t))
	ctx := context.Background()

	batch := []models.Record{
		{ID: "id-1", MSN: "MSN100", PNL: "P1", PartNumber: "PN-1", Quantity: 1, Department: models.DepartmentPanels},
		{ID: "id-2", MSN: "MSN200", PNL: "P2", PartNumber: "PN-2", Quantity: 2, Department: models.DepartmentFinal},
	}
	require.NoError(t, store.Insert(ctx, batch))
	require.NoError(t, store.Insert(ctx, nil))

	records, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

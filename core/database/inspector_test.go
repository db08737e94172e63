package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTableColumns(t *testing.T) {
	// Setup In-Memory DB
	cfg := Config{
		Driver: "sqlite",
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, db)

	// SQLite specific types: INTEGER, TEXT.
	err = db.Exec("CREATE TABLE inventory (id TEXT PRIMARY KEY, msn TEXT, quantity INTEGER)").Error
	assert.NoError(t, err)

	columns, err := GetTableColumns(db, "inventory")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "text", colMap["id"])
	assert.Equal(t, "text", colMap["msn"])
	assert.Equal(t, "integer", colMap["quantity"])

	// PRAGMA table_info returns an empty result for a missing table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)

	err = db.Exec("CREATE TABLE inventory (id TEXT PRIMARY KEY, msn TEXT)").Error
	assert.NoError(t, err)

	missing, err := MissingColumns(db, "inventory", []string{"id", "msn", "pnl", "part_number"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"pnl", "part_number"}, missing)
}

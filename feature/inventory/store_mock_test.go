package inventory

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestStore_ListAllQueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectQuery("SELECT (.+) FROM `inventory`").
		WillReturnError(assert.AnError)

	_, err := store.ListAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list inventory")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListAllOrdersNewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "msn", "pnl", "part_number"}).
		AddRow("id-2", "MSN200", "P2", "PN-2").
		AddRow("id-1", "MSN100", "P1", "PN-1")
	mock.ExpectQuery("SELECT (.+) FROM `inventory` ORDER BY created_at DESC").
		WillReturnRows(rows)

	records, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "id-2", records[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteByDepartmentError(t *testing.T) {
	db, mock := setupMockDB(t)
	store := NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `inventory`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.DeleteByDepartment(context.Background(), "PANNELLI")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

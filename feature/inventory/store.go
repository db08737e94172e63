package inventory

import (
	"context"
	"fmt"

	"shortage-tracker/feature/inventory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store is the persistence boundary for the inventory collection. It exposes
// only row-level operations; all business rules live in the reconcile engine.
type Store interface {
	// ListAll returns the full inventory snapshot, newest first.
	ListAll(ctx context.Context) ([]models.Record, error)
	// Insert writes a batch of new records.
	Insert(ctx context.Context, records []models.Record) error
	// Upsert inserts or fully updates a single record by id.
	Upsert(ctx context.Context, record models.Record) error
	// DeleteByID removes one record.
	DeleteByID(ctx context.Context, id string) error
	// DeleteByIDs removes a set of records by id.
	DeleteByIDs(ctx context.Context, ids []string) error
	// DeleteByKey removes every record matching the identity triple,
	// across all departments.
	DeleteByKey(ctx context.Context, msn, pnl, partNumber string) error
	// DeleteByDepartment removes every record in one department.
	DeleteByDepartment(ctx context.Context, department string) error
}

// GormStore implements Store on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed inventory store.
func NewStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListAll(ctx context.Context) ([]models.Record, error) {
	var records []models.Record
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return records, nil
}

func (s *GormStore) Insert(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Create(&records).Error; err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	return nil
}

func (s *GormStore) Upsert(ctx context.Context, record models.Record) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert record %s: %w", record.ID, err)
	}
	return nil
}

func (s *GormStore) DeleteByID(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", id, err)
	}
	return nil
}

func (s *GormStore) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete %d records: %w", len(ids), err)
	}
	return nil
}

func (s *GormStore) DeleteByKey(ctx context.Context, msn, pnl, partNumber string) error {
	err := s.db.WithContext(ctx).
		Where("msn = ? AND pnl = ? AND part_number = ?", msn, pnl, partNumber).
		Delete(&models.Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete records for key %s/%s/%s: %w", msn, pnl, partNumber, err)
	}
	return nil
}

func (s *GormStore) DeleteByDepartment(ctx context.Context, department string) error {
	err := s.db.WithContext(ctx).
		Where("department = ?", department).
		Delete(&models.Record{}).Error
	if err != nil {
		return fmt.Errorf("failed to clean department %s: %w", department, err)
	}
	return nil
}

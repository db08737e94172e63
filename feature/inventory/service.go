package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortage-tracker/core/storage"
	"shortage-tracker/feature/inventory/models"
	"shortage-tracker/feature/inventory/reconcile"

	"go.uber.org/zap"
)

// ErrRecordNotFound is returned when an operation targets an id that is not
// in the current snapshot.
var ErrRecordNotFound = errors.New("record not found")

// ErrUnknownDepartment is returned when a caller names a department outside
// the fixed set.
var ErrUnknownDepartment = errors.New("unknown department")

// ErrImmutableDepartment is returned when an update targets a department
// other than the one the record already lives in.
var ErrImmutableDepartment = errors.New("department cannot be changed")

// Service orchestrates the reconcile engine against the store: it fetches a
// snapshot, runs the pure operation, applies the returned mutation intents
// as sequential store calls, and invalidates the snapshot afterwards.
//
// Mid-sequence store failures are surfaced, not rolled back; an import whose
// delete succeeded but whose insert failed leaves the inconsistency visible
// for the operator to retry.
type Service struct {
	store  Store
	client storage.Client
	bucket string
	logger *zap.Logger
	snap   *snapshotCache
}

// NewService creates the inventory service. client may be nil when no object
// storage is configured; bucket-backed import and report archival then
// return an error.
func NewService(store Store, client storage.Client, bucket string, logger *zap.Logger, snapshotTTL time.Duration) *Service {
	return &Service{
		store:  store,
		client: client,
		bucket: bucket,
		logger: logger,
		snap:   newSnapshotCache(snapshotTTL),
	}
}

// Snapshot returns the current full inventory snapshot, newest first.
func (s *Service) Snapshot(ctx context.Context) ([]models.Record, error) {
	return s.snap.get(ctx, s.store.ListAll)
}

// List returns the snapshot, optionally filtered to one department.
func (s *Service) List(ctx context.Context, department string) ([]models.Record, error) {
	records, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if department == "" {
		return records, nil
	}
	if !models.IsValidDepartment(department) {
		return nil, ErrUnknownDepartment
	}

	filtered := make([]models.Record, 0, len(records))
	for _, r := range records {
		if r.Department == department {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Save validates a candidate against the snapshot and persists it. username
// becomes the record's created_by. The department of an existing record is
// immutable: an update that names a different department is rejected with
// ErrImmutableDepartment.
func (s *Service) Save(ctx context.Context, candidate reconcile.Candidate, department, username string) (models.Record, error) {
	if !models.IsValidDepartment(department) {
		return models.Record{}, ErrUnknownDepartment
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return models.Record{}, err
	}

	if candidate.ID != "" {
		if existing, ok := findByID(snapshot, candidate.ID); ok && existing.Department != department {
			return models.Record{}, ErrImmutableDepartment
		}
	}

	record, err := reconcile.ValidateUpsert(candidate, snapshot, department)
	if err != nil {
		return models.Record{}, err
	}
	record.CreatedBy = username

	if err := s.store.Upsert(ctx, record); err != nil {
		return models.Record{}, err
	}
	s.snap.invalidate()

	s.logger.Info("Record saved",
		zap.String("id", record.ID),
		zap.String("department", record.Department),
		zap.String("user", username),
	)
	return record, nil
}

// ScopeOptions reports the record and the other departments holding its
// identity key, so the caller can offer single, local or global deletion.
func (s *Service) ScopeOptions(ctx context.Context, id string) (models.Record, []string, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return models.Record{}, nil, err
	}

	rec, ok := findByID(snapshot, id)
	if !ok {
		return models.Record{}, nil, ErrRecordNotFound
	}
	return rec, reconcile.OtherDepartments(rec, snapshot), nil
}

// Delete resolves the scope for a record and applies it: global deletes by
// identity key across all departments, single and local delete by id.
func (s *Service) Delete(ctx context.Context, id string, mode reconcile.ScopeMode) error {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return err
	}

	rec, ok := findByID(snapshot, id)
	if !ok {
		return ErrRecordNotFound
	}

	scope := reconcile.ResolveScope(rec, mode)
	switch scope.Mode {
	case reconcile.ScopeGlobal:
		err = s.store.DeleteByKey(ctx, scope.MSN, scope.PNL, scope.PartNumber)
	default:
		err = s.store.DeleteByID(ctx, scope.ID)
	}
	if err != nil {
		return err
	}
	s.snap.invalidate()

	s.logger.Info("Record deleted",
		zap.String("id", id),
		zap.String("scope", string(scope.Mode)),
	)
	return nil
}

// ImportReport summarizes an applied import.
type ImportReport struct {
	// Inserted is the number of records written from the batch.
	Inserted int `json:"inserted"`
	// Deleted is the number of superseded records removed (replace policy).
	Deleted int `json:"deleted"`
	// CleanedDepartment is set when the whole department was wiped first.
	CleanedDepartment bool `json:"cleaned_department"`
}

// Import reconciles a raw batch against the target department and applies
// the resulting plan: department wipe or superseded-id deletes first, then
// the insert batch.
func (s *Service) Import(ctx context.Context, rows []reconcile.Row, department string, opts reconcile.ImportOptions) (ImportReport, error) {
	if !models.IsValidDepartment(department) {
		return ImportReport{}, ErrUnknownDepartment
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return ImportReport{}, err
	}

	existing := make([]models.Record, 0)
	for _, r := range snapshot {
		if r.Department == department {
			existing = append(existing, r)
		}
	}

	plan, err := reconcile.ReconcileImport(rows, existing, department, opts)
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Inserted: len(plan.Insert)}

	if plan.DeleteDepartment {
		if err := s.store.DeleteByDepartment(ctx, department); err != nil {
			return report, err
		}
		report.CleanedDepartment = true
		report.Deleted = len(existing)
	} else if len(plan.DeleteIDs) > 0 {
		if err := s.store.DeleteByIDs(ctx, plan.DeleteIDs); err != nil {
			return report, err
		}
		report.Deleted = len(plan.DeleteIDs)
	}

	if err := s.store.Insert(ctx, plan.Insert); err != nil {
		return report, fmt.Errorf("import partially applied: %w", err)
	}
	s.snap.invalidate()

	s.logger.Info("Import applied",
		zap.String("department", department),
		zap.String("policy", opts.DuplicatePolicy),
		zap.Bool("clean", opts.CleanDepartment),
		zap.Int("inserted", report.Inserted),
		zap.Int("deleted", report.Deleted),
	)
	return report, nil
}

// Duplicates returns the cross-department duplicate groups.
func (s *Service) Duplicates(ctx context.Context) ([]reconcile.ConsolidatedGroup, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return reconcile.Consolidate(snapshot), nil
}

// PurgeDuplicates deletes every cross-department duplicate group globally,
// by identity key. Returns the number of groups removed.
func (s *Service) PurgeDuplicates(ctx context.Context) (int, error) {
	groups, err := s.Duplicates(ctx)
	if err != nil {
		return 0, err
	}

	for i, g := range groups {
		if err := s.store.DeleteByKey(ctx, g.MSN, g.PNL, g.PartNumber); err != nil {
			return i, err
		}
	}
	if len(groups) > 0 {
		s.snap.invalidate()
	}
	return len(groups), nil
}

// Stats returns the quantity totals for the dashboard.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(snapshot), nil
}

// Analytics returns the aggregated analytics views.
func (s *Service) Analytics(ctx context.Context) (AnalyticsReport, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return AnalyticsReport{}, err
	}
	return ComputeAnalytics(snapshot, time.Now().UTC()), nil
}

func findByID(records []models.Record, id string) (models.Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return models.Record{}, false
}

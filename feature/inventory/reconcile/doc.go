// Package reconcile implements the inventory reconciliation engine.
//
// The engine is pure: every operation runs to completion over a snapshot of
// inventory records passed in by the caller and returns either derived
// aggregates or mutation intents for the store layer to apply. It performs
// no I/O, holds no reference to the live collection, and takes no locks.
// At-most-one-record-per-(key, department) is enforced only against the
// snapshot known at validation time.
//
// # Operations
//
//   - Key: derives the dedup identity key for a record.
//   - Consolidate: groups records by identity key across departments and
//     surfaces groups present in two or more departments.
//   - OtherDepartments / DeleteScope: resolves how a delete should fan out
//     when the same part is open in other departments.
//   - ValidateUpsert: checks a candidate save against same-department
//     collisions and returns the normalized record ready for persistence.
//   - ReconcileImport: reconciles a raw spreadsheet batch against existing
//     records under a skip/replace/clean-department policy and returns an
//     import plan (records to insert, ids to delete, department wipe flag).
//
// # Concurrency
//
// Two writers validating against the same snapshot can still race each other
// at the store; the engine does not attempt to close that window. This is an
// accepted gap for a low-concurrency floor tool.
package reconcile

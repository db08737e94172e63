package reconcile

import "errors"

var (
	// ErrMissingRequiredField is returned when one of the three identity
	// fields (MSN, PNL, part number) is empty after normalization.
	ErrMissingRequiredField = errors.New("msn, pnl and part number are required")

	// ErrDuplicateInDepartment is returned when a record with the same
	// identity key already exists in the target department under a
	// different id.
	ErrDuplicateInDepartment = errors.New("record already exists in this department")

	// ErrNothingToImport is returned when an import batch produces no
	// records to insert and no department wipe was requested.
	ErrNothingToImport = errors.New("nothing to import")
)

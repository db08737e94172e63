package reconcile

import (
	"time"

	"shortage-tracker/core/utils"
	"shortage-tracker/feature/inventory/models"

	"github.com/google/uuid"
)

// Candidate is a record as submitted by a caller, before normalization.
// Quantity is untyped because form and spreadsheet values arrive as strings
// or numbers interchangeably.
type Candidate struct {
	ID              string  `json:"id"`
	MSN             string  `json:"msn"`
	PNL             string  `json:"pnl"`
	PartNumber      string  `json:"part_number"`
	Quantity        any     `json:"quantity"`
	Urgency         string  `json:"urgency"`
	ManufactureDate *string `json:"manufacture_date"`
	Note            string  `json:"note"`
	Type            string  `json:"type"`
}

// ValidateUpsert checks a candidate save against the snapshot and returns the
// normalized record ready for persistence.
//
// It fails with ErrMissingRequiredField if any identity field is empty after
// normalization, and with ErrDuplicateInDepartment if another record (a
// different id) holds the same identity key in the target department. An
// empty candidate id never matches, so new records are checked against the
// full set. Validation either fully passes or fully fails; on failure the
// caller must not persist.
func ValidateUpsert(candidate Candidate, existing []models.Record, targetDepartment string) (models.Record, error) {
	msn := Normalize(candidate.MSN)
	pnl := Normalize(candidate.PNL)
	pn := Normalize(candidate.PartNumber)

	if msn == "" || pnl == "" || pn == "" {
		return models.Record{}, ErrMissingRequiredField
	}

	key := Key(msn, pnl, pn)
	for _, r := range existing {
		if r.ID != candidate.ID &&
			Key(r.MSN, r.PNL, r.PartNumber) == key &&
			r.Department == targetDepartment {
			return models.Record{}, ErrDuplicateInDepartment
		}
	}

	id := candidate.ID
	if id == "" {
		id = uuid.NewString()
	}

	urgency := candidate.Urgency
	if urgency == "" {
		urgency = models.UrgencyLow
	}

	return models.Record{
		ID:              id,
		MSN:             msn,
		PNL:             pnl,
		PartNumber:      pn,
		Quantity:        parseQuantity(candidate.Quantity),
		Urgency:         urgency,
		Department:      targetDepartment,
		ManufactureDate: candidate.ManufactureDate,
		Note:            Normalize(candidate.Note),
		Type:            Normalize(candidate.Type),
		UpdatedAt:       time.Now().UTC(),
	}, nil
}

// parseQuantity coerces an untyped quantity to an int, defaulting to 1 when
// the value is absent, unparseable or zero.
func parseQuantity(v any) int {
	n := utils.ToInt(v)
	if n == 0 {
		return 1
	}
	return n
}

package reconcile

import (
	"time"

	"shortage-tracker/core/utils"
	"shortage-tracker/feature/inventory/models"

	"github.com/google/uuid"
)

// Duplicate policies for import reconciliation.
const (
	// PolicySkip keeps existing records and drops incoming rows whose
	// identity key already exists in the target department.
	PolicySkip = "skip"

	// PolicyReplace supersedes existing records whose identity key appears
	// in the incoming batch.
	PolicyReplace = "replace"
)

// ImportOptions selects how an import batch reconciles against existing data.
type ImportOptions struct {
	// DuplicatePolicy is PolicySkip or PolicyReplace.
	DuplicatePolicy string `json:"duplicate_policy"`

	// CleanDepartment wipes the target department before inserting the
	// batch. It takes precedence over the duplicate policy.
	CleanDepartment bool `json:"clean_department"`
}

// ImportPlan is the set of mutation intents computed by ReconcileImport.
// The caller applies deletions first, then inserts.
type ImportPlan struct {
	// Insert holds the accepted incoming records, in row order.
	Insert []models.Record `json:"insert"`

	// DeleteIDs holds ids of existing records superseded under
	// PolicyReplace.
	DeleteIDs []string `json:"delete_ids"`

	// DeleteDepartment instructs the caller to delete every existing
	// record in the target department before inserting.
	DeleteDepartment bool `json:"delete_department"`
}

// ReconcileImport reconciles a raw batch against the existing records of the
// target department and returns the resulting plan.
//
// Rows missing any identity field are dropped silently; that is deliberate
// tolerance for ragged spreadsheets, not an error. Within the batch the
// first occurrence of a key wins. existing must already be scoped to the
// target department by the caller.
//
// Returns ErrNothingToImport when no rows survive and no department wipe was
// requested, so callers can avoid issuing empty writes.
func ReconcileImport(rows []Row, existing []models.Record, targetDepartment string, opts ImportOptions) (ImportPlan, error) {
	existingKeys := make(map[string]struct{}, len(existing))
	for _, r := range existing {
		existingKeys[Key(r.MSN, r.PNL, r.PartNumber)] = struct{}{}
	}

	var plan ImportPlan
	incomingKeys := make(map[string]struct{})
	now := time.Now().UTC()

	for _, row := range rows {
		msn := normalizedCell(row, aliasMSN)
		pnl := normalizedCell(row, aliasPNL)
		pn := normalizedCell(row, aliasPartNumber)

		if msn == "" || pnl == "" || pn == "" {
			continue
		}

		key := Key(msn, pnl, pn)
		if _, dup := incomingKeys[key]; dup {
			continue
		}
		if !opts.CleanDepartment && opts.DuplicatePolicy == PolicySkip {
			if _, exists := existingKeys[key]; exists {
				continue
			}
		}
		incomingKeys[key] = struct{}{}

		rawQty, _ := headerValue(row, aliasQuantity)
		rawDate, _ := headerValue(row, aliasDate)

		plan.Insert = append(plan.Insert, models.Record{
			ID:              uuid.NewString(),
			MSN:             msn,
			PNL:             pnl,
			PartNumber:      pn,
			Quantity:        parseQuantity(rawQty),
			Urgency:         models.UrgencyLow,
			Department:      targetDepartment,
			ManufactureDate: SerialDate(rawDate),
			Note:            normalizedCell(row, aliasNote),
			Type:            normalizedCell(row, aliasType),
			CreatedBy:       models.ImportUser,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}

	if len(plan.Insert) == 0 && !opts.CleanDepartment {
		return ImportPlan{}, ErrNothingToImport
	}

	if opts.CleanDepartment {
		plan.DeleteDepartment = true
	} else if opts.DuplicatePolicy == PolicyReplace {
		for _, r := range existing {
			if _, ok := incomingKeys[Key(r.MSN, r.PNL, r.PartNumber)]; ok {
				plan.DeleteIDs = append(plan.DeleteIDs, r.ID)
			}
		}
	}

	return plan, nil
}

// normalizedCell resolves a cell through the alias table and normalizes it.
func normalizedCell(row Row, aliases []string) string {
	v, ok := headerValue(row, aliases)
	if !ok {
		return ""
	}
	return Normalize(utils.ToString(v))
}

package reconcile

import "shortage-tracker/feature/inventory/models"

// ScopeMode enumerates the delete resolution modes.
type ScopeMode string

const (
	// ScopeSingle deletes the one record by id; offered as the sole option
	// when the part is not open in any other department.
	ScopeSingle ScopeMode = "single"

	// ScopeLocal deletes only the record in its own department, leaving
	// copies in other departments untouched.
	ScopeLocal ScopeMode = "local"

	// ScopeGlobal deletes every record sharing the identity key across
	// all departments.
	ScopeGlobal ScopeMode = "global"
)

// DeleteScope is the resolved decision for a delete request: either a
// by-id delete (single/local) or a by-key delete across departments (global).
type DeleteScope struct {
	Mode ScopeMode

	// ID is set for single and local deletes.
	ID string

	// MSN, PNL and PartNumber carry the identity triple for global deletes.
	MSN        string
	PNL        string
	PartNumber string
}

// OtherDepartments returns the distinct departments, other than the record's
// own, that hold a record with the same identity key. A non-empty result
// means the caller must offer local and global modes; an empty result means
// single is the only option.
func OtherDepartments(rec models.Record, records []models.Record) []string {
	key := Key(rec.MSN, rec.PNL, rec.PartNumber)

	seen := make(map[string]struct{})
	others := make([]string, 0)
	for _, r := range records {
		if r.Department == rec.Department {
			continue
		}
		if Key(r.MSN, r.PNL, r.PartNumber) != key {
			continue
		}
		if _, ok := seen[r.Department]; ok {
			continue
		}
		seen[r.Department] = struct{}{}
		others = append(others, r.Department)
	}
	return others
}

// ResolveScope builds the DeleteScope for a record under the chosen mode.
// Global acts on the identity key; single and local act on the record id.
func ResolveScope(rec models.Record, mode ScopeMode) DeleteScope {
	if mode == ScopeGlobal {
		return DeleteScope{
			Mode:       ScopeGlobal,
			MSN:        Normalize(rec.MSN),
			PNL:        Normalize(rec.PNL),
			PartNumber: Normalize(rec.PartNumber),
		}
	}
	return DeleteScope{Mode: mode, ID: rec.ID}
}

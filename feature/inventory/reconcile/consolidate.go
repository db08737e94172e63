package reconcile

import "shortage-tracker/feature/inventory/models"

// ConsolidatedGroup is one identity key found in two or more departments.
// Display fields are taken from the first record encountered for the key;
// they are identical across the group by construction.
type ConsolidatedGroup struct {
	// MSN, PNL and PartNumber are the normalized identity fields.
	MSN        string `json:"msn"`
	PNL        string `json:"pnl"`
	PartNumber string `json:"part_number"`

	// Departments lists the distinct departments holding the part,
	// in first-seen order.
	Departments []string `json:"departments"`

	// TotalQuantity sums the quantity of every member record.
	TotalQuantity int `json:"total_quantity"`
}

// Consolidate partitions the snapshot by identity key and returns one group
// per key that appears in at least two distinct departments. Groups confined
// to a single department are not duplicates in the cross-department sense
// and are excluded.
func Consolidate(records []models.Record) []ConsolidatedGroup {
	type bucket struct {
		group    ConsolidatedGroup
		deptSeen map[string]struct{}
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, rec := range records {
		key := Key(rec.MSN, rec.PNL, rec.PartNumber)

		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				group: ConsolidatedGroup{
					MSN:        Normalize(rec.MSN),
					PNL:        Normalize(rec.PNL),
					PartNumber: Normalize(rec.PartNumber),
				},
				deptSeen: make(map[string]struct{}),
			}
			buckets[key] = b
			order = append(order, key)
		}

		b.group.TotalQuantity += rec.Quantity
		if _, seen := b.deptSeen[rec.Department]; !seen {
			b.deptSeen[rec.Department] = struct{}{}
			b.group.Departments = append(b.group.Departments, rec.Department)
		}
	}

	groups := make([]ConsolidatedGroup, 0)
	for _, key := range order {
		if b := buckets[key]; len(b.group.Departments) >= 2 {
			groups = append(groups, b.group)
		}
	}
	return groups
}

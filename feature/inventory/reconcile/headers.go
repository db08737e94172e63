package reconcile

import (
	"sort"
	"strings"
)

// Row is a raw spreadsheet row: column header to untyped cell value.
// The engine never parses spreadsheet files itself; callers hand it rows
// already extracted by a CSV/XLSX reader.
type Row map[string]any

// Ordered header aliases per logical field. Matching is case- and
// whitespace-insensitive and substring-tolerant, so exports with decorated
// or misencoded headers (the classic "QUANTITÃ€" mojibake) still resolve.
var (
	aliasMSN        = []string{"msn"}
	aliasPNL        = []string{"pnl"}
	aliasPartNumber = []string{"part number", "part_number", "partnumber", "pn"}
	aliasQuantity   = []string{"quantita'", "quantita", "quantità", "quantitÃ", "qty", "qta"}
	aliasDate       = []string{"data masticiatura", "data_masticiatura", "manufacture date", "data", "date"}
	aliasNote       = []string{"note"}
	aliasType       = []string{"tipo", "type"}
)

// headerValue resolves a cell by trying each alias in order against the
// row's headers. An exact (normalized) header match wins over a substring
// match for the same alias. Headers are scanned in sorted order so the
// lookup is deterministic. The boolean reports whether any alias resolved.
func headerValue(row Row, aliases []string) (any, bool) {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	for _, alias := range aliases {
		want := strings.ToLower(strings.TrimSpace(alias))

		for _, h := range headers {
			if strings.ToLower(strings.TrimSpace(h)) == want {
				if row[h] != nil {
					return row[h], true
				}
			}
		}
		for _, h := range headers {
			if strings.Contains(strings.ToLower(strings.TrimSpace(h)), want) {
				if row[h] != nil {
					return row[h], true
				}
			}
		}
	}
	return nil, false
}

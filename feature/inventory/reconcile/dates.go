package reconcile

import (
	"math"
	"strconv"
	"strings"
	"time"

	"shortage-tracker/core/utils"
)

// serialEpochOffset is the day count between the spreadsheet date epoch
// (1899-12-30) and the Unix epoch (1970-01-01).
const serialEpochOffset = 25569

// SerialDate converts a spreadsheet cell to an ISO date string.
//
// Numeric input is treated as a spreadsheet serial day count and converted
// to YYYY-MM-DD. Non-numeric, non-empty input passes through unchanged so
// already-formatted dates survive a round trip. Empty or zero input yields
// nil, meaning "no date". Serials that do not land on a plausible calendar
// date also yield nil. Conversion never fails.
func SerialDate(v any) *string {
	if v == nil {
		return nil
	}

	s := strings.TrimSpace(utils.ToString(v))
	if s == "" {
		return nil
	}

	num, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return &s
	}
	if num == 0 {
		return nil
	}

	// Huge serials overflow the second count; the year bounds also catch
	// the wrapped values.
	t := time.Unix(int64((num-serialEpochOffset)*86400), 0).UTC()
	if t.Year() < 1900 || t.Year() > 9999 {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

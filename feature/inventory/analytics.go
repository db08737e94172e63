package inventory

import (
	"sort"
	"time"

	"shortage-tracker/feature/inventory/models"
)

// Stats holds the dashboard quantity totals.
type Stats struct {
	// TotalQuantity sums every record's quantity.
	TotalQuantity int `json:"total_quantity"`
	// ByDepartment sums quantities per department; every department code
	// appears even when its total is zero.
	ByDepartment map[string]int `json:"by_department"`
}

// LabelValue is one labelled total in a chart series.
type LabelValue struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// ParetoEntry is one part number in the Pareto series.
type ParetoEntry struct {
	Label             string  `json:"label"`
	Value             int     `json:"value"`
	CumulativePercent float64 `json:"cumulative_percent"`
}

// TrendPoint is one day of the creation trend.
type TrendPoint struct {
	Date         string         `json:"date"`
	Total        int            `json:"total"`
	ByDepartment map[string]int `json:"by_department"`
}

// AnalyticsReport bundles the chart series for the analytics view.
type AnalyticsReport struct {
	DepartmentTotals []LabelValue  `json:"department_totals"`
	UrgencyTotals    []LabelValue  `json:"urgency_totals"`
	Pareto           []ParetoEntry `json:"pareto"`
	Trend            []TrendPoint  `json:"trend"`
}

// ComputeStats aggregates the snapshot into dashboard totals.
func ComputeStats(records []models.Record) Stats {
	stats := Stats{ByDepartment: make(map[string]int, len(models.Departments))}
	for _, dept := range models.Departments {
		stats.ByDepartment[dept] = 0
	}
	for _, r := range records {
		stats.TotalQuantity += r.Quantity
		if _, ok := stats.ByDepartment[r.Department]; ok {
			stats.ByDepartment[r.Department] += r.Quantity
		}
	}
	return stats
}

// paretoLimit caps the Pareto series at the ten worst part numbers.
const paretoLimit = 10

// ComputeAnalytics aggregates the snapshot into the chart series. now anchors
// the seven-day trend window.
func ComputeAnalytics(records []models.Record, now time.Time) AnalyticsReport {
	report := AnalyticsReport{}

	for _, dept := range models.Departments {
		total := 0
		for _, r := range records {
			if r.Department == dept {
				total += r.Quantity
			}
		}
		report.DepartmentTotals = append(report.DepartmentTotals, LabelValue{Label: dept, Value: total})
	}

	for _, urgency := range models.Urgencies {
		total := 0
		for _, r := range records {
			if r.Urgency == urgency {
				total += r.Quantity
			}
		}
		report.UrgencyTotals = append(report.UrgencyTotals, LabelValue{Label: urgency, Value: total})
	}

	report.Pareto = computePareto(records)
	report.Trend = computeTrend(records, now)
	return report
}

// computePareto ranks part numbers by total quantity and annotates the top
// entries with the cumulative share of the overall total.
func computePareto(records []models.Record) []ParetoEntry {
	counts := make(map[string]int)
	order := make([]string, 0)
	grandTotal := 0

	for _, r := range records {
		pn := r.PartNumber
		qty := r.Quantity
		if qty == 0 {
			qty = 1
		}
		if _, ok := counts[pn]; !ok {
			order = append(order, pn)
		}
		counts[pn] += qty
		grandTotal += qty
	}
	if grandTotal == 0 {
		return nil
	}

	// Stable ordering: by quantity descending, first-seen on ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > paretoLimit {
		order = order[:paretoLimit]
	}

	entries := make([]ParetoEntry, 0, len(order))
	cumulative := 0
	for _, pn := range order {
		cumulative += counts[pn]
		entries = append(entries, ParetoEntry{
			Label:             pn,
			Value:             counts[pn],
			CumulativePercent: float64(cumulative) / float64(grandTotal) * 100,
		})
	}
	return entries
}

// computeTrend counts record creations per department over the last seven
// days, oldest day first.
func computeTrend(records []models.Record, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")

		point := TrendPoint{Date: day, ByDepartment: make(map[string]int, len(models.Departments))}
		for _, dept := range models.Departments {
			count := 0
			for _, r := range records {
				if r.Department == dept && r.CreatedAt.Format("2006-01-02") == day {
					count++
				}
			}
			point.ByDepartment[dept] = count
			point.Total += count
		}
		points = append(points, point)
	}
	return points
}

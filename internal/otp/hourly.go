package otp

import (
	"sort"
)

// HourlyDelayRow carries the delayed-flight counts of one scheduled
// departure hour, split by arrival region.
type HourlyDelayRow struct {
	Hour          int `json:"hour"`
	Domestic      int `json:"domestic"`
	International int `json:"international"`
}

// HourlyTotalRow carries one hour's total flight count regardless of
// delay or region, for overlay against the delayed counts.
type HourlyTotalRow struct {
	Hour         int `json:"hour"`
	TotalFlights int `json:"total_flights"`
}

// HourlyDelayPattern aggregates the airline's operational flights by
// scheduled departure hour. The first result counts flights delayed more
// than HourlyDelayMinutes per (hour, domestic/international); the second
// counts all flights per hour. This is the only aggregator that drops
// rows with an unparsable scheduled departure timestamp, since their hour
// is undefined. Hours with no flights are absent, not zero-filled.
func HourlyDelayPattern(t Table, airline string) ([]HourlyDelayRow, []HourlyTotalRow) {
	type split struct{ domestic, international int }
	delayed := map[int]*split{}
	totals := map[int]int{}

	for _, r := range operationalForAirline(t, airline) {
		hour, ok := r.Hour()
		if !ok {
			continue
		}
		totals[hour]++
		if r.DepDelay <= HourlyDelayMinutes {
			continue
		}
		s := delayed[hour]
		if s == nil {
			s = &split{}
			delayed[hour] = s
		}
		if r.Domestic() {
			s.domestic++
		} else {
			s.international++
		}
	}

	delayedRows := make([]HourlyDelayRow, 0, len(delayed))
	for hour, s := range delayed {
		delayedRows = append(delayedRows, HourlyDelayRow{
			Hour:          hour,
			Domestic:      s.domestic,
			International: s.international,
		})
	}
	sort.Slice(delayedRows, func(i, j int) bool { return delayedRows[i].Hour < delayedRows[j].Hour })

	totalRows := make([]HourlyTotalRow, 0, len(totals))
	for hour, n := range totals {
		totalRows = append(totalRows, HourlyTotalRow{Hour: hour, TotalFlights: n})
	}
	sort.Slice(totalRows, func(i, j int) bool { return totalRows[i].Hour < totalRows[j].Hour })

	return delayedRows, totalRows
}

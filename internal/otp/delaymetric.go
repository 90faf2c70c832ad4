package otp

import (
	"fmt"
	"sort"
	"strings"
)

// keySep joins composite group keys internally. It never appears in IATA
// codes, airline names, or country codes.
const keySep = "\x1f"

// DelayMetricRow is one group of the on-time/delay percentage breakdown.
type DelayMetricRow struct {
	// Keys holds the group's value for each requested dimension, in the
	// order the dimensions were passed.
	Keys         []string `json:"keys"`
	OntimeCount  int      `json:"ontime_count"`
	TotalFlights int      `json:"total_flights"`
	PctOntime    float64  `json:"pct_ontime"`
	PctDelay     float64  `json:"pct_delay"`
}

// DelayMetrics computes per-group on-time and delay percentages over the
// operational rows of t. Groups are formed from the requested dimensions;
// when destinations is non-empty, only flights arriving at one of those
// IATA codes are counted. A row is on time when its departure delay is
// under OnTimeLimitMinutes.
//
// Rows are returned in lexicographic key order. An empty table produces an
// empty result, never an error; an unknown dimension is a precondition
// failure and does error.
func DelayMetrics(t Table, dims []Dimension, destinations []string) ([]DelayMetricRow, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("delay metrics: at least one group-by dimension required")
	}
	for _, d := range dims {
		if !d.Valid() {
			return nil, fmt.Errorf("delay metrics: unknown dimension %q", d)
		}
	}

	destSet := map[string]bool{}
	for _, code := range destinations {
		destSet[code] = true
	}

	type bucket struct {
		keys   []string
		ontime int
		total  int
	}
	groups := map[string]*bucket{}

	for _, r := range ExcludeNonOperational(t) {
		if len(destSet) > 0 && !destSet[r.ArrIATA] {
			continue
		}

		keys := make([]string, len(dims))
		for i, d := range dims {
			keys[i] = d.value(r)
		}
		id := strings.Join(keys, keySep)

		b := groups[id]
		if b == nil {
			b = &bucket{keys: keys}
			groups[id] = b
		}
		b.total++
		if r.DepDelay < OnTimeLimitMinutes {
			b.ontime++
		}
	}

	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]DelayMetricRow, 0, len(ids))
	for _, id := range ids {
		b := groups[id]
		row := DelayMetricRow{
			Keys:         b.keys,
			OntimeCount:  b.ontime,
			TotalFlights: b.total,
		}
		// Groups are derived from present rows, so total is at least 1;
		// the guard keeps a malformed caller from dividing by zero.
		if b.total > 0 {
			row.PctOntime = 100 * float64(b.ontime) / float64(b.total)
			row.PctDelay = 100 - row.PctOntime
		}
		rows = append(rows, row)
	}
	return rows, nil
}

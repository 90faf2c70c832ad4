package otp

import (
	"fmt"
	"sort"
)

// DistributionRow is one dimension value's spread across the six delay
// bins. Fractions is indexed by DelayBinLabels order and always carries
// all six bins; bins with no flights hold 0. The fractions of a row sum
// to 1 (up to floating rounding).
type DistributionRow struct {
	Value     string                `json:"value"`
	Fractions [NumDelayBins]float64 `json:"fractions"`
}

// DelayDistribution builds the delay-bin proportion matrix for one
// categorical dimension, restricted to the airline's operational flights.
// Rows are ordered by dimension value; the bin columns are always in the
// fixed DelayBinLabels order regardless of which bins are empty.
func DelayDistribution(t Table, dim Dimension, airline string) ([]DistributionRow, error) {
	if !dim.Valid() {
		return nil, fmt.Errorf("delay distribution: unknown dimension %q", dim)
	}

	counts := map[string]*[NumDelayBins]int{}
	for _, r := range operationalForAirline(t, airline) {
		v := dim.value(r)
		c := counts[v]
		if c == nil {
			c = new([NumDelayBins]int)
			counts[v] = c
		}
		c[DelayBinIndex(r.DepDelay)]++
	}

	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	rows := make([]DistributionRow, 0, len(values))
	for _, v := range values {
		c := counts[v]
		total := 0
		for _, n := range c {
			total += n
		}
		row := DistributionRow{Value: v}
		// A dimension value only exists because at least one row carried
		// it, so total is never zero here.
		for i, n := range c {
			row.Fractions[i] = float64(n) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

package otp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// AirportDelayIndex relates one departure airport's mean delay to the
// airline-wide mean. A ratio above 1 marks a worse-than-average airport,
// below 1 a better-than-average one. When the airline-wide mean is zero
// the ratio is undefined and reported as NaN, never as 0.
type AirportDelayIndex struct {
	DepAirport string  `json:"dep_airport"`
	MeanDelay  float64 `json:"mean_delay"`
	DelayRatio float64 `json:"delay_ratio"`
}

// RelativeDelay computes each departure airport's mean departure delay and
// its ratio to the mean over all of the airline's operational flights.
// The result is sorted by airport name. An empty input yields an empty
// result.
func RelativeDelay(t Table, airline string) []AirportDelayIndex {
	rows := operationalForAirline(t, airline)
	if len(rows) == 0 {
		return []AirportDelayIndex{}
	}

	all := make([]float64, 0, len(rows))
	byAirport := map[string][]float64{}
	for _, r := range rows {
		all = append(all, r.DepDelay)
		byAirport[r.DepAirport] = append(byAirport[r.DepAirport], r.DepDelay)
	}
	globalMean := stat.Mean(all, nil)

	airports := make([]string, 0, len(byAirport))
	for a := range byAirport {
		airports = append(airports, a)
	}
	sort.Strings(airports)

	out := make([]AirportDelayIndex, 0, len(airports))
	for _, a := range airports {
		mean := stat.Mean(byAirport[a], nil)
		ratio := math.NaN()
		if globalMean != 0 {
			ratio = mean / globalMean
		}
		out = append(out, AirportDelayIndex{
			DepAirport: a,
			MeanDelay:  mean,
			DelayRatio: ratio,
		})
	}
	return out
}

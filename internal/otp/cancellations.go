package otp

import (
	"sort"
)

// AirportCancellations counts cancelled departures from one airport.
type AirportCancellations struct {
	DepIATA     string `json:"dep_iata"`
	DepAirport  string `json:"dep_airport"`
	FlightCount int    `json:"flight_count"`
}

// CancellationsByAirport counts the airline's cancelled flights per
// departure airport, most-cancelled first. Ties break on IATA code so the
// ranking is deterministic.
func CancellationsByAirport(t Table, airline string) []AirportCancellations {
	type key struct{ iata, name string }
	counts := map[key]int{}

	for _, r := range t {
		if r.Status != StatusCancelled || r.Airline != airline {
			continue
		}
		counts[key{r.DepIATA, r.DepAirport}]++
	}

	out := make([]AirportCancellations, 0, len(counts))
	for k, n := range counts {
		out = append(out, AirportCancellations{
			DepIATA:     k.iata,
			DepAirport:  k.name,
			FlightCount: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FlightCount != out[j].FlightCount {
			return out[i].FlightCount > out[j].FlightCount
		}
		return out[i].DepIATA < out[j].DepIATA
	})
	return out
}

package otp

import (
	"sort"
)

// Route aggregates one (departure, arrival) pair.
type Route struct {
	DepIATA     string  `json:"dep_iata"`
	DepAirport  string  `json:"dep_airport"`
	ArrIATA     string  `json:"arr_iata"`
	ArrAirport  string  `json:"arr_airport"`
	FlightCount int     `json:"flight_count"`
	DelayCount  int     `json:"delay_count"`
	DelayRate   float64 `json:"delay_rate"`
}

// RouteRanking is the outcome of the top-delayed-routes query.
type RouteRanking struct {
	// MedianFlightCount is the median flight count across every route in
	// the filtered, country-scoped set. Routes at or below it were
	// discarded as noise before ranking.
	MedianFlightCount float64 `json:"median_flight_count"`
	Routes            []Route `json:"routes"`
}

// TopDelayedRoutes ranks the airline's routes by the share of materially
// delayed flights (departure delay over MaterialDelayMinutes). The
// domestic flag scopes arrivals to the US (true) or outside it (false).
// Routes whose flight count does not exceed the median across the scoped
// set are dropped; the rest are sorted by delay rate descending and the
// top ten are returned, keeping every route tied with the tenth place.
func TopDelayedRoutes(t Table, airline string, domestic bool) RouteRanking {
	type key struct{ depIATA, depName, arrIATA, arrName string }
	type agg struct {
		flights int
		delayed int
	}
	groups := map[key]*agg{}

	for _, r := range operationalForAirline(t, airline) {
		if r.Domestic() != domestic {
			continue
		}
		k := key{r.DepIATA, r.DepAirport, r.ArrIATA, r.ArrAirport}
		a := groups[k]
		if a == nil {
			a = &agg{}
			groups[k] = a
		}
		a.flights++
		if r.DepDelay > MaterialDelayMinutes {
			a.delayed++
		}
	}
	if len(groups) == 0 {
		return RouteRanking{Routes: []Route{}}
	}

	routes := make([]Route, 0, len(groups))
	counts := make([]float64, 0, len(groups))
	for k, a := range groups {
		routes = append(routes, Route{
			DepIATA:     k.depIATA,
			DepAirport:  k.depName,
			ArrIATA:     k.arrIATA,
			ArrAirport:  k.arrName,
			FlightCount: a.flights,
			DelayCount:  a.delayed,
			DelayRate:   float64(a.delayed) / float64(a.flights),
		})
		counts = append(counts, float64(a.flights))
	}
	median := medianOf(counts)

	kept := routes[:0:0]
	for _, r := range routes {
		if float64(r.FlightCount) > median {
			kept = append(kept, r)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].DelayRate != kept[j].DelayRate {
			return kept[i].DelayRate > kept[j].DelayRate
		}
		if kept[i].DepIATA != kept[j].DepIATA {
			return kept[i].DepIATA < kept[j].DepIATA
		}
		return kept[i].ArrIATA < kept[j].ArrIATA
	})

	// Top 10 with ties: everything sharing the tenth-ranked rate stays.
	if len(kept) > 10 {
		boundary := kept[9].DelayRate
		cut := 10
		for cut < len(kept) && kept[cut].DelayRate == boundary {
			cut++
		}
		kept = kept[:cut]
	}

	return RouteRanking{MedianFlightCount: median, Routes: kept}
}

// medianOf returns the median with the mean-of-middle-two convention for
// even-length input. The ranking contract depends on this exact
// definition, so it is computed directly rather than via a quantile
// estimator.
func medianOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := make([]float64, len(xs))
	copy(s, xs)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

package otp

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ArrivalPoint is one arrival location's flight volume and mean delay,
// keyed by coordinates plus airport name for spatial display.
type ArrivalPoint struct {
	Latitude    float64 `json:"arr_latitude"`
	Longitude   float64 `json:"arr_longitude"`
	Airport     string  `json:"arr_airport"`
	FlightCount int     `json:"flight_count"`
	MeanDelay   float64 `json:"dep_delay"`
}

// ArrivalDistribution groups the airline's operational flights by arrival
// point and reports each point's flight count and mean departure delay.
// Points are ordered by airport name, then coordinates.
func ArrivalDistribution(t Table, airline string) []ArrivalPoint {
	type key struct {
		lat, lon float64
		name     string
	}
	delays := map[key][]float64{}

	for _, r := range operationalForAirline(t, airline) {
		k := key{r.ArrLatitude, r.ArrLongitude, r.ArrAirport}
		delays[k] = append(delays[k], r.DepDelay)
	}

	out := make([]ArrivalPoint, 0, len(delays))
	for k, ds := range delays {
		out = append(out, ArrivalPoint{
			Latitude:    k.lat,
			Longitude:   k.lon,
			Airport:     k.name,
			FlightCount: len(ds),
			MeanDelay:   stat.Mean(ds, nil),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Airport != out[j].Airport {
			return out[i].Airport < out[j].Airport
		}
		if out[i].Latitude != out[j].Latitude {
			return out[i].Latitude < out[j].Latitude
		}
		return out[i].Longitude < out[j].Longitude
	})
	return out
}

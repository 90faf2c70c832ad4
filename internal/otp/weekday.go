package otp

import (
	"fmt"
	"strings"
	"time"
)

// ClassifyFunc maps an arrival country (ISO code or name) to a lowercase
// region name. Implementations must return "other" on any lookup failure
// and must never panic; the literal "usa" is reserved for the United
// States as a region distinct from North America.
type ClassifyFunc func(country string) string

// RegionWorld selects all regions in WeekdayVolume.
const RegionWorld = "world"

// WeekdayCount is one weekday's flight volume.
type WeekdayCount struct {
	Weekday string `json:"weekday"`
	Flights int    `json:"flights_count"`
}

// weekdayIndex orders Monday first, matching the report convention.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

var weekdayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// WeekdayVolume counts the airline's operational flights per day of week,
// optionally restricted to one arrival region. The region selector is
// case-normalized; RegionWorld applies no regional filter. The output is
// always ordered Monday through Sunday, with weekdays that saw no flights
// omitted.
func WeekdayVolume(t Table, airline, region string, classify ClassifyFunc) ([]WeekdayCount, error) {
	region = strings.ToLower(strings.TrimSpace(region))
	if region != RegionWorld && classify == nil {
		return nil, fmt.Errorf("weekday volume: region %q requires a country classifier", region)
	}

	var counts [7]int
	for _, r := range operationalForAirline(t, airline) {
		if region != RegionWorld && classify(r.ArrCountry) != region {
			continue
		}
		counts[weekdayIndex(r.FlightDate.Weekday())]++
	}

	out := make([]WeekdayCount, 0, 7)
	for i, n := range counts {
		if n == 0 {
			continue
		}
		out = append(out, WeekdayCount{Weekday: weekdayNames[i], Flights: n})
	}
	return out, nil
}

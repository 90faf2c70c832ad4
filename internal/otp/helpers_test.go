package otp

import (
	"time"
)

const testAirline = "Delta Air Lines"

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// flight builds an operational domestic test record with sensible
// defaults; tests override fields as needed.
func flight(delay float64) Record {
	return Record{
		FlightDate:   day("2024-06-03"),
		SchedDep:     time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
		HasSchedDep:  true,
		Airline:      testAirline,
		DepIATA:      "ATL",
		DepAirport:   "Hartsfield-Jackson Atlanta International",
		ArrIATA:      "JFK",
		ArrAirport:   "John F. Kennedy International",
		ArrCountry:   "US",
		ArrLatitude:  40.6413,
		ArrLongitude: -73.7781,
		DepDelay:     delay,
		Status:       StatusNormal,
	}
}

func repeat(n int, r Record) Table {
	t := make(Table, 0, n)
	for i := 0; i < n; i++ {
		t = append(t, r)
	}
	return t
}

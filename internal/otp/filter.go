package otp

import (
	"time"
)

// dateOnly truncates a timestamp to calendar-date precision in its own
// location, so range comparisons ignore the time of day.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SelectDateRange returns the rows whose flight date falls inside the
// inclusive [start, end] range. Passing the same date for start and end is
// a single-day query. The filter itself never fails: an inverted range or
// a range with no flights simply yields an empty table.
func SelectDateRange(t Table, start, end time.Time) Table {
	start = dateOnly(start)
	end = dateOnly(end)

	out := make(Table, 0, len(t))
	for _, r := range t {
		d := dateOnly(r.FlightDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ExcludeNonOperational drops cancelled and diverted rows. Every
// delay-based aggregator applies this before touching dep_delay.
func ExcludeNonOperational(t Table) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if !r.Operational() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// filterAirline returns the rows operated by the given airline.
func filterAirline(t Table, airline string) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if r.Airline != airline {
			continue
		}
		out = append(out, r)
	}
	return out
}

// operationalForAirline is the shared precondition of the delay-based
// aggregators: exclusion filter plus airline filter in one pass.
func operationalForAirline(t Table, airline string) Table {
	out := make(Table, 0, len(t))
	for _, r := range t {
		if r.Airline != airline || !r.Operational() {
			continue
		}
		out = append(out, r)
	}
	return out
}

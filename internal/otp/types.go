package otp

import (
	"time"
)

// Flight status values. The CSV stores status as free text; anything outside
// this set is preserved on the record but matches none of the aggregators'
// status predicates.
type Status string

const (
	StatusNormal    Status = "normal"
	StatusCancelled Status = "cancelled"
	StatusDiverted  Status = "diverted"
)

// Delay classification thresholds, in minutes of departure delay.
const (
	// OnTimeLimitMinutes is the exclusive upper bound for an on-time
	// departure: dep_delay < 15 counts as on time.
	OnTimeLimitMinutes = 15.0

	// MaterialDelayMinutes is the exclusive lower bound for a materially
	// delayed departure (dep_delay > 60), used only by route ranking.
	MaterialDelayMinutes = 60.0

	// HourlyDelayMinutes is the exclusive lower bound for the hourly
	// delay pattern (dep_delay > 15).
	HourlyDelayMinutes = 15.0
)

// Record is one scheduled flight.
type Record struct {
	FlightDate   time.Time `json:"flight_date"`
	SchedDep     time.Time `json:"scheduled_departure_datetime"`
	HasSchedDep  bool      `json:"-"`
	Airline      string    `json:"airline"`
	DepIATA      string    `json:"dep_iata"`
	DepAirport   string    `json:"dep_airport"`
	ArrIATA      string    `json:"arr_iata"`
	ArrAirport   string    `json:"arr_airport"`
	ArrCountry   string    `json:"arr_country"`
	ArrLatitude  float64   `json:"arr_latitude"`
	ArrLongitude float64   `json:"arr_longitude"`
	DepDelay     float64   `json:"dep_delay"`
	Status       Status    `json:"flight_status"`
}

// Operational reports whether the flight actually operated, i.e. was
// neither cancelled nor diverted. Only operational rows carry a meaningful
// departure delay.
func (r Record) Operational() bool {
	return r.Status != StatusCancelled && r.Status != StatusDiverted
}

// Hour returns the scheduled departure hour (0-23). The second return is
// false when the scheduled departure timestamp was unparsable, in which
// case the hour is undefined.
func (r Record) Hour() (int, bool) {
	if !r.HasSchedDep {
		return 0, false
	}
	return r.SchedDep.Hour(), true
}

// Domestic reports whether the flight arrives inside the United States.
// Note this conflates "domestic" with "US-only" on purpose: the upstream
// data is US-carrier centric and the split must stay reproducible.
func (r Record) Domestic() bool {
	return r.ArrCountry == "US"
}

// Table is an immutable view over flight records. Aggregators never modify
// the backing slice; filters return fresh slices.
type Table []Record

// Dimension identifies a grouping column for group-by aggregations.
type Dimension string

const (
	DimAirline    Dimension = "airline"
	DimDepIATA    Dimension = "dep_iata"
	DimDepAirport Dimension = "dep_airport"
	DimArrIATA    Dimension = "arr_iata"
	DimArrCountry Dimension = "arr_country"
)

// Valid reports whether d names a known grouping column.
func (d Dimension) Valid() bool {
	switch d {
	case DimAirline, DimDepIATA, DimDepAirport, DimArrIATA, DimArrCountry:
		return true
	}
	return false
}

// value extracts the dimension's value from a record. Grouping keys are
// never empty for well-formed rows; the loader rejects rows missing them.
func (d Dimension) value(r Record) string {
	switch d {
	case DimAirline:
		return r.Airline
	case DimDepIATA:
		return r.DepIATA
	case DimDepAirport:
		return r.DepAirport
	case DimArrIATA:
		return r.ArrIATA
	case DimArrCountry:
		return r.ArrCountry
	}
	return ""
}

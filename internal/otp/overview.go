package otp

// OverviewCounts are the headline counters for one airline inside the
// selected date range.
type OverviewCounts struct {
	TotalFlights int `json:"total_flights"`
	Cancelled    int `json:"cancelled"`
	Diverted     int `json:"diverted"`
}

// Overview counts the airline's scheduled, cancelled, and diverted flights.
// Unlike the delay aggregators it runs over all rows, since cancelled and
// diverted flights are exactly what it reports.
func Overview(t Table, airline string) OverviewCounts {
	var c OverviewCounts
	for _, r := range t {
		if r.Airline != airline {
			continue
		}
		c.TotalFlights++
		switch r.Status {
		case StatusCancelled:
			c.Cancelled++
		case StatusDiverted:
			c.Diverted++
		}
	}
	return c
}

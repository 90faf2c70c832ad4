package otp

import "time"

// Summary bundles every aggregate view for one airline over one date window.
// It is the unit handed to exporters and chart builders.
type Summary struct {
	Airline string    `json:"airline"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`

	// GroupBy records the dimensions DelayMetrics was computed over, in
	// order, so consumers can label the key columns.
	GroupBy []Dimension `json:"group_by"`

	Overview            OverviewCounts         `json:"overview"`
	DelayMetrics        []DelayMetricRow       `json:"delay_metrics"`
	Cancellations       []AirportCancellations `json:"cancellations"`
	Distribution        []DistributionRow      `json:"delay_distribution"`
	RelativeDelay       []AirportDelayIndex    `json:"relative_delay"`
	DomesticRoutes      RouteRanking           `json:"domestic_routes"`
	InternationalRoutes RouteRanking           `json:"international_routes"`
	HourlyDelays        []HourlyDelayRow       `json:"hourly_delays"`
	HourlyTotals        []HourlyTotalRow       `json:"hourly_totals"`
	WeekdayVolume       []WeekdayCount         `json:"weekday_volume"`
	Arrivals            []ArrivalPoint         `json:"arrivals"`
}

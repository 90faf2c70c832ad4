package charts

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightpulse/internal/otp"
)

func sampleSummary() *otp.Summary {
	return &otp.Summary{
		Airline: "Delta Air Lines",
		From:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		To:      time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
		GroupBy: []otp.Dimension{otp.DimAirline},
		DelayMetrics: []otp.DelayMetricRow{
			{Keys: []string{"Delta Air Lines"}, OntimeCount: 8, TotalFlights: 10, PctOntime: 80, PctDelay: 20},
		},
		Cancellations: []otp.AirportCancellations{
			{DepIATA: "ATL", DepAirport: "Hartsfield-Jackson", FlightCount: 2},
		},
		Distribution: []otp.DistributionRow{
			{Value: "Delta Air Lines", Fractions: [otp.NumDelayBins]float64{0.6, 0.2, 0.1, 0.1, 0, 0}},
		},
		RelativeDelay: []otp.AirportDelayIndex{
			{DepAirport: "Hartsfield-Jackson", MeanDelay: 12, DelayRatio: 1.5},
			{DepAirport: "LaGuardia", MeanDelay: 0, DelayRatio: math.NaN()},
		},
		DomesticRoutes: otp.RouteRanking{
			MedianFlightCount: 3,
			Routes: []otp.Route{
				{DepIATA: "ATL", ArrIATA: "JFK", FlightCount: 10, DelayCount: 2, DelayRate: 0.2},
			},
		},
		HourlyDelays: []otp.HourlyDelayRow{{Hour: 8, Domestic: 2, International: 1}},
		HourlyTotals: []otp.HourlyTotalRow{{Hour: 8, TotalFlights: 10}},
		WeekdayVolume: []otp.WeekdayCount{
			{Weekday: "Monday", Flights: 12},
			{Weekday: "Friday", Flights: 20},
		},
		Arrivals: []otp.ArrivalPoint{
			{Latitude: 40.64, Longitude: -73.78, Airport: "JFK International", FlightCount: 5, MeanDelay: 11},
		},
	}
}

func renderHTML(t *testing.T, chart renderable) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf))
	return buf.String()
}

func TestCancellationsPie(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, CancellationsPie(s.Cancellations, s.Airline))
	assert.Contains(t, html, "Cancelled Flights by Departure Airport")
	assert.Contains(t, html, "ATL")
}

func TestDelayMetricsBar(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, DelayMetricsBar(s.DelayMetrics, s.Airline))
	assert.Contains(t, html, "On-Time Performance")
	assert.Contains(t, html, "delayed")
}

func TestDistributionHeatMapIncludesAllBinLabels(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, DistributionHeatMap(s.Distribution, s.Airline))
	for _, label := range otp.DelayBinLabels {
		assert.Contains(t, html, label)
	}
}

func TestRelativeDelayBarSkipsUndefinedRatios(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, RelativeDelayBar(s.RelativeDelay, s.Airline))
	assert.Contains(t, html, "Hartsfield-Jackson")
	assert.NotContains(t, html, "LaGuardia")
}

func TestHourlyDelayChartOverlaysTotals(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, HourlyDelayChart(s.HourlyDelays, s.HourlyTotals, s.Airline))
	assert.Contains(t, html, "domestic delayed")
	assert.Contains(t, html, "total flights")
	assert.Contains(t, html, "08:00")
}

func TestArrivalsGeoUsesWorldMap(t *testing.T) {
	s := sampleSummary()
	html := renderHTML(t, ArrivalsGeo(s.Arrivals, s.Airline))
	assert.Contains(t, html, "world")
	assert.Contains(t, html, "JFK International")
}

func TestDashboardRendersAllSections(t *testing.T) {
	s := sampleSummary()
	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(s, &buf))
	html := buf.String()

	for _, want := range []string{
		"On-Time Performance",
		"Cancelled Flights by Departure Airport",
		"Delay Distribution",
		"Delay Ratio vs Network Mean",
		"Most Delayed Routes (domestic)",
		"Delays by Departure Hour",
		"Flight Volume by Weekday",
		"Arrival Airports",
	} {
		assert.Contains(t, html, want)
	}
}

func TestExportHTML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ExportHTML(sampleSummary(), dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "arrivals.html"))
}

package exporter

import (
	"fmt"

	"flightpulse/internal/config"
	"flightpulse/internal/otp"
)

// SummaryExporter writes each aggregate table of a summary to its own CSV
// report file.
type SummaryExporter struct {
	csvWriter *CSVWriter
	paths     *config.Paths
}

// NewSummaryExporter creates a new summary report exporter
func NewSummaryExporter(paths *config.Paths) *SummaryExporter {
	return &SummaryExporter{
		csvWriter: NewCSVWriter(paths),
		paths:     paths,
	}
}

// ExportAll writes every table of the summary to its well-known report file.
func (e *SummaryExporter) ExportAll(s *otp.Summary) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"delay metrics", func() error { return e.ExportDelayMetrics(s.DelayMetrics, s.GroupBy, e.paths.DelayMetricsCSV) }},
		{"cancellations", func() error { return e.ExportCancellations(s.Cancellations, e.paths.CancellationsCSV) }},
		{"delay distribution", func() error { return e.ExportDistribution(s.Distribution, e.paths.DistributionCSV) }},
		{"relative delay", func() error { return e.ExportRelativeDelay(s.RelativeDelay, e.paths.RelativeDelayCSV) }},
		{"top routes", func() error {
			return e.ExportTopRoutes(s.DomesticRoutes, s.InternationalRoutes, e.paths.TopRoutesCSV)
		}},
		{"hourly delays", func() error { return e.ExportHourlyDelays(s.HourlyDelays, s.HourlyTotals, e.paths.HourlyDelaysCSV) }},
		{"weekday volume", func() error { return e.ExportWeekdayVolume(s.WeekdayVolume, e.paths.WeekdayVolumeCSV) }},
		{"arrivals", func() error { return e.ExportArrivals(s.Arrivals, e.paths.ArrivalsCSV) }},
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return fmt.Errorf("failed to export %s: %w", step.name, err)
		}
	}
	return nil
}

// ExportDelayMetrics writes on-time/delay percentages per group. The key
// columns are named after the dimensions the metrics were grouped by.
func (e *SummaryExporter) ExportDelayMetrics(rows []otp.DelayMetricRow, dims []otp.Dimension, outputPath string) error {
	headers := make([]string, 0, len(dims)+4)
	for _, d := range dims {
		headers = append(headers, string(d))
	}
	headers = append(headers, "ontime_count", "total_flights", "pct_ontime", "pct_delay")

	var records [][]string
	for _, row := range rows {
		rec := make([]string, 0, len(headers))
		rec = append(rec, row.Keys...)
		rec = append(rec,
			formatInt(row.OntimeCount),
			formatInt(row.TotalFlights),
			formatFloat(row.PctOntime),
			formatFloat(row.PctDelay),
		)
		records = append(records, rec)
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportCancellations writes cancelled flight counts per departure airport.
func (e *SummaryExporter) ExportCancellations(rows []otp.AirportCancellations, outputPath string) error {
	headers := []string{"dep_iata", "dep_airport", "cancelled_flights"}

	var records [][]string
	for _, row := range rows {
		records = append(records, []string{
			row.DepIATA,
			row.DepAirport,
			formatInt(row.FlightCount),
		})
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportDistribution writes per-group delay bin fractions, one column per bin.
func (e *SummaryExporter) ExportDistribution(rows []otp.DistributionRow, outputPath string) error {
	headers := make([]string, 0, otp.NumDelayBins+1)
	headers = append(headers, "group")
	for _, label := range otp.DelayBinLabels {
		headers = append(headers, label)
	}

	var records [][]string
	for _, row := range rows {
		rec := make([]string, 0, len(headers))
		rec = append(rec, row.Value)
		for _, f := range row.Fractions {
			rec = append(rec, formatRate(f))
		}
		records = append(records, rec)
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportRelativeDelay writes per-airport mean delay and its ratio to the
// airline-wide mean. An undefined ratio is written as an empty field.
func (e *SummaryExporter) ExportRelativeDelay(rows []otp.AirportDelayIndex, outputPath string) error {
	headers := []string{"dep_airport", "mean_delay", "delay_ratio"}

	var records [][]string
	for _, row := range rows {
		records = append(records, []string{
			row.DepAirport,
			formatFloat(row.MeanDelay),
			formatRate(row.DelayRatio),
		})
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportTopRoutes writes the domestic and international route rankings to a
// single file, tagged by scope.
func (e *SummaryExporter) ExportTopRoutes(domestic, international otp.RouteRanking, outputPath string) error {
	headers := []string{
		"scope", "dep_iata", "dep_airport", "arr_iata", "arr_airport",
		"flight_count", "delayed_flights", "delay_rate",
	}

	var records [][]string
	appendRoutes := func(scope string, ranking otp.RouteRanking) {
		for _, r := range ranking.Routes {
			records = append(records, []string{
				scope,
				r.DepIATA,
				r.DepAirport,
				r.ArrIATA,
				r.ArrAirport,
				formatInt(r.FlightCount),
				formatInt(r.DelayCount),
				formatRate(r.DelayRate),
			})
		}
	}
	appendRoutes("domestic", domestic)
	appendRoutes("international", international)

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportHourlyDelays joins delayed counts and totals on the departure hour.
// Hours with traffic but no delays get zero delayed counts.
func (e *SummaryExporter) ExportHourlyDelays(delayed []otp.HourlyDelayRow, totals []otp.HourlyTotalRow, outputPath string) error {
	headers := []string{"hour", "delayed_domestic", "delayed_international", "total_flights"}

	delayedByHour := make(map[int]otp.HourlyDelayRow, len(delayed))
	for _, row := range delayed {
		delayedByHour[row.Hour] = row
	}

	var records [][]string
	for _, total := range totals {
		d := delayedByHour[total.Hour]
		records = append(records, []string{
			formatInt(total.Hour),
			formatInt(d.Domestic),
			formatInt(d.International),
			formatInt(total.TotalFlights),
		})
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportWeekdayVolume writes flight counts per weekday, Monday first.
func (e *SummaryExporter) ExportWeekdayVolume(rows []otp.WeekdayCount, outputPath string) error {
	headers := []string{"weekday", "flights"}

	var records [][]string
	for _, row := range rows {
		records = append(records, []string{row.Weekday, formatInt(row.Flights)})
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

// ExportArrivals writes per-airport arrival volume and mean delay with
// coordinates.
func (e *SummaryExporter) ExportArrivals(rows []otp.ArrivalPoint, outputPath string) error {
	headers := []string{"arr_airport", "latitude", "longitude", "flight_count", "mean_delay"}

	var records [][]string
	for _, row := range rows {
		records = append(records, []string{
			row.Airport,
			formatRate(row.Latitude),
			formatRate(row.Longitude),
			formatInt(row.FlightCount),
			formatFloat(row.MeanDelay),
		})
	}

	return e.csvWriter.WriteSimpleCSV(outputPath, headers, records)
}

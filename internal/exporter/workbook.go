package exporter

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"flightpulse/internal/config"
	"flightpulse/internal/otp"
)

// WorkbookExporter writes a complete summary to a single XLSX workbook with
// one sheet per aggregate table.
type WorkbookExporter struct {
	paths *config.Paths
}

// NewWorkbookExporter creates a new workbook exporter
func NewWorkbookExporter(paths *config.Paths) *WorkbookExporter {
	return &WorkbookExporter{paths: paths}
}

// Export writes the summary workbook to outputPath. A relative path is
// resolved against the reports directory.
func (e *WorkbookExporter) Export(s *otp.Summary, outputPath string) error {
	fullPath := outputPath
	if !filepath.IsAbs(fullPath) {
		fullPath = e.paths.GetReportPath(fullPath)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Overview"); err != nil {
		return fmt.Errorf("failed to rename overview sheet: %w", err)
	}
	if err := e.writeOverview(f, s); err != nil {
		return err
	}

	sheets := []struct {
		name  string
		write func(*excelize.File, *otp.Summary) error
	}{
		{"Delay Metrics", e.writeDelayMetrics},
		{"Cancellations", e.writeCancellations},
		{"Delay Distribution", e.writeDistribution},
		{"Relative Delay", e.writeRelativeDelay},
		{"Top Routes", e.writeTopRoutes},
		{"Hourly Delays", e.writeHourlyDelays},
		{"Weekday Volume", e.writeWeekdayVolume},
		{"Arrivals", e.writeArrivals},
	}
	for _, sheet := range sheets {
		if err := sheet.write(f, s); err != nil {
			return fmt.Errorf("failed to write sheet %q: %w", sheet.name, err)
		}
	}

	if err := f.SaveAs(fullPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (e *WorkbookExporter) writeOverview(f *excelize.File, s *otp.Summary) error {
	rows := [][]interface{}{
		{"Airline", s.Airline},
		{"From", s.From.Format("2006-01-02")},
		{"To", s.To.Format("2006-01-02")},
		{"Total flights", s.Overview.TotalFlights},
		{"Cancelled", s.Overview.Cancelled},
		{"Diverted", s.Overview.Diverted},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Overview", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (e *WorkbookExporter) writeDelayMetrics(f *excelize.File, s *otp.Summary) error {
	headers := make([]string, 0, len(s.GroupBy)+4)
	for _, d := range s.GroupBy {
		headers = append(headers, string(d))
	}
	headers = append(headers, "ontime_count", "total_flights", "pct_ontime", "pct_delay")

	rows := make([][]interface{}, 0, len(s.DelayMetrics))
	for _, m := range s.DelayMetrics {
		row := make([]interface{}, 0, len(headers))
		for _, k := range m.Keys {
			row = append(row, k)
		}
		row = append(row, m.OntimeCount, m.TotalFlights, m.PctOntime, m.PctDelay)
		rows = append(rows, row)
	}
	return writeSheet(f, "Delay Metrics", headers, rows)
}

func (e *WorkbookExporter) writeCancellations(f *excelize.File, s *otp.Summary) error {
	rows := make([][]interface{}, 0, len(s.Cancellations))
	for _, c := range s.Cancellations {
		rows = append(rows, []interface{}{c.DepIATA, c.DepAirport, c.FlightCount})
	}
	return writeSheet(f, "Cancellations", []string{"dep_iata", "dep_airport", "cancelled_flights"}, rows)
}

func (e *WorkbookExporter) writeDistribution(f *excelize.File, s *otp.Summary) error {
	headers := make([]string, 0, otp.NumDelayBins+1)
	headers = append(headers, "group")
	headers = append(headers, otp.DelayBinLabels[:]...)

	rows := make([][]interface{}, 0, len(s.Distribution))
	for _, d := range s.Distribution {
		row := make([]interface{}, 0, len(headers))
		row = append(row, d.Value)
		for _, fraction := range d.Fractions {
			row = append(row, fraction)
		}
		rows = append(rows, row)
	}
	return writeSheet(f, "Delay Distribution", headers, rows)
}

func (e *WorkbookExporter) writeRelativeDelay(f *excelize.File, s *otp.Summary) error {
	rows := make([][]interface{}, 0, len(s.RelativeDelay))
	for _, r := range s.RelativeDelay {
		rows = append(rows, []interface{}{r.DepAirport, r.MeanDelay, cellValue(r.DelayRatio)})
	}
	return writeSheet(f, "Relative Delay", []string{"dep_airport", "mean_delay", "delay_ratio"}, rows)
}

func (e *WorkbookExporter) writeTopRoutes(f *excelize.File, s *otp.Summary) error {
	headers := []string{
		"scope", "dep_iata", "dep_airport", "arr_iata", "arr_airport",
		"flight_count", "delayed_flights", "delay_rate",
	}

	var rows [][]interface{}
	appendRoutes := func(scope string, ranking otp.RouteRanking) {
		for _, r := range ranking.Routes {
			rows = append(rows, []interface{}{
				scope, r.DepIATA, r.DepAirport, r.ArrIATA, r.ArrAirport,
				r.FlightCount, r.DelayCount, r.DelayRate,
			})
		}
	}
	appendRoutes("domestic", s.DomesticRoutes)
	appendRoutes("international", s.InternationalRoutes)

	return writeSheet(f, "Top Routes", headers, rows)
}

func (e *WorkbookExporter) writeHourlyDelays(f *excelize.File, s *otp.Summary) error {
	delayedByHour := make(map[int]otp.HourlyDelayRow, len(s.HourlyDelays))
	for _, row := range s.HourlyDelays {
		delayedByHour[row.Hour] = row
	}

	rows := make([][]interface{}, 0, len(s.HourlyTotals))
	for _, total := range s.HourlyTotals {
		d := delayedByHour[total.Hour]
		rows = append(rows, []interface{}{total.Hour, d.Domestic, d.International, total.TotalFlights})
	}
	return writeSheet(f, "Hourly Delays",
		[]string{"hour", "delayed_domestic", "delayed_international", "total_flights"}, rows)
}

func (e *WorkbookExporter) writeWeekdayVolume(f *excelize.File, s *otp.Summary) error {
	rows := make([][]interface{}, 0, len(s.WeekdayVolume))
	for _, w := range s.WeekdayVolume {
		rows = append(rows, []interface{}{w.Weekday, w.Flights})
	}
	return writeSheet(f, "Weekday Volume", []string{"weekday", "flights"}, rows)
}

func (e *WorkbookExporter) writeArrivals(f *excelize.File, s *otp.Summary) error {
	rows := make([][]interface{}, 0, len(s.Arrivals))
	for _, a := range s.Arrivals {
		rows = append(rows, []interface{}{a.Airport, a.Latitude, a.Longitude, a.FlightCount, a.MeanDelay})
	}
	return writeSheet(f, "Arrivals",
		[]string{"arr_airport", "latitude", "longitude", "flight_count", "mean_delay"}, rows)
}

// writeSheet creates a sheet and fills it with a header row plus data rows.
func writeSheet(f *excelize.File, name string, headers []string, rows [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// cellValue maps NaN to an empty cell. XLSX has no representation for NaN.
func cellValue(v float64) interface{} {
	if math.IsNaN(v) {
		return ""
	}
	return v
}

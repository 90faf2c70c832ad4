package otp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Column names of the flight-record CSV contract.
var requiredColumns = []string{
	"flight_date",
	"scheduled_departure_datetime",
	"airline",
	"dep_iata",
	"dep_airport",
	"arr_iata",
	"arr_airport",
	"arr_country",
	"arr_latitude",
	"arr_longitude",
	"dep_delay",
	"flight_status",
}

// Timestamp layouts accepted for scheduled_departure_datetime. Rows that
// match none of them keep HasSchedDep false and are only dropped by the
// hourly aggregator, whose hour axis they cannot join.
var schedDepLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
}

var flightDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// LoadCSV reads a flight-record table from a CSV file.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flight data: %w", err)
	}
	defer f.Close()
	return ReadRecords(f)
}

// ReadRecords parses a flight-record table from CSV content. The header
// must contain every required column (a missing column is a fatal
// precondition failure); individual rows that fail to parse are skipped
// with a warning so one bad row cannot poison a whole analysis session.
// A UTF-8 BOM is tolerated for Excel-produced files.
func ReadRecords(r io.Reader) (Table, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read flight data: %w", err)
	}
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse flight data CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("flight data CSV has no header row")
	}

	idx, err := columnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	table := make(Table, 0, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		rec, err := parseRecord(row, idx)
		if err != nil {
			skipped++
			slog.Warn("skipping malformed flight row",
				slog.Int("line", i+2),
				slog.String("error", err.Error()))
			continue
		}
		table = append(table, rec)
	}
	if skipped > 0 {
		slog.Warn("flight data loaded with skipped rows",
			slog.Int("loaded", len(table)),
			slog.Int("skipped", skipped))
	}
	return table, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("flight data CSV missing required column %q", col)
		}
	}
	return idx, nil
}

func parseRecord(row []string, idx map[string]int) (Record, error) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec Record
	var err error

	rec.FlightDate, err = parseAny(field("flight_date"), flightDateLayouts)
	if err != nil {
		return Record{}, fmt.Errorf("flight_date: %w", err)
	}

	// Grouping keys must be present on every row.
	rec.Airline = field("airline")
	rec.DepIATA = field("dep_iata")
	rec.DepAirport = field("dep_airport")
	rec.ArrIATA = field("arr_iata")
	rec.ArrAirport = field("arr_airport")
	rec.ArrCountry = field("arr_country")
	for col, v := range map[string]string{
		"airline": rec.Airline, "dep_iata": rec.DepIATA, "arr_iata": rec.ArrIATA,
	} {
		if v == "" {
			return Record{}, fmt.Errorf("empty grouping key %q", col)
		}
	}

	if sched, perr := parseAny(field("scheduled_departure_datetime"), schedDepLayouts); perr == nil {
		rec.SchedDep = sched
		rec.HasSchedDep = true
	}

	rec.ArrLatitude, err = parseFloat(field("arr_latitude"))
	if err != nil {
		return Record{}, fmt.Errorf("arr_latitude: %w", err)
	}
	rec.ArrLongitude, err = parseFloat(field("arr_longitude"))
	if err != nil {
		return Record{}, fmt.Errorf("arr_longitude: %w", err)
	}

	rec.Status = Status(strings.ToLower(field("flight_status")))

	// Cancelled and diverted rows routinely ship without a delay value;
	// the delay is meaningless for them either way.
	if delayStr := field("dep_delay"); delayStr != "" {
		rec.DepDelay, err = parseFloat(delayStr)
		if err != nil && rec.Operational() {
			return Record{}, fmt.Errorf("dep_delay: %w", err)
		}
	}

	return rec, nil
}

func parseAny(s string, layouts []string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", s)
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	return strconv.ParseFloat(s, 64)
}

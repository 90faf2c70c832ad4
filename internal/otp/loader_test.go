package otp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const csvHeader = "flight_date,scheduled_departure_datetime,airline,dep_iata,dep_airport,arr_iata,arr_airport,arr_country,arr_latitude,arr_longitude,dep_delay,flight_status"

func TestReadRecords(t *testing.T) {
	data := csvHeader + "\n" +
		"2024-06-03,2024-06-03 09:30:00,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.6413,-73.7781,12.5,normal\n" +
		"2024-06-03,2024-06-03 18:00:00,Delta Air Lines,ATL,Hartsfield-Jackson,LHR,Heathrow,GB,51.47,-0.4543,-3,normal\n"

	table, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table, 2)

	r := table[0]
	assert.Equal(t, day("2024-06-03"), r.FlightDate)
	assert.True(t, r.HasSchedDep)
	hour, ok := r.Hour()
	assert.True(t, ok)
	assert.Equal(t, 9, hour)
	assert.Equal(t, "Delta Air Lines", r.Airline)
	assert.Equal(t, StatusNormal, r.Status)
	assert.InDelta(t, 12.5, r.DepDelay, 1e-9)
	assert.True(t, r.Domestic())
	assert.False(t, table[1].Domestic())
}

func TestReadRecordsToleratesBOM(t *testing.T) {
	data := "\xEF\xBB\xBF" + csvHeader + "\n" +
		"2024-06-03,2024-06-03 09:30:00,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,0,normal\n"

	table, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestReadRecordsMissingColumnIsFatal(t *testing.T) {
	data := "flight_date,airline\n2024-06-03,Delta Air Lines\n"
	_, err := ReadRecords(strings.NewReader(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required column")
}

func TestReadRecordsKeepsUnparsableScheduledDeparture(t *testing.T) {
	data := csvHeader + "\n" +
		"2024-06-03,not-a-timestamp,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,20,normal\n"

	table, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.False(t, table[0].HasSchedDep)
	_, ok := table[0].Hour()
	assert.False(t, ok)
}

func TestReadRecordsSkipsMalformedRows(t *testing.T) {
	data := csvHeader + "\n" +
		"garbage-date,2024-06-03 09:30:00,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,0,normal\n" +
		"2024-06-03,2024-06-03 09:30:00,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,0,normal\n" +
		"2024-06-03,2024-06-03 09:30:00,,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,0,normal\n"

	table, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, table, 1)
}

func TestReadRecordsCancelledRowWithoutDelay(t *testing.T) {
	data := csvHeader + "\n" +
		"2024-06-03,2024-06-03 09:30:00,Delta Air Lines,ATL,Hartsfield-Jackson,JFK,JFK International,US,40.64,-73.77,,cancelled\n"

	table, err := ReadRecords(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, StatusCancelled, table[0].Status)
	assert.False(t, table[0].Operational())
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV("does/not/exist.csv")
	assert.Error(t, err)
}

package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func atHour(hour int, delay float64) Record {
	r := flight(delay)
	r.SchedDep = time.Date(2024, 6, 3, hour, 15, 0, 0, time.UTC)
	return r
}

func TestHourlyDelayPattern(t *testing.T) {
	intl := atHour(8, 45)
	intl.ArrIATA, intl.ArrCountry = "LHR", "GB"

	table := Table{
		atHour(8, 5),   // on time, counts toward totals only
		atHour(8, 30),  // delayed domestic
		intl,           // delayed international
		atHour(17, 90), // delayed domestic, different hour
		atHour(22, 15), // exactly 15 is not delayed here
	}

	delayed, totals := HourlyDelayPattern(table, testAirline)

	require.Len(t, delayed, 2)
	assert.Equal(t, HourlyDelayRow{Hour: 8, Domestic: 1, International: 1}, delayed[0])
	assert.Equal(t, HourlyDelayRow{Hour: 17, Domestic: 1, International: 0}, delayed[1])

	require.Len(t, totals, 3)
	assert.Equal(t, HourlyTotalRow{Hour: 8, TotalFlights: 3}, totals[0])
	assert.Equal(t, HourlyTotalRow{Hour: 17, TotalFlights: 1}, totals[1])
	assert.Equal(t, HourlyTotalRow{Hour: 22, TotalFlights: 1}, totals[2])
}

func TestHourlyDelayPatternDropsUnparsableTimestamps(t *testing.T) {
	bad := flight(120)
	bad.HasSchedDep = false

	delayed, totals := HourlyDelayPattern(Table{bad, atHour(9, 120)}, testAirline)
	require.Len(t, delayed, 1)
	assert.Equal(t, 9, delayed[0].Hour)
	require.Len(t, totals, 1)
	assert.Equal(t, 1, totals[0].TotalFlights)
}

func TestHourlyDelayPatternExcludesNonOperational(t *testing.T) {
	cancelled := atHour(9, 0)
	cancelled.Status = StatusCancelled

	delayed, totals := HourlyDelayPattern(Table{cancelled}, testAirline)
	assert.Empty(t, delayed)
	assert.Empty(t, totals)
}

func TestHourlyDelayPatternAbsentHoursNotZeroFilled(t *testing.T) {
	_, totals := HourlyDelayPattern(Table{atHour(6, 0), atHour(23, 0)}, testAirline)
	require.Len(t, totals, 2)
	assert.Equal(t, 6, totals[0].Hour)
	assert.Equal(t, 23, totals[1].Hour)
}

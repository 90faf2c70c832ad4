package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightpulse/internal/region"
)

func onDate(date, country string) Record {
	r := flight(0)
	r.FlightDate = day(date)
	r.ArrCountry = country
	return r
}

func TestWeekdayVolumeOrderedMondayToSunday(t *testing.T) {
	// 2024-06-02 is a Sunday, 2024-06-03 a Monday, 2024-06-05 a Wednesday.
	table := Table{
		onDate("2024-06-02", "US"),
		onDate("2024-06-05", "US"),
		onDate("2024-06-03", "US"),
		onDate("2024-06-02", "US"),
	}

	got, err := WeekdayVolume(table, testAirline, "world", region.Classify)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []WeekdayCount{
		{Weekday: "Monday", Flights: 1},
		{Weekday: "Wednesday", Flights: 1},
		{Weekday: "Sunday", Flights: 2},
	}, got)
}

func TestWeekdayVolumeUSARegionExcludesForeignArrivals(t *testing.T) {
	table := Table{
		onDate("2024-06-03", "US"),
		onDate("2024-06-03", "CA"),
		onDate("2024-06-03", "GB"),
	}

	got, err := WeekdayVolume(table, testAirline, "usa", region.Classify)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, WeekdayCount{Weekday: "Monday", Flights: 1}, got[0])
}

func TestWeekdayVolumeContinentFilter(t *testing.T) {
	table := Table{
		onDate("2024-06-03", "GB"),
		onDate("2024-06-04", "FR"),
		onDate("2024-06-03", "US"), // usa, not north america's europe
		onDate("2024-06-03", "JP"),
	}

	got, err := WeekdayVolume(table, testAirline, "Europe", region.Classify)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Monday", got[0].Weekday)
	assert.Equal(t, "Tuesday", got[1].Weekday)
}

func TestWeekdayVolumeWorldSkipsClassification(t *testing.T) {
	table := Table{onDate("2024-06-03", "ZZ")}
	got, err := WeekdayVolume(table, testAirline, "world", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestWeekdayVolumeNilClassifierForRegion(t *testing.T) {
	_, err := WeekdayVolume(Table{flight(0)}, testAirline, "europe", nil)
	assert.Error(t, err)
}

func TestWeekdayVolumeUnclassifiableCountryFallsOut(t *testing.T) {
	table := Table{onDate("2024-06-03", "ZZ")}
	got, err := WeekdayVolume(table, testAirline, "europe", region.Classify)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWeekdayVolumeExcludesNonOperational(t *testing.T) {
	cancelled := onDate("2024-06-03", "US")
	cancelled.Status = StatusCancelled
	got, err := WeekdayVolume(Table{cancelled}, testAirline, "world", region.Classify)
	require.NoError(t, err)
	assert.Empty(t, got)
}

package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDateRange(t *testing.T) {
	table := Table{}
	for _, d := range []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-10"} {
		r := flight(0)
		r.FlightDate = day(d)
		table = append(table, r)
	}

	t.Run("inclusive range", func(t *testing.T) {
		got := SelectDateRange(table, day("2024-06-01"), day("2024-06-03"))
		require.Len(t, got, 3)
		assert.Equal(t, day("2024-06-01"), got[0].FlightDate)
		assert.Equal(t, day("2024-06-03"), got[2].FlightDate)
	})

	t.Run("single day when start equals end", func(t *testing.T) {
		got := SelectDateRange(table, day("2024-06-02"), day("2024-06-02"))
		require.Len(t, got, 1)
		assert.Equal(t, day("2024-06-02"), got[0].FlightDate)
	})

	t.Run("zero rows without error", func(t *testing.T) {
		got := SelectDateRange(table, day("2024-07-01"), day("2024-07-31"))
		assert.Empty(t, got)
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := len(table)
		_ = SelectDateRange(table, day("2024-06-01"), day("2024-06-10"))
		assert.Len(t, table, before)
	})

	t.Run("ignores time of day on flight_date", func(t *testing.T) {
		r := flight(0)
		r.FlightDate = day("2024-06-05").Add(23 * 3600 * 1e9)
		got := SelectDateRange(Table{r}, day("2024-06-05"), day("2024-06-05"))
		assert.Len(t, got, 1)
	})
}

func TestExcludeNonOperational(t *testing.T) {
	normal := flight(5)
	cancelled := flight(0)
	cancelled.Status = StatusCancelled
	diverted := flight(0)
	diverted.Status = StatusDiverted

	got := ExcludeNonOperational(Table{normal, cancelled, diverted, normal})
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, StatusNormal, r.Status)
	}
}

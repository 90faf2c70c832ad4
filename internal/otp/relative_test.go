package otp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeDelayScenario(t *testing.T) {
	// Airport P mean 20 (one row), airport Q mean 5 (two rows):
	// global mean (20+5+5)/3 = 10, so P ratio is 2.0 and Q ratio 0.5.
	p := flight(20)
	p.DepAirport = "P"
	q := flight(5)
	q.DepAirport = "Q"
	table := append(Table{p}, repeat(2, q)...)

	got := RelativeDelay(table, testAirline)
	require.Len(t, got, 2)
	assert.Equal(t, "P", got[0].DepAirport)
	assert.InDelta(t, 20.0, got[0].MeanDelay, 1e-9)
	assert.InDelta(t, 2.0, got[0].DelayRatio, 1e-9)
	assert.Equal(t, "Q", got[1].DepAirport)
	assert.InDelta(t, 0.5, got[1].DelayRatio, 1e-9)
}

func TestRelativeDelayRatioTimesGlobalMeanEqualsMeanDelay(t *testing.T) {
	table := Table{}
	for i, delay := range []float64{3, 8, 21, 34, 55, 89} {
		r := flight(delay)
		if i%2 == 0 {
			r.DepAirport = "Alpha"
		} else {
			r.DepAirport = "Beta"
		}
		table = append(table, r)
	}

	all := 0.0
	for _, r := range table {
		all += r.DepDelay
	}
	globalMean := all / float64(len(table))

	for _, row := range RelativeDelay(table, testAirline) {
		assert.InDelta(t, row.MeanDelay, row.DelayRatio*globalMean, 1e-9)
		assert.Equal(t, row.MeanDelay > globalMean, row.DelayRatio > 1)
	}
}

func TestRelativeDelayUndefinedWhenGlobalMeanZero(t *testing.T) {
	early := flight(-10)
	late := flight(10)
	got := RelativeDelay(Table{early, late}, testAirline)
	require.Len(t, got, 1)
	assert.True(t, math.IsNaN(got[0].DelayRatio), "zero global mean must yield NaN, not 0")
	assert.InDelta(t, 0.0, got[0].MeanDelay, 1e-9)
}

func TestRelativeDelayEmptyInput(t *testing.T) {
	assert.Empty(t, RelativeDelay(Table{}, testAirline))

	cancelled := flight(50)
	cancelled.Status = StatusCancelled
	assert.Empty(t, RelativeDelay(Table{cancelled}, testAirline))
}

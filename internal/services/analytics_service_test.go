package services

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"flightpulse/internal/config"
	"flightpulse/internal/infrastructure"
	"flightpulse/internal/otp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRecord(date string, delay float64) otp.Record {
	d, _ := time.Parse("2006-01-02", date)
	return otp.Record{
		FlightDate:   d,
		SchedDep:     d.Add(9 * time.Hour),
		HasSchedDep:  true,
		Airline:      "Delta Air Lines",
		DepIATA:      "ATL",
		DepAirport:   "Hartsfield-Jackson",
		ArrIATA:      "JFK",
		ArrAirport:   "John F. Kennedy International",
		ArrCountry:   "US",
		ArrLatitude:  40.6413,
		ArrLongitude: -73.7781,
		DepDelay:     delay,
		Status:       otp.StatusNormal,
	}
}

func newTestService(t *testing.T, table otp.Table) *AnalyticsService {
	t.Helper()
	return NewAnalyticsServiceFromTable(config.Default(), testLogger(), table)
}

func TestOverviewUsesDefaultAirline(t *testing.T) {
	cancelled := testRecord("2024-06-03", 0)
	cancelled.Status = otp.StatusCancelled
	other := testRecord("2024-06-03", 0)
	other.Airline = "United Airlines"

	svc := newTestService(t, otp.Table{testRecord("2024-06-03", 5), cancelled, other})

	got, err := svc.Overview(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, otp.OverviewCounts{TotalFlights: 2, Cancelled: 1}, got)
}

func TestQueryDateWindow(t *testing.T) {
	svc := newTestService(t, otp.Table{
		testRecord("2024-06-01", 5),
		testRecord("2024-06-15", 5),
		testRecord("2024-06-30", 5),
	})

	got, err := svc.Overview(context.Background(), Query{
		From: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalFlights)
}

func TestConfiguredDateWindowAppliesWhenQueryHasNone(t *testing.T) {
	cfg := config.Default()
	cfg.Analytics.DateFrom = "2024-06-10"
	cfg.Analytics.DateTo = "2024-06-20"
	svc := NewAnalyticsServiceFromTable(cfg, testLogger(), otp.Table{
		testRecord("2024-06-01", 5),
		testRecord("2024-06-15", 5),
	})

	got, err := svc.Overview(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalFlights)
}

func TestDelayMetricsDefaultsToAirlineDimension(t *testing.T) {
	svc := newTestService(t, otp.Table{
		testRecord("2024-06-03", 5),
		testRecord("2024-06-03", 30),
	})

	rows, err := svc.DelayMetrics(context.Background(), Query{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Delta Air Lines"}, rows[0].Keys)
	assert.InDelta(t, 50.0, rows[0].PctOntime, 1e-9)
}

func TestQueriesRecordContextMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := infrastructure.CreateAppMetrics(provider.Meter("test"))
	require.NoError(t, err)
	ctx := infrastructure.ContextWithAppMetrics(context.Background(), metrics)

	svc := newTestService(t, otp.Table{testRecord("2024-06-03", 5)})

	_, err = svc.Overview(ctx, Query{})
	require.NoError(t, err)
	_, err = svc.WeekdayVolume(ctx, Query{Region: "atlantis"})
	require.Error(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if data, ok := m.Data.(metricdata.Sum[int64]); ok {
				var total int64
				for _, dp := range data.DataPoints {
					total += dp.Value
				}
				sums[m.Name] = total
			}
		}
	}

	assert.Equal(t, int64(2), sums["analytics_queries_total"])
	assert.Equal(t, int64(1), sums["analytics_query_errors_total"])
}

func TestWeekdayVolumeRejectsUnknownRegion(t *testing.T) {
	svc := newTestService(t, otp.Table{testRecord("2024-06-03", 5)})

	_, err := svc.WeekdayVolume(context.Background(), Query{Region: "atlantis"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

func TestSummarizePopulatesEveryTable(t *testing.T) {
	intl := testRecord("2024-06-04", 90)
	intl.ArrIATA, intl.ArrAirport = "LHR", "Heathrow"
	intl.ArrCountry = "GB"
	cancelled := testRecord("2024-06-03", 0)
	cancelled.Status = otp.StatusCancelled

	svc := newTestService(t, otp.Table{
		testRecord("2024-06-03", 5),
		testRecord("2024-06-03", 30),
		testRecord("2024-06-04", 70),
		intl,
		cancelled,
	})

	sum, err := svc.Summarize(context.Background(), Query{})
	require.NoError(t, err)

	assert.Equal(t, "Delta Air Lines", sum.Airline)
	assert.Equal(t, []otp.Dimension{otp.DimAirline}, sum.GroupBy)
	assert.Equal(t, 5, sum.Overview.TotalFlights)
	assert.Equal(t, 1, sum.Overview.Cancelled)
	assert.NotEmpty(t, sum.DelayMetrics)
	assert.NotEmpty(t, sum.Cancellations)
	assert.NotEmpty(t, sum.Distribution)
	assert.NotEmpty(t, sum.RelativeDelay)
	assert.NotEmpty(t, sum.HourlyTotals)
	assert.NotEmpty(t, sum.WeekdayVolume)
	assert.NotEmpty(t, sum.Arrivals)
}

func TestSummarizeEmptyTable(t *testing.T) {
	svc := newTestService(t, otp.Table{})

	sum, err := svc.Summarize(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Overview.TotalFlights)
	assert.Empty(t, sum.DelayMetrics)
	assert.Empty(t, sum.Arrivals)
}

func TestSummarizeRejectsUnknownRegion(t *testing.T) {
	svc := newTestService(t, otp.Table{testRecord("2024-06-03", 5)})

	_, err := svc.Summarize(context.Background(), Query{Region: "narnia"})
	assert.ErrorIs(t, err, ErrUnknownRegion)
}

package infrastructure

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func otelTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDefaultOTelConfig(t *testing.T) {
	cfg := DefaultOTelConfig()

	assert.Equal(t, ServiceName, cfg.ServiceName)
	assert.Equal(t, "prometheus", cfg.MetricExporter)
	assert.True(t, cfg.EnableMetrics)
	assert.True(t, cfg.EnableTracing)
	assert.Equal(t, 1.0, cfg.SampleRatio)
}

func TestInitializeOTelDisabled(t *testing.T) {
	cfg := &OTelConfig{
		ServiceName:    "test",
		ServiceVersion: "0.0.1",
		Environment:    "test",
		TraceExporter:  "none",
		MetricExporter: "none",
		EnableMetrics:  true,
		EnableTracing:  true,
		SampleRatio:    1.0,
	}

	providers, err := InitializeOTel(cfg, otelTestLogger())
	require.NoError(t, err)
	assert.Nil(t, providers.TracerProvider)
	assert.Nil(t, providers.MeterProvider)
}

func TestInitializeOTelUnsupportedExporter(t *testing.T) {
	cfg := &OTelConfig{
		TraceExporter: "otlp",
		EnableTracing: true,
	}

	_, err := InitializeOTel(cfg, otelTestLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported trace exporter")
}

func TestCreateAppMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	metrics, err := CreateAppMetrics(meter)
	require.NoError(t, err)
	require.NotNil(t, metrics)

	assert.NotNil(t, metrics.HTTPRequestsTotal)
	assert.NotNil(t, metrics.QueriesTotal)
	assert.NotNil(t, metrics.FlightsLoaded)
	assert.NotNil(t, metrics.ExportsTotal)
}

func TestRecordMetricsNilSafe(t *testing.T) {
	ctx := context.Background()

	// Must not panic with nil metrics
	RecordQueryMetrics(ctx, nil, "delay_metrics", time.Second, nil)
	RecordExportMetrics(ctx, nil, "csv", time.Second, errors.New("boom"))
	RecordChartRender(ctx, nil, "dashboard", nil)
}

func TestRecordQueryMetrics(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := CreateAppMetrics(meter)
	require.NoError(t, err)

	ctx := context.Background()
	RecordQueryMetrics(ctx, metrics, "hourly_delays", 50*time.Millisecond, nil)
	RecordQueryMetrics(ctx, metrics, "hourly_delays", 10*time.Millisecond, errors.New("bad dimension"))
}

func TestRecordHelpersEmitInstruments(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	metrics, err := CreateAppMetrics(provider.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	RecordQueryMetrics(ctx, metrics, "overview", 5*time.Millisecond, nil)
	RecordQueryMetrics(ctx, metrics, "overview", time.Millisecond, errors.New("boom"))
	RecordExportMetrics(ctx, metrics, "csv", 10*time.Millisecond, nil)
	RecordChartRender(ctx, metrics, "dashboard", nil)

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
	assert.Equal(t, int64(1), sums["report_exports_total"])
	assert.Equal(t, int64(1), sums["chart_renders_total"])
}

func TestAppMetricsContext(t *testing.T) {
	assert.Nil(t, AppMetricsFromContext(context.Background()))

	metrics, err := CreateAppMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	ctx := ContextWithAppMetrics(context.Background(), metrics)
	assert.Same(t, metrics, AppMetricsFromContext(ctx))
}

func TestTraceIDFromContextInvalid(t *testing.T) {
	assert.Empty(t, TraceIDFromContext(context.Background()))
}

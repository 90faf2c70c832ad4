package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightpulse/internal/config"
	"flightpulse/internal/infrastructure"
	"flightpulse/internal/otp"
	"flightpulse/internal/services"
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

// newTestApplication builds an application around an in-memory table with
// observability exporters disabled.
func newTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Port = 0
	cfg.Security.RateLimit.Enabled = false

	logger := testLogger()

	otelCfg := infrastructure.DefaultOTelConfig()
	otelCfg.TraceExporter = "none"
	otelCfg.MetricExporter = "none"
	providers, err := infrastructure.InitializeOTel(otelCfg, logger)
	require.NoError(t, err)

	table := otp.Table{
		testRecord("2024-06-03", 5),
		testRecord("2024-06-03", 30),
		testRecord("2024-06-04", 75),
	}

	app := &Application{
		Config:        cfg,
		Paths:         config.NewPaths(t.TempDir()),
		Logger:        logger,
		OTelProviders: providers,
	}
	app.AnalyticsService = services.NewAnalyticsServiceFromTable(cfg, logger, table)
	app.HealthService = services.NewHealthService(config.AppVersion, BuildTime, app.AnalyticsService, logger)
	app.setupRouter()
	app.createServer()

	return app
}

func TestSetupRouterServesAPIRoutes(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"health", "/api/health", http.StatusOK},
		{"version", "/api/version", http.StatusOK},
		{"overview", "/api/analytics/overview", http.StatusOK},
		{"delay metrics", "/api/analytics/delay-metrics?group_by=airline", http.StatusOK},
		{"summary", "/api/analytics/summary", http.StatusOK},
		{"runtime metrics", "/api/metrics/runtime", http.StatusOK},
		{"report files", "/api/reports/files", http.StatusOK},
		{"invalid date", "/api/analytics/overview?from=01/02/2024", http.StatusBadRequest},
		{"unknown chart", "/charts/bogus", http.StatusNotFound},
		{"unknown route", "/api/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSetupRouterServesDashboard(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	for _, path := range []string{"/", "/charts/dashboard"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html", path)
	}
}

func TestSetupRouterAppliesSecurityHeaders(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestPrometheusEndpointAbsentWhenDisabled(t *testing.T) {
	app := newTestApplication(t)
	server := httptest.NewServer(app.Router)
	defer server.Close()

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateServerUsesConfiguredTimeouts(t *testing.T) {
	app := newTestApplication(t)

	require.NotNil(t, app.Server)
	assert.Equal(t, app.Config.Server.ReadTimeout, app.Server.ReadTimeout)
	assert.Equal(t, app.Config.Server.WriteTimeout, app.Server.WriteTimeout)
	assert.Equal(t, app.Config.Server.IdleTimeout, app.Server.IdleTimeout)
	assert.Equal(t, app.Config.Server.MaxHeaderBytes, app.Server.MaxHeaderBytes)
}

func TestGetCORSConfigUsesAllowedOrigins(t *testing.T) {
	app := newTestApplication(t)
	app.Config.Security.AllowedOrigins = []string{"http://example.com"}

	got := app.getCORSConfig()
	assert.Equal(t, []string{"http://example.com"}, got.AllowedOrigins)
	assert.Contains(t, got.AllowedMethods, "GET")
}

func TestStartAndStop(t *testing.T) {
	app := newTestApplication(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, app.Start(ctx, cancel))

	// Give ListenAndServe a moment to bind before shutting down
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, app.Stop(context.Background()))
}

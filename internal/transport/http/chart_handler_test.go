package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "flightpulse/internal/errors"
	"flightpulse/internal/otp"
)

func chartTestSummary() *otp.Summary {
	return &otp.Summary{
		Airline: "Delta Air Lines",
		DelayMetrics: []otp.DelayMetricRow{
			{Keys: []string{"Delta Air Lines"}, OntimeCount: 80, TotalFlights: 100, PctOntime: 80, PctDelay: 20},
		},
		Cancellations: []otp.AirportCancellations{
			{DepIATA: "ATL", DepAirport: "Hartsfield-Jackson", FlightCount: 3},
		},
		HourlyDelays: []otp.HourlyDelayRow{{Hour: 9, Domestic: 2, International: 1}},
		HourlyTotals: []otp.HourlyTotalRow{{Hour: 9, TotalFlights: 30}},
	}
}

func newChartTestServer(t *testing.T, stub *stubAnalyticsService) *httptest.Server {
	t.Helper()
	logger := testLogger()
	handler := NewChartHandler(stub, logger, apierrors.NewErrorHandler(logger, false))
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server
}

func TestGetChartRendersHTML(t *testing.T) {
	stub := &stubAnalyticsService{summary: chartTestSummary()}
	server := newChartTestServer(t, stub)

	for _, name := range []string{"delay-metrics", "cancellations", "hourly-delays"} {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Get(server.URL + "/" + name)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
			assert.Contains(t, string(body), "echarts")
		})
	}
}

func TestGetChartUnknownName(t *testing.T) {
	server := newChartTestServer(t, &stubAnalyticsService{summary: chartTestSummary()})

	resp, err := http.Get(server.URL + "/bogus")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetDashboardRendersEveryChart(t *testing.T) {
	stub := &stubAnalyticsService{summary: chartTestSummary()}
	server := newChartTestServer(t, stub)

	resp, err := http.Get(server.URL + "/dashboard")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, string(body), "Delta Air Lines")
}

func TestGetChartRejectsBadQuery(t *testing.T) {
	server := newChartTestServer(t, &stubAnalyticsService{summary: chartTestSummary()})

	resp, err := http.Get(server.URL + "/delay-metrics?from=not-a-date")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

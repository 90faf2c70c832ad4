package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightpulse/internal/config"
	apierrors "flightpulse/internal/errors"
)

func newReportTestServer(t *testing.T, stub *stubAnalyticsService) (*httptest.Server, *config.Paths) {
	t.Helper()
	logger := testLogger()
	paths := config.NewPaths(t.TempDir())
	handler := NewReportHandler(stub, paths, logger, apierrors.NewErrorHandler(logger, false))
	server := httptest.NewServer(handler.Routes())
	t.Cleanup(server.Close)
	return server, paths
}

func TestExportWritesReportFiles(t *testing.T) {
	stub := &stubAnalyticsService{summary: chartTestSummary()}
	server, paths := newReportTestServer(t, stub)

	resp, err := http.Post(server.URL+"/export?airline=Delta+Air+Lines", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{
		paths.DelayMetricsCSV,
		paths.CancellationsCSV,
		paths.SummaryWorkbook,
		filepath.Join(paths.ChartsDir, "index.html"),
	} {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
}

func TestListFilesEmptyDirectory(t *testing.T) {
	server, _ := newReportTestServer(t, &stubAnalyticsService{})

	status, body := getJSON(t, server.URL+"/files")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(0), body["count"])
}

func TestListFilesReturnsReports(t *testing.T) {
	server, paths := newReportTestServer(t, &stubAnalyticsService{})
	require.NoError(t, os.MkdirAll(paths.ReportsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(paths.ReportsDir, "delay_metrics.csv"), []byte("keys\n"), 0644))

	status, body := getJSON(t, server.URL+"/files")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
	assert.Contains(t, body["files"], "delay_metrics.csv")
}

func TestDownloadExistingReport(t *testing.T) {
	server, paths := newReportTestServer(t, &stubAnalyticsService{})
	require.NoError(t, os.MkdirAll(paths.ReportsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(paths.ReportsDir, "arrivals.csv"), []byte("arr_airport\n"), 0644))

	resp, err := http.Get(server.URL + "/download/arrivals.csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "arrivals.csv")
}

func TestDownloadMissingReport(t *testing.T) {
	server, _ := newReportTestServer(t, &stubAnalyticsService{})

	resp, err := http.Get(server.URL + "/download/nope.csv")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadRejectsTraversal(t *testing.T) {
	logger := testLogger()
	handler := NewReportHandler(&stubAnalyticsService{}, config.NewPaths(t.TempDir()), logger, apierrors.NewErrorHandler(logger, false))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("filename", "../../etc/passwd")

	req := httptest.NewRequest("GET", "/download/x", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	handler.Download(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportRejectsBadQuery(t *testing.T) {
	server, _ := newReportTestServer(t, &stubAnalyticsService{})

	resp, err := http.Post(server.URL+"/export?from=yesterday", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

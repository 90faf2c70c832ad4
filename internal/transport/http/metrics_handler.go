package http

import (
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MetricsHandler exposes Prometheus metrics and basic runtime stats
type MetricsHandler struct {
	prometheus http.Handler
	startTime  time.Time
}

// NewMetricsHandler creates a new metrics handler. The prometheus handler
// may be nil when metrics are disabled.
func NewMetricsHandler(prometheus http.Handler) *MetricsHandler {
	return &MetricsHandler{
		prometheus: prometheus,
		startTime:  time.Now(),
	}
}

// Routes sets up the metrics routes
func (h *MetricsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetPrometheus)
	r.Get("/runtime", h.GetRuntime)
	return r
}

// GetPrometheus serves the Prometheus scrape endpoint
func (h *MetricsHandler) GetPrometheus(w http.ResponseWriter, r *http.Request) {
	if h.prometheus == nil {
		http.Error(w, "metrics disabled", http.StatusNotFound)
		return
	}
	h.prometheus.ServeHTTP(w, r)
}

// GetRuntime returns basic Go runtime statistics
func (h *MetricsHandler) GetRuntime(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	render.JSON(w, r, map[string]interface{}{
		"status": "ok",
		"runtime": map[string]interface{}{
			"goroutines":       runtime.NumGoroutine(),
			"memory_alloc_mb":  memStats.Alloc / 1024 / 1024,
			"memory_system_mb": memStats.Sys / 1024 / 1024,
			"gc_count":         memStats.NumGC,
			"uptime_seconds":   time.Since(h.startTime).Seconds(),
		},
	})
}

package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	analytics *AnalyticsService
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Services  map[string]interface{} `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// NewHealthService creates a new health service with injected dependencies
func NewHealthService(version, buildTime string, analytics *AnalyticsService, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("build_time", buildTime))

	return &HealthService{
		version:   version,
		buildTime: buildTime,
		analytics: analytics,
		startTime: time.Now(),
		logger:    logger,
	}
}

// Check reports overall health. The service is degraded when no flight data
// is loaded.
func (h *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   h.version,
		Runtime: map[string]interface{}{
			"go_version":     runtime.Version(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
			"goroutines":     runtime.NumGoroutine(),
			"uptime_seconds": time.Since(h.startTime).Seconds(),
		},
		Services: map[string]interface{}{},
	}

	analytics := ServiceHealth{Status: "healthy"}
	if h.analytics == nil || h.analytics.FlightCount() == 0 {
		analytics = ServiceHealth{
			Status:  "degraded",
			Message: ErrNoFlightData.Error(),
		}
		status.Status = "degraded"
	} else {
		status.Services["flights_loaded"] = h.analytics.FlightCount()
		status.Services["data_loaded_at"] = h.analytics.LoadedAt()
	}
	status.Services["analytics"] = analytics

	h.logger.DebugContext(ctx, "health check", slog.String("status", status.Status))
	return status
}

// Version returns version information for the version endpoint.
func (h *HealthService) Version() map[string]string {
	return map[string]string{
		"version":    h.version,
		"build_time": h.buildTime,
		"go_version": runtime.Version(),
	}
}

package config

import "time"

// Application constants
const (
	// Application Info
	AppName    = "FlightPulse"
	AppVersion = "1.0.0"

	// Rate Limiting
	DefaultRateLimit = 100 // requests per minute
	DefaultBurstSize = 50

	// Network Timeouts
	DefaultHTTPTimeout      = 30 * time.Second
	ReportGenerationTimeout = 15 * time.Minute

	// File Paths (relative to executable)
	DefaultDataDir    = "data"
	DefaultLogsDir    = "logs"
	DefaultWebDir     = "web"
	DefaultReportsDir = "data/reports"
	DefaultChartsDir  = "data/charts"

	// Log Settings
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	MaxLogFileSize    = 100 * 1024 * 1024 // 100MB
	MaxLogFileAge     = 30                // days
	MaxLogFileBackups = 10

	// API Endpoints (internal)
	APIBasePath       = "/api"
	AnalyticsEndpoint = "/api/analytics"
	HealthEndpoint    = "/api/health"
	MetricsEndpoint   = "/metrics"
)

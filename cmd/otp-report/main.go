package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"flightpulse/internal/charts"
	"flightpulse/internal/config"
	"flightpulse/internal/exporter"
	"flightpulse/internal/infrastructure"
	"flightpulse/internal/services"
)

func main() {
	csvPath := flag.String("csv", "", "flights CSV to analyze (defaults to data/flights.csv)")
	airline := flag.String("airline", "", "airline to report on (defaults to configured airline)")
	from := flag.String("from", "", "start date YYYY-MM-DD (inclusive)")
	to := flag.String("to", "", "end date YYYY-MM-DD (inclusive)")
	outputDir := flag.String("out", "", "output directory for reports (defaults to data/reports)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	paths, err := config.GetPaths()
	if err != nil {
		logger.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *csvPath != "" {
		cfg.Analytics.FlightsCSV = *csvPath
	}
	if *outputDir != "" {
		paths.RebaseReports(*outputDir)
	}

	q := services.Query{Airline: *airline}
	if q.From, err = parseDate(*from); err != nil {
		logger.Error("Invalid -from date", "value", *from, "error", err)
		os.Exit(1)
	}
	if q.To, err = parseDate(*to); err != nil {
		logger.Error("Invalid -to date", "value", *to, "error", err)
		os.Exit(1)
	}

	logger.Info("Loading flight data", "path", cfg.Analytics.FlightsCSV)
	service, err := services.NewAnalyticsService(cfg, logger)
	if err != nil {
		logger.Error("Failed to load flight data", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	summary, err := service.Summarize(ctx, q)
	if err != nil {
		logger.Error("Failed to compute summary", "error", err)
		os.Exit(1)
	}

	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	if err := exporter.NewSummaryExporter(paths).ExportAll(summary); err != nil {
		logger.Error("CSV export failed", "error", err)
		os.Exit(1)
	}

	if err := exporter.NewWorkbookExporter(paths).Export(summary, paths.SummaryWorkbook); err != nil {
		logger.Error("Workbook export failed", "error", err)
		os.Exit(1)
	}

	if err := charts.ExportHTML(summary, paths.ChartsDir); err != nil {
		logger.Error("Chart export failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Report generation complete",
		"airline", summary.Airline,
		"flights", service.FlightCount(),
		"reports_dir", paths.ReportsDir,
		"workbook", paths.SummaryWorkbook,
		"charts_dir", paths.ChartsDir)

	fmt.Printf("Reports written to %s\n", paths.ReportsDir)
}

// parseDate parses an optional YYYY-MM-DD flag value. Empty means unset.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

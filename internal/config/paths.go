package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations.
type Paths struct {
	BaseDir    string
	DataDir    string
	ReportsDir string
	ChartsDir  string
	LogsDir    string
	WebDir     string
	StaticDir  string

	// Well-known report files
	FlightsCSV       string
	SummaryWorkbook  string
	DelayMetricsCSV  string
	CancellationsCSV string
	DistributionCSV  string
	RelativeDelayCSV string
	TopRoutesCSV     string
	HourlyDelaysCSV  string
	WeekdayVolumeCSV string
	ArrivalsCSV      string
}

// NewPaths builds the path layout rooted at baseDir.
//
// Directory structure:
//
//	baseDir/
//	  ├── data/
//	  │   ├── flights.csv     (ingested flight records)
//	  │   ├── reports/        (generated CSV and XLSX reports)
//	  │   └── charts/         (rendered chart HTML)
//	  ├── logs/
//	  └── web/
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	reportsDir := filepath.Join(dataDir, "reports")
	chartsDir := filepath.Join(dataDir, "charts")

	return &Paths{
		BaseDir:    baseDir,
		DataDir:    dataDir,
		ReportsDir: reportsDir,
		ChartsDir:  chartsDir,
		LogsDir:    filepath.Join(baseDir, "logs"),
		WebDir:     filepath.Join(baseDir, "web"),
		StaticDir:  filepath.Join(baseDir, "web", "static"),

		FlightsCSV:       filepath.Join(dataDir, "flights.csv"),
		SummaryWorkbook:  filepath.Join(reportsDir, "otp_summary.xlsx"),
		DelayMetricsCSV:  filepath.Join(reportsDir, "delay_metrics.csv"),
		CancellationsCSV: filepath.Join(reportsDir, "cancellations.csv"),
		DistributionCSV:  filepath.Join(reportsDir, "delay_distribution.csv"),
		RelativeDelayCSV: filepath.Join(reportsDir, "relative_delay.csv"),
		TopRoutesCSV:     filepath.Join(reportsDir, "top_routes.csv"),
		HourlyDelaysCSV:  filepath.Join(reportsDir, "hourly_delays.csv"),
		WeekdayVolumeCSV: filepath.Join(reportsDir, "weekday_volume.csv"),
		ArrivalsCSV:      filepath.Join(reportsDir, "arrivals.csv"),
	}
}

// GetPaths returns the application paths relative to the executable location.
// Paths are always relative to the executable directory, never the current
// working directory.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ReportsDir,
		p.ChartsDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	return nil
}

// GetReportPath returns the path for a report file
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetChartPath returns the path for a rendered chart file
func (p *Paths) GetChartPath(filename string) string {
	return filepath.Join(p.ChartsDir, filename)
}

// GetLogPath returns the path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetWebFilePath returns the path to a web file
func (p *Paths) GetWebFilePath(filename string) string {
	return filepath.Join(p.WebDir, filename)
}

// RebaseReports points the reports directory and every well-known report
// file at dir. Charts move to a charts/ subdirectory of dir.
func (p *Paths) RebaseReports(dir string) {
	p.ReportsDir = dir
	p.ChartsDir = filepath.Join(dir, "charts")

	p.SummaryWorkbook = filepath.Join(dir, "otp_summary.xlsx")
	p.DelayMetricsCSV = filepath.Join(dir, "delay_metrics.csv")
	p.CancellationsCSV = filepath.Join(dir, "cancellations.csv")
	p.DistributionCSV = filepath.Join(dir, "delay_distribution.csv")
	p.RelativeDelayCSV = filepath.Join(dir, "relative_delay.csv")
	p.TopRoutesCSV = filepath.Join(dir, "top_routes.csv")
	p.HourlyDelaysCSV = filepath.Join(dir, "hourly_delays.csv")
	p.WeekdayVolumeCSV = filepath.Join(dir, "weekday_volume.csv")
	p.ArrivalsCSV = filepath.Join(dir, "arrivals.csv")
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

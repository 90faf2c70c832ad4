package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/components"

	"flightpulse/internal/otp"
)

// Dashboard assembles every chart of a summary into a single page.
func Dashboard(s *otp.Summary) *components.Page {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("FlightPulse — %s", s.Airline)
	page.SetLayout(components.PageCenterLayout)

	page.AddCharts(
		DelayMetricsBar(s.DelayMetrics, s.Airline),
		CancellationsPie(s.Cancellations, s.Airline),
		DistributionHeatMap(s.Distribution, s.Airline),
		RelativeDelayBar(s.RelativeDelay, s.Airline),
		TopRoutesBar(s.DomesticRoutes, "domestic", s.Airline),
		TopRoutesBar(s.InternationalRoutes, "international", s.Airline),
		HourlyDelayChart(s.HourlyDelays, s.HourlyTotals, s.Airline),
		WeekdayVolumeBar(s.WeekdayVolume, s.Airline, otp.RegionWorld),
		ArrivalsGeo(s.Arrivals, s.Airline),
	)
	return page
}

// RenderDashboard renders the full dashboard page to w.
func RenderDashboard(s *otp.Summary, w io.Writer) error {
	return Dashboard(s).Render(w)
}

// renderable is any chart that can render itself as a standalone page.
type renderable interface {
	Render(w io.Writer) error
}

// ExportHTML writes each chart of the summary to its own HTML file under
// outputDir, plus the combined dashboard as index.html.
func ExportHTML(s *otp.Summary, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	files := map[string]renderable{
		"delay_metrics.html":       DelayMetricsBar(s.DelayMetrics, s.Airline),
		"cancellations.html":       CancellationsPie(s.Cancellations, s.Airline),
		"delay_distribution.html":  DistributionHeatMap(s.Distribution, s.Airline),
		"relative_delay.html":      RelativeDelayBar(s.RelativeDelay, s.Airline),
		"top_routes_domestic.html": TopRoutesBar(s.DomesticRoutes, "domestic", s.Airline),
		"top_routes_intl.html":     TopRoutesBar(s.InternationalRoutes, "international", s.Airline),
		"hourly_delays.html":       HourlyDelayChart(s.HourlyDelays, s.HourlyTotals, s.Airline),
		"weekday_volume.html":      WeekdayVolumeBar(s.WeekdayVolume, s.Airline, otp.RegionWorld),
		"arrivals.html":            ArrivalsGeo(s.Arrivals, s.Airline),
		"index.html":               Dashboard(s),
	}

	for name, chart := range files {
		if err := renderToFile(chart, filepath.Join(outputDir, name)); err != nil {
			return fmt.Errorf("failed to render %s: %w", name, err)
		}
	}
	return nil
}

func renderToFile(chart renderable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

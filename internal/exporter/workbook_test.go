package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"flightpulse/internal/config"
)

func TestWorkbookExport(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	exp := NewWorkbookExporter(paths)
	require.NoError(t, exp.Export(testSummary(), paths.SummaryWorkbook))

	f, err := excelize.OpenFile(paths.SummaryWorkbook)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{
		"Overview", "Delay Metrics", "Cancellations", "Delay Distribution",
		"Relative Delay", "Top Routes", "Hourly Delays", "Weekday Volume", "Arrivals",
	}, f.GetSheetList())

	airline, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Delta Air Lines", airline)

	total, err := f.GetCellValue("Overview", "B4")
	require.NoError(t, err)
	assert.Equal(t, "100", total)

	header, err := f.GetCellValue("Delay Metrics", "A1")
	require.NoError(t, err)
	assert.Equal(t, "airline", header)

	// Undefined delay ratio becomes an empty cell.
	ratio, err := f.GetCellValue("Relative Delay", "C3")
	require.NoError(t, err)
	assert.Equal(t, "", ratio)
}

func TestWorkbookExportRelativePathResolvesToReports(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	exp := NewWorkbookExporter(paths)
	require.NoError(t, exp.Export(testSummary(), "custom.xlsx"))
	assert.FileExists(t, paths.GetReportPath("custom.xlsx"))
}

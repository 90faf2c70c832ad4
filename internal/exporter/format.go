package exporter

import (
	"fmt"
	"math"
)

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatRate formats a fraction or ratio with 4 decimal places. NaN marks an
// undefined value and is written as an empty field.
func formatRate(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return fmt.Sprintf("%.4f", f)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}

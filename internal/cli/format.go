// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCompact formats a value with a short magnitude suffix for axis labels
// and sparkline captions. e.g., 1234 -> "1.2k", 2500000 -> "2.5M"
func FormatCompact(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	if v < 0 {
		return "-" + FormatCompact(-v)
	}

	units := []struct {
		div    float64
		suffix string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "k"},
	}
	for _, u := range units {
		if v >= u.div {
			if v == math.Trunc(v/u.div)*u.div {
				return fmt.Sprintf("%.0f%s", v/u.div, u.suffix)
			}
			return fmt.Sprintf("%.1f%s", v/u.div, u.suffix)
		}
	}
	if v >= 1 || v == 0 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatRate formats a configured percentage rate, trimming trailing zeros.
// e.g., 1 -> "1%", 0.25 -> "0.25%"
func FormatRate(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// FormatDayLabels turns day indices into x-axis labels.
func FormatDayLabels(days []int) []string {
	labels := make([]string, len(days))
	for i, d := range days {
		labels[i] = strconv.Itoa(d)
	}
	return labels
}

package components

import (
	"fmt"
	"math"

	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareColor picks a color for a share of end capital: green when small,
// escalating to red as it approaches the whole.
func ShareColor(share float64) lipgloss.Color {
	t := theme.Active
	switch {
	case share >= 0.5:
		return t.Red
	case share >= 0.25:
		return t.Orange
	case share >= 0.1:
		return t.Yellow
	default:
		return t.Green
	}
}

// ShareBar renders a labelled bar for part/whole. A non-finite ratio
// renders as "n/a" with an empty bar.
func ShareBar(label string, part, whole float64, labelW, barWidth int) string {
	t := theme.Active

	share := 0.0
	valid := whole != 0
	if valid {
		share = part / whole
		valid = !math.IsNaN(share) && !math.IsInf(share, 0)
	}
	if !valid {
		share = 0
	}
	share = math.Max(0, math.Min(share, 1))

	color := ShareColor(share)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	pct := "n/a"
	if valid {
		pct = fmt.Sprintf("%5.1f%%", share*100)
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(share) +
		spaceStyle.Render(" ") +
		pctStyle.Render(pct)
}

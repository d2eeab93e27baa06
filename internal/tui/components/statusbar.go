package components

import (
	"fmt"
	"time"

	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the status bar shows on its right side.
type StatusInfo struct {
	Horizon  string
	Days     int
	Locale   string
	Theme    string
	CalcTime time.Duration
	Notice   string // transient message, e.g. a rejected input
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	noticeStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	left := keyStyle.Render(" [?]") + textStyle.Render("help ") +
		keyStyle.Render("[ ]") + textStyle.Render("horizon ") +
		keyStyle.Render("[q]") + textStyle.Render("uit")
	if info.Notice != "" {
		left += textStyle.Render("  ") + noticeStyle.Render(info.Notice)
	}

	right := textStyle.Render(fmt.Sprintf("%s · %dd · %s · %s · %s ",
		info.Horizon, info.Days, info.Locale, info.Theme, formatCalcTime(info.CalcTime)))

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		return style.Render(left)
	}

	return style.Render(left + lipgloss.NewStyle().Background(t.Surface).Render(fmt.Sprintf("%*s", padding, "")) + right)
}

func formatCalcTime(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
}

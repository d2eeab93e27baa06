package components

import (
	"strings"

	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Capital", Key: 'c', KeyPos: 0},
	{Name: "Fees", Key: 'f', KeyPos: 0},
	{Name: "Investor", Key: 'i', KeyPos: 0},
}

// TabVisualWidth returns the rendered width of a tab, including padding.
// Mouse hit-testing depends on this matching RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	w := lipgloss.Width(tab.Name) + 2
	if !active && (tab.KeyPos < 0 || tab.KeyPos >= len(tab.Name)) {
		w += 3 // "[k]" suffix
	}
	return w
}

// RenderTabBar renders a single-row tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 1)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true).
		Underline(true)

	padStyle := lipgloss.NewStyle().Background(t.Surface)
	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		var rendered string
		if tab.KeyPos >= 0 && tab.KeyPos < len(tab.Name) {
			rendered = inactiveStyle.Render(tab.Name[:tab.KeyPos]) +
				keyStyle.Render(string(tab.Name[tab.KeyPos])) +
				inactiveStyle.Render(tab.Name[tab.KeyPos+1:])
		} else {
			rendered = inactiveStyle.Render(tab.Name) +
				inactiveStyle.Render("[") + keyStyle.Render(string(tab.Key)) + inactiveStyle.Render("]")
		}
		parts = append(parts, padStyle.Render(" ")+rendered+padStyle.Render(" "))
	}

	bar := strings.Join(parts, sepStyle.Render("│"))
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}

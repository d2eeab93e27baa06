package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"
	"github.com/theirongolddev/kapital/internal/tui/components"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// seriesColor picks the chart color used for a series everywhere.
func seriesColor(name string) lipgloss.Color {
	colors := theme.SeriesColors()
	switch name {
	case pipeline.SeriesFees:
		return colors[0]
	case pipeline.SeriesCapital:
		return colors[1]
	default:
		return colors[2]
	}
}

// renderSeriesTab draws one series as summary cards over a bar chart of the
// aggregated points.
func (a App) renderSeriesTab(sr model.SeriesReport, cw, contentH int) string {
	t := theme.Active
	rep := a.report
	s := sr.Summary

	trend := 0
	switch {
	case s.ProfitLoss > 0:
		trend = 1
	case s.ProfitLoss < 0:
		trend = -1
	}

	var b strings.Builder
	cards := components.MetricCardRow([]components.Metric{
		{Label: "Start", Value: cli.FormatMoney(s.Start, a.locale)},
		{Label: "End", Value: cli.FormatMoney(s.End, a.locale)},
		{Label: "Growth", Value: cli.FormatGrowth(s.GrowthPct, a.locale), Trend: trend},
		{Label: "Profit / loss", Value: cli.FormatSignedMoney(s.ProfitLoss, a.locale), Trend: trend},
	}, cw)
	b.WriteString(cards)
	b.WriteString("\n")

	// Card chrome: 2 border rows, 1 title row, 1 x-label row
	chartH := max(4, contentH-lipgloss.Height(cards)-6)
	title := fmt.Sprintf("%s · %s · every %d days", seriesTitle(sr.Name), rep.HorizonLabel, rep.Stride)
	chart := components.BarChart(
		pipeline.Values(sr.Points),
		cli.FormatDayLabels(pipeline.Days(sr.Points)),
		seriesColor(sr.Name),
		components.CardInnerWidth(cw),
		chartH,
	)
	if len(sr.Points) == 0 {
		chart = lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("No data points")
	}
	b.WriteString(components.ContentCard(title, chart, cw))

	return b.String()
}

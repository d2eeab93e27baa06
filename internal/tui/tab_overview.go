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

// seriesTitles maps report series names to display titles.
var seriesTitles = map[string]string{
	pipeline.SeriesCapital:     "Total capital",
	pipeline.SeriesFees:        "Total fees",
	pipeline.SeriesPerInvestor: "Capital per investor",
}

func seriesTitle(name string) string {
	if title, ok := seriesTitles[name]; ok {
		return title
	}
	return name
}

func (a App) metricFor(sr model.SeriesReport) components.Metric {
	s := sr.Summary
	trend := 0
	switch {
	case s.ProfitLoss > 0:
		trend = 1
	case s.ProfitLoss < 0:
		trend = -1
	}
	return components.Metric{
		Label: seriesTitle(sr.Name),
		Value: cli.FormatMoney(s.End, a.locale),
		Delta: cli.FormatSignedMoney(s.ProfitLoss, a.locale) + "  " + cli.FormatGrowth(s.GrowthPct, a.locale),
		Trend: trend,
	}
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	rep := a.report

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		a.metricFor(rep.Capital),
		a.metricFor(rep.Fees),
		a.metricFor(rep.PerInvestor),
	}, cw))
	b.WriteString("\n")

	var leftW, rightW int
	if a.isCompactLayout() {
		leftW, rightW = cw, cw
	} else {
		halves := components.LayoutRow(cw, 2)
		leftW, rightW = halves[0], halves[1]
	}

	params := a.renderParamsCard(leftW)

	// Trend sparklines and shares of end capital
	innerW := components.CardInnerWidth(rightW)
	labelW := 22
	sparkW := max(10, innerW-labelW-1)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	var trend strings.Builder
	for _, sr := range rep.Series() {
		vals := pipeline.Values(sr.Points)
		if len(vals) > sparkW {
			vals = vals[len(vals)-sparkW:]
		}
		trend.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, seriesTitle(sr.Name))))
		trend.WriteString(space.Render(" "))
		trend.WriteString(components.Sparkline(vals, seriesColor(sr.Name)))
		trend.WriteString("\n")
	}
	trend.WriteString("\n")

	barW := max(10, innerW-labelW-9)
	end := rep.Capital.Summary.End
	trend.WriteString(components.ShareBar("Fees / capital", rep.Fees.Summary.End, end, labelW, barW))
	trend.WriteString("\n")
	trend.WriteString(components.ShareBar("Investor / capital", rep.PerInvestor.Summary.End, end, labelW, barW))
	trend.WriteString("\n\n")
	trend.WriteString(labelStyle.Render(fmt.Sprintf("%s · %d days · every %d days",
		rep.HorizonLabel, rep.Scenario.HorizonDays, rep.Stride)))

	trends := components.ContentCard("Trend", trend.String(), rightW)

	if a.isCompactLayout() {
		b.WriteString(trends)
		b.WriteString("\n")
		b.WriteString(params)
	} else {
		b.WriteString(components.CardRow([]string{params, trends}))
	}

	return b.String()
}

package cmd

import (
	"fmt"
	"math"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Projection summary with start, end, growth and profit per series",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

var seriesTitles = map[string]string{
	pipeline.SeriesCapital:     "Total capital",
	pipeline.SeriesFees:        "Total fees",
	pipeline.SeriesPerInvestor: "Per investor",
}

func runSummary(cmd *cobra.Command, _ []string) error {
	in, rep, err := loadReport(cmd)
	if err != nil {
		return err
	}
	tag := in.locale
	sc := rep.Scenario

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("KAPITAL  %s · %d days", rep.HorizonLabel, sc.HorizonDays)))
	fmt.Println(cli.RenderSubtitle(fmt.Sprintf(
		"%s investors × %s · +%s/mo · growth %s/day · fee %s · investors +%s/mo",
		cli.FormatDecimal(sc.StartingInvestors, tag),
		cli.FormatMoney(sc.StartingCapital, tag),
		cli.FormatMoney(sc.MonthlyContribution, tag),
		cli.FormatRate(sc.DailyGrowthPct),
		cli.FormatRate(sc.FeePct),
		cli.FormatRate(sc.MonthlyInvestorGrowthPct),
	)))
	fmt.Println()

	rows := make([][]string, 0, 3)
	for _, sr := range []model.SeriesReport{rep.Capital, rep.Fees, rep.PerInvestor} {
		rows = append(rows, summaryRow(sr, tag))
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Series", "Start", "End", "Growth", "Profit / Loss"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, sr := range []model.SeriesReport{rep.Capital, rep.Fees, rep.PerInvestor} {
		fmt.Printf("  %-14s %s\n", seriesTitles[sr.Name], cli.RenderSparkline(pipeline.Values(sr.Points)))
	}
	fmt.Println()

	if math.IsInf(rep.Capital.Summary.End, 0) || math.IsNaN(rep.Capital.Summary.End) {
		notice("Values overflowed float64 range; consider a shorter horizon.")
	}
	notice("%d points, one every %d days", len(rep.Capital.Points), rep.Stride)
	return nil
}

func summaryRow(sr model.SeriesReport, tag language.Tag) []string {
	s := sr.Summary
	return []string{
		seriesTitles[sr.Name],
		cli.FormatMoney(s.Start, tag),
		cli.FormatMoney(s.End, tag),
		cli.RenderDelta(cli.FormatGrowth(s.GrowthPct, tag), s.GrowthPct),
		cli.RenderDelta(cli.FormatSignedMoney(s.ProfitLoss, tag), s.ProfitLoss),
	}
}

package cmd

import (
	"fmt"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/model"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Table of aggregated points for every series",
	RunE:  runSeries,
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, _ []string) error {
	in, rep, err := loadReport(cmd)
	if err != nil {
		return err
	}
	rows := seriesRows(rep, in.locale)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SERIES  %s · every %d days", rep.HorizonLabel, rep.Stride)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Total capital", "Total fees", "Per investor"},
		Rows:    rows,
	}))
	return nil
}

// seriesRows lays out one row per point. All three series share day indices.
func seriesRows(rep model.Report, tag language.Tag) [][]string {
	rows := make([][]string, 0, len(rep.Capital.Points))
	for i, p := range rep.Capital.Points {
		rows = append(rows, []string{
			cli.FormatInt(p.Day, tag),
			cli.FormatMoney(p.Value, tag),
			cli.FormatMoney(rep.Fees.Points[i].Value, tag),
			cli.FormatMoney(rep.PerInvestor.Points[i].Value, tag),
		})
	}
	return rows
}

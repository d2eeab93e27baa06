package cmd

import (
	"os"

	"github.com/theirongolddev/kapital/internal/export"

	"github.com/spf13/cobra"
)

var flagExportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the projection report as JSON, YAML or CSV to stdout",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "json", "Output format: json, yaml or csv")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}
	_, rep, err := loadReport(cmd)
	if err != nil {
		return err
	}
	return export.Write(os.Stdout, rep, format)
}

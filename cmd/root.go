// Package cmd implements the kapital CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

var (
	flagInvestors      float64
	flagCapital        float64
	flagContribution   float64
	flagGrowth         float64
	flagFee            float64
	flagInvestorGrowth float64
	flagHorizon        string
	flagDays           int
	flagLocale         string
	flagQuiet          bool
)

var rootCmd = &cobra.Command{
	Use:   "kapital",
	Short: "Capital growth projection calculator",
	Long: "Project pooled capital, fees and per-investor capital over a horizon,\n" +
		"from daily compound growth, monthly contributions and investor growth.",
	SilenceUsage: true,
	RunE:         runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	d := config.DefaultConfig()
	f := rootCmd.PersistentFlags()

	f.Float64VarP(&flagInvestors, "investors", "i", d.Scenario.StartingInvestors, "Starting number of investors")
	f.Float64VarP(&flagCapital, "capital", "c", d.Scenario.StartingCapital, "Starting capital per investor")
	f.Float64Var(&flagContribution, "contribution", d.Scenario.MonthlyContribution, "Monthly contribution per investor")
	f.Float64VarP(&flagGrowth, "growth", "g", d.Scenario.DailyGrowthPct, "Daily growth rate in percent")
	f.Float64VarP(&flagFee, "fee", "f", d.Scenario.FeePct, "Fee rate on daily profit in percent")
	f.Float64Var(&flagInvestorGrowth, "investor-growth", d.Scenario.MonthlyInvestorGrowthPct, "Monthly investor growth in percent")
	f.StringVarP(&flagHorizon, "horizon", "H", d.General.Horizon, "Horizon: month, quarter, year, 3y, 5y, decade (or 1-6)")
	f.IntVar(&flagDays, "days", 0, "Simulate this many days instead of the horizon's default")
	f.StringVarP(&flagLocale, "locale", "l", d.General.Locale, "Locale for number formatting, e.g. de-DE or en-US")
	f.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress notices")
}

// runInput is the merged view of built-in defaults, config file,
// KAPITAL_* variables and command-line flags.
type runInput struct {
	file     config.Config // config file contents, the only thing ever saved
	cfg      config.Config // file + KAPITAL_* + flags
	scenario model.Scenario
	bucket   horizon.Bucket
	locale   language.Tag
}

// loadInput resolves the effective scenario. Flags win over the config,
// which wins over the defaults.
func loadInput(cmd *cobra.Command) (runInput, error) {
	file, cfg, err := config.LoadEffective()
	if err != nil {
		return runInput{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("horizon") {
		cfg.General.Horizon = flagHorizon
	}
	if flags.Changed("locale") {
		cfg.General.Locale = flagLocale
	}

	sc := cfg.ScenarioModel()
	overrides := []struct {
		name string
		src  float64
		dst  *float64
	}{
		{"investors", flagInvestors, &sc.StartingInvestors},
		{"capital", flagCapital, &sc.StartingCapital},
		{"contribution", flagContribution, &sc.MonthlyContribution},
		{"growth", flagGrowth, &sc.DailyGrowthPct},
		{"fee", flagFee, &sc.FeePct},
		{"investor-growth", flagInvestorGrowth, &sc.MonthlyInvestorGrowthPct},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			*o.dst = o.src
		}
	}
	if flags.Changed("days") {
		if flagDays < 1 {
			return runInput{}, fmt.Errorf("--days must be at least 1, got %d", flagDays)
		}
		sc.HorizonDays = flagDays
	}

	bucket, err := cfg.Bucket()
	if err != nil {
		return runInput{}, err
	}
	tag, err := cli.ParseLocale(cfg.General.Locale)
	if err != nil {
		return runInput{}, err
	}

	return runInput{file: file, cfg: cfg, scenario: sc, bucket: bucket, locale: tag}, nil
}

// loadReport resolves the input and runs the projection.
func loadReport(cmd *cobra.Command) (runInput, model.Report, error) {
	in, err := loadInput(cmd)
	if err != nil {
		return in, model.Report{}, err
	}
	rep, err := pipeline.Run(in.scenario, in.bucket)
	if err != nil {
		return in, model.Report{}, err
	}
	return in, rep, nil
}

// notice prints a muted line to stderr unless --quiet is set.
func notice(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, cli.RenderNotice(format, args...))
}

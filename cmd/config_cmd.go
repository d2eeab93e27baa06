package cmd

import (
	"fmt"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	in, err := loadInput(cmd)
	if err != nil {
		return err
	}
	cfg, sc, tag := in.cfg, in.scenario, in.locale

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Horizon: %s (%s, %d days, every %d days)\n",
		in.bucket.Key(), in.bucket.Label(), in.bucket.Days(), in.bucket.Stride())
	if sc.HorizonDays > 0 {
		fmt.Printf("    Days override: %d\n", sc.HorizonDays)
	}
	fmt.Printf("    Locale:  %s\n", tag)
	fmt.Println()

	fmt.Println("  [Scenario]")
	fmt.Printf("    Starting investors:      %s\n", cli.FormatDecimal(sc.StartingInvestors, tag))
	fmt.Printf("    Starting capital:        %s\n", cli.FormatMoney(sc.StartingCapital, tag))
	fmt.Printf("    Monthly contribution:    %s\n", cli.FormatMoney(sc.MonthlyContribution, tag))
	fmt.Printf("    Daily growth:            %s\n", cli.FormatRate(sc.DailyGrowthPct))
	fmt.Printf("    Fee on profit:           %s\n", cli.FormatRate(sc.FeePct))
	fmt.Printf("    Monthly investor growth: %s\n", cli.FormatRate(sc.MonthlyInvestorGrowthPct))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", cfg.Server.Addr)
	fmt.Println()

	fmt.Println("  Run `kapital setup` to reconfigure.")
	return nil
}

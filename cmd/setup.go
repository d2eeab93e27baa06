package cmd

import (
	"fmt"

	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup of the default scenario",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		notice("Ignoring unreadable config: %v", err)
		cfg = config.DefaultConfig()
	}

	_, saved, err := tui.RunSetup(cfg)
	if err != nil {
		return err
	}
	if !saved {
		fmt.Println("  Setup aborted, config unchanged.")
		return nil
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `kapital setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

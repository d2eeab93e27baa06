package cmd

import (
	"fmt"

	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/tui"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive projection dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	in, err := loadInput(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(in.cfg.Appearance.Theme)

	// Force TrueColor so background styling always produces ANSI codes.
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Config:    in.cfg,
		Saved:     in.file,
		Scenario:  in.scenario,
		Horizon:   in.bucket,
		Locale:    in.locale,
		NeedSetup: !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

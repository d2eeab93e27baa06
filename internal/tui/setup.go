package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues holds the raw form answers. Numbers stay strings until the
// form completes so huh can validate them as typed.
type setupValues struct {
	investors      string
	capital        string
	contribution   string
	growth         string
	fee            string
	investorGrowth string
	horizon        string
	locale         string
	theme          string
}

func newSetupValues(cfg config.Config) setupValues {
	s := cfg.Scenario
	return setupValues{
		investors:      formatInput(s.StartingInvestors),
		capital:        formatInput(s.StartingCapital),
		contribution:   formatInput(s.MonthlyContribution),
		growth:         formatInput(s.DailyGrowthPct),
		fee:            formatInput(s.FeePct),
		investorGrowth: formatInput(s.MonthlyInvestorGrowthPct),
		horizon:        cfg.General.Horizon,
		locale:         cfg.General.Locale,
		theme:          cfg.Appearance.Theme,
	}
}

// newSetupForm builds the first-run form. Answers land in vals.
func newSetupForm(vals *setupValues) *huh.Form {
	horizonOpts := make([]huh.Option[string], 0, len(horizon.All()))
	for _, b := range horizon.All() {
		horizonOpts = append(horizonOpts, huh.NewOption(fmt.Sprintf("%s (%d days)", b.Label(), b.Days()), b.Key()))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to kapital").
				Description("Set the default scenario. Every value can be\noverridden later with flags or KAPITAL_* variables."),
			huh.NewInput().Title("Starting investors").Value(&vals.investors).Validate(validateNumber),
			huh.NewInput().Title("Starting capital per investor").Value(&vals.capital).Validate(validateNumber),
			huh.NewInput().Title("Monthly contribution per investor").Value(&vals.contribution).Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewInput().Title("Daily growth (%)").Value(&vals.growth).Validate(validateNumber),
			huh.NewInput().Title("Fee on profit (%)").Value(&vals.fee).Validate(validateNumber),
			huh.NewInput().Title("Monthly investor growth (%)").Value(&vals.investorGrowth).Validate(validateNumber),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Default horizon").Options(horizonOpts...).Value(&vals.horizon),
			huh.NewInput().Title("Locale").Placeholder("de-DE").Value(&vals.locale).Validate(validateLocale),
			huh.NewSelect[string]().Title("Theme").Options(themeOpts...).Value(&vals.theme),
		),
	).WithTheme(huh.ThemeCharm())
}

// apply merges the answers into cfg.
func (v setupValues) apply(cfg *config.Config) error {
	var sc model.Scenario
	fields := []struct {
		raw string
		dst *float64
	}{
		{v.investors, &sc.StartingInvestors},
		{v.capital, &sc.StartingCapital},
		{v.contribution, &sc.MonthlyContribution},
		{v.growth, &sc.DailyGrowthPct},
		{v.fee, &sc.FeePct},
		{v.investorGrowth, &sc.MonthlyInvestorGrowthPct},
	}
	for _, f := range fields {
		n, err := parseInput(f.raw)
		if err != nil {
			return err
		}
		*f.dst = n
	}

	if _, err := horizon.Parse(v.horizon); err != nil {
		return err
	}
	if err := validateLocale(v.locale); err != nil {
		return err
	}

	cfg.SetScenario(sc)
	cfg.General.Horizon = v.horizon
	cfg.General.Locale = strings.TrimSpace(v.locale)
	if theme.Exists(v.theme) {
		cfg.Appearance.Theme = v.theme
	}
	return nil
}

// RunSetup runs the setup form standalone and saves the result. saved is
// false when the user aborts the form.
func RunSetup(cfg config.Config) (out config.Config, saved bool, err error) {
	vals := newSetupValues(cfg)
	if err := newSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return cfg, false, nil
		}
		return cfg, false, fmt.Errorf("setup form: %w", err)
	}
	if err := vals.apply(&cfg); err != nil {
		return cfg, false, err
	}
	if err := config.Save(cfg); err != nil {
		return cfg, false, fmt.Errorf("saving config: %w", err)
	}
	return cfg, true, nil
}

// saveSetupConfig applies a completed in-app form to the config file and
// to the running app. Every answer was entered by the user, so all of them
// are saved.
func (a *App) saveSetupConfig() error {
	if err := a.setupVals.apply(&a.saved); err != nil {
		return err
	}
	if err := a.setupVals.apply(&a.cfg); err != nil {
		return err
	}
	a.scenario = a.cfg.ScenarioModel()
	if b, err := a.cfg.Bucket(); err == nil {
		a.bucket = b
	}
	if tag, err := cli.ParseLocale(a.cfg.General.Locale); err == nil {
		a.locale = tag
	}
	theme.SetActive(a.cfg.Appearance.Theme)

	a.baseScenario = a.scenario
	a.baseBucket = a.bucket
	a.baseTheme = theme.Active.Name
	return config.Save(a.saved)
}

func validateNumber(s string) error {
	_, err := parseInput(s)
	return err
}

func validateLocale(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("locale is required")
	}
	_, err := cli.ParseLocale(s)
	return err
}

// parseInput accepts "." or "," as the decimal separator.
func parseInput(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

func formatInput(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

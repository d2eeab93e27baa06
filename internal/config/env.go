package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the KAPITAL_* variables. Unset variables leave the
// pointer nil so file values survive.
type envOverrides struct {
	Horizon string `env:"KAPITAL_HORIZON"`
	Locale  string `env:"KAPITAL_LOCALE"`
	Theme   string `env:"KAPITAL_THEME"`
	Addr    string `env:"KAPITAL_ADDR"`

	StartingInvestors        *float64 `env:"KAPITAL_INVESTORS"`
	StartingCapital          *float64 `env:"KAPITAL_CAPITAL"`
	MonthlyContribution      *float64 `env:"KAPITAL_CONTRIBUTION"`
	DailyGrowthPct           *float64 `env:"KAPITAL_DAILY_GROWTH"`
	FeePct                   *float64 `env:"KAPITAL_FEE"`
	MonthlyInvestorGrowthPct *float64 `env:"KAPITAL_INVESTOR_GROWTH"`
}

// ApplyEnv overlays KAPITAL_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	setString(&cfg.General.Horizon, o.Horizon)
	setString(&cfg.General.Locale, o.Locale)
	setString(&cfg.Appearance.Theme, o.Theme)
	setString(&cfg.Server.Addr, o.Addr)

	setFloat(&cfg.Scenario.StartingInvestors, o.StartingInvestors)
	setFloat(&cfg.Scenario.StartingCapital, o.StartingCapital)
	setFloat(&cfg.Scenario.MonthlyContribution, o.MonthlyContribution)
	setFloat(&cfg.Scenario.DailyGrowthPct, o.DailyGrowthPct)
	setFloat(&cfg.Scenario.FeePct, o.FeePct)
	setFloat(&cfg.Scenario.MonthlyInvestorGrowthPct, o.MonthlyInvestorGrowthPct)

	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

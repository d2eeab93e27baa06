// Package config loads and saves kapital settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

// Config holds all kapital configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Scenario   ScenarioConfig   `toml:"scenario"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Horizon string `toml:"horizon"`
	Locale  string `toml:"locale"`
}

// ScenarioConfig holds the default simulation inputs.
type ScenarioConfig struct {
	StartingInvestors        float64 `toml:"starting_investors"`
	StartingCapital          float64 `toml:"starting_capital"`
	MonthlyContribution      float64 `toml:"monthly_contribution"`
	DailyGrowthPct           float64 `toml:"daily_growth_pct"`
	FeePct                   float64 `toml:"fee_pct"`
	MonthlyInvestorGrowthPct float64 `toml:"monthly_investor_growth_pct"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Horizon: horizon.Month.Key(),
			Locale:  "de-DE",
		},
		Scenario: ScenarioConfig{
			StartingInvestors:        50,
			StartingCapital:          10000,
			MonthlyContribution:      200,
			DailyGrowthPct:           1,
			FeePct:                   10,
			MonthlyInvestorGrowthPct: 5,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8788",
		},
	}
}

// ScenarioModel converts the configured defaults to a model.Scenario.
// HorizonDays is left at 0 so the selected bucket decides it.
func (c Config) ScenarioModel() model.Scenario {
	s := c.Scenario
	return model.Scenario{
		StartingInvestors:        s.StartingInvestors,
		StartingCapital:          s.StartingCapital,
		MonthlyContribution:      s.MonthlyContribution,
		DailyGrowthPct:           s.DailyGrowthPct,
		FeePct:                   s.FeePct,
		MonthlyInvestorGrowthPct: s.MonthlyInvestorGrowthPct,
	}
}

// SetScenario stores sc as the configured defaults.
func (c *Config) SetScenario(sc model.Scenario) {
	c.Scenario = ScenarioConfig{
		StartingInvestors:        sc.StartingInvestors,
		StartingCapital:          sc.StartingCapital,
		MonthlyContribution:      sc.MonthlyContribution,
		DailyGrowthPct:           sc.DailyGrowthPct,
		FeePct:                   sc.FeePct,
		MonthlyInvestorGrowthPct: sc.MonthlyInvestorGrowthPct,
	}
}

// Bucket resolves the configured horizon.
func (c Config) Bucket() (horizon.Bucket, error) {
	b, err := horizon.Parse(c.General.Horizon)
	if err != nil {
		return 0, fmt.Errorf("config horizon: %w", err)
	}
	return b, nil
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kapital")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kapital")
}

// StateDir returns the XDG state directory for runtime files such as the
// server pid file.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "kapital")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "kapital")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are not applied, so the result is safe to Save.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}
	return cfg, nil
}

// LoadEffective returns the config file contents and a copy with the
// KAPITAL_* overrides applied. Only file should ever be saved.
func LoadEffective() (file, effective Config, err error) {
	file, err = Load()
	if err != nil {
		return file, file, err
	}
	effective = file
	if err := ApplyEnv(&effective); err != nil {
		return file, effective, err
	}
	return file, effective, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}

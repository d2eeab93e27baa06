package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
)

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	useTempConfigDir(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, Exists())
	assert.Equal(t, DefaultConfig(), cfg)

	b, err := cfg.Bucket()
	require.NoError(t, err)
	assert.Equal(t, horizon.Month, b)
}

func TestDefaultScenarioMatchesCalculatorDefaults(t *testing.T) {
	sc := DefaultConfig().ScenarioModel()
	assert.Equal(t, model.Scenario{
		StartingInvestors:        50,
		StartingCapital:          10000,
		MonthlyContribution:      200,
		DailyGrowthPct:           1,
		FeePct:                   10,
		MonthlyInvestorGrowthPct: 5,
	}, sc)
}

func TestSaveThenLoad(t *testing.T) {
	dir := useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.Horizon = "decade"
	cfg.General.Locale = "en-US"
	cfg.SetScenario(model.Scenario{StartingInvestors: 3, StartingCapital: 750, DailyGrowthPct: 0.2})
	require.NoError(t, Save(cfg))

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "kapital", "config.toml"), ConfigPath())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[scenario]\nfee_pct = 2.5\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Scenario.FeePct)
	assert.Equal(t, 50.0, cfg.Scenario.StartingInvestors)
	assert.Equal(t, "month", cfg.General.Horizon)
}

func TestLoad_ParseError(t *testing.T) {
	useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(ConfigDir(), 0o755))
	require.NoError(t, os.WriteFile(ConfigPath(), []byte("[scenario\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "parsing config:"), err.Error())
}

func TestLoad_EnvOverrides(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("KAPITAL_HORIZON", "5y")
	t.Setenv("KAPITAL_CAPITAL", "2500.5")
	t.Setenv("KAPITAL_FEE", "0")
	t.Setenv("KAPITAL_THEME", "tokyo-night")

	file, cfg, err := LoadEffective()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), file)
	assert.Equal(t, "5y", cfg.General.Horizon)
	assert.Equal(t, 2500.5, cfg.Scenario.StartingCapital)
	assert.Equal(t, 0.0, cfg.Scenario.FeePct)
	assert.Equal(t, "tokyo-night", cfg.Appearance.Theme)
	assert.Equal(t, 50.0, cfg.Scenario.StartingInvestors)
}

func TestLoad_EnvParseError(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("KAPITAL_INVESTORS", "many")

	_, err := Load()
	require.NoError(t, err)

	_, _, err = LoadEffective()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestSave_KeepsEnvOverridesOut(t *testing.T) {
	useTempConfigDir(t)
	t.Setenv("KAPITAL_ADDR", "0.0.0.0:1")
	t.Setenv("KAPITAL_FEE", "99")

	file, eff, err := LoadEffective()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:1", eff.Server.Addr)
	assert.Equal(t, 99.0, eff.Scenario.FeePct)

	file.General.Locale = "en-US"
	require.NoError(t, Save(file))
	require.NoError(t, os.Unsetenv("KAPITAL_ADDR"))
	require.NoError(t, os.Unsetenv("KAPITAL_FEE"))

	_, eff, err = LoadEffective()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8788", eff.Server.Addr)
	assert.Equal(t, 10.0, eff.Scenario.FeePct)
	assert.Equal(t, "en-US", eff.General.Locale)

	data, err := os.ReadFile(ConfigPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "0.0.0.0:1")
}

func TestBucket_Invalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.Horizon = "fortnight"

	_, err := cfg.Bucket()
	assert.ErrorIs(t, err, horizon.ErrUnknownBucket)
}

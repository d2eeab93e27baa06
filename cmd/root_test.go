package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/pipeline"
)

// Runs before any test parses flags; persistent flags share Changed state.
func TestLoadInputDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	in, err := loadInput(configCmd)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().ScenarioModel(), in.scenario)
	assert.Equal(t, horizon.Month, in.bucket)
	assert.Equal(t, "de-DE", in.locale.String())
}

func TestLoadInputPrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KAPITAL_CONTRIBUTION", "50")

	cfg := config.DefaultConfig()
	cfg.Scenario.FeePct = 2.5
	cfg.Scenario.StartingInvestors = 3
	cfg.General.Horizon = "year"
	require.NoError(t, config.Save(cfg))

	// Flags > env > file > defaults.
	require.NoError(t, seriesCmd.ParseFlags([]string{"-i", "7", "-H", "decade", "--days", "45", "-l", "en-US"}))

	in, err := loadInput(seriesCmd)
	require.NoError(t, err)

	assert.Equal(t, 7.0, in.scenario.StartingInvestors)
	assert.Equal(t, 2.5, in.scenario.FeePct)
	assert.Equal(t, 50.0, in.scenario.MonthlyContribution)
	assert.Equal(t, 10000.0, in.scenario.StartingCapital)
	assert.Equal(t, 45, in.scenario.HorizonDays)
	assert.Equal(t, horizon.Decade, in.bucket)
	assert.Equal(t, "en-US", in.locale.String())

	// Flags and env stay out of the saveable config.
	assert.Equal(t, cfg, in.file)
	assert.Equal(t, "decade", in.cfg.General.Horizon)
}

func TestSeriesRowsUseLocaleGrouping(t *testing.T) {
	rep, err := pipeline.Run(config.DefaultConfig().ScenarioModel(), horizon.ThreeYears)
	require.NoError(t, err)

	rows := seriesRows(rep, language.German)
	require.Len(t, rows, 13)
	assert.Equal(t, "0", rows[0][0])
	assert.Equal(t, "1.080", rows[12][0])
	assert.Equal(t, "500.000,00 €", rows[0][1])

	rows = seriesRows(rep, language.AmericanEnglish)
	assert.Equal(t, "1,080", rows[12][0])
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"
)

func testReport(t *testing.T, sc model.Scenario, b horizon.Bucket) model.Report {
	t.Helper()
	rep, err := pipeline.Run(sc, b)
	require.NoError(t, err)
	return rep
}

var flat = model.Scenario{StartingInvestors: 2, StartingCapital: 100}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": JSON, "YAML": YAML, "yml": YAML, " csv ": CSV} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteCSV(t *testing.T) {
	rep := testReport(t, flat, horizon.Quarter)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, CSV))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+46)
	assert.Equal(t, []string{"day", "total_capital", "total_fees", "per_investor_capital"}, records[0])
	assert.Equal(t, []string{"0", "200", "1", "100"}, records[1])
	assert.Equal(t, "90", records[46][0])
}

func TestWriteCSV_NonFinite(t *testing.T) {
	rep := testReport(t, model.Scenario{StartingInvestors: 1, StartingCapital: 1e300, DailyGrowthPct: 100}, horizon.Month)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, CSV))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "30,+Inf,"), lines[len(lines)-1])
}

func TestWriteJSON(t *testing.T) {
	rep := testReport(t, flat, horizon.Month)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, JSON))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "month", got["horizon"])
	capital := got["capital"].(map[string]any)
	assert.Len(t, capital["points"], 31)
}

func TestWriteJSON_NonFiniteIsNull(t *testing.T) {
	rep := testReport(t, model.Scenario{StartingInvestors: 1, StartingCapital: 1e300, DailyGrowthPct: 100}, horizon.Month)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, JSON))
	assert.True(t, json.Valid(buf.Bytes()))
	assert.Contains(t, buf.String(), `"end": null`)
}

func TestWriteYAML(t *testing.T) {
	rep := testReport(t, flat, horizon.Year)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, YAML))

	var got struct {
		Horizon string `yaml:"horizon"`
		Stride  int    `yaml:"stride"`
		Capital struct {
			Points []model.Point `yaml:"points"`
		} `yaml:"capital"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "year", got.Horizon)
	assert.Equal(t, 30, got.Stride)
	require.Len(t, got.Capital.Points, 13)
	assert.Equal(t, model.Point{Day: 360, Value: 200}, got.Capital.Points[12])
}

func TestWriteYAML_NonFinite(t *testing.T) {
	rep := testReport(t, model.Scenario{StartingInvestors: 1, StartingCapital: 1e300, DailyGrowthPct: 100}, horizon.Month)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rep, YAML))
	assert.Contains(t, buf.String(), ".inf")
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, model.Report{}, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

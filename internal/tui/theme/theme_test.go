package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleWrapsAround(t *testing.T) {
	t.Cleanup(func() { SetActive(FlexokiDark.Name) })

	SetActive(All[len(All)-1].Name)
	assert.Equal(t, All[0].Name, Cycle())

	SetActive("no-such-theme")
	assert.Equal(t, FlexokiDark.Name, Active.Name)
	assert.Equal(t, All[1].Name, Cycle())
}

func TestSeriesColorsAreDistinct(t *testing.T) {
	t.Cleanup(func() { SetActive(FlexokiDark.Name) })

	for _, th := range All {
		SetActive(th.Name)
		c := SeriesColors()
		assert.NotEqual(t, c[0], c[1], th.Name)
		assert.NotEqual(t, c[1], c[2], th.Name)
		assert.NotEqual(t, c[0], c[2], th.Name)
		assert.NotEqual(t, th.Background, c[1], th.Name)
	}
}

func TestThemeNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, th := range All {
		assert.False(t, seen[th.Name], th.Name)
		seen[th.Name] = true
		assert.True(t, Exists(th.Name))
	}
	assert.False(t, Exists("solarized"))
}

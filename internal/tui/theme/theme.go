// Package theme defines color themes for the kapital dashboard.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the dashboard's color roles to concrete colors.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Surface       lipgloss.Color // cards and panels
	SurfaceHover  lipgloss.Color // active tab
	SurfaceBright lipgloss.Color // selected parameter row
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color // help overlay

	TextDim     lipgloss.Color
	TextMuted   lipgloss.Color
	TextPrimary lipgloss.Color

	Accent       lipgloss.Color
	AccentBright lipgloss.Color

	// Gain and loss colors for deltas and trend arrows.
	Green       lipgloss.Color
	GreenBright lipgloss.Color
	Red         lipgloss.Color

	Orange lipgloss.Color // warnings
	Yellow lipgloss.Color
	Blue   lipgloss.Color
	Cyan   lipgloss.Color

	// One chart color per projected series.
	SeriesFees     lipgloss.Color
	SeriesCapital  lipgloss.Color
	SeriesInvestor lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default, a warm paper-toned dark palette.
var FlexokiDark = Theme{
	Name:           "flexoki-dark",
	Background:     lipgloss.Color("#100F0F"),
	Surface:        lipgloss.Color("#1C1B1A"),
	SurfaceHover:   lipgloss.Color("#282726"),
	SurfaceBright:  lipgloss.Color("#343331"),
	Border:         lipgloss.Color("#403E3C"),
	BorderAccent:   lipgloss.Color("#3AA99F"),
	TextDim:        lipgloss.Color("#575653"),
	TextMuted:      lipgloss.Color("#878580"),
	TextPrimary:    lipgloss.Color("#FFFCF0"),
	Accent:         lipgloss.Color("#3AA99F"),
	AccentBright:   lipgloss.Color("#5BC8BE"),
	Green:          lipgloss.Color("#879A39"),
	GreenBright:    lipgloss.Color("#A3B859"),
	Red:            lipgloss.Color("#D14D41"),
	Orange:         lipgloss.Color("#DA702C"),
	Yellow:         lipgloss.Color("#D0A215"),
	Blue:           lipgloss.Color("#4385BE"),
	Cyan:           lipgloss.Color("#24837B"),
	SeriesFees:     lipgloss.Color("#CE5D97"),
	SeriesCapital:  lipgloss.Color("#4385BE"),
	SeriesInvestor: lipgloss.Color("#879A39"),
}

// CatppuccinMocha is a soft pastel palette.
var CatppuccinMocha = Theme{
	Name:           "catppuccin-mocha",
	Background:     lipgloss.Color("#1E1E2E"),
	Surface:        lipgloss.Color("#313244"),
	SurfaceHover:   lipgloss.Color("#45475A"),
	SurfaceBright:  lipgloss.Color("#585B70"),
	Border:         lipgloss.Color("#585B70"),
	BorderAccent:   lipgloss.Color("#89B4FA"),
	TextDim:        lipgloss.Color("#6C7086"),
	TextMuted:      lipgloss.Color("#A6ADC8"),
	TextPrimary:    lipgloss.Color("#CDD6F4"),
	Accent:         lipgloss.Color("#89B4FA"),
	AccentBright:   lipgloss.Color("#B4D0FB"),
	Green:          lipgloss.Color("#A6E3A1"),
	GreenBright:    lipgloss.Color("#C6F6C1"),
	Red:            lipgloss.Color("#F38BA8"),
	Orange:         lipgloss.Color("#FAB387"),
	Yellow:         lipgloss.Color("#F9E2AF"),
	Blue:           lipgloss.Color("#89B4FA"),
	Cyan:           lipgloss.Color("#94E2D5"),
	SeriesFees:     lipgloss.Color("#F5C2E7"),
	SeriesCapital:  lipgloss.Color("#89B4FA"),
	SeriesInvestor: lipgloss.Color("#A6E3A1"),
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:           "tokyo-night",
	Background:     lipgloss.Color("#1A1B26"),
	Surface:        lipgloss.Color("#24283B"),
	SurfaceHover:   lipgloss.Color("#343A52"),
	SurfaceBright:  lipgloss.Color("#414868"),
	Border:         lipgloss.Color("#565F89"),
	BorderAccent:   lipgloss.Color("#7AA2F7"),
	TextDim:        lipgloss.Color("#565F89"),
	TextMuted:      lipgloss.Color("#A9B1D6"),
	TextPrimary:    lipgloss.Color("#C0CAF5"),
	Accent:         lipgloss.Color("#7AA2F7"),
	AccentBright:   lipgloss.Color("#A9C1FF"),
	Green:          lipgloss.Color("#9ECE6A"),
	GreenBright:    lipgloss.Color("#B9E87A"),
	Red:            lipgloss.Color("#F7768E"),
	Orange:         lipgloss.Color("#FF9E64"),
	Yellow:         lipgloss.Color("#E0AF68"),
	Blue:           lipgloss.Color("#7AA2F7"),
	Cyan:           lipgloss.Color("#7DCFFF"),
	SeriesFees:     lipgloss.Color("#BB9AF7"),
	SeriesCapital:  lipgloss.Color("#7AA2F7"),
	SeriesInvestor: lipgloss.Color("#9ECE6A"),
}

// Ledger is a green-on-black palette after old accounting terminals.
var Ledger = Theme{
	Name:           "ledger",
	Background:     lipgloss.Color("#0B120D"),
	Surface:        lipgloss.Color("#132018"),
	SurfaceHover:   lipgloss.Color("#1D3024"),
	SurfaceBright:  lipgloss.Color("#284232"),
	Border:         lipgloss.Color("#2F4F3A"),
	BorderAccent:   lipgloss.Color("#E3B341"),
	TextDim:        lipgloss.Color("#4E6B57"),
	TextMuted:      lipgloss.Color("#8FAF98"),
	TextPrimary:    lipgloss.Color("#E4F2E7"),
	Accent:         lipgloss.Color("#E3B341"),
	AccentBright:   lipgloss.Color("#F2CC6B"),
	Green:          lipgloss.Color("#5FBF77"),
	GreenBright:    lipgloss.Color("#86DB9A"),
	Red:            lipgloss.Color("#E0645A"),
	Orange:         lipgloss.Color("#E08A3C"),
	Yellow:         lipgloss.Color("#E3B341"),
	Blue:           lipgloss.Color("#5B9BD5"),
	Cyan:           lipgloss.Color("#4FB8B0"),
	SeriesFees:     lipgloss.Color("#E3B341"),
	SeriesCapital:  lipgloss.Color("#5FBF77"),
	SeriesInvestor: lipgloss.Color("#4FB8B0"),
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:           "terminal",
	Background:     lipgloss.Color("0"),
	Surface:        lipgloss.Color("0"),
	SurfaceHover:   lipgloss.Color("8"),
	SurfaceBright:  lipgloss.Color("8"),
	Border:         lipgloss.Color("8"),
	BorderAccent:   lipgloss.Color("6"),
	TextDim:        lipgloss.Color("8"),
	TextMuted:      lipgloss.Color("7"),
	TextPrimary:    lipgloss.Color("15"),
	Accent:         lipgloss.Color("6"),
	AccentBright:   lipgloss.Color("14"),
	Green:          lipgloss.Color("2"),
	GreenBright:    lipgloss.Color("10"),
	Red:            lipgloss.Color("1"),
	Orange:         lipgloss.Color("3"),
	Yellow:         lipgloss.Color("3"),
	Blue:           lipgloss.Color("4"),
	Cyan:           lipgloss.Color("6"),
	SeriesFees:     lipgloss.Color("5"),
	SeriesCapital:  lipgloss.Color("4"),
	SeriesInvestor: lipgloss.Color("2"),
}

// All lists the themes in cycling order.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Ledger, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// Exists reports whether name is a known theme.
func Exists(name string) bool {
	for _, t := range All {
		if t.Name == name {
			return true
		}
	}
	return false
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Cycle activates the theme after the current one and returns its name.
func Cycle() string {
	for i, t := range All {
		if t.Name == Active.Name {
			Active = All[(i+1)%len(All)]
			return Active.Name
		}
	}
	Active = All[0]
	return Active.Name
}

// SeriesColors returns the chart colors for fees, total capital and
// per-investor capital, in that order.
func SeriesColors() [3]lipgloss.Color {
	t := Active
	return [3]lipgloss.Color{t.SeriesFees, t.SeriesCapital, t.SeriesInvestor}
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"
	"github.com/theirongolddev/kapital/internal/tui/components"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	paramInvestors = iota
	paramCapital
	paramContribution
	paramGrowth
	paramFee
	paramInvestorGrowth
	paramDays
	paramCount // sentinel
)

var paramLabels = [paramCount]string{
	"Investors",
	"Capital / investor",
	"Contribution / mo",
	"Daily growth",
	"Fee on profit",
	"Investor growth",
	"Horizon days",
}

// paramsState tracks the parameter panel.
type paramsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

// floatParam returns the scenario field behind a float parameter row.
func floatParam(sc *model.Scenario, idx int) *float64 {
	switch idx {
	case paramInvestors:
		return &sc.StartingInvestors
	case paramCapital:
		return &sc.StartingCapital
	case paramContribution:
		return &sc.MonthlyContribution
	case paramGrowth:
		return &sc.DailyGrowthPct
	case paramFee:
		return &sc.FeePct
	case paramInvestorGrowth:
		return &sc.MonthlyInvestorGrowthPct
	}
	return nil
}

func (a App) effectiveDays() int {
	if a.scenario.HorizonDays > 0 {
		return a.scenario.HorizonDays
	}
	return a.bucket.Days()
}

func (a App) paramsStartEdit() (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 20

	if p := floatParam(&a.scenario, a.params.cursor); p != nil {
		ti.SetValue(formatInput(*p))
	} else {
		ti.Placeholder = "0 = horizon default"
		ti.SetValue(strconv.Itoa(a.effectiveDays()))
	}

	ti.Focus()
	a.params.input = ti
	a.params.editing = true
	a.params.saved = false
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateParamsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if err := a.paramsCommit(); err != nil {
			a.notice = err.Error()
			return a, nil
		}
		a.notice = ""
		a.params.editing = false
		return a, nil
	case "esc":
		a.params.editing = false
		a.notice = ""
		return a, nil
	}

	var cmd tea.Cmd
	a.params.input, cmd = a.params.input.Update(msg)
	return a, cmd
}

// paramsCommit validates the edited value and recomputes the projection.
// The scenario is left untouched when the value is rejected.
func (a *App) paramsCommit() error {
	raw := strings.TrimSpace(a.params.input.Value())
	next := a.scenario

	if p := floatParam(&next, a.params.cursor); p != nil {
		v, err := parseInput(raw)
		if err != nil {
			return err
		}
		*p = v
	} else {
		d, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%q is not a whole number of days", raw)
		}
		next.HorizonDays = d
	}

	if err := pipeline.Validate(next); err != nil {
		return err
	}
	a.scenario = next
	a.recompute()
	return nil
}

// saveDefaults writes the parameters, horizon and theme changed in this
// session over the config file contents. Values that came only from flags
// or KAPITAL_* variables stay out of the file.
func (a *App) saveDefaults() {
	out := a.saved
	sc := out.ScenarioModel()
	for i := 0; i < paramCount; i++ {
		cur := floatParam(&a.scenario, i)
		if cur != nil && *cur != *floatParam(&a.baseScenario, i) {
			*floatParam(&sc, i) = *cur
		}
	}
	out.SetScenario(sc)
	if a.bucket != a.baseBucket {
		out.General.Horizon = a.bucket.Key()
	}
	if name := theme.Active.Name; name != a.baseTheme {
		out.Appearance.Theme = name
	}

	a.params.saveErr = config.Save(out)
	a.params.saved = a.params.saveErr == nil
	if a.params.saved {
		a.saved = out
		a.baseScenario = a.scenario
		a.baseBucket = a.bucket
		a.baseTheme = theme.Active.Name
	}
}

func (a App) paramDisplay(idx int) string {
	sc := a.scenario
	tag := a.locale
	switch idx {
	case paramInvestors:
		return cli.FormatDecimal(sc.StartingInvestors, tag)
	case paramCapital:
		return cli.FormatMoney(sc.StartingCapital, tag)
	case paramContribution:
		return cli.FormatMoney(sc.MonthlyContribution, tag)
	case paramGrowth:
		return cli.FormatRate(sc.DailyGrowthPct) + " / day"
	case paramFee:
		return cli.FormatRate(sc.FeePct)
	case paramInvestorGrowth:
		return cli.FormatRate(sc.MonthlyInvestorGrowthPct) + " / mo"
	case paramDays:
		if sc.HorizonDays > 0 {
			return fmt.Sprintf("%d (custom)", sc.HorizonDays)
		}
		return fmt.Sprintf("%d (%s)", a.bucket.Days(), a.bucket.Key())
	}
	return ""
}

func (a App) renderParamsCard(outerW int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	space := lipgloss.NewStyle().Background(t.Surface)
	innerW := components.CardInnerWidth(outerW)

	var body strings.Builder
	for i := 0; i < paramCount; i++ {
		label := paramLabels[i]
		switch {
		case a.params.editing && i == a.params.cursor:
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(accentStyle.Render(fmt.Sprintf("%-19s ", label)))
			body.WriteString(a.params.input.View())
		case i == a.params.cursor:
			row := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-19s ", label+":")) +
				selectedStyle.Render(a.paramDisplay(i))
			body.WriteString(row)
			if pad := innerW - lipgloss.Width(row); pad > 0 {
				body.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		default:
			body.WriteString(space.Render("  "))
			body.WriteString(labelStyle.Render(fmt.Sprintf("%-19s ", label+":")))
			body.WriteString(valueStyle.Render(a.paramDisplay(i)))
		}
		body.WriteString("\n")
	}

	switch {
	case a.params.saveErr != nil:
		body.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).
			Render(fmt.Sprintf("Save failed: %s", a.params.saveErr)))
		body.WriteString("\n")
	case a.params.saved:
		body.WriteString(lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).
			Render("Saved as defaults"))
		body.WriteString("\n")
	}

	body.WriteString(labelStyle.Render("[j/k] move  [Enter] edit  [Esc] cancel  [s] save"))

	return components.ContentCard("Parameters", body.String(), outerW)
}

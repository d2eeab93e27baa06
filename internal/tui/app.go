// Package tui provides the interactive Bubble Tea dashboard for kapital.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/kapital/internal/config"
	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"
	"github.com/theirongolddev/kapital/internal/tui/components"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

const (
	tabOverview = iota
	tabCapital
	tabFees
	tabInvestor
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180
	minContentHeight = 5
)

// Options configure a new App.
type Options struct {
	Config    config.Config // effective config, env and flags applied
	Saved     config.Config // config file contents; zero means defaults
	Scenario  model.Scenario
	Horizon   horizon.Bucket
	Locale    language.Tag
	NeedSetup bool // show the first-run form before the dashboard
}

// App is the root Bubble Tea model.
type App struct {
	cfg      config.Config
	saved    config.Config
	scenario model.Scenario
	bucket   horizon.Bucket
	locale   language.Tag

	// Values the session started from; saveDefaults writes only what differs.
	baseScenario model.Scenario
	baseBucket   horizon.Bucket
	baseTheme    string

	// Last successful projection
	report   model.Report
	calcTime time.Duration
	notice   string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	params paramsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals setupValues
	needSetup bool
}

// NewApp creates the dashboard model and computes the initial projection.
func NewApp(opts Options) App {
	if !opts.Horizon.Valid() {
		opts.Horizon = horizon.Month
	}
	if opts.Saved == (config.Config{}) {
		opts.Saved = config.DefaultConfig()
	}
	a := App{
		cfg:          opts.Config,
		saved:        opts.Saved,
		scenario:     opts.Scenario,
		bucket:       opts.Horizon,
		locale:       opts.Locale,
		baseScenario: opts.Scenario,
		baseBucket:   opts.Horizon,
		baseTheme:    theme.Active.Name,
		needSetup:    opts.NeedSetup,
	}
	if a.needSetup {
		a.setupVals = newSetupValues(a.saved)
		a.setupForm = newSetupForm(&a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

// recompute reruns the whole projection from day 0. On error the previous
// report is kept and the message is shown in the status bar.
func (a *App) recompute() {
	start := time.Now()
	rep, err := pipeline.Run(a.scenario, a.bucket)
	a.calcTime = time.Since(start)
	if err != nil {
		a.notice = err.Error()
		return
	}
	a.report = rep
}

func (a *App) setHorizon(b horizon.Bucket) {
	if !b.Valid() || b == a.bucket {
		return
	}
	a.bucket = b
	a.scenario.HorizonDays = 0
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.params.editing {
		var cmd tea.Cmd
		a.params.input, cmd = a.params.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup intercepts all keys
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	if a.params.editing {
		return a.updateParamsInput(msg)
	}

	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Parameter panel lives on the overview tab
	if a.activeTab == tabOverview {
		switch key {
		case "j", "down":
			if a.params.cursor < paramCount-1 {
				a.params.cursor++
			}
			return a, nil
		case "k", "up":
			if a.params.cursor > 0 {
				a.params.cursor--
			}
			return a, nil
		case "enter":
			return a.paramsStartEdit()
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.showHelp = true
	case "]":
		a.setHorizon(a.bucket.Next())
	case "[":
		a.setHorizon(a.bucket.Prev())
	case "1", "2", "3", "4", "5", "6":
		a.setHorizon(horizon.Bucket(key[0] - '1'))
	case "t":
		a.cfg.Appearance.Theme = theme.Cycle()
	case "s":
		a.saveDefaults()
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if r := []rune(key); len(r) == 1 {
			if idx := components.TabIdxByKey(r[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetupConfig(); err != nil {
			a.notice = "setup: " + err.Error()
		}
		a.recompute()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kapital needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"o c f i", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"[ ]", "Previous / Next horizon"},
			{"1-6", "Pick horizon"},
		}},
		{"Parameters", [][2]string{
			{"j k", "Select parameter"},
			{"Enter", "Edit / Confirm"},
			{"Esc", "Cancel edit"},
			{"s", "Save as defaults"},
		}},
		{"Other", [][2]string{
			{"t", "Cycle theme"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, components.StatusInfo{
		Horizon:  a.bucket.Label(),
		Days:     a.report.Scenario.HorizonDays,
		Locale:   a.locale.String(),
		Theme:    t.Name,
		CalcTime: a.calcTime,
		Notice:   a.notice,
	})

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCapital:
		content = a.renderSeriesTab(a.report.Capital, cw, contentH)
	case tabFees:
		content = a.renderSeriesTab(a.report.Fees, cw, contentH)
	case tabInvestor:
		content = a.renderSeriesTab(a.report.PerInvestor, cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 1 // separator
	}
	return -1
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

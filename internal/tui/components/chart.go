package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/kapital/internal/cli"
	"github.com/theirongolddev/kapital/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var (
	sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	barBlocks   = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
)

// plotValues prepares a series for drawing. Bars grow from zero, so
// negative and NaN values are drawn empty; overflow marks +Inf entries,
// which are drawn at full height. peak is the largest finite value.
func plotValues(values []float64) (plot []float64, overflow []bool, peak float64) {
	plot = make([]float64, len(values))
	overflow = make([]bool, len(values))
	for i, v := range values {
		switch {
		case math.IsInf(v, 1):
			overflow[i] = true
		case math.IsNaN(v), v < 0:
		default:
			plot[i] = v
			if v > peak {
				peak = v
			}
		}
	}
	return plot, overflow, peak
}

// Sparkline renders a unicode sparkline scaled between the series min and max.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		var idx int
		switch {
		case math.IsInf(v, 1):
			idx = len(sparkBlocks) - 1
		case math.IsNaN(v), math.IsInf(v, -1), span <= 0 || math.IsInf(span, 0):
			idx = 0
		default:
			idx = int((v - lo) / span * float64(len(sparkBlocks)-1))
		}
		idx = max(0, min(idx, len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a bar chart with a labelled y-axis and day labels on x.
// Falls back to a sparkline when the area is too small.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	plot, overflow, peak := plotValues(values)
	if peak == 0 {
		peak = 1
	}

	tickStep := chartTickStep(peak)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(peak/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(peak/tickStep) * tickStep
	numIntervals := max(1, int(math.Round(ceiling/tickStep)))

	rowsPerTick := max(2, height/numIntervals)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(4, len(cli.FormatCompact(ceiling))+1)
	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = cli.FormatCompact(tickStep * float64(i))
	}

	chartW := max(5, width-yLabelW-1)
	n := len(plot)

	gap := 1
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 2 && n > 1 {
		maxN := max(2, (chartW+1)/3)
		plot, overflow, labels = resample(plot, overflow, labels, maxN)
		n = maxN
		barW = 2
	}
	if n <= 1 {
		gap = 0
	}
	barW = min(barW, 6)
	axisLen := n*barW + max(0, n-1)*gap

	bg := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	overflowStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		barColor := t.Accent
		switch rowPct := float64(row) / float64(chartH); {
		case rowPct > 0.8:
			barColor = t.AccentBright
		case rowPct > 0.5:
			barColor = color
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range plot {
			if i > 0 && gap > 0 {
				b.WriteString(bg.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case overflow[i]:
				b.WriteString(overflowStyle.Render(strings.Repeat("█", barW)))
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = max(1, min(idx, 8))
				b.WriteString(barStyle.Render(strings.Repeat(string(barBlocks[idx]), barW)))
			default:
				b.WriteString(bg.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n && n > 0 {
		b.WriteString("\n")
		b.WriteString(bg.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// resample picks n evenly spaced entries, always keeping the first and last.
func resample(values []float64, overflow []bool, labels []string, n int) ([]float64, []bool, []string) {
	src := len(values)
	outV := make([]float64, n)
	outO := make([]bool, n)
	var outL []string
	if len(labels) == src {
		outL = make([]string, n)
	}
	for i := range outV {
		j := i * (src - 1) / (n - 1)
		outV[i] = values[j]
		outO[i] = overflow[j]
		if outL != nil {
			outL[i] = labels[j]
		}
	}
	return outV, outO, outL
}

// xAxisLabels lays out labels under their bars, skipping any that would
// collide. The final label is right-aligned to the axis if needed.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	buf := []byte(strings.Repeat(" ", axisLen))
	n := len(labels)
	step := max(1, (n*8)/(axisLen+1))

	lastEnd := -1
	for i := 0; i < n; i += step {
		pos := i * (barW + gap)
		lbl := labels[i]
		if pos <= lastEnd || pos+len(lbl) > axisLen {
			continue
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	if n > 1 {
		lbl := labels[n-1]
		pos := min((n-1)*(barW+gap), axisLen-len(lbl))
		if pos > lastEnd {
			copy(buf[pos:], lbl)
		}
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a round tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

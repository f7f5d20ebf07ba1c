package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values. Values may be negative;
// they normalize against the min..max span and negative points render red.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	redStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		if v < 0 {
			buf.WriteString(redStyle.Render(string(blocks[idx])))
		} else {
			buf.WriteString(style.Render(string(blocks[idx])))
		}
	}

	return buf.String()
}

// BalanceChart renders a column chart with a zero baseline. Columns above
// zero draw upward in the given color, columns below zero draw downward in
// red, so an insolvent stretch is visible at a glance.
func BalanceChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	lo, hi := 0.0, 0.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == 0 && lo == 0 {
		hi = 1
	}

	// Round the extremes outward to a tick step so axis labels come out even.
	step := chartTickStep(math.Max(hi, -lo))
	ceiling := math.Ceil(hi/step) * step
	floor := math.Floor(lo/step) * step
	span := ceiling - floor
	if span == 0 {
		span = step
	}

	// Row of the zero axis, counted from the bottom.
	zeroRow := int(math.Round(-floor / span * float64(height)))
	if zeroRow < 0 {
		zeroRow = 0
	}
	if zeroRow > height {
		zeroRow = height
	}

	yLabelW := len(formatChartLabel(floor))
	if w := len(formatChartLabel(ceiling)); w > yLabelW {
		yLabelW = w
	}
	if yLabelW < 4 {
		yLabelW = 4
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	// One column per value; downsample when the series is too dense.
	n := len(values)
	if n > chartW {
		sampled := make([]float64, chartW)
		var sampledLabels []string
		if len(labels) == n {
			sampledLabels = make([]string, chartW)
		}
		for i := range sampled {
			srcIdx := i * (n - 1) / (chartW - 1)
			sampled[i] = values[srcIdx]
			if sampledLabels != nil {
				sampledLabels[i] = labels[srcIdx]
			}
		}
		values = sampled
		labels = sampledLabels
		n = chartW
	}

	rowHeight := span / float64(height)

	posStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blankStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	for row := height; row >= 1; row-- {
		// Value band this row covers, relative to zero.
		bandLow := float64(row-1-zeroRow) * rowHeight
		bandHigh := float64(row-zeroRow) * rowHeight

		label := ""
		switch row {
		case height:
			label = formatChartLabel(ceiling)
		case zeroRow:
			label = "0"
		case 1:
			if floor < 0 {
				label = formatChartLabel(floor)
			}
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		if row == zeroRow {
			b.WriteString(axisStyle.Render("┼"))
		} else {
			b.WriteString(axisStyle.Render("│"))
		}

		for _, v := range values {
			switch {
			case v > 0 && bandLow >= 0 && v > bandLow:
				b.WriteString(posStyle.Render("█"))
			case v < 0 && bandHigh <= 0 && v < bandHigh:
				b.WriteString(negStyle.Render("█"))
			case row == zeroRow:
				b.WriteString(axisStyle.Render("─"))
			default:
				b.WriteString(blankStyle.Render(" "))
			}
		}
		b.WriteString("\n")
	}

	// X-axis labels
	if len(labels) == n && n > 0 {
		buf := make([]byte, n)
		for i := range buf {
			buf[i] = ' '
		}

		labelStep := 10
		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			lbl := labels[i]
			end := i + len(lbl)
			if i <= lastEnd || end > n {
				continue
			}
			copy(buf[i:end], lbl)
			lastEnd = end + 1
		}
		if n > 1 {
			lbl := labels[n-1]
			pos := n - len(lbl)
			if pos > lastEnd {
				copy(buf[pos:], lbl)
			}
		}

		b.WriteString(blankStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%s%.0fM", sign, v/1e6)
		}
		return fmt.Sprintf("%s%.1fM", sign, v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%s%.0fk", sign, v/1e3)
		}
		return fmt.Sprintf("%s%.1fk", sign, v/1e3)
	default:
		return fmt.Sprintf("%s%.0f", sign, v)
	}
}

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/pipeline"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

// TierColor maps a spend tier to its theme color.
func TierColor(tier pipeline.Tier) lipgloss.Color {
	t := theme.Active
	switch tier {
	case pipeline.TierHigh:
		return t.Red
	case pipeline.TierMedium:
		return t.Orange
	default:
		return t.Green
	}
}

// BudgetBar renders a labeled spend bar colored by tier. pct is 0-100;
// the fill clamps at full but the percentage label does not.
func BudgetBar(label string, pct float64, tier pipeline.Tier, labelW, barWidth int) string {
	t := theme.Active

	fill := pct / 100
	if fill < 0 {
		fill = 0
	}
	if fill > 1 {
		fill = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(TierColor(tier))),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(TierColor(tier)).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(fill) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct))
}

// Sparkline renders a block sparkline from a series of values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

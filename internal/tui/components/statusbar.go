package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, right string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"

	padding := width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right + " "

	return style.Render(bar)
}

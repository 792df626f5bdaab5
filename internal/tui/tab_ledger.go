package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/tui/components"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

// ledgerState tracks the ledger tab cursor and scroll offset.
type ledgerState struct {
	cursor int
	offset int
}

// updateLedgerKeys handles ledger-tab keys. Returns handled=false for
// keys the caller should process as globals.
func (a App) updateLedgerKeys(key string) (tea.Model, tea.Cmd, bool) {
	expenses := a.tracker.Ledger.ByDate(a.tracker.Today())

	clamp := func() {
		if a.ledgerState.cursor >= len(expenses) {
			a.ledgerState.cursor = len(expenses) - 1
		}
		if a.ledgerState.cursor < 0 {
			a.ledgerState.cursor = 0
		}
	}

	switch key {
	case "j", "down":
		if a.ledgerState.cursor < len(expenses)-1 {
			a.ledgerState.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.ledgerState.cursor > 0 {
			a.ledgerState.cursor--
		}
		return a, nil, true
	case "g":
		a.ledgerState.cursor = 0
		a.ledgerState.offset = 0
		return a, nil, true
	case "G":
		a.ledgerState.cursor = len(expenses) - 1
		clamp()
		return a, nil, true
	case "e", "enter":
		if len(expenses) == 0 {
			return a, nil, true
		}
		clamp()
		m, cmd := a.startEntry(expenses[a.ledgerState.cursor].ID)
		return m, cmd, true
	case "d":
		if len(expenses) == 0 {
			return a, nil, true
		}
		clamp()
		_ = a.tracker.DeleteExpense(expenses[a.ledgerState.cursor].ID)
		if a.ledgerState.cursor > 0 {
			a.ledgerState.cursor--
		}
		return a, nil, true
	case "s":
		_, _ = a.tracker.SnapshotDay(a.tracker.Today())
		return a, nil, true
	}

	return a, nil, false
}

func (a App) renderLedgerTab(cw, contentH int) string {
	t := theme.Active

	today := a.tracker.Today()
	expenses := a.tracker.Ledger.ByDate(today)

	if len(expenses) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return components.ContentCard("Today's expenses",
			dimStyle.Render("No expenses yet. Press [a] to add one."), cw)
	}

	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.Accent)
	merchStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	innerW := components.CardInnerWidth(cw)

	// Keep the cursor inside the visible window
	visible := contentH - 6
	if visible < 3 {
		visible = 3
	}
	offset := a.ledgerState.offset
	if a.ledgerState.cursor < offset {
		offset = a.ledgerState.cursor
	}
	if a.ledgerState.cursor >= offset+visible {
		offset = a.ledgerState.cursor - visible + 1
	}

	var body strings.Builder
	for i := offset; i < len(expenses) && i < offset+visible; i++ {
		e := expenses[i]
		if i > offset {
			body.WriteString("\n")
		}

		line := fmt.Sprintf("%s  %8s  %-12s %s",
			cli.FormatClock(e.Timestamp),
			cli.FormatAmount(a.currency, e.Amount),
			e.Category,
			truncStr(e.Merchant, innerW-32))

		if i == a.ledgerState.cursor {
			body.WriteString(markerStyle.Render("▸ "))
			body.WriteString(selectedStyle.Render(line))
		} else {
			body.WriteString("  ")
			body.WriteString(timeStyle.Render(cli.FormatClock(e.Timestamp)))
			body.WriteString("  ")
			body.WriteString(amountStyle.Render(fmt.Sprintf("%8s", cli.FormatAmount(a.currency, e.Amount))))
			body.WriteString("  ")
			body.WriteString(catStyle.Render(fmt.Sprintf("%-12s", e.Category)))
			body.WriteString(" ")
			body.WriteString(merchStyle.Render(truncStr(e.Merchant, innerW-32)))
		}
	}

	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	body.WriteString("\n\n")
	body.WriteString(hintStyle.Render("[a]dd  [e]dit  [d]elete  [s]napshot"))

	title := fmt.Sprintf("Today's expenses (%d)", len(expenses))
	return components.ContentCard(title, body.String(), cw)
}

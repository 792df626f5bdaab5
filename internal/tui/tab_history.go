package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/pipeline"
	"github.com/theirongolddev/dburn/internal/tui/components"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

func (a App) renderHistoryTab(cw int) string {
	t := theme.Active

	now := time.Now()
	days := pipeline.SortByDate(a.tracker.History.ForMonth(now.Year(), int(now.Month())))

	title := now.Format("January 2006")

	if len(days) == 0 {
		dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
		return components.ContentCard(title,
			dimStyle.Render("No history yet. Press [s] on the ledger tab to snapshot a day."), cw)
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var body strings.Builder
	for i, d := range days {
		if i > 0 {
			body.WriteString("\n")
		}
		tier := pipeline.SpendTier(d.Spent, d.DailyBudget)
		body.WriteString(dateStyle.Render(fmt.Sprintf("%s %s", d.Date, cli.FormatDayOfWeek(d.Date))))
		body.WriteString(valueStyle.Render(fmt.Sprintf("  %8s / %-8s",
			cli.FormatAmount(a.currency, d.Spent),
			cli.FormatAmount(a.currency, float64(d.DailyBudget)))))
		body.WriteString(cli.TierStyle(tier).Render(cli.FormatTier(tier)))
	}

	stats := pipeline.AggregateRange(days)

	var statBody strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	statBody.WriteString(labelStyle.Render("Days tracked  ") + valueStyle.Render(fmt.Sprintf("%d", stats.Days)) + "\n")
	statBody.WriteString(labelStyle.Render("Total spent   ") + valueStyle.Render(cli.FormatAmount(a.currency, stats.TotalSpent)) + "\n")
	statBody.WriteString(labelStyle.Render("Daily average ") + valueStyle.Render(cli.FormatAmount(a.currency, stats.AvgSpent)) + "\n")
	statBody.WriteString(labelStyle.Render("Over budget   ") + valueStyle.Render(fmt.Sprintf("%d days", stats.OverDays)))

	// Sparkline runs oldest to newest
	spend := make([]float64, len(days))
	for i, d := range days {
		spend[len(days)-1-i] = d.Spent
	}
	statBody.WriteString("\n\n")
	statBody.WriteString(components.Sparkline(spend))

	var b strings.Builder
	b.WriteString(components.ContentCard(title, body.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Month summary", statBody.String(), cw))

	return b.String()
}

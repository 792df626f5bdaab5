package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/tui/components"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

func (a App) renderTodayTab(cw int) string {
	t := theme.Active

	today := a.tracker.Today()
	sum := a.tracker.SummarizeDay(today)

	greetStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(greetStyle.Render("HI " + strings.ToUpper(a.tracker.Profile.DisplayName())))
	b.WriteString(dateStyle.Render(fmt.Sprintf("  %s %s", today, cli.FormatDayOfWeek(today))))
	b.WriteString("\n")

	cards := []struct{ Label, Value, Hint string }{
		{"Budget", cli.FormatAmount(a.currency, float64(sum.DailyBudget)), "per day"},
		{"Spent", cli.FormatAmount(a.currency, sum.Spent),
			fmt.Sprintf("%d expenses", sum.Count)},
		{"Available", cli.FormatSignedAmount(a.currency, sum.Available),
			cli.FormatPercent(sum.PercentSpent) + " used"},
		{"Carry", cli.FormatAmount(a.currency, sum.CarryForward),
			"tier " + strings.ToLower(cli.FormatTier(sum.Tier))},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	barWidth := cw - 16
	if barWidth > 50 {
		barWidth = 50
	}
	if barWidth < 10 {
		barWidth = 10
	}
	bar := components.BudgetBar("Spend", sum.PercentSpent, sum.Tier, 5, barWidth)
	b.WriteString(components.ContentCard("", bar, cw))
	b.WriteString("\n")

	// Category breakdown
	cats := a.tracker.CategoriesForDay(today)
	if len(cats) > 0 {
		labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
		valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		var catBody strings.Builder
		for i, c := range cats {
			if i > 0 {
				catBody.WriteString("\n")
			}
			catBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", c.Category)))
			catBody.WriteString(valueStyle.Render(fmt.Sprintf("%10s", cli.FormatAmount(a.currency, c.Spent))))
			catBody.WriteString(labelStyle.Render(fmt.Sprintf("  %s", cli.FormatPercent(c.SharePercent))))
		}
		b.WriteString(components.ContentCard("By category", catBody.String(), cw))
	}

	return b.String()
}

package tui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/ledger"
	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

// entryValues collects expense entry form answers.
type entryValues struct {
	amount   string
	merchant string
	category string
	note     string
}

func parseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return 0, errors.New("enter an amount greater than zero")
	}
	return v, nil
}

func newEntryForm(vals *entryValues) *huh.Form {
	catOptions := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		catOptions[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Value(&vals.amount).
				Validate(func(s string) error {
					_, err := parseAmount(s)
					return err
				}),

			huh.NewInput().
				Title("Merchant").
				Value(&vals.merchant),

			huh.NewSelect[string]().
				Title("Category").
				Options(catOptions...).
				Value(&vals.category),

			huh.NewInput().
				Title("Note").
				Value(&vals.note),
		),
	)
}

// startEntry opens the expense entry form. An empty id starts a new
// expense; otherwise the form is pre-filled from the existing one.
func (a App) startEntry(id string) (tea.Model, tea.Cmd) {
	a.entryVals = &entryValues{category: model.Categories[0]}
	a.entryEdit = ""

	if id != "" {
		e, ok := a.tracker.Ledger.Get(id)
		if !ok {
			return a, nil
		}
		a.entryEdit = id
		a.entryVals = &entryValues{
			amount:   strconv.FormatFloat(e.Amount, 'f', -1, 64),
			merchant: e.Merchant,
			category: e.Category,
			note:     e.Note,
		}
	}

	a.entryForm = newEntryForm(a.entryVals)
	if a.width > 0 {
		a.entryForm = a.entryForm.WithWidth(a.contentWidth())
	}
	return a, a.entryForm.Init()
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.entryForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.entryForm = f
	}

	if a.entryForm.State == huh.StateCompleted {
		a.commitEntry()
		a.entryForm = nil
		a.activeTab = tabLedger
		return a, nil
	}

	if a.entryForm.State == huh.StateAborted {
		a.entryForm = nil
		return a, nil
	}

	return a, cmd
}

func (a *App) commitEntry() {
	amount, err := parseAmount(a.entryVals.amount)
	if err != nil {
		return
	}

	if a.entryEdit != "" {
		_ = a.tracker.UpdateExpense(a.entryEdit, model.ExpensePatch{
			Amount:   amount,
			Merchant: strings.TrimSpace(a.entryVals.merchant),
			Category: a.entryVals.category,
			Note:     strings.TrimSpace(a.entryVals.note),
		})
		return
	}

	_, _ = a.tracker.AddExpense(ledger.Draft{
		Amount:   amount,
		Merchant: strings.TrimSpace(a.entryVals.merchant),
		Category: a.entryVals.category,
		Note:     strings.TrimSpace(a.entryVals.note),
	})
}

func (a App) viewEntry() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	title := "  Add expense"
	if a.entryEdit != "" {
		title = "  Edit expense"
	}

	return titleStyle.Render(title) + "\n\n" + a.entryForm.View()
}

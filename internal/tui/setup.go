package tui

import (
	"errors"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/state"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

// setupValues collects first-run setup form answers.
type setupValues struct {
	name   string
	budget string
	theme  string
}

func newSetupForm(tracker *state.Tracker, vals *setupValues) *huh.Form {
	vals.name = tracker.Profile.DisplayName()
	vals.budget = strconv.Itoa(tracker.Profile.DailyBudget())
	vals.theme = theme.Active.Name

	themeOptions := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to dburn!").
				Description("Track your daily spending against a fixed budget.\nLet's set up a few things."),

			huh.NewInput().
				Title("Display name").
				Value(&vals.name),

			huh.NewInput().
				Title("Daily budget").
				Description("Whole amount per day").
				Value(&vals.budget).
				Validate(func(s string) error {
					v, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || v < 0 {
						return errors.New("enter a whole non-negative amount")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOptions...).
				Value(&vals.theme),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// saveSetupConfig persists the setup answers to the profile and config file.
func (a *App) saveSetupConfig() {
	if name := strings.TrimSpace(a.setupVals.name); name != "" {
		_ = a.tracker.SetDisplayName(name)
	}
	_ = a.tracker.SetDailyBudgetString(strings.TrimSpace(a.setupVals.budget))

	cfg, _ := config.Load()
	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(cfg.Appearance.Theme)
	_ = config.Save(cfg)
}

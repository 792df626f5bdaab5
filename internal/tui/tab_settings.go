package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/tui/components"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

const (
	settingsFieldName = iota
	settingsFieldBudget
	settingsFieldCurrency
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	cfg := loadConfigOrDefault()
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldName:
		ti.Placeholder = "User"
		ti.SetValue(a.tracker.Profile.DisplayName())
	case settingsFieldBudget:
		ti.Placeholder = "500"
		ti.SetValue(strconv.Itoa(a.tracker.Profile.DailyBudget()))
	case settingsFieldCurrency:
		ti.Placeholder = "$"
		ti.SetValue(cfg.General.Currency)
	case settingsFieldTheme:
		ti.Placeholder = "flexoki-dark, catppuccin-mocha, tokyo-night, terminal"
		ti.SetValue(cfg.Appearance.Theme)
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())
	a.settings.saveErr = nil

	switch a.settings.cursor {
	case settingsFieldName:
		if val != "" {
			a.settings.saveErr = a.tracker.SetDisplayName(val)
		}
	case settingsFieldBudget:
		a.settings.saveErr = a.tracker.SetDailyBudgetString(val)
	case settingsFieldCurrency:
		if val != "" {
			cfg := loadConfigOrDefault()
			cfg.General.Currency = val
			a.currency = val
			a.settings.saveErr = config.Save(cfg)
		}
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				cfg := loadConfigOrDefault()
				cfg.Appearance.Theme = val
				theme.SetActive(val)
				a.settings.saveErr = config.Save(cfg)
				break
			}
		}
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := loadConfigOrDefault()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright)

	fields := []struct {
		label string
		value string
	}{
		{"Display name", a.tracker.Profile.DisplayName()},
		{"Daily budget", strconv.Itoa(a.tracker.Profile.DailyBudget())},
		{"Currency", cfg.General.Currency},
		{"Theme", cfg.Appearance.Theme},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(selectedStyle.Render(f.value))
		} else {
			formBody.WriteString("  ")
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	infoBody.WriteString(labelStyle.Render("Expenses:     ") + valueStyle.Render(strconv.Itoa(a.tracker.Ledger.Len())) + "\n")
	infoBody.WriteString(labelStyle.Render("History days: ") + valueStyle.Render(strconv.Itoa(len(a.tracker.History.All()))))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("General", infoBody.String(), cw))

	return b.String()
}

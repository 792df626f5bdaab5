// Package tui provides the interactive Bubble Tea dashboard for dburn.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/dburn/internal/cli"
	"github.com/theirongolddev/dburn/internal/config"
	"github.com/theirongolddev/dburn/internal/state"
	"github.com/theirongolddev/dburn/internal/tui/components"
	"github.com/theirongolddev/dburn/internal/tui/theme"
)

const (
	tabToday = iota
	tabLedger
	tabHistory
	tabSettings
)

const (
	minTerminalWidth = 60
	maxContentWidth  = 120
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	tracker  *state.Tracker
	currency string

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	ledgerState ledgerState
	settings    settingsState

	// First-run setup (huh form). Value structs are held by pointer so
	// form bindings survive the model copies Bubble Tea makes.
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	// Expense entry (huh form over the ledger tab)
	entryForm *huh.Form
	entryVals *entryValues
	entryEdit string // expense ID being edited, "" for a new expense
}

// NewApp creates a new TUI app model.
func NewApp(tracker *state.Tracker, cfg config.Config) App {
	theme.SetActive(cfg.Appearance.Theme)

	a := App{
		tracker:   tracker,
		currency:  cfg.General.Currency,
		needSetup: !config.Exists(),
	}
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(tracker, a.setupVals)
	}
	return a
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(tracker *state.Tracker, cfg config.Config) error {
	p := tea.NewProgram(NewApp(tracker, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Expense entry form intercepts all keys
		if a.entryForm != nil {
			return a.updateEntryForm(msg)
		}

		// Settings editing intercepts all keys
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Ledger tab keybindings
		if a.activeTab == tabLedger {
			if m, cmd, handled := a.updateLedgerKeys(key); handled {
				return m, cmd
			}
		}

		// Settings tab navigation
		if a.activeTab == tabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		// Quick add from any tab
		if key == "a" {
			return a.startEntry("")
		}

		// Tab navigation
		switch key {
		case "t":
			a.activeTab = tabToday
		case "l":
			a.activeTab = tabLedger
		case "h":
			a.activeTab = tabHistory
		case "x":
			a.activeTab = tabSettings
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to active forms (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.entryForm != nil {
		return a.updateEntryForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.entryForm != nil {
		return a.viewEntry()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  dburn needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"t l h x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add expense"},
		{"e / Enter", "Edit selected expense"},
		{"d", "Delete selected expense"},
		{"s", "Snapshot day to history"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"

	sum := a.tracker.SummarizeDay(a.tracker.Today())
	right := fmt.Sprintf("%s spent of %s", cli.FormatAmount(a.currency, sum.Spent),
		cli.FormatAmount(a.currency, float64(sum.DailyBudget)))
	statusBar := components.RenderStatusBar(w, right)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabToday:
		content = a.renderTodayTab(cw)
	case tabLedger:
		content = a.renderLedgerTab(cw, contentH)
	case tabHistory:
		content = a.renderHistoryTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

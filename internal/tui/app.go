// Package tui provides the interactive Bubble Tea dashboard for runway.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/store"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	today  calendar.Date
	months int

	// Recomputed whenever entries or the horizon change
	in       model.ProjectionInput
	forecast model.Forecast
	loadErr  error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	dailyScroll int
	entries     entriesState
	settings    settingsState
}

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates a new TUI app model. The store stays open for the life of
// the program so entry toggles persist immediately.
func NewApp(s *store.Store, today calendar.Date, months int) App {
	a := App{
		store:  s,
		today:  today,
		months: months,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// recompute reloads entries from the store and reruns the projection.
// Projection of a two-year horizon is a few hundred microseconds, so this
// runs synchronously on every change.
func (a *App) recompute() {
	in, err := a.store.Snapshot(a.today, a.months)
	if err != nil {
		a.loadErr = err
		return
	}
	a.loadErr = nil
	a.in = in
	a.forecast = engine.Project(in)
	a.entries.reload(in)

	if a.dailyScroll > len(a.forecast.Snapshots)-1 {
		a.dailyScroll = len(a.forecast.Snapshots) - 1
	}
	if a.dailyScroll < 0 {
		a.dailyScroll = 0
	}
}

// cycleHorizon advances to the next allowed projection horizon.
func (a *App) cycleHorizon() {
	for i, m := range model.HorizonChoices {
		if m == a.months {
			a.months = model.HorizonChoices[(i+1)%len(model.HorizonChoices)]
			a.recompute()
			return
		}
	}
	a.months = model.HorizonChoices[0]
	a.recompute()
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return a.scrollBy(-1), nil
		case tea.MouseButtonWheelDown:
			return a.scrollBy(1), nil
		case tea.MouseButtonLeft:
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 {
					a.activeTab = tab
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Balance editor intercepts all keys while active
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

		switch key {
		case "q":
			return a, tea.Quit
		case "h":
			a.cycleHorizon()
			return a, nil
		case "o", "d", "e", "x":
			a.activeTab = components.TabIdxByKey(rune(key[0]))
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "j", "down":
			return a.scrollBy(1), nil
		case "k", "up":
			return a.scrollBy(-1), nil
		case "g":
			return a.scrollTo(0), nil
		case "G":
			return a.scrollTo(1 << 30), nil
		}

		// Tab-specific actions
		switch a.activeTab {
		case tabEntries:
			return a.updateEntries(key)
		case tabSettings:
			return a.updateSettings(key)
		}
		return a, nil
	}

	// Forward unhandled messages to the balance editor (cursor blinks, etc.)
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}

	return a, nil
}

const (
	tabOverview = iota
	tabDaily
	tabEntries
	tabSettings
)

// scrollBy moves the active tab's cursor or scroll position.
func (a App) scrollBy(delta int) App {
	switch a.activeTab {
	case tabDaily:
		a.dailyScroll += delta
		if limit := len(a.forecast.Snapshots) - 1; a.dailyScroll > limit {
			a.dailyScroll = limit
		}
		if a.dailyScroll < 0 {
			a.dailyScroll = 0
		}
	case tabEntries:
		a.entries.cursor += delta
		if limit := len(a.entries.rows) - 1; a.entries.cursor > limit {
			a.entries.cursor = limit
		}
		if a.entries.cursor < 0 {
			a.entries.cursor = 0
		}
	case tabSettings:
		a.settings.cursor += delta
		if limit := len(theme.All) - 1; a.settings.cursor > limit {
			a.settings.cursor = limit
		}
		if a.settings.cursor < 0 {
			a.settings.cursor = 0
		}
	}
	return a
}

func (a App) scrollTo(pos int) App {
	switch a.activeTab {
	case tabDaily:
		a.dailyScroll = 0
	case tabEntries:
		a.entries.cursor = 0
	case tabSettings:
		a.settings.cursor = 0
	}
	if pos > 0 {
		return a.scrollBy(pos)
	}
	return a
}

// tabAtX maps a click column to a tab index, or -1.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		w := len(tab.Name)
		if i != a.activeTab && tab.KeyPos < 0 {
			w += 3 // inactive key-not-in-name tabs render "[k]"
		} else if i != a.activeTab {
			w += 2 // brackets around the shortcut letter
		}
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 2
	}
	return -1
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
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  runway needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if a.loadErr != nil {
		return fmt.Sprintf("\n  Error loading entries: %v\n\n  Press q to quit.\n", a.loadErr)
	}
	if a.showHelp {
		return a.viewHelp()
	}

	header := components.RenderTabBar(a.activeTab)

	dangerNote := ""
	if a.forecast.DangerDate != nil {
		dangerNote = "negative on " + a.forecast.DangerDate.Date.Key()
	}
	statusBar := components.RenderStatusBar(a.width, a.months, dangerNote)

	contentH := a.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(a.contentWidth())
	case tabDaily:
		content = a.renderDailyTab(a.contentWidth(), contentH)
	case tabEntries:
		content = a.renderEntriesTab(a.contentWidth(), contentH)
	case tabSettings:
		content = a.renderSettingsTab(a.contentWidth())
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	return header + "\n" + content + statusBar
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o d e x", "Jump to tab"},
		{"← → tab", "Previous / Next tab"},
		{"j k", "Navigate lists"},
		{"g G", "Jump to top / bottom"},
		{"h", "Cycle projection horizon"},
		{"space", "Toggle entry on/off (Entries tab)"},
		{"enter", "Apply theme (Settings tab)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// truncateHeight limits s to at most h lines.
func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// padHeight pads s with blank lines up to h lines.
func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	for ; lines < h; lines++ {
		s += "\n"
	}
	return s
}

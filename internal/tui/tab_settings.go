package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"
)

type settingsState struct {
	cursor  int
	editing bool // balance text input active
	input   textinput.Model
	saved   string // confirmation line after a change persists
}

// updateSettings handles keys specific to the settings tab.
func (a App) updateSettings(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "b":
		in := textinput.New()
		in.Placeholder = "0.00"
		in.SetValue(strconv.FormatFloat(a.in.InitialBalance.Float64(), 'f', 2, 64))
		in.CharLimit = 16
		in.Width = 16
		in.Focus()
		a.settings.input = in
		a.settings.editing = true
		return a, textinput.Blink

	case "enter":
		if a.settings.cursor >= len(theme.All) {
			return a, nil
		}
		selected := theme.All[a.settings.cursor]
		theme.SetActive(selected.Name)

		cfg, _ := config.Load()
		cfg.Appearance.Theme = selected.Name
		if err := config.Save(cfg); err != nil {
			a.settings.saved = fmt.Sprintf("Could not save config: %v", err)
		} else {
			a.settings.saved = fmt.Sprintf("Theme %q saved to %s", selected.Name, config.Path())
		}
		return a, nil
	}
	return a, nil
}

// updateSettingsInput routes keys to the balance editor while it is active.
func (a App) updateSettingsInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			a.settings.editing = false
			return a, nil
		case "enter":
			dollars, err := strconv.ParseFloat(strings.TrimSpace(a.settings.input.Value()), 64)
			if err != nil {
				a.settings.saved = "Balance must be a number, e.g. 2500.00"
				return a, nil
			}
			if err := a.store.SetBalance(model.MoneyFromFloat(dollars)); err != nil {
				a.settings.saved = fmt.Sprintf("Could not save balance: %v", err)
				return a, nil
			}
			a.settings.editing = false
			a.settings.saved = "Balance updated"
			a.recompute()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	cfg, _ := config.Load()

	balanceLine := valueStyle.Render(cli.FormatMoney(a.in.InitialBalance)) +
		dimStyle.Render("  [b] edit")
	if a.settings.editing {
		balanceLine = a.settings.input.View() +
			dimStyle.Render("  [enter] save  [esc] cancel")
	}

	var info strings.Builder
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("Config file:   "), valueStyle.Render(config.Path()))
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("Entry database:"), valueStyle.Render(config.DBPath(cfg)))
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("Anchor date:   "), valueStyle.Render(cli.FormatDate(a.today)))
	fmt.Fprintf(&info, "%s %s\n", labelStyle.Render("Horizon:       "), valueStyle.Render(fmt.Sprintf("%d months", a.months)))
	fmt.Fprintf(&info, "%s %s", labelStyle.Render("Balance:       "), balanceLine)

	var themes strings.Builder
	for i, th := range theme.All {
		marker := "  "
		style := valueStyle
		if i == a.settings.cursor {
			marker = "> "
			style = cursorStyle
		}
		current := ""
		if th.Name == theme.Active.Name {
			current = dimStyle.Render("  (active)")
		}
		fmt.Fprintf(&themes, "%s%s%s\n", dimStyle.Render(marker), style.Render(th.Name), current)
	}
	themes.WriteString("\n")
	themes.WriteString(dimStyle.Render("[enter] apply and save"))
	if a.settings.saved != "" {
		themes.WriteString("\n")
		themes.WriteString(dimStyle.Render(a.settings.saved))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Configuration", info.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Theme", themes.String(), cw))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/tui/theme"
)

// entryRow is one selectable line in the entries tab.
type entryRow struct {
	id        string
	kind      string // "income", "expense", "one-time in", "one-time out"
	label     string
	detail    string
	amount    model.Money
	enabled   bool
	togglable bool
}

type entriesState struct {
	rows   []entryRow
	cursor int
}

// reload flattens the projection input into display rows, recurring first.
func (e *entriesState) reload(in model.ProjectionInput) {
	rows := make([]entryRow, 0, len(in.Incomes)+len(in.Expenses)+len(in.OneTimeIncomes)+len(in.OneTimeExpenses))

	for _, inc := range in.Incomes {
		detail := fmt.Sprintf("%s from %s", cli.FormatFrequency(inc.Frequency), inc.Start.Key())
		if !inc.End.IsZero() {
			detail += " to " + inc.End.Key()
		}
		rows = append(rows, entryRow{
			id: inc.ID, kind: "income", label: inc.Label, detail: detail,
			amount: inc.PerOccurrence(), enabled: inc.Enabled, togglable: true,
		})
	}
	for _, exp := range in.Expenses {
		rows = append(rows, entryRow{
			id: exp.ID, kind: "expense", label: exp.Label,
			detail: fmt.Sprintf("monthly on day %d", exp.DayOfMonth),
			amount: -exp.Amount, enabled: exp.Enabled, togglable: true,
		})
	}
	for _, ev := range in.OneTimeIncomes {
		rows = append(rows, entryRow{
			id: ev.ID, kind: "one-time in", label: ev.Label,
			detail: "on " + ev.Date.Key(), amount: ev.Amount, enabled: true,
		})
	}
	for _, ev := range in.OneTimeExpenses {
		rows = append(rows, entryRow{
			id: ev.ID, kind: "one-time out", label: ev.Label,
			detail: "on " + ev.Date.Key(), amount: -ev.Amount, enabled: true,
		})
	}

	e.rows = rows
	if e.cursor >= len(rows) {
		e.cursor = len(rows) - 1
	}
	if e.cursor < 0 {
		e.cursor = 0
	}
}

// updateEntries handles keys specific to the entries tab.
func (a App) updateEntries(key string) (tea.Model, tea.Cmd) {
	switch key {
	case " ", "t":
		if a.entries.cursor >= len(a.entries.rows) {
			return a, nil
		}
		row := a.entries.rows[a.entries.cursor]
		if !row.togglable {
			return a, nil
		}
		if _, err := a.store.SetEnabled(row.id, !row.enabled); err != nil {
			a.loadErr = err
			return a, nil
		}
		a.recompute()
		return a, nil
	}
	return a, nil
}

func (a App) renderEntriesTab(cw, ch int) string {
	t := theme.Active
	rows := a.entries.rows

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	if len(rows) == 0 {
		return "\n" + dimStyle.Render("  No entries yet. Add them with `runway income add` and `runway expense add`.")
	}

	kindStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	offStyle := lipgloss.NewStyle().Foreground(t.TextDim).Strikethrough(true)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover)

	visible := ch - 2
	if visible < 1 {
		visible = 1
	}
	offset := 0
	if a.entries.cursor >= visible {
		offset = a.entries.cursor - visible + 1
	}
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	labelW := cw / 3
	if labelW < 12 {
		labelW = 12
	}

	var b strings.Builder
	for i := offset; i < end; i++ {
		row := rows[i]

		mark := " "
		if row.togglable && !row.enabled {
			mark = "·"
		}

		amountStyle := posStyle
		if row.amount < 0 {
			amountStyle = negStyle
		}
		nameStyle := labelStyle
		if row.togglable && !row.enabled {
			nameStyle = offStyle
			amountStyle = offStyle
		}

		label := row.label
		if len(label) > labelW {
			label = label[:labelW-3] + "..."
		}

		line := fmt.Sprintf(" %s %s %s %s  %s",
			dimStyle.Render(mark),
			kindStyle.Render(fmt.Sprintf("%-12s", row.kind)),
			nameStyle.Render(fmt.Sprintf("%-*s", labelW, label)),
			amountStyle.Render(fmt.Sprintf("%12s", cli.FormatMoney(row.amount))),
			dimStyle.Render(row.detail))
		if i == a.entries.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(dimStyle.Render(" [space] toggle recurring entries on/off"))
	return b.String()
}

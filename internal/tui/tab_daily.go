package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/tui/theme"
)

func (a App) renderDailyTab(cw, ch int) string {
	t := theme.Active
	snaps := a.forecast.Snapshots
	if len(snaps) == 0 {
		return "\n  No projection data."
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)
	eventStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	cursorStyle := lipgloss.NewStyle().Background(t.SurfaceHover)

	visible := ch - 2 // header + column row
	if visible < 1 {
		visible = 1
	}

	// Keep the cursor row on screen.
	offset := 0
	if a.dailyScroll >= visible {
		offset = a.dailyScroll - visible + 1
	}
	end := offset + visible
	if end > len(snaps) {
		end = len(snaps)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(" %-12s %-4s %14s  %s", "Date", "Day", "Balance", "Events")))
	b.WriteString("\n")

	eventW := cw - 36
	if eventW < 10 {
		eventW = 10
	}

	for i := offset; i < end; i++ {
		s := snaps[i]
		balStyle := posStyle
		if s.Balance < 0 {
			balStyle = negStyle
		}
		events := strings.Join(s.Events, ", ")
		if len(events) > eventW {
			events = events[:eventW-3] + "..."
		}
		line := fmt.Sprintf(" %s %s %s  %s",
			dateStyle.Render(fmt.Sprintf("%-12s", s.Date.Key())),
			dateStyle.Render(fmt.Sprintf("%-4s", cli.FormatDayOfWeek(s.Date.Weekday()))),
			balStyle.Render(fmt.Sprintf("%14s", cli.FormatMoney(s.Balance))),
			eventStyle.Render(events))
		if i == a.dailyScroll {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(dateStyle.Render(fmt.Sprintf(" %d/%d days", a.dailyScroll+1, len(snaps))))
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/tui/components"
	"github.com/theirongolddev/runway/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	f := a.forecast
	var b strings.Builder

	moneyColor := func(v int64) lipgloss.Color {
		if v < 0 {
			return t.Red
		}
		return t.Green
	}

	// Row 1: Metric cards
	lowestDetail := "on " + cli.FormatDateShort(f.LowestPoint.Date)
	runout := "stays solvent"
	runoutColor := t.Green
	runoutDetail := fmt.Sprintf("next %d months", a.months)
	if f.DangerDate != nil {
		runout = cli.FormatDateShort(f.DangerDate.Date)
		runoutColor = t.Red
		runoutDetail = "balance goes negative"
	}

	metrics := []components.Metric{
		{Label: "Final Balance", Value: cli.FormatMoneyCompact(f.FinalBalance()),
			Detail: "from " + cli.FormatMoneyCompact(a.in.InitialBalance),
			Color:  moneyColor(int64(f.FinalBalance()))},
		{Label: "Net", Value: cli.FormatMoneyCompact(f.Net()),
			Detail: fmt.Sprintf("+%s / -%s", cli.FormatMoneyCompact(f.TotalIncome), cli.FormatMoneyCompact(f.TotalExpenses)),
			Color:  moneyColor(int64(f.Net()))},
		{Label: "Lowest Point", Value: cli.FormatMoneyCompact(f.LowestPoint.Balance),
			Detail: lowestDetail,
			Color:  moneyColor(int64(f.LowestPoint.Balance))},
		{Label: "Runs Out", Value: runout, Detail: runoutDetail, Color: runoutColor},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: Balance chart over the horizon
	sampled := engine.Sample(f.Snapshots, components.CardInnerWidth(cw))
	vals := make([]float64, len(sampled))
	labels := make([]string, len(sampled))
	for i, s := range sampled {
		vals[i] = s.Balance.Float64()
		labels[i] = cli.FormatDateShort(s.Date)
	}
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Balance (%d months)", a.months),
		components.BalanceChart(vals, labels, t.Accent, components.CardInnerWidth(cw), 10),
		cw,
	))
	b.WriteString("\n")

	// Row 3: Upcoming events
	b.WriteString(components.ContentCard("Next 14 days", a.renderUpcoming(components.CardInnerWidth(cw)), cw))

	return b.String()
}

// renderUpcoming lists event days within two weeks of today.
func (a App) renderUpcoming(innerW int) string {
	t := theme.Active
	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	shown := 0
	for _, s := range a.forecast.Snapshots {
		if len(s.Events) == 0 {
			continue
		}
		if calendar.DaysBetween(a.today, s.Date) > 14 {
			break
		}
		events := strings.Join(s.Events, ", ")
		if lipgloss.Width(events) > innerW-18 && innerW > 21 {
			events = events[:innerW-21] + "..."
		}
		fmt.Fprintf(&b, "%s  %s\n",
			dateStyle.Render(fmt.Sprintf("%-11s", cli.FormatDateShort(s.Date))),
			labelStyle.Render(events))
		shown++
		if shown >= 6 {
			break
		}
	}
	if shown == 0 {
		b.WriteString(dimStyle.Render("No scheduled events in the next two weeks."))
	}
	return b.String()
}

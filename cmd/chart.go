package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/model"
)

var flagChartWidth int

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Balance chart in the terminal",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().IntVar(&flagChartWidth, "width", 72, "Maximum chart width in columns")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}
	f := engine.Project(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("BALANCE  %d months from %s", in.HorizonMonths, cli.FormatDate(in.Today))))
	fmt.Println()

	sampled := engine.Sample(f.Snapshots, flagChartWidth)
	balances := make([]model.Money, len(sampled))
	for i, s := range sampled {
		balances[i] = s.Balance
	}

	first := sampled[0]
	last := sampled[len(sampled)-1]
	fmt.Printf("  %s\n", cli.RenderBalanceSparkline(balances))
	fmt.Printf("  %-*s%s\n", flagChartWidth-len(cli.FormatDateShort(last.Date)),
		cli.FormatDateShort(first.Date), cli.FormatDateShort(last.Date))
	fmt.Println()

	// Monthly income vs expense bars
	months := monthlyTotals(f.Snapshots, in)
	maxTotal := model.Money(0)
	for _, m := range months {
		if m.income > maxTotal {
			maxTotal = m.income
		}
		if m.expenses > maxTotal {
			maxTotal = m.expenses
		}
	}

	maxBarWidth := 40
	for _, m := range months {
		fmt.Printf("  %s  in  %10s │ %s\n", m.label, cli.FormatMoneyCompact(m.income),
			cli.RenderHorizontalBar(m.income, maxTotal, maxBarWidth))
		fmt.Printf("  %s  out %10s │ %s\n", "        ", cli.FormatMoneyCompact(m.expenses),
			cli.RenderHorizontalBar(m.expenses, maxTotal, maxBarWidth))
	}

	fmt.Println()
	fmt.Printf("  Lowest: %s on %s\n", cli.FormatMoney(f.LowestPoint.Balance), cli.FormatDate(f.LowestPoint.Date))
	if f.DangerDate != nil {
		fmt.Printf("  %s\n", cli.Warn(fmt.Sprintf("Goes negative on %s", cli.FormatDate(f.DangerDate.Date))))
	}
	fmt.Println()

	return nil
}

type monthTotal struct {
	label    string
	income   model.Money
	expenses model.Money
}

// monthlyTotals buckets scheduled events by calendar month.
func monthlyTotals(snaps []model.DailySnapshot, in model.ProjectionInput) []monthTotal {
	events := engine.Schedule(in, in.Range())

	var out []monthTotal
	index := map[string]int{}
	for _, s := range snaps {
		key := s.Date.Time().Format("Jan 2006")
		if _, ok := index[key]; !ok {
			index[key] = len(out)
			out = append(out, monthTotal{label: key})
		}
		for _, e := range events[s.Date.Key()] {
			m := &out[index[key]]
			if e.Amount >= 0 {
				m.income += e.Amount
			} else {
				m.expenses += -e.Amount
			}
		}
	}
	return out
}

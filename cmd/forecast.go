package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/engine"
)

var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Project the balance and show summary statistics",
	RunE:  runForecast,
}

func init() {
	rootCmd.AddCommand(forecastCmd)
}

func runForecast(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	if len(in.Incomes)+len(in.Expenses)+len(in.OneTimeIncomes)+len(in.OneTimeExpenses) == 0 {
		fmt.Println("\n  No entries yet.")
		fmt.Println("  Add income and expenses first, e.g.:")
		fmt.Println("    runway income add --label \"Day job\" --hours 40 --rate 25 --frequency biweekly --start 2026-09-04")
		fmt.Println("    runway expense add --label Rent --amount 1450 --day 1")
		return nil
	}

	f := engine.Project(in)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("CASH RUNWAY  %d months from %s", in.HorizonMonths, cli.FormatDate(in.Today))))
	fmt.Println()

	rows := [][]string{
		{"Starting Balance", cli.FormatMoney(in.InitialBalance)},
		{"Projected Income", cli.MoneyCell(f.TotalIncome)},
		{"Projected Expenses", cli.MoneyCell(-f.TotalExpenses)},
		{"Net", cli.MoneyCell(f.Net())},
		{"---"},
		{"Final Balance", cli.MoneyCell(f.FinalBalance())},
		{"Lowest Balance", fmt.Sprintf("%s  (%s)", cli.MoneyCell(f.LowestPoint.Balance), cli.FormatDate(f.LowestPoint.Date))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	if f.DangerDate != nil {
		deficit := f.LowestPoint.Balance.Abs()
		fmt.Println()
		fmt.Println("  " + cli.Warn("Warning: balance goes negative!"))
		fmt.Printf("  At current projections you run out of money on %s.\n", cli.FormatDate(f.DangerDate.Date))
		fmt.Printf("  Your lowest point is %s. Cutting expenses or adding income\n", cli.FormatMoney(-deficit))
		fmt.Printf("  of at least %s keeps you solvent.\n", cli.FormatMoney(deficit))
	}

	if flagged := engine.DetectOutOfRange(in); len(flagged) > 0 {
		fmt.Println()
		for _, e := range flagged {
			fmt.Printf("  %s\n", cli.Warn(fmt.Sprintf("%q (%s) falls outside the projection window and is ignored",
				e.Label, cli.FormatDate(e.Date))))
		}
	}
	fmt.Println()

	return nil
}

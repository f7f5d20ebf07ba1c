package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"
)

var (
	flagExpenseLabel  string
	flagExpenseAmount float64
	flagExpenseDay    int
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Manage recurring monthly expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a monthly expense",
	RunE:  runExpenseAdd,
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List monthly expenses",
	RunE:  runExpenseList,
}

var expenseRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a monthly expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryRemove,
}

var expenseToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a monthly expense",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryToggle,
}

func init() {
	expenseAddCmd.Flags().StringVar(&flagExpenseLabel, "label", "", "Expense label (required)")
	expenseAddCmd.Flags().Float64Var(&flagExpenseAmount, "amount", 0, "Monthly amount in dollars (required)")
	expenseAddCmd.Flags().IntVar(&flagExpenseDay, "day", 1, "Day of month it is due (1-28)")
	_ = expenseAddCmd.MarkFlagRequired("label")
	_ = expenseAddCmd.MarkFlagRequired("amount")

	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseRmCmd, expenseToggleCmd)
	rootCmd.AddCommand(expenseCmd)
}

func runExpenseAdd(_ *cobra.Command, _ []string) error {
	if flagExpenseDay < 1 || flagExpenseDay > 28 {
		return fmt.Errorf("--day must be between 1 and 28, got %d", flagExpenseDay)
	}
	if flagExpenseAmount < 0 {
		return fmt.Errorf("--amount must not be negative")
	}

	exp := model.RecurringExpense{
		Label:      flagExpenseLabel,
		Amount:     model.MoneyFromFloat(flagExpenseAmount),
		DayOfMonth: flagExpenseDay,
		Enabled:    true,
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.AddExpense(exp)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Added expense %q (%s)\n", exp.Label, id)
	fmt.Printf("  %s monthly on day %d\n\n", cli.FormatMoney(exp.Amount), exp.DayOfMonth)
	return nil
}

func runExpenseList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	expenses, err := s.Expenses()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("\n  No expenses yet. Add one with `runway expense add`.")
		return nil
	}

	var monthly model.Money
	rows := make([][]string, 0, len(expenses))
	for _, exp := range expenses {
		status := "on"
		if exp.Enabled {
			monthly += exp.Amount
		} else {
			status = "off"
		}
		rows = append(rows, []string{
			shortID(exp.ID),
			exp.Label,
			cli.MoneyCell(-exp.Amount),
			fmt.Sprintf("day %d", exp.DayOfMonth),
			status,
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "Total", cli.MoneyCell(-monthly), "monthly", ""})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Monthly expenses",
		Headers: []string{"ID", "Label", "Amount", "Due", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

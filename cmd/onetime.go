package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"
)

var (
	flagOneTimeLabel  string
	flagOneTimeAmount float64
	flagOneTimeDate   string
	flagOneTimeKind   string
)

var onetimeCmd = &cobra.Command{
	Use:   "onetime",
	Short: "Manage one-time incomes and expenses",
}

var onetimeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a one-time event",
	RunE:  runOneTimeAdd,
}

var onetimeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one-time events",
	RunE:  runOneTimeList,
}

var onetimeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a one-time event",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryRemove,
}

func init() {
	onetimeAddCmd.Flags().StringVar(&flagOneTimeLabel, "label", "", "Event label (required)")
	onetimeAddCmd.Flags().Float64Var(&flagOneTimeAmount, "amount", 0, "Amount in dollars (required)")
	onetimeAddCmd.Flags().StringVar(&flagOneTimeDate, "date", "", "Date as YYYY-MM-DD (required)")
	onetimeAddCmd.Flags().StringVar(&flagOneTimeKind, "kind", "expense", "Event kind: income or expense")
	_ = onetimeAddCmd.MarkFlagRequired("label")
	_ = onetimeAddCmd.MarkFlagRequired("amount")
	_ = onetimeAddCmd.MarkFlagRequired("date")

	onetimeCmd.AddCommand(onetimeAddCmd, onetimeListCmd, onetimeRmCmd)
	rootCmd.AddCommand(onetimeCmd)
}

func parseOneTimeKind(s string) (model.OneTimeKind, error) {
	switch model.OneTimeKind(s) {
	case model.OneTimeIncome, model.OneTimeExpense:
		return model.OneTimeKind(s), nil
	}
	return "", fmt.Errorf("kind must be income or expense, got %q", s)
}

func runOneTimeAdd(_ *cobra.Command, _ []string) error {
	kind, err := parseOneTimeKind(flagOneTimeKind)
	if err != nil {
		return err
	}
	date, err := calendar.ParseDate(flagOneTimeDate)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}
	if flagOneTimeAmount < 0 {
		return fmt.Errorf("--amount must not be negative; use --kind expense for money out")
	}

	ev := model.OneTimeEvent{
		Label:  flagOneTimeLabel,
		Amount: model.MoneyFromFloat(flagOneTimeAmount),
		Date:   date,
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.AddOneTime(ev, kind)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Added one-time %s %q (%s)\n", kind, ev.Label, id)
	fmt.Printf("  %s on %s\n\n", cli.FormatMoney(ev.Amount), cli.FormatDate(ev.Date))
	return nil
}

func runOneTimeList(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	var rows [][]string
	for _, kind := range []model.OneTimeKind{model.OneTimeIncome, model.OneTimeExpense} {
		events, err := s.OneTimes(kind)
		if err != nil {
			return err
		}
		for _, ev := range events {
			amount := ev.Amount
			if kind == model.OneTimeExpense {
				amount = -amount
			}
			rows = append(rows, []string{
				shortID(ev.ID),
				ev.Label,
				string(kind),
				cli.MoneyCell(amount),
				ev.Date.Key(),
			})
		}
	}
	if len(rows) == 0 {
		fmt.Println("\n  No one-time events yet. Add one with `runway onetime add`.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "One-time events",
		Headers: []string{"ID", "Label", "Kind", "Amount", "Date"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

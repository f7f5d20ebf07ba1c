package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/model"
)

var (
	flagIncomeLabel     string
	flagIncomeHours     float64
	flagIncomeRate      float64
	flagIncomeFrequency string
	flagIncomeStart     string
	flagIncomeEnd       string
)

var incomeCmd = &cobra.Command{
	Use:   "income",
	Short: "Manage recurring income",
}

var incomeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recurring income",
	RunE:  runIncomeAdd,
}

var incomeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recurring incomes",
	RunE:  runIncomeList,
}

var incomeRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a recurring income",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryRemove,
}

var incomeToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Enable or disable a recurring income",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryToggle,
}

func init() {
	incomeAddCmd.Flags().StringVar(&flagIncomeLabel, "label", "", "Income label (required)")
	incomeAddCmd.Flags().Float64Var(&flagIncomeHours, "hours", 0, "Hours worked per week (required)")
	incomeAddCmd.Flags().Float64Var(&flagIncomeRate, "rate", 0, "Hourly rate in dollars (required)")
	incomeAddCmd.Flags().StringVar(&flagIncomeFrequency, "frequency", "biweekly", "Pay cadence: weekly, biweekly, monthly")
	incomeAddCmd.Flags().StringVar(&flagIncomeStart, "start", "", "First paycheck date as YYYY-MM-DD (required)")
	incomeAddCmd.Flags().StringVar(&flagIncomeEnd, "end", "", "Last paycheck date, empty for open-ended")
	_ = incomeAddCmd.MarkFlagRequired("label")
	_ = incomeAddCmd.MarkFlagRequired("hours")
	_ = incomeAddCmd.MarkFlagRequired("rate")
	_ = incomeAddCmd.MarkFlagRequired("start")

	incomeCmd.AddCommand(incomeAddCmd, incomeListCmd, incomeRmCmd, incomeToggleCmd)
	rootCmd.AddCommand(incomeCmd)
}

func runIncomeAdd(_ *cobra.Command, _ []string) error {
	freq, err := calendar.ParseFrequency(flagIncomeFrequency)
	if err != nil {
		return err
	}
	start, err := calendar.ParseDate(flagIncomeStart)
	if err != nil {
		return fmt.Errorf("--start: %w", err)
	}
	var end calendar.Date
	var snapped bool
	if flagIncomeEnd != "" {
		if end, err = calendar.ParseDate(flagIncomeEnd); err != nil {
			return fmt.Errorf("--end: %w", err)
		}
		// An arbitrary end date is snapped to the nearest actual paycheck
		// date, so the occurrence count stays exact.
		if s := freq.SnapToOccurrence(start, end); !s.Equal(end) {
			end = s
			snapped = true
		}
	}
	if flagIncomeHours < 0 || flagIncomeRate < 0 {
		return fmt.Errorf("hours and rate must not be negative")
	}

	inc := model.RecurringIncome{
		Label:        flagIncomeLabel,
		HoursPerWeek: flagIncomeHours,
		HourlyRate:   flagIncomeRate,
		Frequency:    freq,
		Start:        start,
		End:          end,
		Enabled:      true,
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.AddIncome(inc)
	if err != nil {
		return err
	}

	fmt.Printf("\n  Added income %q (%s)\n", inc.Label, id)
	if snapped {
		fmt.Printf("  End date adjusted to the nearest paycheck: %s\n", end.Key())
	}
	fmt.Printf("  %s %s, %s\n\n", cli.FormatMoney(inc.PerOccurrence()),
		cli.FormatFrequency(freq), cli.FormatPaychecks(inc.Paychecks()))
	return nil
}

func runIncomeList(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}
	if len(in.Incomes) == 0 {
		fmt.Println("\n  No incomes yet. Add one with `runway income add`.")
		return nil
	}

	flagged := map[string]bool{}
	for _, e := range engine.DetectOutOfRange(in) {
		flagged[e.ID] = true
	}

	rows := make([][]string, 0, len(in.Incomes))
	for _, inc := range in.Incomes {
		status := "on"
		if !inc.Enabled {
			status = "off"
		}
		if flagged[inc.ID] {
			status = cli.Warn("out of range")
		}
		end := "ongoing"
		if !inc.End.IsZero() {
			end = inc.End.Key()
		}
		rows = append(rows, []string{
			shortID(inc.ID),
			inc.Label,
			cli.MoneyCell(inc.PerOccurrence()),
			cli.FormatFrequency(inc.Frequency),
			inc.Start.Key(),
			end,
			cli.FormatPaychecks(inc.Paychecks()),
			status,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Recurring income",
		Headers: []string{"ID", "Label", "Per check", "Cadence", "Start", "End", "Checks", "Status"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}

// shortID abbreviates a UUID for table display; rm and toggle accept the
// full ID printed by add.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func runEntryRemove(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.ResolveID(args[0])
	if err != nil {
		return err
	}
	ok, err := s.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry with ID %q", args[0])
	}
	fmt.Printf("\n  Removed %s\n\n", shortID(id))
	return nil
}

func runEntryToggle(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	id, err := s.ResolveID(args[0])
	if err != nil {
		return err
	}
	enabled, err := s.Enabled(id)
	if err != nil {
		return err
	}
	ok, err := s.SetEnabled(id, !enabled)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no recurring entry with ID %q", args[0])
	}
	state := "enabled"
	if enabled {
		state = "disabled"
	}
	fmt.Printf("\n  %s is now %s\n\n", shortID(id), state)
	return nil
}

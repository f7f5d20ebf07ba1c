package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/model"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [amount]",
	Short: "Show or set the starting balance",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}

func runBalance(_ *cobra.Command, args []string) error {
	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if len(args) == 0 {
		b, err := s.Balance()
		if err != nil {
			return err
		}
		fmt.Printf("\n  Starting balance: %s\n\n", cli.FormatMoney(b))
		return nil
	}

	dollars, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("amount must be a number, got %q", args[0])
	}
	b := model.MoneyFromFloat(dollars)
	if err := s.SetBalance(b); err != nil {
		return err
	}
	fmt.Printf("\n  Starting balance set to %s\n\n", cli.FormatMoney(b))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/plan"
)

var importCmd = &cobra.Command{
	Use:   "import <plan.yaml>",
	Short: "Replace all entries from a YAML plan",
	Long: `Import reads a YAML plan (as written by export --format yaml) and
replaces every stored entry and the starting balance with its contents.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	in, err := plan.Load(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if err := s.ReplaceAll(in); err != nil {
		return fmt.Errorf("importing plan: %w", err)
	}

	fmt.Printf("\n  Imported %d incomes, %d expenses, %d one-time events from %s\n\n",
		len(in.Incomes), len(in.Expenses),
		len(in.OneTimeIncomes)+len(in.OneTimeExpenses), args[0])
	return nil
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, _ := config.Load()

	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	balance, err := s.Balance()
	if err != nil {
		return err
	}
	balanceStr := strconv.FormatFloat(balance.Float64(), 'f', 2, 64)
	horizon := cfg.General.HorizonMonths
	currency := cfg.General.CurrencySymbol
	theme := cfg.Appearance.Theme

	horizonOpts := make([]huh.Option[int], 0, len(model.HorizonChoices))
	for _, m := range model.HorizonChoices {
		horizonOpts = append(horizonOpts, huh.NewOption(fmt.Sprintf("%d months", m), m))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current balance").
				Description("Cash on hand today, in dollars.").
				Value(&balanceStr).
				Validate(func(s string) error {
					_, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return fmt.Errorf("enter a number, e.g. 2500.00")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("Default projection horizon").
				Options(horizonOpts...).
				Value(&horizon),
			huh.NewInput().
				Title("Currency symbol").
				Value(&currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	dollars, err := strconv.ParseFloat(balanceStr, 64)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	if err := s.SetBalance(model.MoneyFromFloat(dollars)); err != nil {
		return err
	}

	cfg.General.HorizonMonths = horizon
	cfg.General.CurrencySymbol = currency
	cfg.Appearance.Theme = theme
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `runway setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}

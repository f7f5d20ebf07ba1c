// Package cmd implements the runway CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/config"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/store"
)

var (
	flagMonths int
	flagToday  string
	flagDBPath string
)

var rootCmd = &cobra.Command{
	Use:   "runway",
	Short: "Cash runway projection CLI",
	Long:  "Project your cash balance forward from your income, bills, and one-time events.",
	RunE:  runForecast,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagMonths, "months", "n", 0, "Projection horizon in months (3, 6, 12, 18, 24; default from config)")
	rootCmd.PersistentFlags().StringVar(&flagToday, "today", "", "Anchor date as YYYY-MM-DD (defaults to the current date)")
	rootCmd.PersistentFlags().StringVarP(&flagDBPath, "db", "d", "", "Entry database path (default from config)")
}

// loadConfig resolves config plus the currency symbol side effect.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable (%v), using defaults\n", err)
	}
	cli.SetCurrency(cfg.General.CurrencySymbol)
	return cfg
}

// openStore opens the entry database, honoring the --db override.
func openStore(cfg config.Config) (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		path = config.DBPath(cfg)
	}
	return store.Open(path)
}

// resolveToday returns the projection anchor: the --today flag when given
// (so projections are reproducible), otherwise the wall clock date.
func resolveToday() (calendar.Date, error) {
	if flagToday == "" {
		return calendar.FromTime(time.Now()), nil
	}
	return calendar.ParseDate(flagToday)
}

// resolveHorizon returns the horizon: --months when given, else config.
func resolveHorizon(cfg config.Config) (int, error) {
	months := flagMonths
	if months == 0 {
		months = cfg.General.HorizonMonths
	}
	if !model.ValidHorizon(months) {
		return 0, fmt.Errorf("horizon must be one of %v months, got %d", model.HorizonChoices, months)
	}
	return months, nil
}

// loadInput is the shared path from persisted entries to a projection input.
func loadInput() (model.ProjectionInput, error) {
	cfg := loadConfig()

	today, err := resolveToday()
	if err != nil {
		return model.ProjectionInput{}, err
	}
	months, err := resolveHorizon(cfg)
	if err != nil {
		return model.ProjectionInput{}, err
	}

	s, err := openStore(cfg)
	if err != nil {
		return model.ProjectionInput{}, err
	}
	defer func() { _ = s.Close() }()

	return s.Snapshot(today, months)
}

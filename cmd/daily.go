package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/runway/internal/cli"
	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/model"
)

var (
	flagDailyAll        bool
	flagDailyEventsOnly bool
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Daily balance table",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().BoolVar(&flagDailyAll, "all", false, "Show every day instead of a sampled view")
	dailyCmd.Flags().BoolVar(&flagDailyEventsOnly, "events-only", false, "Show only days with scheduled events")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}
	f := engine.Project(in)

	snaps := f.Snapshots
	switch {
	case flagDailyEventsOnly:
		var kept []model.DailySnapshot
		for _, s := range snaps {
			if len(s.Events) > 0 {
				kept = append(kept, s)
			}
		}
		snaps = kept
	case !flagDailyAll:
		snaps = engine.Sample(snaps, engine.DefaultMaxPoints)
	}

	if len(snaps) == 0 {
		fmt.Println("\n  No days to show.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("DAILY BALANCE  %d months", in.HorizonMonths)))
	fmt.Println()

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.Date.Key(),
			cli.FormatDayOfWeek(s.Date.Weekday()),
			cli.MoneyCell(s.Balance),
			strings.Join(s.Events, ", "),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Day", "Balance", "Events"},
		Rows:    rows,
	}))

	return nil
}

package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/runway/internal/engine"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/plan"
)

var (
	flagExportFormat string
	flagExportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the projection or plan to a file",
	Long: `Export writes the daily projection as CSV or XLSX, or the stored
entries as a YAML plan that can be edited and re-imported.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Output format: csv, xlsx, yaml")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output path (default runway.<format>)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	in, err := loadInput()
	if err != nil {
		return err
	}

	out := flagExportOut
	if out == "" {
		out = "runway." + flagExportFormat
	}

	switch flagExportFormat {
	case "csv":
		err = exportCSV(out, in)
	case "xlsx":
		err = exportXLSX(out, in)
	case "yaml", "yml":
		err = plan.Save(out, in)
	default:
		return fmt.Errorf("format must be csv, xlsx, or yaml, got %q", flagExportFormat)
	}
	if err != nil {
		return err
	}

	fmt.Printf("\n  Wrote %s\n\n", out)
	return nil
}

func exportCSV(path string, in model.ProjectionInput) error {
	f := engine.Project(in)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"date", "balance", "events"}); err != nil {
		return err
	}
	for _, s := range f.Snapshots {
		record := []string{
			s.Date.Key(),
			strconv.FormatFloat(s.Balance.Float64(), 'f', 2, 64),
			strings.Join(s.Events, "; "),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportXLSX(path string, in model.ProjectionInput) error {
	f := engine.Project(in)

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	const daily = "Daily"
	const summary = "Summary"

	idx, err := wb.NewSheet(summary)
	if err != nil {
		return err
	}
	wb.SetActiveSheet(idx)
	if _, err := wb.NewSheet(daily); err != nil {
		return err
	}
	if err := wb.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	summaryRows := [][]any{
		{"Metric", "Value"},
		{"Starting Balance", in.InitialBalance.Float64()},
		{"Projected Income", f.TotalIncome.Float64()},
		{"Projected Expenses", f.TotalExpenses.Float64()},
		{"Net", f.Net().Float64()},
		{"Final Balance", f.FinalBalance().Float64()},
		{"Lowest Balance", f.LowestPoint.Balance.Float64()},
		{"Lowest Balance Date", f.LowestPoint.Date.Key()},
	}
	if f.DangerDate != nil {
		summaryRows = append(summaryRows, []any{"Goes Negative On", f.DangerDate.Date.Key()})
	}
	for i, row := range summaryRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}
	}

	header := []any{"Date", "Balance", "Events"}
	if err := wb.SetSheetRow(daily, "A1", &header); err != nil {
		return err
	}
	for i, s := range f.Snapshots {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{s.Date.Key(), s.Balance.Float64(), strings.Join(s.Events, "; ")}
		if err := wb.SetSheetRow(daily, cell, &row); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}

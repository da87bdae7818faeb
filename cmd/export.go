package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tapereport/internal/export"
	"tapereport/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the aggregated sales report to an XLSX workbook",
	Long: `Build the sales report from a tape export and write it to an XLSX
workbook with one row per month, cashier, day, receipt and line item.`,
	Example: `  tapereport export --input tape.tsv --output report.xlsx

  tapereport export --input tape.tsv --output report.xlsx --rules rules.yaml`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().String("input", "", "Path to the tab-delimited tape export (required)")
	exportCmd.Flags().String("output", "", "Path of the XLSX workbook to write (required)")
	exportCmd.Flags().String("rules", "", "Path to a classification rules file (default: built-in codes)")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export")

	input, _ := cmd.Flags().GetString("input")
	output, _ := cmd.Flags().GetString("output")
	rulesPath, _ := cmd.Flags().GetString("rules")

	if output == "" {
		return fmt.Errorf("--output is required")
	}

	view, err := buildReport(input, rulesPath)
	if err != nil {
		return err
	}

	if err := export.WriteXLSX(view, output); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	log.Info().
		Str("output", output).
		Str("load_id", view.LoadID).
		Msg("Report exported")

	return nil
}

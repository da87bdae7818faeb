package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tapereport/internal/classify"
	"tapereport/internal/config"
	"tapereport/internal/logger"
	"tapereport/internal/report"
	"tapereport/internal/tape"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Build the aggregated sales report from a tape export",
	Long: `Build the month/cashier/day/receipt/line-item sales report from a
tab-delimited register tape export and print it to stdout.

Rows with an unknown void code are excluded, malformed dates fall back to
the current day, and unparseable amounts are kept as zero-amount items and
reported in the data-quality counters. A row missing its cashier or date
leaves no trace in the report.`,
	Example: `  # JSON tree with totals at every level
  tapereport report --input tape.tsv

  # Month and cashier totals only
  tapereport report --input tape.tsv --format summary

  # Custom register code set
  tapereport report --input tape.tsv --rules rules.yaml`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("input", "", "Path to the tab-delimited tape export (required)")
	reportCmd.Flags().String("rules", "", "Path to a classification rules file (default: built-in codes)")
	reportCmd.Flags().String("format", "json", "Output format: json or summary")
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("report")

	input, _ := cmd.Flags().GetString("input")
	rulesPath, _ := cmd.Flags().GetString("rules")
	format, _ := cmd.Flags().GetString("format")

	if format != "json" && format != "summary" {
		return fmt.Errorf("unknown format %q, expected json or summary", format)
	}

	view, err := buildReport(input, rulesPath)
	if err != nil {
		return err
	}

	log.Info().
		Str("load_id", view.LoadID).
		Str("format", format).
		Msg("Printing report")

	if format == "summary" {
		printSummary(view)
		return nil
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// buildReport runs the full pipeline: read, classify, fold, project. Flags
// left empty fall back to the environment configuration.
func buildReport(input, rulesPath string) (report.View, error) {
	const op = "buildReport"
	log := logger.WithComponent("report")

	cfg, err := config.Load()
	if err != nil {
		return report.View{}, fmt.Errorf("%s: %w", op, err)
	}
	if input == "" {
		input = cfg.InputFile
	}
	if rulesPath == "" {
		rulesPath = cfg.RulesFile
	}

	if input == "" {
		return report.View{}, fmt.Errorf("%s: --input is required", op)
	}

	rules, err := loadRules(rulesPath)
	if err != nil {
		return report.View{}, fmt.Errorf("%s: %w", op, err)
	}

	records, err := tape.ReadFile(input, tape.DefaultColumns())
	if err != nil {
		return report.View{}, fmt.Errorf("%s: failed to read tape export: %w", op, err)
	}

	log.Info().
		Str("input", input).
		Int("records", len(records)).
		Msg("Tape export loaded")

	rep := report.NewBuilder(rules).Build(records)
	return rep.View(rules), nil
}

func loadRules(path string) (classify.Rules, error) {
	if path == "" {
		return classify.DefaultRules(), nil
	}
	return classify.LoadRules(path)
}

func printSummary(view report.View) {
	fmt.Printf("Report %s (generated %s)\n", view.LoadID, view.GeneratedAt.Format("2006-01-02 15:04:05"))
	for _, month := range view.Months {
		fmt.Printf("%s  sales=%s storno=%s returns=%s cancelled=%s\n",
			month.Key,
			month.Totals.Sales, month.Totals.Storno,
			month.Totals.Returns, month.Totals.Cancelled)
		for _, cashier := range month.Cashiers {
			fmt.Printf("  %-20s sales=%s storno=%s returns=%s cancelled=%s\n",
				cashier.Name,
				cashier.Totals.Sales, cashier.Totals.Storno,
				cashier.Totals.Returns, cashier.Totals.Cancelled)
		}
	}
	if view.InvalidAmounts > 0 || view.MalformedDates > 0 {
		fmt.Printf("data quality: %d invalid amounts, %d malformed dates\n",
			view.InvalidAmounts, view.MalformedDates)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tapereport/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "tapereport",
	Short: "Aggregate register tape exports into a sales report",
	Long: `tapereport turns a flat, tab-delimited point-of-sale register tape
export into a hierarchical sales report: month, cashier, day, receipt and
line item, with sales, storno, return and cancellation totals at every
level, plus separately tracked deposits and withdrawals.

Classification codes (void codes, the storno code, receipt-type codes,
the valid-state code) are configurable through a rules file.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tapereport", version)
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

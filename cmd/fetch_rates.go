package cmd

import (
	"context"
	"fmt"

	"portfoliotracker/internal/logger"

	"github.com/spf13/cobra"
)

var fetchRatesCmd = &cobra.Command{
	Use:   "fetch-rates",
	Short: "Attach exchange-rate tables to snapshots missing them",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer deps.Close()

		ctx := context.WithValue(cmd.Context(), logger.ContextKey, logger.New())
		attached, err := deps.RatesService.EnsureRates(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("attached rate tables to %d snapshot(s)\n", attached)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchRatesCmd)
}

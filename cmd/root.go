package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfoliotracker",
	Short: "Personal portfolio analytics service",
	Long: `portfoliotracker derives dashboards, performance metrics and
rebalancing suggestions from a history of manually entered portfolio
snapshots.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

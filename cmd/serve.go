package cmd

import (
	"context"

	"portfoliotracker/internal/logger"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer deps.Close()

		log := logger.New()
		ctx, cancel := context.WithCancel(context.WithValue(cmd.Context(), logger.ContextKey, log))
		defer cancel()

		// background reload loop; the initial reload happens inside Run
		go func() {
			if err := deps.DashboardHandler.Run(ctx); err != nil && ctx.Err() == nil {
				log.Errorf("dashboard reload loop exited: %s", err.Error())
			}
		}()

		if _, err := deps.RatesService.EnsureRates(ctx); err != nil {
			log.Warnf("failed to backfill exchange rates: %s", err.Error())
		} else {
			deps.DashboardHandler.MarkDirty()
		}

		return deps.ApiHandler.StartApi(servePort)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

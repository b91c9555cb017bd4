package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [snapshot-id]",
	Short: "Export a snapshot's composite valuation as CSV",
	Long: `Export writes the carry-forward-resolved valuation of a snapshot as
CSV. With no snapshot id, the latest snapshot is exported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := InitializeDependencies()
		if err != nil {
			return err
		}
		defer deps.Close()

		var snapshotID uuid.UUID
		if len(args) == 1 {
			snapshotID, err = uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid snapshot id %q: %w", args[0], err)
			}
		} else {
			snapshots, err := deps.SnapshotRepository.List()
			if err != nil {
				return err
			}
			if len(snapshots) == 0 {
				return fmt.Errorf("no snapshots to export")
			}
			snapshotID = snapshots[len(snapshots)-1].SnapshotID
		}

		out := os.Stdout
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			out = f
		}

		return deps.ExportService.ExportComposite(out, snapshotID)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/psttools/pstsweep/internal/logger"
	"github.com/psttools/pstsweep/internal/osfs"
	"github.com/psttools/pstsweep/internal/procctl"
	"github.com/psttools/pstsweep/internal/sweep"
	"github.com/psttools/pstsweep/internal/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Free disk space",
	Long:  "Delete the temporary PST copies left behind by the extraction pipeline, stopping the mail client if it holds them open.",
	RunE: func(cmd *cobra.Command, args []string) error {
		orch := sweep.New(osfs.Store{}, procctl.Controller{},
			ui.NewTerminalConfirmer(), *logger.Get())

		rep, err := orch.Run(cfg.Options(dryRun))
		if err != nil {
			return err
		}

		fmt.Print(ui.RenderReport(rep))
		if rep.Outcome != sweep.OutcomeCancelled {
			ui.Pause()
		}
		return nil
	},
}

func init() {
	cleanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the cleanup plan without deleting")
}

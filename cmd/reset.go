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

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all extraction progress for a fresh start",
	Long: `Delete the temporary PST copies AND every progress-state file of the
extraction pipeline (checkpoint, seen-ID index, extracted emails, stats,
log). The pipeline restarts from the beginning on its next run.

This is irreversible, so the confirmation requires typing the exact word
YES rather than a single key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		orch := sweep.New(osfs.Store{}, procctl.Controller{},
			ui.NewTerminalConfirmer(), *logger.Get())

		rep, err := orch.RunReset(cfg.Options(false), cfg.StateFiles())
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

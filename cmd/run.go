package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/psttools/pstsweep/internal/launcher"
)

var runCmd = &cobra.Command{
	Use:   "run [args...]",
	Short: "Launch the extraction program",
	Long: `Start the configured extraction program, forwarding any arguments and
setting its module search path. pstsweep waits for it to finish and exits
with the extractor's exit code.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := launcher.New(cfg.Extractor)
		code, err := l.Run(cmd.Context(), args)
		if err != nil {
			return err
		}
		if code != 0 {
			os.Exit(code)
		}
		return nil
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/psttools/pstsweep/internal/config"
	"github.com/psttools/pstsweep/internal/logger"
)

var (
	// Global flags
	debug      bool
	configFile string
	dryRun     bool

	// cfg is loaded once before any subcommand runs.
	cfg config.Config

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "pstsweep",
	Short: "Disk cleanup and reset for the PST extraction pipeline",
	Long: `pstsweep - maintenance companion for the PST email-extraction pipeline.

Frees disk space by deleting temporary PST copies, stops a mail client
that may be holding them open, optionally wipes all extraction progress
for a fresh start, and launches the extraction program itself.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		return logger.Init(logger.Options{
			Level:      cfg.Log.Level,
			Console:    debug,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to a pstsweep config file")

	// Register all subcommands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

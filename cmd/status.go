package cmd

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/psttools/pstsweep/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Monitor the extraction pipeline",
	Long:  "Live dashboard with volume free space, temp-copy usage, state-file presence, and the mail client's state.",
	RunE: func(cmd *cobra.Command, args []string) error {
		refresh, _ := cmd.Flags().GetInt("refresh")
		model := status.NewModel(cfg, time.Duration(refresh)*time.Second)
		_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	statusCmd.Flags().Int("refresh", 2, "Refresh interval in seconds")
}

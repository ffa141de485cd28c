package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/launcher"
	"github.com/xdg/claude-run/internal/wizard"
)

var launchCommand string

var launchCmd = &cobra.Command{
	Use:   "launch [-- args...]",
	Short: "Start claude with the saved configuration",
	Long: `Apply the saved configuration to the environment and start claude
without asking anything. Arguments after -- are passed to claude.

  claude-run launch -- --resume

The exit code of claude is passed through.`,
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().StringVar(&launchCommand, "launch-command", launcher.DefaultCommand, "command to start")
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	s, err := loadSession(false)
	if err != nil {
		return err
	}

	w := newWizard(cmd, s, wizard.Options{
		LaunchCommand: launchCommand,
		LaunchArgs:    args,
	})
	return launchExitError(w.LaunchSaved(commandContext(cmd)))
}

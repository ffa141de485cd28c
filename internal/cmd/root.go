// Package cmd implements the CLI commands for claude-run.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/term"
	"github.com/xdg/claude-run/internal/version"
)

var (
	flagDebug     bool
	flagVerbose   bool
	flagSilent    bool
	flagConfigDir string
	flagLogFile   string
)

// rootCmd represents the base command when called without any subcommands.
// Without a subcommand it runs the setup wizard.
var rootCmd = &cobra.Command{
	Use:   "claude-run",
	Short: "Point Claude Code at a third-party model provider",
	Long: `claude-run configures Claude Code to talk to an Anthropic-compatible
model provider (GLM, QWEN, Kimi, DeepSeek or a custom relay).

It asks for a provider and API key, sets ANTHROPIC_BASE_URL and
ANTHROPIC_API_KEY for this session or permanently, remembers the choice
in ~/.claude-run/config.json, and can start the claude CLI right away.`,
	Version:           version.String(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupGlobals,
	RunE:              runSetup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "write debug logs to the log file")
	pf.BoolVar(&flagVerbose, "verbose", false, "mirror log output to stderr")
	pf.BoolVarP(&flagSilent, "silent", "s", false, "suppress informational output")
	pf.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.claude-run, or $"+config.DirEnvVar+")")
	pf.StringVar(&flagLogFile, "log-file", "", "log file path (default under $XDG_STATE_HOME/claude-run)")

	addSetupFlags(rootCmd)
}

// setupGlobals applies the persistent flags before any command runs.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	term.SetSilent(flagSilent)
	if flagConfigDir != "" {
		config.SetDir(flagConfigDir)
	}

	opts := clog.Options{Debug: flagDebug, Verbose: flagVerbose}
	if flagDebug || flagLogFile != "" {
		opts.Path = flagLogFile
		if opts.Path == "" {
			opts.Path = clog.DefaultLogPath()
		}
	}
	if err := clog.Configure(opts); err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	clog.Debug("claude-run %s: %s", version.String(), cmd.CommandPath())
	return nil
}

// Execute runs the root command and returns any error. Errors other than
// an ExitCodeError are printed to stderr.
func Execute() error {
	defer func() { _ = clog.Close() }()

	err := rootCmd.Execute()
	var exitErr *ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		term.Error("%v", err)
	}
	return err
}

// commandContext returns the command's context, or a background context when
// the command was invoked directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

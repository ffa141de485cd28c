package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/prompt"
	"github.com/xdg/claude-run/internal/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or edit saved state",
	Long: `Inspect or edit claude-run's saved state.

The state file is ~/.claude-run/config.json (or $CLAUDE_RUN_HOME/config.json).
Keys use dotted paths into the JSON document, for example:

  claude-run config get lastUsed.provider
  claude-run config set lastUsed.mode perm
  claude-run config set providers.custom.baseUrl https://relay.example.com`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show saved state with API keys masked",
	Long: `Print the saved state as YAML. API keys are masked.

If no state file exists, shows the empty default.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print state file path",
	Long:  `Print the path to the state file.`,
	Args:  cobra.NoArgs,
	Run:   runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one value",
	Long: `Change one value in the state file. The result is validated before it
is written; an invalid mode or URL is rejected.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the state file",
	Long: `Delete the state file, forgetting the last configuration and any API
keys stored in it. Keys in the system keychain are not touched; use
'claude-run forget' for those.`,
	Args: cobra.NoArgs,
	RunE: runConfigReset,
}

var configResetYes bool

// configYesNoPrompter confirms config reset. It can be overridden for testing.
var configYesNoPrompter prompt.YesNoPrompter

func init() {
	configResetCmd.Flags().BoolVarP(&configResetYes, "yes", "y", false, "do not ask for confirmation")

	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}

// maskedState returns a copy of st with API keys masked.
func maskedState(st *config.State) *config.State {
	out := *st
	out.Providers = make(map[string]config.ProviderState, len(st.Providers))
	for id, ps := range st.Providers {
		if ps.APIKey != "" {
			ps.APIKey = envvar.Mask(ps.APIKey)
		}
		out.Providers[id] = ps
	}
	return &out
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	st, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(maskedState(st))
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), config.Path())
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	st, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	value, ok, err := config.GetValue(st, args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is not set", args[0])
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	st, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	updated, err := config.SetValue(st, args[0], args[1])
	if err != nil {
		return err
	}
	if err := config.Write(updated); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	term.Printf("Set %s\n", args[0])
	return nil
}

func runConfigReset(cmd *cobra.Command, _ []string) error {
	path := config.Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		term.Println("Nothing to reset.")
		return nil
	}

	if !configResetYes {
		yesNo := configYesNoPrompter
		if yesNo == nil {
			yesNo = prompt.NewStdinYesNoPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		ok, err := yesNo.PromptYesNo(fmt.Sprintf("Delete %s? [y/N]: ", path), false)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
		if !ok {
			term.Println("Reset canceled.")
			return nil
		}
	}

	if err := config.Reset(); err != nil {
		return fmt.Errorf("failed to reset config: %w", err)
	}
	term.Printf("Removed %s\n", path)
	return nil
}

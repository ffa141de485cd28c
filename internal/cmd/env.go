package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/wizard"
)

var envFormat string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the saved configuration as environment assignments",
	Long: `Print ANTHROPIC_BASE_URL and the API key variable from the saved
configuration, in a form a shell can evaluate:

  eval "$(claude-run env)"                       # bash, zsh
  claude-run env --format powershell | iex       # PowerShell
  claude-run env --format cmd > env.cmd && env.cmd
  claude-run env --format dotenv > .env

The API key is printed in clear text.`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	names := make([]string, len(envvar.Formats))
	for i, f := range envvar.Formats {
		names[i] = string(f)
	}
	envCmd.Flags().StringVarP(&envFormat, "format", "f", string(envvar.FormatShell),
		"output format ("+strings.Join(names, ", ")+")")
	rootCmd.AddCommand(envCmd)
}

func runEnv(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(false)
	if err != nil {
		return err
	}

	settings, err := wizard.ResolveSaved(s.catalog, s.state, s.store)
	if err != nil {
		return err
	}

	out, err := envvar.Render(envvar.Vars(settings), envvar.Format(envFormat))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

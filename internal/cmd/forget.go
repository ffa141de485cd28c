package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/credential"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/provider"
	"github.com/xdg/claude-run/internal/term"
)

var forgetProfile bool

var forgetCmd = &cobra.Command{
	Use:   "forget <provider>",
	Short: "Remove what is saved for a provider",
	Long: `Remove the API key and base URL saved for a provider. If it was the
last used provider, the saved configuration is cleared too.

With --profile, also remove the permanent variables written by the wizard
(the claude-run block in your shell profile, or the user environment on
Windows).`,
	Args: cobra.ExactArgs(1),
	RunE: runForget,
}

func init() {
	forgetCmd.Flags().BoolVar(&forgetProfile, "profile", false, "also remove permanently set variables")
	rootCmd.AddCommand(forgetCmd)
}

func runForget(cmd *cobra.Command, args []string) error {
	id := args[0]

	s, err := loadSession(false)
	if err != nil {
		return err
	}

	had := s.state.Forget(id)
	if _, inFile := s.store.(*credential.FileStore); !inFile {
		if err := s.store.Delete(id); err != nil {
			return fmt.Errorf("failed to delete key for %s: %w", id, err)
		}
	}
	if err := config.Write(s.state); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	clog.Info("forget: %s (had saved state: %v)", id, had)

	if had {
		term.Printf("Forgot %s\n", id)
	} else {
		term.Printf("Nothing saved in %s for %s\n", config.Path(), id)
	}

	if !forgetProfile {
		return nil
	}

	keyEnv := provider.DefaultKeyEnv
	if p, ok := s.catalog.Lookup(id); ok {
		keyEnv = p.CredentialEnv()
	}
	res, err := getSetupPersister().Remove(commandContext(cmd), []string{envvar.BaseURLVar, keyEnv})
	if err != nil {
		return fmt.Errorf("failed to remove permanent variables: %w", err)
	}
	term.Printf("Removed permanent variables from %s\n", res.Target)
	return nil
}

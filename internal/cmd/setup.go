package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/credential"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/launcher"
	"github.com/xdg/claude-run/internal/prompt"
	"github.com/xdg/claude-run/internal/provider"
	"github.com/xdg/claude-run/internal/term"
	"github.com/xdg/claude-run/internal/wizard"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the provider setup wizard",
	Long: `Run the interactive setup wizard. This is also what claude-run does
when called without a subcommand.

The wizard:
  1. Offers to reuse the last saved configuration
  2. Otherwise asks for a provider, mode (temporary or permanent) and API key
  3. Shows a summary and asks for confirmation
  4. Sets ANTHROPIC_BASE_URL and the API key variable
  5. Saves the choice to ~/.claude-run/config.json
  6. Offers to start claude

Every question can be answered with flags for scripted use:

  claude-run --provider glm --mode temp --api-key-env GLM_KEY --yes --no-launch`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

// setupFlagValues holds the wizard flags shared by the root and setup commands.
type setupFlagValues struct {
	provider      string
	baseURL       string
	mode          string
	apiKeyEnv     string
	launchCommand string
	yes           bool
	noLaunch      bool
	keyring       bool
}

var setupFlags setupFlagValues

// setupPrompter is the menu prompter used by the wizard.
// It can be overridden for testing.
var setupPrompter prompt.Prompter

// setupYesNoPrompter is the yes/no prompter used by the wizard.
// It can be overridden for testing.
var setupYesNoPrompter prompt.YesNoPrompter

// setupInputPrompter is the free-text prompter used by the wizard.
// It can be overridden for testing.
var setupInputPrompter prompt.InputPrompter

// setupCredentialReader is the credential reader used by the wizard.
// It can be overridden for testing.
var setupCredentialReader prompt.CredentialReader

// setupPersister writes permanent settings. It can be overridden for testing.
var setupPersister envvar.Persister

// setupLauncher starts the claude CLI. It can be overridden for testing.
var setupLauncher launcher.Launcher

// setupNow is the clock used for lastUsed timestamps.
// It can be overridden for testing.
var setupNow func() time.Time

func init() {
	addSetupFlags(setupCmd)
	rootCmd.AddCommand(setupCmd)
}

func addSetupFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&setupFlags.provider, "provider", "", "provider ID to use without asking (see 'claude-run providers')")
	f.StringVar(&setupFlags.baseURL, "base-url", "", "base URL for the custom provider (implies --provider custom)")
	f.StringVar(&setupFlags.mode, "mode", "", "temp or perm")
	f.StringVar(&setupFlags.apiKeyEnv, "api-key-env", "", "read the API key from this environment variable")
	f.StringVar(&setupFlags.launchCommand, "launch-command", launcher.DefaultCommand, "command to start after setup")
	f.BoolVarP(&setupFlags.yes, "yes", "y", false, "accept the default answer to every yes/no question")
	f.BoolVar(&setupFlags.noLaunch, "no-launch", false, "do not offer to start claude")
	f.BoolVar(&setupFlags.keyring, "keyring", false, "store API keys in the system keychain")
}

// wizardOptions turns the setup flags into wizard options.
func wizardOptions(flags setupFlagValues) (wizard.Options, error) {
	opts := wizard.Options{
		ProviderID:    strings.TrimSpace(flags.provider),
		BaseURL:       strings.TrimSpace(flags.baseURL),
		AssumeYes:     flags.yes,
		NoLaunch:      flags.noLaunch,
		LaunchCommand: flags.launchCommand,
	}
	if opts.BaseURL != "" && opts.ProviderID == "" {
		opts.ProviderID = provider.CustomID
	}

	if flags.mode != "" {
		m, err := envvar.ParseMode(flags.mode)
		if err != nil {
			return wizard.Options{}, err
		}
		opts.Mode = m
	}

	if name := flags.apiKeyEnv; name != "" {
		key := strings.TrimSpace(os.Getenv(name))
		if key == "" {
			return wizard.Options{}, fmt.Errorf("environment variable %s is empty or not set", name)
		}
		opts.APIKey = key
	}
	return opts, nil
}

// session is what every command that touches saved state needs.
type session struct {
	catalog *provider.Catalog
	state   *config.State
	store   credential.Store
}

// loadSession loads the catalog, the state and the credential store.
// forceKeyring switches the state to keychain storage before opening it.
func loadSession(forceKeyring bool) (*session, error) {
	cat, err := provider.LoadCatalog(config.CatalogPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load providers: %w", err)
	}

	st, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if forceKeyring {
		st.KeyStorage = config.KeyStorageKeyring
	}

	store, err := credential.Open(st)
	if err != nil {
		term.Warn("system keychain unavailable (%v); using %s", err, config.Path())
		st.KeyStorage = config.KeyStorageFile
	}
	return &session{catalog: cat, state: st, store: store}, nil
}

// newWizard builds a wizard on the command's stdin and stdout, honoring the
// package-level overrides. All stdin prompters share one line reader.
func newWizard(cmd *cobra.Command, s *session, opts wizard.Options) *wizard.Wizard {
	lines := prompt.NewLineReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	w := &wizard.Wizard{
		Catalog:   s.catalog,
		State:     s.state,
		Store:     s.store,
		Prompter:  setupPrompter,
		YesNo:     getSetupYesNoPrompter(lines, out),
		Input:     setupInputPrompter,
		Creds:     setupCredentialReader,
		Persister: getSetupPersister(),
		Launcher:  setupLauncher,
		SaveState: config.Write,
		Now:       setupNow,
		Opts:      opts,
	}
	if w.Prompter == nil {
		w.Prompter = prompt.NewStdinPrompter(lines, out)
	}
	if w.Input == nil {
		w.Input = prompt.NewStdinInputPrompter(lines, out)
	}
	if w.Creds == nil {
		w.Creds = prompt.NewTerminalCredentialReader(os.Stdin, lines, out)
	}
	if w.Launcher == nil {
		w.Launcher = launcher.New()
	}
	return w
}

func getSetupYesNoPrompter(lines *bufio.Reader, out io.Writer) prompt.YesNoPrompter {
	if setupYesNoPrompter != nil {
		return setupYesNoPrompter
	}
	return prompt.NewStdinYesNoPrompter(lines, out)
}

func getSetupPersister() envvar.Persister {
	if setupPersister != nil {
		return setupPersister
	}
	home, _ := os.UserHomeDir()
	return envvar.ForPlatform("", home)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	opts, err := wizardOptions(setupFlags)
	if err != nil {
		return err
	}

	s, err := loadSession(setupFlags.keyring)
	if err != nil {
		return err
	}

	return launchExitError(newWizard(cmd, s, opts).Run(commandContext(cmd)))
}

// Package wizard implements the interactive setup flow:
//
//	saved config? -> choose provider/mode/key -> confirm -> apply -> save -> launch
//
// Applying and saving are best effort. A failed profile write or config save
// is reported and the flow carries on, since the variables are already set
// for this process and anything launched from it.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/credential"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/launcher"
	"github.com/xdg/claude-run/internal/prompt"
	"github.com/xdg/claude-run/internal/provider"
	"github.com/xdg/claude-run/internal/term"
)

// Options preset answers, typically from command-line flags.
type Options struct {
	// ProviderID skips the provider menu.
	ProviderID string
	// BaseURL is required for the custom provider and overrides the
	// catalog URL for the others.
	BaseURL string
	// Mode skips the mode menu when set.
	Mode envvar.Mode
	// APIKey skips key entry when set.
	APIKey string
	// AssumeYes answers every yes/no question with its default.
	AssumeYes bool
	// NoLaunch skips the launch question.
	NoLaunch      bool
	LaunchCommand string
	LaunchArgs    []string
}

// answersPreset reports whether any setup answer came from flags. A saved
// configuration is not offered then, since reusing it would drop them.
func (o Options) answersPreset() bool {
	return o.ProviderID != "" || o.BaseURL != "" || o.Mode != "" || o.APIKey != ""
}

// Wizard holds the collaborators for one run.
type Wizard struct {
	Catalog   *provider.Catalog
	State     *config.State
	Store     credential.Store
	Prompter  prompt.Prompter
	YesNo     prompt.YesNoPrompter
	Input     prompt.InputPrompter
	Creds     prompt.CredentialReader
	Persister envvar.Persister
	Launcher  launcher.Launcher
	// SaveState persists State. Defaults to config.Write.
	SaveState func(*config.State) error
	Now       func() time.Time
	GOOS      string
	Opts      Options
}

func (w *Wizard) now() time.Time {
	if w.Now != nil {
		return w.Now()
	}
	return time.Now()
}

func (w *Wizard) goos() string {
	if w.GOOS != "" {
		return w.GOOS
	}
	return runtime.GOOS
}

func (w *Wizard) confirm(question string, defaultYes bool) (bool, error) {
	if w.Opts.AssumeYes {
		return defaultYes, nil
	}
	return w.YesNo.PromptYesNo(question, defaultYes)
}

// Run executes the whole flow. Declining the confirmation returns nil with
// nothing applied. When the launched CLI exits non-zero the
// *launcher.ExitError is returned so the caller can mirror the code.
func (w *Wizard) Run(ctx context.Context) error {
	term.Banner("Claude Code environment setup")

	var settings *envvar.Settings
	if !w.Opts.answersPreset() {
		s, err := w.checkSavedConfig()
		if err != nil {
			return err
		}
		settings = s
	}
	if settings == nil {
		s, err := w.getNewConfig()
		if err != nil {
			return err
		}
		settings = &s
	}

	ok, err := w.confirmSettings(*settings)
	if err != nil {
		return err
	}
	if !ok {
		term.Println(term.Yellow("Cancelled. Nothing was changed."))
		clog.Info("wizard: cancelled at confirmation")
		return nil
	}

	if err := w.setEnvironmentVariables(ctx, *settings); err != nil {
		return err
	}
	w.saveConfig(*settings)
	return w.showSuccess(ctx, *settings)
}

// checkSavedConfig offers to reuse the last configuration. It returns nil
// settings when there is none or the user declines.
func (w *Wizard) checkSavedConfig() (*envvar.Settings, error) {
	settings, err := ResolveSaved(w.Catalog, w.State, w.Store)
	if errors.Is(err, ErrNoSavedConfig) {
		return nil, nil
	}
	if err != nil {
		term.Warn("ignoring saved configuration: %v", err)
		clog.Warn("wizard: resolve saved config: %v", err)
		return nil, nil
	}

	lu := w.State.LastUsed
	term.Println(term.Green("Found a saved configuration:"))
	term.Printf("  Last used: %s (%s)\n", term.Yellow(settings.ProviderName), modeLabel(settings.Mode))
	if lu.Timestamp != "" {
		term.Printf("  Saved at:  %s\n", lu.Timestamp)
	}
	term.Println()

	use, err := w.confirm("Use the saved configuration? [Y/n]: ", true)
	if err != nil {
		return nil, fmt.Errorf("failed to get confirmation: %w", err)
	}
	if !use {
		return nil, nil
	}
	clog.Info("wizard: reusing saved config for %s", settings.Provider)
	return &settings, nil
}

// getNewConfig asks for provider, base URL (custom only), mode and key.
func (w *Wizard) getNewConfig() (envvar.Settings, error) {
	p, err := w.chooseProvider()
	if err != nil {
		return envvar.Settings{}, err
	}

	baseURL, err := w.chooseBaseURL(p)
	if err != nil {
		return envvar.Settings{}, err
	}

	mode, err := w.chooseMode()
	if err != nil {
		return envvar.Settings{}, err
	}

	key, err := w.chooseAPIKey(p)
	if err != nil {
		return envvar.Settings{}, err
	}

	return envvar.Settings{
		Provider:     p.ID,
		ProviderName: p.Label(baseURL),
		BaseURL:      baseURL,
		Mode:         mode,
		APIKey:       key,
		KeyEnv:       p.CredentialEnv(),
	}, nil
}

func (w *Wizard) chooseProvider() (provider.Provider, error) {
	if id := w.Opts.ProviderID; id != "" {
		p, ok := w.Catalog.Lookup(id)
		if !ok {
			return provider.Provider{}, fmt.Errorf("unknown provider %q (available: %s)", id, strings.Join(w.Catalog.IDs(), ", "))
		}
		return p, nil
	}

	all := w.Catalog.All()
	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.MenuName()
	}
	def := 0
	if i := w.Catalog.Index(w.State.LastUsed.Provider); i >= 0 {
		def = i
	}

	idx, err := w.Prompter.Prompt("Select a model provider:", names, def)
	if err != nil {
		return provider.Provider{}, fmt.Errorf("failed to select provider: %w", err)
	}
	term.Println()
	return all[idx], nil
}

func (w *Wizard) chooseBaseURL(p provider.Provider) (string, error) {
	if u := strings.TrimSpace(w.Opts.BaseURL); u != "" {
		if err := provider.ValidateBaseURL(u); err != nil {
			return "", err
		}
		return u, nil
	}
	if !p.Custom {
		return p.BaseURL, nil
	}

	previous := w.State.ProviderBaseURL(p.ID)
	question := "Enter the custom base URL: "
	if previous != "" {
		question = fmt.Sprintf("Enter the custom base URL [%s]: ", previous)
	}
	validate := func(s string) error {
		if s == "" && previous != "" {
			return nil
		}
		return provider.ValidateBaseURL(s)
	}

	u, err := w.Input.PromptInput(question, validate)
	if err != nil {
		return "", fmt.Errorf("failed to read base URL: %w", err)
	}
	term.Println()
	if u == "" {
		return previous, nil
	}
	return strings.TrimSpace(u), nil
}

func (w *Wizard) chooseMode() (envvar.Mode, error) {
	if w.Opts.Mode != "" {
		return w.Opts.Mode, nil
	}

	def := 0
	if w.State.LastUsed.Mode == config.ModePerm {
		def = 1
	}
	idx, err := w.Prompter.Prompt("Select how to set the variables:", []string{
		"Temporary (this session only)",
		"Permanent (system environment / shell profile)",
	}, def)
	if err != nil {
		return "", fmt.Errorf("failed to select mode: %w", err)
	}
	term.Println()
	if idx == 1 {
		return envvar.ModePerm, nil
	}
	return envvar.ModeTemp, nil
}

func (w *Wizard) chooseAPIKey(p provider.Provider) (string, error) {
	if k := strings.TrimSpace(w.Opts.APIKey); k != "" {
		return k, nil
	}

	saved, err := w.Store.Get(p.ID)
	switch {
	case err == nil:
		reuse, err := w.confirm(fmt.Sprintf("Reuse the saved API key for %s? [Y/n]: ", p.Name), true)
		if err != nil {
			return "", fmt.Errorf("failed to get confirmation: %w", err)
		}
		if reuse {
			return saved, nil
		}
	case !errors.Is(err, credential.ErrNotFound):
		clog.Warn("wizard: read saved key for %s: %v", p.ID, err)
	}

	for attempt := 1; attempt <= prompt.MaxAttempts; attempt++ {
		key, err := w.Creds.ReadCredential("Enter your API key: ")
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
		term.Println(term.Red("  API key cannot be empty"))
	}
	return "", fmt.Errorf("API key cannot be empty: %w", prompt.ErrTooManyAttempts)
}

// confirmSettings shows a summary with the key masked and asks to proceed.
func (w *Wizard) confirmSettings(s envvar.Settings) (bool, error) {
	term.Println(term.Box("Summary",
		"Provider: "+term.Yellow(s.ProviderName),
		"Base URL: "+term.Blue(s.BaseURL),
		"Mode:     "+modeLabel(s.Mode),
		"API key:  "+term.Dim(envvar.Mask(s.APIKey)),
	))
	term.Println()

	ok, err := w.confirm("Apply these settings? [Y/n]: ", true)
	if err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return ok, nil
}

// setEnvironmentVariables persists (perm mode) and then sets the variables
// in this process. Only a failure to set them in-process is fatal.
func (w *Wizard) setEnvironmentVariables(ctx context.Context, s envvar.Settings) error {
	vars := envvar.Vars(s)
	term.Println(term.Blue("Setting environment variables..."))

	if s.Mode == envvar.ModePerm {
		res, err := w.Persister.Persist(ctx, vars)
		if err != nil {
			term.Error("permanent setting failed: %v", err)
			clog.Warn("wizard: persist to %s: %v", res.Target, err)
		} else {
			term.Printf("%s Added to %s\n", term.Green("✓"), res.Target)
		}
	}

	if err := envvar.ApplyProcess(vars); err != nil {
		return fmt.Errorf("failed to set environment: %w", err)
	}
	clog.Info("wizard: applied %s for provider %s (mode %s)", envvar.BaseURLVar, s.Provider, s.Mode)

	term.Println(term.Green("✓ Environment variables set"))
	for _, v := range vars {
		term.Printf("  %s=%s\n", v.Name, term.Dim(v.Display()))
	}
	term.Println()

	if s.Mode == envvar.ModePerm {
		term.Println(term.Yellow("Permanent setting:"))
		if w.goos() == "windows" {
			term.Println("  - New terminals pick the variables up automatically")
			term.Println("  - This CMD window must be reopened to see them")
		} else {
			term.Println("  - New terminals pick the variables up automatically")
			term.Println("  - In this terminal run: source <your profile>, e.g. source ~/.bashrc")
		}
	} else {
		term.Println(term.Yellow("Temporary setting:"))
		term.Println("  - Applies to this process and anything it launches")
		term.Println("  - Gone once claude-run exits")
	}
	term.Println()
	return nil
}

// saveConfig records the run so the next one can offer to reuse it.
// Failures are warnings.
func (w *Wizard) saveConfig(s envvar.Settings) {
	if err := w.Store.Set(s.Provider, s.APIKey); err != nil {
		term.Warn("could not store API key in %s: %v", w.Store.Name(), err)
		clog.Warn("wizard: store key: %v", err)
	} else if _, inFile := w.Store.(*credential.FileStore); !inFile {
		// the key lives in the keychain; drop any plaintext copy
		w.State.SetProviderKey(s.Provider, "")
	}

	if s.Provider == provider.CustomID {
		w.State.SetProviderBaseURL(s.Provider, s.BaseURL)
	}
	w.State.RecordLastUsed(config.LastUsed{
		Provider:  s.Provider,
		ModelName: s.ProviderName,
		BaseURL:   s.BaseURL,
		Mode:      string(s.Mode),
		Timestamp: w.now().Format(config.TimestampLayout),
	})

	save := w.SaveState
	if save == nil {
		save = config.Write
	}
	if err := save(w.State); err != nil {
		term.Warn("could not save configuration: %v", err)
		clog.Warn("wizard: save state: %v", err)
		return
	}
	term.Println(term.Green("Configuration saved; the next run can reuse it."))
	term.Println()
}

// showSuccess offers to launch the CLI, or prints how to verify the setup.
func (w *Wizard) showSuccess(ctx context.Context, s envvar.Settings) error {
	term.Printf("%s You can now run Claude Code with %s.\n\n", term.Green("Done!"), term.Yellow(s.ProviderName))

	launch := false
	if !w.Opts.NoLaunch {
		var err error
		launch, err = w.confirm("Start Claude Code now? [Y/n]: ", true)
		if err != nil {
			return fmt.Errorf("failed to get confirmation: %w", err)
		}
	}
	if launch {
		return w.launch(ctx, s)
	}

	term.Println(term.Cyan("Verify the variables:"))
	for _, line := range envvar.VerificationHints(s.Mode, w.goos(), s.KeyEnv) {
		term.Println(term.Dim(line))
	}
	term.Println()
	return nil
}

func (w *Wizard) launch(ctx context.Context, s envvar.Settings) error {
	command := w.Opts.LaunchCommand
	if command == "" {
		command = launcher.DefaultCommand
	}
	term.Println(term.Cyan("Starting " + command + "..."))
	term.Println()

	err := w.Launcher.Launch(ctx, launcher.Spec{
		Command: command,
		Args:    w.Opts.LaunchArgs,
		Env:     envvar.Merge(os.Environ(), envvar.Vars(s)),
	})
	return reportLaunch(command, err)
}

// reportLaunch turns a launch result into output. A child's non-zero exit is
// passed back; failures to start are reported with manual instructions and
// swallowed, since setup itself succeeded.
func reportLaunch(command string, err error) error {
	var exitErr *launcher.ExitError
	switch {
	case err == nil:
		term.Println()
		term.Println(term.Cyan(command + " exited"))
		return nil
	case errors.As(err, &exitErr):
		return err
	case errors.Is(err, launcher.ErrNotInstalled):
		term.Error("could not start %s: not installed or not on PATH", command)
		term.Println(term.Yellow("Install it with: " + launcher.InstallHint))
	default:
		term.Error("could not start %s: %v", command, err)
	}
	clog.Warn("wizard: launch %s: %v", command, err)
	term.Println()
	for _, line := range launcher.ManualInstructions(command) {
		term.Println(line)
	}
	return nil
}

func modeLabel(m envvar.Mode) string {
	if m == envvar.ModePerm {
		return "Permanent"
	}
	return "Temporary"
}

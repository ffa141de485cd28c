package wizard

import (
	"context"
	"os"

	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/launcher"
	"github.com/xdg/claude-run/internal/term"
)

// LaunchSaved applies the saved configuration to this process and starts
// the CLI without any prompts.
func (w *Wizard) LaunchSaved(ctx context.Context) error {
	s, err := ResolveSaved(w.Catalog, w.State, w.Store)
	if err != nil {
		return err
	}

	vars := envvar.Vars(s)
	if err := envvar.ApplyProcess(vars); err != nil {
		return err
	}
	clog.Info("wizard: launching with saved config for %s", s.Provider)

	command := w.Opts.LaunchCommand
	if command == "" {
		command = launcher.DefaultCommand
	}
	term.Printf("%s %s via %s\n", term.Cyan("Starting"), command, term.Yellow(s.ProviderName))

	err = w.Launcher.Launch(ctx, launcher.Spec{
		Command: command,
		Args:    w.Opts.LaunchArgs,
		Env:     envvar.Merge(os.Environ(), vars),
	})
	return reportLaunch(command, err)
}

package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Tmux sets the Catppuccin flavour variable and re-runs the plugin
// manager so the status line picks up the new flavour.
type Tmux struct {
	program       string
	pluginManager string
	runner        command.Runner
	log           *slog.Logger
}

// NewTmux creates the tmux adapter.
func NewTmux(cfg config.TmuxConfig, runner command.Runner, log *slog.Logger) *Tmux {
	return &Tmux{
		program:       cfg.Program,
		pluginManager: cfg.PluginManager,
		runner:        runner,
		log:           log.With(slog.String("adapter", "tmux")),
	}
}

// Name returns the adapter identifier.
func (a *Tmux) Name() string { return "tmux" }

// SetFlavourSpec builds the flavour variable command.
func (a *Tmux) SetFlavourSpec(t theme.Theme) command.Spec {
	return command.New(a.program, "set", "-g", "@catppuccin_flavour", t.Flavour())
}

// RunPluginManagerSpec builds the plugin manager re-run command.
func (a *Tmux) RunPluginManagerSpec() command.Spec {
	return command.New(a.program, "run-shell", a.pluginManager)
}

// Apply runs both commands in order. The plugin manager is attempted
// even when setting the variable fails.
func (a *Tmux) Apply(ctx context.Context, t theme.Theme) Result {
	var errs []error

	if _, err := a.runner.Run(ctx, a.SetFlavourSpec(t)); err != nil {
		a.log.Warn("failed to set flavour", slog.Any("error", err))
		errs = append(errs, fmt.Errorf("set flavour: %w", err))
	}

	if _, err := a.runner.Run(ctx, a.RunPluginManagerSpec()); err != nil {
		a.log.Warn("failed to run plugin manager", slog.Any("error", err))
		errs = append(errs, fmt.Errorf("plugin manager: %w", err))
	}

	return Result{Adapter: a.Name(), Err: errors.Join(errs...)}
}

var _ Adapter = (*Tmux)(nil)

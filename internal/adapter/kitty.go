package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Kitty switches the theme of all open kitty instances.
type Kitty struct {
	program string
	runner  command.Runner
	log     *slog.Logger
}

// NewKitty creates the kitty adapter.
func NewKitty(cfg config.KittyConfig, runner command.Runner, log *slog.Logger) *Kitty {
	return &Kitty{
		program: cfg.Program,
		runner:  runner,
		log:     log.With(slog.String("adapter", "kitty")),
	}
}

// Name returns the adapter identifier.
func (a *Kitty) Name() string { return "kitty" }

// ThemeSpec builds the live-reload theme command.
func (a *Kitty) ThemeSpec(t theme.Theme) command.Spec {
	return command.New(a.program,
		"+kitten", "themes",
		"--reload-in=all",
		"--config-file-name", "themes.conf",
		t.KittyTheme(),
	)
}

// Apply issues the single theme-switch command.
func (a *Kitty) Apply(ctx context.Context, t theme.Theme) Result {
	if _, err := a.runner.Run(ctx, a.ThemeSpec(t)); err != nil {
		a.log.Warn("failed to switch theme", slog.Any("error", err))
		return Result{Adapter: a.Name(), Err: fmt.Errorf("switch theme: %w", err)}
	}
	return Result{Adapter: a.Name()}
}

var _ Adapter = (*Kitty)(nil)

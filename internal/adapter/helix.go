package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Helix rewrites the persisted helix config and signals the running
// editor to reload it.
type Helix struct {
	configPath string
	process    string
	runner     command.Runner
	log        *slog.Logger
}

// NewHelix creates the helix adapter.
func NewHelix(cfg config.HelixConfig, runner command.Runner, log *slog.Logger) *Helix {
	return &Helix{
		configPath: cfg.ConfigPath,
		process:    cfg.Process,
		runner:     runner,
		log:        log.With(slog.String("adapter", "helix")),
	}
}

// Name returns the adapter identifier.
func (a *Helix) Name() string { return "helix" }

// RewriteConfigSpec builds the in-place theme substitution command.
func (a *Helix) RewriteConfigSpec(t theme.Theme) command.Spec {
	sub := fmt.Sprintf(`s/theme = "catppuccin_(latte|mocha)"/theme = "catppuccin_%s"/g`, t.Flavour())
	return command.New("sed", "-E", "-i", "", sub, a.configPath)
}

// ReloadSpec builds the config-reload signal command.
func (a *Helix) ReloadSpec() command.Spec {
	return command.New("pkill", "-USR1", a.process)
}

// Apply rewrites the config and signals the editor as two independent
// concurrent units; neither waits on the other.
func (a *Helix) Apply(ctx context.Context, t theme.Theme) Result {
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if _, err := a.runner.Run(ctx, a.RewriteConfigSpec(t)); err != nil {
			a.log.Warn("failed to rewrite config", slog.Any("error", err))
			fail(fmt.Errorf("config rewrite: %w", err))
		}
	}()
	go func() {
		defer wg.Done()
		if _, err := a.runner.Run(ctx, a.ReloadSpec()); err != nil {
			a.log.Warn("failed to signal reload", slog.Any("error", err))
			fail(fmt.Errorf("reload signal: %w", err))
		}
	}()

	wg.Wait()
	return Result{Adapter: a.Name(), Err: errors.Join(errs...)}
}

var _ Adapter = (*Helix)(nil)

package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Neovim pushes the background setting to every running Neovim server
// and rewrites the persisted Lua theme config.
type Neovim struct {
	program    string
	configPath string
	runner     command.Runner
	log        *slog.Logger
}

// NewNeovim creates the Neovim adapter.
func NewNeovim(cfg config.NvimConfig, runner command.Runner, log *slog.Logger) *Neovim {
	return &Neovim{
		program:    cfg.Program,
		configPath: cfg.ConfigPath,
		runner:     runner,
		log:        log.With(slog.String("adapter", "nvim")),
	}
}

// Name returns the adapter identifier.
func (a *Neovim) Name() string { return "nvim" }

// ServerListSpec builds the running-server query command.
func (a *Neovim) ServerListSpec() command.Spec {
	return command.New(a.program, "--serverlist")
}

// SetBackgroundSpec builds the per-server background-set command.
func (a *Neovim) SetBackgroundSpec(server string, t theme.Theme) command.Spec {
	return command.New(a.program, "--servername", server, "+set background="+t.Background())
}

// RewriteConfigSpec builds the in-place config substitution command.
func (a *Neovim) RewriteConfigSpec(t theme.Theme) command.Spec {
	sub := fmt.Sprintf(`s/background = "(light|dark)"/background = "%s"/g`, t.Background())
	return command.New("sed", "-E", "-i", "", sub, a.configPath)
}

// Apply queries the server list synchronously, then fans out one task
// per server plus one config-rewrite task. The server query gates only
// the per-server fan-out; the config rewrite runs regardless.
func (a *Neovim) Apply(ctx context.Context, t theme.Theme) Result {
	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	out, err := a.runner.Run(ctx, a.ServerListSpec())
	servers := parseServerList(out)
	switch {
	case err != nil:
		a.log.Warn("server list query failed", slog.Any("error", err))
		fail(fmt.Errorf("server list: %w", err))
	case len(servers) == 0:
		a.log.Info("no servers running")
	}

	var wg sync.WaitGroup
	for _, server := range servers {
		wg.Add(1)
		go func(server string) {
			defer wg.Done()
			if _, err := a.runner.Run(ctx, a.SetBackgroundSpec(server, t)); err != nil {
				a.log.Warn("failed to set background",
					slog.String("server", server),
					slog.Any("error", err),
				)
				fail(fmt.Errorf("server %s: %w", server, err))
			}
		}(server)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := a.runner.Run(ctx, a.RewriteConfigSpec(t)); err != nil {
			a.log.Warn("failed to rewrite config", slog.Any("error", err))
			fail(fmt.Errorf("config rewrite: %w", err))
		}
	}()

	wg.Wait()
	return Result{Adapter: a.Name(), Err: errors.Join(errs...)}
}

// parseServerList splits newline-separated server identifiers.
func parseServerList(out string) []string {
	var servers []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			servers = append(servers, line)
		}
	}
	return servers
}

var _ Adapter = (*Neovim)(nil)

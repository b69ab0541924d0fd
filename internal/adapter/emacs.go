package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Emacs evaluates a user-defined reload function on a running emacs
// server, passing the flavour name.
type Emacs struct {
	program  string
	socket   string
	function string
	runner   command.Runner
	log      *slog.Logger
}

// NewEmacs creates the emacs adapter.
func NewEmacs(cfg config.EmacsConfig, runner command.Runner, log *slog.Logger) *Emacs {
	return &Emacs{
		program:  cfg.Program,
		socket:   cfg.Socket,
		function: cfg.Function,
		runner:   runner,
		log:      log.With(slog.String("adapter", "emacs")),
	}
}

// Name returns the adapter identifier.
func (a *Emacs) Name() string { return "emacs" }

// EvalSpec builds the remote-evaluation command.
func (a *Emacs) EvalSpec(t theme.Theme) command.Spec {
	return command.New(a.program,
		"--socket-name", a.socket,
		"--eval", fmt.Sprintf("(%s '%s)", a.function, t.Flavour()),
		"--quiet",
		"-no-wait",
		"--suppress-output",
		"-a", "true",
	)
}

// Apply issues the single remote-evaluation command.
func (a *Emacs) Apply(ctx context.Context, t theme.Theme) Result {
	if _, err := a.runner.Run(ctx, a.EvalSpec(t)); err != nil {
		a.log.Warn("failed to eval on server", slog.Any("error", err))
		return Result{Adapter: a.Name(), Err: fmt.Errorf("remote eval: %w", err)}
	}
	return Result{Adapter: a.Name()}
}

var _ Adapter = (*Emacs)(nil)

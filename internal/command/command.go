// Package command describes external process invocations and runs them.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Spec is a fully-determined description of one external command:
// the program name and its ordered argument list. Building a Spec
// has no side effects.
type Spec struct {
	Program string
	Args    []string
}

// New creates a Spec.
func New(program string, args ...string) Spec {
	return Spec{Program: program, Args: args}
}

// String returns the spec in a loggable form.
func (s Spec) String() string {
	if len(s.Args) == 0 {
		return s.Program
	}
	return s.Program + " " + strings.Join(s.Args, " ")
}

// Runner executes command specs.
type Runner interface {
	// Run executes the spec and returns its standard output.
	// A nonzero exit or launch failure yields an error carrying the
	// captured combined output.
	Run(ctx context.Context, spec Spec) (string, error)
}

// DefaultTimeout bounds a single external command when no timeout is
// configured. A hung external process must not hold a worker forever.
const DefaultTimeout = 10 * time.Second

// ExecRunner runs commands via os/exec.
type ExecRunner struct {
	timeout time.Duration
	log     *slog.Logger
}

// NewExecRunner creates an ExecRunner. A zero timeout falls back to
// DefaultTimeout; a nil logger falls back to slog.Default().
func NewExecRunner(timeout time.Duration, log *slog.Logger) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &ExecRunner{timeout: timeout, log: log}
}

// Run executes the spec with a bounded timeout. Arguments are passed
// directly to the process with no shell interpretation.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.log.Debug("running command",
		slog.String("program", spec.Program),
		slog.String("args", fmt.Sprint(spec.Args)),
	)

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w (output: %s)",
			spec.Program, err, strings.TrimSpace(string(output)))
	}

	return string(output), nil
}

var _ Runner = (*ExecRunner)(nil)

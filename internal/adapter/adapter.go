// Package adapter maps a theme into external-process invocations for
// each consumer tool. Every adapter owns its own failures: an error
// never escapes Apply except inside the returned Result.
package adapter

import (
	"context"

	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Adapter pushes a theme to one consumer tool.
type Adapter interface {
	// Name returns the adapter identifier used in logs.
	Name() string

	// Apply performs the adapter's command sequence for the theme.
	// It blocks until the adapter's own work is done and reports the
	// outcome; it never panics and never returns before its internal
	// tasks have finished.
	Apply(ctx context.Context, t theme.Theme) Result
}

// Result is the outcome of one adapter invocation. Results are never
// aggregated across adapters; there is no joint success concept.
type Result struct {
	Adapter string
	Err     error
}

// Success reports whether the invocation succeeded.
func (r Result) Success() bool {
	return r.Err == nil
}

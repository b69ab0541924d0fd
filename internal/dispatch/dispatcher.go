// Package dispatch fans a decoded theme out to the adapter set.
package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/anstadnik/AppearanceNotifier/internal/adapter"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Dispatcher runs every adapter in its own goroutine. Adapters fail
// independently: one adapter's error or panic never reaches a sibling
// and never reaches the caller.
type Dispatcher struct {
	adapters []adapter.Adapter
	log      *slog.Logger
	wg       sync.WaitGroup
}

// New creates a Dispatcher over a fixed adapter set.
func New(adapters []adapter.Adapter, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	return &Dispatcher{adapters: adapters, log: log}
}

// Dispatch spawns one task per adapter from this single point and
// returns once spawning is complete; it does not wait for any adapter
// to finish. Outcomes surface only as log lines.
func (d *Dispatcher) Dispatch(ctx context.Context, t theme.Theme) {
	d.log.Info("dispatching theme", slog.String("theme", string(t)))

	for _, a := range d.adapters {
		d.wg.Add(1)
		go func(a adapter.Adapter) {
			defer d.wg.Done()
			d.run(ctx, a, t)
		}(a)
	}
}

// run invokes one adapter and logs its result. Panics are contained
// at this boundary.
func (d *Dispatcher) run(ctx context.Context, a adapter.Adapter, t theme.Theme) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("adapter panicked",
				slog.String("adapter", a.Name()),
				slog.Any("panic", r),
			)
		}
	}()

	res := a.Apply(ctx, t)
	if res.Success() {
		d.log.Info("adapter applied theme",
			slog.String("adapter", res.Adapter),
			slog.String("theme", string(t)),
		)
		return
	}

	d.log.Error("adapter failed",
		slog.String("adapter", res.Adapter),
		slog.Any("error", res.Err),
	)
}

// Wait blocks until every spawned adapter task has finished. It exists
// for shutdown and tests; Dispatch itself never joins.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// AdapterCount returns the number of registered adapters.
func (d *Dispatcher) AdapterCount() int {
	return len(d.adapters)
}

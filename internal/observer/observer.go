// Package observer subscribes to appearance-change events and turns
// each one into a dispatch.
package observer

import (
	"context"
	"log/slog"
	"time"

	"github.com/anstadnik/AppearanceNotifier/internal/platform"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

// Dispatcher fans a decoded theme out to the adapters.
type Dispatcher interface {
	Dispatch(ctx context.Context, t theme.Theme)
}

// Observer owns the single appearance subscription for the process.
type Observer struct {
	appearance platform.AppearanceService
	dispatcher Dispatcher
	interval   time.Duration
	log        *slog.Logger
}

// New creates an Observer. Call Observe once per process.
func New(appearance platform.AppearanceService, dispatcher Dispatcher, interval time.Duration, log *slog.Logger) *Observer {
	if log == nil {
		log = slog.Default()
	}
	return &Observer{
		appearance: appearance,
		dispatcher: dispatcher,
		interval:   interval,
		log:        log,
	}
}

// Observe registers the subscription and blocks, handling events until
// ctx is cancelled. Each decodable event triggers exactly one dispatch;
// out-of-domain values are logged and dropped.
func (o *Observer) Observe(ctx context.Context) {
	o.log.Info("observing appearance changes",
		slog.Duration("interval", o.interval),
	)

	for raw := range o.appearance.Subscribe(ctx, o.interval) {
		o.handle(ctx, raw)
	}

	o.log.Info("appearance subscription closed")
}

func (o *Observer) handle(ctx context.Context, raw string) {
	t, err := theme.Decode(raw)
	if err != nil {
		o.log.Warn("ignoring unknown appearance value",
			slog.String("raw", raw),
			slog.Any("error", err),
		)
		return
	}

	o.log.Info("appearance changed", slog.String("theme", string(t)))
	o.dispatcher.Dispatch(ctx, t)
}

package adapter

import (
	"log/slog"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
)

// FromConfig builds the enabled adapter set in a fixed order. Order
// carries no execution guarantee; the dispatcher fans out concurrently.
func FromConfig(cfg config.AdaptersConfig, runner command.Runner, log *slog.Logger) []Adapter {
	var adapters []Adapter

	if cfg.Nvim.Enabled {
		adapters = append(adapters, NewNeovim(cfg.Nvim, runner, log))
	}
	if cfg.Tmux.Enabled {
		adapters = append(adapters, NewTmux(cfg.Tmux, runner, log))
	}
	if cfg.Kitty.Enabled {
		adapters = append(adapters, NewKitty(cfg.Kitty, runner, log))
	}
	if cfg.Helix.Enabled {
		adapters = append(adapters, NewHelix(cfg.Helix, runner, log))
	}
	if cfg.Emacs.Enabled {
		adapters = append(adapters, NewEmacs(cfg.Emacs, runner, log))
	}

	return adapters
}

// Package config loads and validates the appearance-notifier configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ObserverConfig controls the appearance watcher.
type ObserverConfig struct {
	// PollInterval is the appearance polling interval in seconds.
	PollInterval int `toml:"poll-interval"`
}

// CommandConfig controls external command execution.
type CommandConfig struct {
	// Timeout is the per-command timeout in seconds.
	Timeout int `toml:"timeout"`
}

// LogConfig controls the daemon log output.
type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // text|json
	Output string `toml:"output"` // stderr|file
	File   string `toml:"file"`

	// Rotation settings, used when output is "file".
	MaxSizeMB  int  `toml:"max-size-mb"`
	MaxBackups int  `toml:"max-backups"`
	MaxAgeDays int  `toml:"max-age-days"`
	Compress   bool `toml:"compress"`
}

// NvimConfig configures the Neovim adapter.
type NvimConfig struct {
	Enabled    bool   `toml:"enabled"`
	Program    string `toml:"program"`
	ConfigPath string `toml:"config-path"`
}

// TmuxConfig configures the tmux adapter.
type TmuxConfig struct {
	Enabled       bool   `toml:"enabled"`
	Program       string `toml:"program"`
	PluginManager string `toml:"plugin-manager"`
}

// KittyConfig configures the kitty adapter.
type KittyConfig struct {
	Enabled bool   `toml:"enabled"`
	Program string `toml:"program"`
}

// HelixConfig configures the helix adapter.
type HelixConfig struct {
	Enabled    bool   `toml:"enabled"`
	ConfigPath string `toml:"config-path"`
	Process    string `toml:"process"`
}

// EmacsConfig configures the emacs adapter.
type EmacsConfig struct {
	Enabled  bool   `toml:"enabled"`
	Program  string `toml:"program"`
	Socket   string `toml:"socket"`
	Function string `toml:"function"`
}

// AdaptersConfig groups the per-tool adapter settings.
type AdaptersConfig struct {
	Nvim  NvimConfig  `toml:"nvim"`
	Tmux  TmuxConfig  `toml:"tmux"`
	Kitty KittyConfig `toml:"kitty"`
	Helix HelixConfig `toml:"helix"`
	Emacs EmacsConfig `toml:"emacs"`
}

// Config is the full application configuration.
type Config struct {
	Observer ObserverConfig `toml:"observer"`
	Commands CommandConfig  `toml:"commands"`
	Log      LogConfig      `toml:"log"`
	Adapters AdaptersConfig `toml:"adapters"`

	configPath string
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "appearance-notifier")
}

// DefaultConfig returns the documented defaults. Every path is
// overridable in the config file.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Observer: ObserverConfig{
			PollInterval: 2,
		},
		Commands: CommandConfig{
			Timeout: 10,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "stderr",
			File:       filepath.Join(DefaultConfigDir(), "notifier.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Adapters: AdaptersConfig{
			Nvim: NvimConfig{
				Enabled:    true,
				Program:    "nvim",
				ConfigPath: filepath.Join(home, ".config", "nvim", "lua", "theme.lua"),
			},
			Tmux: TmuxConfig{
				Enabled:       true,
				Program:       "tmux",
				PluginManager: filepath.Join(home, ".tmux", "plugins", "tpm", "tpm"),
			},
			Kitty: KittyConfig{
				Enabled: true,
				Program: "kitty",
			},
			Helix: HelixConfig{
				Enabled:    true,
				ConfigPath: filepath.Join(home, ".config", "helix", "config.toml"),
				Process:    "helix",
			},
			Emacs: EmacsConfig{
				Enabled:  true,
				Program:  "emacsclient",
				Socket:   filepath.Join(home, ".emacs.d", "server", "server"),
				Function: "an/load-theme",
			},
		},
	}
}

// Load reads the config file at path, falling back to defaults for a
// missing file. An empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	cfg := DefaultConfig()
	cfg.configPath = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.postProcess()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) postProcess() {
	c.Log.File = expandPath(c.Log.File)
	c.Adapters.Nvim.ConfigPath = expandPath(c.Adapters.Nvim.ConfigPath)
	c.Adapters.Tmux.PluginManager = expandPath(c.Adapters.Tmux.PluginManager)
	c.Adapters.Helix.ConfigPath = expandPath(c.Adapters.Helix.ConfigPath)
	c.Adapters.Emacs.Socket = expandPath(c.Adapters.Emacs.Socket)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Observer.PollInterval < 1 {
		return fmt.Errorf("observer poll-interval must be at least 1 second, got %d", c.Observer.PollInterval)
	}
	if c.Commands.Timeout < 1 {
		return fmt.Errorf("commands timeout must be at least 1 second, got %d", c.Commands.Timeout)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Log.Format)
	}

	switch c.Log.Output {
	case "stderr", "file":
	default:
		return fmt.Errorf("invalid log output: %s (must be stderr or file)", c.Log.Output)
	}

	if c.Adapters.Nvim.Enabled && c.Adapters.Nvim.ConfigPath == "" {
		return fmt.Errorf("nvim: config-path is required when enabled")
	}
	if c.Adapters.Tmux.Enabled && c.Adapters.Tmux.PluginManager == "" {
		return fmt.Errorf("tmux: plugin-manager is required when enabled")
	}
	if c.Adapters.Helix.Enabled {
		if c.Adapters.Helix.ConfigPath == "" {
			return fmt.Errorf("helix: config-path is required when enabled")
		}
		if c.Adapters.Helix.Process == "" {
			return fmt.Errorf("helix: process is required when enabled")
		}
	}
	if c.Adapters.Emacs.Enabled {
		if c.Adapters.Emacs.Socket == "" {
			return fmt.Errorf("emacs: socket is required when enabled")
		}
		if c.Adapters.Emacs.Function == "" {
			return fmt.Errorf("emacs: function is required when enabled")
		}
	}

	return nil
}

// PollInterval returns the observer poll interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Observer.PollInterval) * time.Second
}

// CommandTimeout returns the per-command timeout as a duration.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Commands.Timeout) * time.Second
}

// ConfigPath returns the path this config was loaded from.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the config as TOML. An empty path means the loaded path,
// falling back to the default location.
func (c *Config) Save(path string) error {
	if path == "" {
		path = c.configPath
	}
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.toml")
	}

	path = expandPath(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

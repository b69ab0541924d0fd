// Package main is the entry point for the appearance-notifier CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anstadnik/AppearanceNotifier/internal/adapter"
	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/dispatch"
	"github.com/anstadnik/AppearanceNotifier/internal/logging"
	"github.com/anstadnik/AppearanceNotifier/internal/observer"
	"github.com/anstadnik/AppearanceNotifier/internal/platform"
	_ "github.com/anstadnik/AppearanceNotifier/internal/platform/darwin"
	_ "github.com/anstadnik/AppearanceNotifier/internal/platform/stub"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
	"github.com/anstadnik/AppearanceNotifier/internal/ui"
)

const agentLabel = "com.appearancenotifier.agent"

var (
	// Global flags
	cfgFile string
	verbose bool
	quiet   bool

	// Global output
	out *ui.Output
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "appearance-notifier",
		Short: "Propagate macOS light/dark appearance to terminal tools",
		Long: `appearance-notifier watches the system appearance preference and,
on every light/dark change, pushes the new theme to Neovim, tmux,
kitty, helix and emacs by invoking each tool's own commands.`,
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/appearance-notifier/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Add commands
	rootCmd.AddCommand(
		newInitCmd(),
		newRunCmd(),
		newApplyCmd(),
		newDetectCmd(),
		newVersionCmd(),
		newAgentInstallCmd(),
		newAgentUninstallCmd(),
		newAgentStatusCmd(),
	)

	// Handle signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initOutput initializes the output.
func initOutput() {
	out = ui.DefaultOutput()
	out.SetVerbose(verbose)
	out.SetQuiet(quiet)
}

// app is the composition root: everything is constructed once here and
// passed down explicitly.
type app struct {
	cfg        *config.Config
	log        *slog.Logger
	dispatcher *dispatch.Dispatcher
}

// newApp builds the adapter set and dispatcher from the config.
func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logging.New(cfg.Log)
	runner := command.NewExecRunner(cfg.CommandTimeout(), log)
	adapters := adapter.FromConfig(cfg.Adapters, runner, log)
	dispatcher := dispatch.New(adapters, log)

	return &app{
		cfg:        cfg,
		log:        log,
		dispatcher: dispatcher,
	}, nil
}

// newInitCmd creates the init command.
func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize appearance-notifier configuration",
		Long:  "Creates the default configuration file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			configPath := cfgFile
			if configPath == "" {
				configPath = filepath.Join(config.DefaultConfigDir(), "config.toml")
			}

			// Check if already exists
			if _, err := os.Stat(configPath); err == nil && !force {
				out.Warning("Configuration already exists at %s", configPath)
				out.Info("Use --force to overwrite")
				return nil
			}

			cfg := config.DefaultConfig()
			if err := cfg.Save(configPath); err != nil {
				out.Error("Failed to write config: %v", err)
				return err
			}

			out.Success("Configuration initialized")
			out.Field("Config", shortenPath(configPath))
			out.Print("")
			out.Info("Edit %s to adjust adapter paths", shortenPath(configPath))

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration")

	return cmd
}

// newRunCmd creates the run command.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Watch the system appearance and notify all tools on change",
		Long: `Subscribes to the system appearance preference and, on every
light/dark change, fans the new theme out to all enabled adapters.
Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			a, err := newApp()
			if err != nil {
				out.ErrorWithHint(err.Error(), "Run 'appearance-notifier init' to create a default configuration")
				return err
			}

			plat := platform.Current()
			if !plat.IsSupported() {
				out.Error("Appearance observation is not supported on %s", plat.Name())
				return fmt.Errorf("platform not supported")
			}

			out.Info("Watching appearance changes (%d adapters)", a.dispatcher.AdapterCount())

			obs := observer.New(plat.Appearance(), a.dispatcher, a.cfg.PollInterval(), a.log)
			obs.Observe(cmd.Context())

			// Let in-flight adapters finish before exiting
			a.dispatcher.Wait()
			return nil
		},
	}
}

// newApplyCmd creates the apply command.
func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <light|dark>",
		Short: "Push a theme to all tools once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			t, err := theme.Parse(args[0])
			if err != nil {
				out.Error("%v", err)
				return err
			}

			a, err := newApp()
			if err != nil {
				out.ErrorWithHint(err.Error(), "Run 'appearance-notifier init' to create a default configuration")
				return err
			}

			a.dispatcher.Dispatch(cmd.Context(), t)
			a.dispatcher.Wait()

			out.Success("Applied %s theme to %d adapters", t, a.dispatcher.AdapterCount())
			return nil
		},
	}
}

// newDetectCmd creates the detect command.
func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Print the current system appearance",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			raw, err := platform.Current().Appearance().Raw()
			if err != nil {
				out.Error("Failed to read appearance: %v", err)
				return err
			}

			t, err := theme.Decode(raw)
			if err != nil {
				out.Warning("Unknown appearance value: %q", raw)
				return nil
			}

			out.Print("%s", t)
			return nil
		},
	}
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			initOutput()
			out.Print("appearance-notifier version 0.1.0")
		},
	}
}

// newAgentInstallCmd creates the agent-install command.
func newAgentInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent-install",
		Short: "Install the login agent that runs the observer",
		Long:  "Installs a launchd agent that runs 'appearance-notifier run' at login and keeps it alive.",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			scheduler := platform.Current().Scheduler()
			if !scheduler.IsSupported() {
				out.Error("Background agents are not supported on %s", platform.Current().Name())
				return fmt.Errorf("scheduler not supported")
			}

			execPath, err := os.Executable()
			if err != nil {
				out.Error("Failed to get executable path: %v", err)
				return err
			}
			execPath, err = filepath.EvalSymlinks(execPath)
			if err != nil {
				out.Error("Failed to resolve executable path: %v", err)
				return err
			}

			logPath := filepath.Join(config.DefaultConfigDir(), "agent.log")

			cfg := platform.SchedulerConfig{
				Label:     agentLabel,
				Command:   execPath,
				Args:      []string{"run"},
				RunAtLoad: true,
				KeepAlive: true,
				LogPath:   logPath,
			}

			if err := scheduler.Install(cfg); err != nil {
				out.Error("Failed to install agent: %v", err)
				return err
			}

			out.Success("Agent installed")
			out.Field("Log", shortenPath(logPath))

			return nil
		},
	}
}

// newAgentUninstallCmd creates the agent-uninstall command.
func newAgentUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent-uninstall",
		Short: "Uninstall the login agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			scheduler := platform.Current().Scheduler()

			status, err := scheduler.Status(agentLabel)
			if err != nil {
				out.Error("Failed to get agent status: %v", err)
				return err
			}

			if !status.Installed {
				out.Info("Agent is not installed")
				return nil
			}

			if err := scheduler.Uninstall(agentLabel); err != nil {
				out.Error("Failed to uninstall agent: %v", err)
				return err
			}

			out.Success("Agent uninstalled")
			return nil
		},
	}
}

// newAgentStatusCmd creates the agent-status command.
func newAgentStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent-status",
		Short: "Show login agent status",
		RunE: func(cmd *cobra.Command, args []string) error {
			initOutput()

			scheduler := platform.Current().Scheduler()
			if !scheduler.IsSupported() {
				out.Error("Background agents are not supported on this platform")
				return fmt.Errorf("scheduler not supported")
			}

			status, err := scheduler.Status(agentLabel)
			if err != nil {
				out.Error("Failed to get agent status: %v", err)
				return err
			}

			if !status.Installed {
				out.Info("Agent is not installed")
				return nil
			}

			if status.Running {
				out.Success("Agent is running")
			} else {
				out.Warning("Agent is installed but not running")
			}
			if status.LogPath != "" {
				out.Field("Log", shortenPath(status.LogPath))
			}

			return nil
		},
	}
}

// shortenPath shortens a path for display.
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if len(path) > len(home) && path[:len(home)] == home {
		return "~" + path[len(home):]
	}
	return path
}

// Package platform provides OS-specific access to the appearance
// preference and the login-agent scheduler.
package platform

import (
	"context"
	"time"
)

// AppearanceService exposes the OS appearance preference.
type AppearanceService interface {
	// Raw returns the current raw appearance preference value
	// ("Light" or "Dark" on supported platforms).
	Raw() (string, error)

	// Subscribe emits the raw preference value each time it changes,
	// checking at the given interval. The channel is closed when ctx
	// is cancelled.
	Subscribe(ctx context.Context, interval time.Duration) <-chan string
}

// SchedulerService manages the background login agent.
type SchedulerService interface {
	// Install installs the agent with the given configuration.
	Install(config SchedulerConfig) error

	// Uninstall removes the agent by label.
	Uninstall(label string) error

	// Status returns the current agent status by label.
	Status(label string) (SchedulerStatus, error)

	// IsSupported returns true if agent scheduling works on this platform.
	IsSupported() bool
}

// SchedulerConfig holds the agent configuration.
type SchedulerConfig struct {
	// Label is the unique identifier for the agent.
	Label string

	// Command is the executable path.
	Command string

	// Args are the command arguments.
	Args []string

	// RunAtLoad indicates whether to start immediately when loaded.
	RunAtLoad bool

	// KeepAlive indicates whether the agent is restarted if it exits.
	KeepAlive bool

	// LogPath is the path for stdout/stderr output.
	LogPath string
}

// SchedulerStatus represents the current agent state.
type SchedulerStatus struct {
	// Installed indicates whether the agent is installed.
	Installed bool

	// Running indicates whether the agent is currently active.
	Running bool

	// LogPath is the configured log file path.
	LogPath string
}

// Platform provides access to OS-specific services.
type Platform interface {
	// Name returns the platform identifier (e.g., "darwin").
	Name() string

	// IsSupported returns true if this platform is fully supported.
	IsSupported() bool

	// Appearance returns the appearance preference service.
	Appearance() AppearanceService

	// Scheduler returns the login-agent scheduler service.
	Scheduler() SchedulerService
}

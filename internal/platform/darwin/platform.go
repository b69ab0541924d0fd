//go:build darwin

package darwin

import "github.com/anstadnik/AppearanceNotifier/internal/platform"

func init() {
	platform.Register("darwin", func() platform.Platform {
		return New()
	})
}

// Platform implements platform.Platform for macOS.
type Platform struct {
	appearance *AppearanceService
	scheduler  *SchedulerService
}

// New creates a new macOS platform instance.
func New() *Platform {
	return &Platform{
		appearance: NewAppearanceService(),
		scheduler:  NewSchedulerService(),
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return "darwin"
}

// IsSupported returns true as macOS is fully supported.
func (p *Platform) IsSupported() bool {
	return true
}

// Appearance returns the appearance preference service.
func (p *Platform) Appearance() platform.AppearanceService {
	return p.appearance
}

// Scheduler returns the login-agent scheduler service.
func (p *Platform) Scheduler() platform.SchedulerService {
	return p.scheduler
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)

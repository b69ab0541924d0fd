// Package stub provides a fallback platform implementation for
// systems without an appearance preference store.
package stub

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/anstadnik/AppearanceNotifier/internal/platform"
)

func init() {
	// Register stub as fallback for unsupported platforms
	// This will be overridden if a specific platform registers itself
	for _, os := range []string{"linux", "windows", "freebsd", "openbsd", "netbsd"} {
		platform.Register(os, func() platform.Platform {
			return New()
		})
	}
}

// Platform implements platform.Platform as a fallback for unsupported systems.
type Platform struct {
	name string
}

// New creates a new stub platform instance.
func New() *Platform {
	return &Platform{
		name: runtime.GOOS,
	}
}

// Name returns the platform identifier.
func (p *Platform) Name() string {
	return p.name
}

// IsSupported returns false as this is a fallback implementation.
func (p *Platform) IsSupported() bool {
	return false
}

// Appearance returns the appearance service (stub).
func (p *Platform) Appearance() platform.AppearanceService {
	return &stubAppearanceService{}
}

// Scheduler returns the scheduler service (stub).
func (p *Platform) Scheduler() platform.SchedulerService {
	return &stubSchedulerService{}
}

// Compile-time check that Platform implements platform.Platform.
var _ platform.Platform = (*Platform)(nil)

// stubAppearanceService has no preference store to read.
type stubAppearanceService struct{}

func (s *stubAppearanceService) Raw() (string, error) {
	return "", fmt.Errorf("appearance detection not supported on %s", runtime.GOOS)
}

func (s *stubAppearanceService) Subscribe(ctx context.Context, interval time.Duration) <-chan string {
	ch := make(chan string)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

// stubSchedulerService is a no-op scheduler service.
type stubSchedulerService struct{}

func (s *stubSchedulerService) Install(config platform.SchedulerConfig) error {
	return platform.ErrUnsupported
}

func (s *stubSchedulerService) Uninstall(label string) error {
	return platform.ErrUnsupported
}

func (s *stubSchedulerService) Status(label string) (platform.SchedulerStatus, error) {
	return platform.SchedulerStatus{}, platform.ErrUnsupported
}

func (s *stubSchedulerService) IsSupported() bool {
	return false
}

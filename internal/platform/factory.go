package platform

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"
)

var ErrUnsupported = errors.New("operation not supported on this platform")

type platformBuilder func() Platform

var (
	registry     = make(map[string]platformBuilder)
	registryLock sync.RWMutex
)

func Register(osName string, builder platformBuilder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[osName] = builder
}

var (
	current     Platform
	currentOnce sync.Once
)

func Current() Platform {
	currentOnce.Do(func() {
		current = newPlatform()
	})
	return current
}

func newPlatform() Platform {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if builder, ok := registry[runtime.GOOS]; ok {
		return builder()
	}

	return &unsupportedPlatform{name: runtime.GOOS}
}

type unsupportedPlatform struct {
	name string
}

func (p *unsupportedPlatform) Name() string                  { return p.name }
func (p *unsupportedPlatform) IsSupported() bool             { return false }
func (p *unsupportedPlatform) Appearance() AppearanceService { return &unsupportedAppearance{} }
func (p *unsupportedPlatform) Scheduler() SchedulerService   { return &unsupportedScheduler{} }

type unsupportedAppearance struct{}

func (s *unsupportedAppearance) Raw() (string, error) { return "", ErrUnsupported }

func (s *unsupportedAppearance) Subscribe(ctx context.Context, interval time.Duration) <-chan string {
	ch := make(chan string)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}

type unsupportedScheduler struct{}

func (s *unsupportedScheduler) Install(config SchedulerConfig) error { return ErrUnsupported }
func (s *unsupportedScheduler) Uninstall(label string) error         { return ErrUnsupported }
func (s *unsupportedScheduler) Status(label string) (SchedulerStatus, error) {
	return SchedulerStatus{}, ErrUnsupported
}
func (s *unsupportedScheduler) IsSupported() bool { return false }

func SetPlatform(p Platform) {
	currentOnce.Do(func() {})
	current = p
}

func ResetPlatform() {
	currentOnce = sync.Once{}
	current = nil
}

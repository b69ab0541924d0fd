//go:build darwin

package darwin

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// AppearanceService implements platform.AppearanceService for macOS
// by reading the AppleInterfaceStyle preference.
type AppearanceService struct{}

// NewAppearanceService creates a new macOS appearance service.
func NewAppearanceService() *AppearanceService {
	return &AppearanceService{}
}

// Raw returns the current AppleInterfaceStyle value. The key is unset
// in light mode, so a failed read means "Light".
func (s *AppearanceService) Raw() (string, error) {
	cmd := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle")
	output, err := cmd.Output()
	if err != nil {
		return "Light", nil
	}

	style := strings.TrimSpace(string(output))
	if style == "" {
		return "Light", nil
	}
	return style, nil
}

// Subscribe polls the preference at the given interval and emits the
// raw value whenever it differs from the previous read. The first read
// establishes the baseline without emitting.
func (s *AppearanceService) Subscribe(ctx context.Context, interval time.Duration) <-chan string {
	ch := make(chan string, 1)

	go func() {
		defer close(ch)

		last, _ := s.Raw()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				raw, err := s.Raw()
				if err != nil || raw == last {
					continue
				}
				last = raw

				select {
				case ch <- raw:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch
}

package stub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/anstadnik/AppearanceNotifier/internal/platform"
)

func TestStubPlatform(t *testing.T) {
	p := New()

	// Verify it implements Platform interface
	var _ platform.Platform = p

	assert.NotEmpty(t, p.Name())
	assert.False(t, p.IsSupported())
}

func TestStubAppearanceService(t *testing.T) {
	p := New()
	svc := p.Appearance()

	_, err := svc.Raw()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestStubSubscribeNeverEmits(t *testing.T) {
	p := New()

	ctx, cancel := context.WithCancel(context.Background())
	ch := p.Appearance().Subscribe(ctx, time.Millisecond)
	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestStubSchedulerService(t *testing.T) {
	p := New()
	svc := p.Scheduler()

	assert.False(t, svc.IsSupported())

	err := svc.Install(platform.SchedulerConfig{})
	assert.Error(t, err)

	err = svc.Uninstall("test")
	assert.Error(t, err)

	_, err = svc.Status("test")
	assert.Error(t, err)
}

package platform

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerConfig(t *testing.T) {
	config := SchedulerConfig{
		Label:     "com.test.agent",
		Command:   "/usr/local/bin/test",
		Args:      []string{"run"},
		RunAtLoad: true,
		KeepAlive: true,
		LogPath:   "/var/log/test.log",
	}

	assert.Equal(t, "com.test.agent", config.Label)
	assert.Equal(t, "/usr/local/bin/test", config.Command)
	assert.Equal(t, []string{"run"}, config.Args)
	assert.True(t, config.RunAtLoad)
	assert.True(t, config.KeepAlive)
	assert.Equal(t, "/var/log/test.log", config.LogPath)
}

func TestErrUnsupported(t *testing.T) {
	assert.NotNil(t, ErrUnsupported)
	assert.Contains(t, ErrUnsupported.Error(), "not supported")
}

func TestSetPlatformOverridesCurrent(t *testing.T) {
	t.Cleanup(ResetPlatform)

	fake := &unsupportedPlatform{name: "test-os"}
	SetPlatform(fake)

	assert.Equal(t, "test-os", Current().Name())
}

func TestUnsupportedPlatform(t *testing.T) {
	p := &unsupportedPlatform{name: "plan9"}

	assert.Equal(t, "plan9", p.Name())
	assert.False(t, p.IsSupported())

	_, err := p.Appearance().Raw()
	assert.ErrorIs(t, err, ErrUnsupported)

	assert.False(t, p.Scheduler().IsSupported())
}

func TestUnsupportedSubscribeClosesOnCancel(t *testing.T) {
	p := &unsupportedPlatform{name: "plan9"}

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

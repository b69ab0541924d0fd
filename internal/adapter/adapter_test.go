package adapter

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anstadnik/AppearanceNotifier/internal/command"
	"github.com/anstadnik/AppearanceNotifier/internal/config"
	"github.com/anstadnik/AppearanceNotifier/internal/theme"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func nvimConfig() config.NvimConfig {
	return config.NvimConfig{Enabled: true, Program: "nvim", ConfigPath: "/home/u/.config/nvim/lua/theme.lua"}
}

func TestNeovimSpecsArePure(t *testing.T) {
	a := NewNeovim(nvimConfig(), command.NewRecorder(), testLogger(&bytes.Buffer{}))

	assert.Equal(t, a.SetBackgroundSpec("/tmp/s1", theme.Dark), a.SetBackgroundSpec("/tmp/s1", theme.Dark))
	assert.Equal(t, a.RewriteConfigSpec(theme.Light), a.RewriteConfigSpec(theme.Light))

	spec := a.SetBackgroundSpec("/tmp/s1", theme.Dark)
	assert.Equal(t, "nvim", spec.Program)
	assert.Equal(t, []string{"--servername", "/tmp/s1", "+set background=dark"}, spec.Args)

	rewrite := a.RewriteConfigSpec(theme.Light)
	assert.Equal(t, "sed", rewrite.Program)
	assert.Equal(t, []string{
		"-E", "-i", "",
		`s/background = "(light|dark)"/background = "light"/g`,
		"/home/u/.config/nvim/lua/theme.lua",
	}, rewrite.Args)
}

func TestNeovimFansOutPerServer(t *testing.T) {
	rec := command.NewRecorder()
	rec.Outputs["nvim"] = "/tmp/s1\n/tmp/s2\n"

	a := NewNeovim(nvimConfig(), rec, testLogger(&bytes.Buffer{}))
	res := a.Apply(context.Background(), theme.Dark)

	require.True(t, res.Success())

	// One list query + two per-server pushes
	nvimCalls := rec.ByProgram("nvim")
	require.Len(t, nvimCalls, 3)
	assert.Equal(t, []string{"--serverlist"}, nvimCalls[0].Args)

	servers := map[string]bool{}
	for _, spec := range nvimCalls[1:] {
		require.Len(t, spec.Args, 3)
		servers[spec.Args[1]] = true
		assert.Equal(t, "+set background=dark", spec.Args[2])
	}
	assert.Equal(t, map[string]bool{"/tmp/s1": true, "/tmp/s2": true}, servers)

	// Config rewrite ran too
	assert.Len(t, rec.ByProgram("sed"), 1)
}

func TestNeovimEmptyServerListStillRewritesConfig(t *testing.T) {
	rec := command.NewRecorder()
	rec.Outputs["nvim"] = "\n"

	var buf bytes.Buffer
	a := NewNeovim(nvimConfig(), rec, testLogger(&buf))
	res := a.Apply(context.Background(), theme.Light)

	assert.True(t, res.Success())
	assert.Len(t, rec.ByProgram("nvim"), 1, "only the list query")
	assert.Len(t, rec.ByProgram("sed"), 1, "config rewrite still runs")
	assert.Contains(t, buf.String(), "no servers")
}

func TestNeovimServerListFailureStillRewritesConfig(t *testing.T) {
	rec := command.NewRecorder()
	rec.Errors["nvim"] = errors.New("exit status 1")

	a := NewNeovim(nvimConfig(), rec, testLogger(&bytes.Buffer{}))
	res := a.Apply(context.Background(), theme.Dark)

	assert.False(t, res.Success())
	assert.Len(t, rec.ByProgram("sed"), 1)
}

func TestTmuxSpecs(t *testing.T) {
	cfg := config.TmuxConfig{Enabled: true, Program: "tmux", PluginManager: "/home/u/.tmux/plugins/tpm/tpm"}
	a := NewTmux(cfg, command.NewRecorder(), testLogger(&bytes.Buffer{}))

	assert.Equal(t, []string{"set", "-g", "@catppuccin_flavour", "latte"}, a.SetFlavourSpec(theme.Light).Args)
	assert.Equal(t, []string{"set", "-g", "@catppuccin_flavour", "mocha"}, a.SetFlavourSpec(theme.Dark).Args)
	assert.Equal(t, []string{"run-shell", "/home/u/.tmux/plugins/tpm/tpm"}, a.RunPluginManagerSpec().Args)
}

func TestTmuxSecondCommandRunsAfterFirstFails(t *testing.T) {
	cfg := config.TmuxConfig{Enabled: true, Program: "tmux", PluginManager: "/tpm"}
	rec := command.NewRecorder()
	rec.Errors["tmux"] = errors.New("exit status 1")

	a := NewTmux(cfg, rec, testLogger(&bytes.Buffer{}))
	res := a.Apply(context.Background(), theme.Dark)

	assert.False(t, res.Success())
	// Both commands attempted, in order
	calls := rec.ByProgram("tmux")
	require.Len(t, calls, 2)
	assert.Equal(t, "set", calls[0].Args[0])
	assert.Equal(t, "run-shell", calls[1].Args[0])
}

func TestKittySpec(t *testing.T) {
	a := NewKitty(config.KittyConfig{Enabled: true, Program: "kitty"}, command.NewRecorder(), testLogger(&bytes.Buffer{}))

	spec := a.ThemeSpec(theme.Dark)
	assert.Equal(t, "kitty", spec.Program)
	assert.Equal(t, []string{
		"+kitten", "themes", "--reload-in=all", "--config-file-name", "themes.conf", "Catppuccin-Mocha",
	}, spec.Args)
	assert.Equal(t, "Catppuccin-Latte", a.ThemeSpec(theme.Light).Args[5])
}

func TestHelixRunsBothUnits(t *testing.T) {
	cfg := config.HelixConfig{Enabled: true, ConfigPath: "/home/u/.config/helix/config.toml", Process: "helix"}
	rec := command.NewRecorder()

	a := NewHelix(cfg, rec, testLogger(&bytes.Buffer{}))
	res := a.Apply(context.Background(), theme.Light)

	require.True(t, res.Success())

	seds := rec.ByProgram("sed")
	require.Len(t, seds, 1)
	assert.Equal(t, []string{
		"-E", "-i", "",
		`s/theme = "catppuccin_(latte|mocha)"/theme = "catppuccin_latte"/g`,
		"/home/u/.config/helix/config.toml",
	}, seds[0].Args)

	kills := rec.ByProgram("pkill")
	require.Len(t, kills, 1)
	assert.Equal(t, []string{"-USR1", "helix"}, kills[0].Args)
}

func TestHelixReloadFailureDoesNotBlockRewrite(t *testing.T) {
	cfg := config.HelixConfig{Enabled: true, ConfigPath: "/cfg.toml", Process: "helix"}
	rec := command.NewRecorder()
	rec.Errors["pkill"] = errors.New("exit status 1")

	a := NewHelix(cfg, rec, testLogger(&bytes.Buffer{}))
	res := a.Apply(context.Background(), theme.Dark)

	assert.False(t, res.Success())
	assert.Len(t, rec.ByProgram("sed"), 1)
}

func TestEmacsSpec(t *testing.T) {
	cfg := config.EmacsConfig{
		Enabled:  true,
		Program:  "emacsclient",
		Socket:   "/home/u/.emacs.d/server/server",
		Function: "an/load-theme",
	}
	a := NewEmacs(cfg, command.NewRecorder(), testLogger(&bytes.Buffer{}))

	spec := a.EvalSpec(theme.Dark)
	assert.Equal(t, "emacsclient", spec.Program)
	assert.Equal(t, []string{
		"--socket-name", "/home/u/.emacs.d/server/server",
		"--eval", "(an/load-theme 'mocha)",
		"--quiet", "-no-wait", "--suppress-output", "-a", "true",
	}, spec.Args)
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig().Adapters
	adapters := FromConfig(cfg, command.NewRecorder(), testLogger(&bytes.Buffer{}))
	require.Len(t, adapters, 5)

	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Name()
	}
	assert.Equal(t, []string{"nvim", "tmux", "kitty", "helix", "emacs"}, names)

	cfg.Kitty.Enabled = false
	cfg.Emacs.Enabled = false
	assert.Len(t, FromConfig(cfg, command.NewRecorder(), testLogger(&bytes.Buffer{})), 3)
}

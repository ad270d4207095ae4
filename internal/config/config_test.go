package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/1broseidon/spiralwm/internal/hotkeys"
	"github.com/1broseidon/spiralwm/internal/tiling"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 2, cfg.Workspaces)
	require.Equal(t, tiling.LayoutSpiral, cfg.Layout)
	require.Equal(t, uint16(8), cfg.ModifierMask())
	require.Len(t, cfg.Keys, 9)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultConfigPath()
	require.NoError(t, err)
	require.Equal(t, "/tmp/xdg/spiralwm/config.yaml", path)
}

func TestLoad_UsesDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "spiralwm"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spiralwm", "config.yaml"), []byte("workspaces: 5\n"), 0644))

	res, err := Load()
	require.NoError(t, err)
	require.Equal(t, 5, res.Config.Workspaces)
	require.Equal(t, filepath.Join(dir, "spiralwm", "config.yaml"), res.File)
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), res.Config)
	require.Empty(t, res.File)
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "# empty"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), res.Config)
}

func TestLoadFromPath_Overrides(t *testing.T) {
	path := writeConfig(t,
		"workspaces: 4",
		"layout: Grid",
		"gap_size: 6",
		"modifier: Mod4",
		"drag_buttons: [1]",
		"log_level: debug",
		"autostart:",
		"  - picom",
		"  - [feh, --bg-fill, /tmp/wall.png]",
		"restart_command: startx --wm spiralwm",
	)

	res, err := LoadFromPath(path)
	require.NoError(t, err)

	cfg := res.Config
	require.Equal(t, 4, cfg.Workspaces)
	require.Equal(t, tiling.LayoutGrid, cfg.Layout)
	require.Equal(t, 6, cfg.GapSize)
	require.Equal(t, uint16(64), cfg.ModifierMask())
	require.Equal(t, []int{1}, cfg.DragButtons)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, [][]string{{"picom"}, {"feh", "--bg-fill", "/tmp/wall.png"}}, cfg.Autostart)
	require.Equal(t, []string{"startx", "--wm", "spiralwm"}, cfg.RestartCommand)
	require.Equal(t, DefaultKeys(), cfg.Keys)
	require.Equal(t, path, res.File)
}

func TestLoadFromPath_SingleWorkspaceDropsExtraSwitch(t *testing.T) {
	res, err := LoadFromPath(writeConfig(t, "workspaces: 1"))
	require.NoError(t, err)

	cfg := res.Config
	require.Equal(t, 1, cfg.Workspaces)
	require.Len(t, cfg.Keys, len(DefaultKeys())-1)
	for _, k := range cfg.Keys {
		if k.Method == hotkeys.MethodMoveWorkspace {
			require.Equal(t, 0, *k.Arg, k.Key)
		}
	}
	require.NoError(t, cfg.Validate())
}

func TestLoadFromPath_SingleWorkspaceStillRejectsUserSwitch(t *testing.T) {
	path := writeConfig(t,
		"workspaces: 1",
		"keys_append:",
		"  - key: Mod1-2",
		"    method: move_workspace",
		"    arg: 1",
	)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "keys[8]")
	require.Contains(t, err.Error(), "out of range")
}

func TestLoadFromPath_KeysReplaceAndAppend(t *testing.T) {
	path := writeConfig(t,
		"keys:",
		"  - key: Mod4-Return",
		"    command: alacritty",
		"keys_append:",
		"  - key: Mod4-q",
		"    method: exit",
	)

	res, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, []KeyBinding{
		{Key: "Mod4-Return", Command: "alacritty"},
		{Key: "Mod4-q", Method: "exit"},
	}, res.Config.Keys)
}

func TestLoadFromPath_UnknownFieldRejected(t *testing.T) {
	_, err := LoadFromPath(writeConfig(t, "workspace: 3"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "workspace")
}

func TestLoadFromPath_ValidationErrorHasSource(t *testing.T) {
	path := writeConfig(t,
		"workspaces: 2",
		"layout: fibonacci",
	)

	_, err := LoadFromPath(path)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "layout", verr.Path)
	require.Equal(t, 2, verr.Source.Line)
	require.Contains(t, err.Error(), path+":2:")
}

func TestLoadFromPath_KeyErrorPointsAtEntry(t *testing.T) {
	path := writeConfig(t,
		"keys:",
		"  - key: Mod1-m",
		"    method: maximize_focused",
		"  - key: Mod1-x",
		"    method: minimize",
	)

	_, err := LoadFromPath(path)

	require.ErrorIs(t, err, hotkeys.ErrUnknownMethod)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "keys[1]", verr.Path)
	require.Equal(t, 4, verr.Source.Line)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"workspaces", func(c *Config) { c.Workspaces = 0 }, "workspaces"},
		{"layout", func(c *Config) { c.Layout = "tabbed" }, "layout"},
		{"gap", func(c *Config) { c.GapSize = -1 }, "gap_size"},
		{"modifier", func(c *Config) { c.Modifier = "Hyper" }, "modifier"},
		{"button", func(c *Config) { c.DragButtons = []int{1, 9} }, "drag_buttons[1]"},
		{"bad key", func(c *Config) { c.Keys[0].Key = "Mod1-" }, "keys[0]"},
		{"both actions", func(c *Config) { c.Keys[0].Command = "xterm" }, "keys[0]"},
		{"no action", func(c *Config) { c.Keys[0].Method = "" }, "keys[0]"},
		{"missing arg", func(c *Config) { c.Keys[1].Arg = nil }, "keys[1]"},
		{"arg on command", func(c *Config) { c.Keys[4].Arg = intPtr(1) }, "keys[4]"},
		{"workspace range", func(c *Config) { c.Keys[2].Arg = intPtr(2) }, "keys[2]"},
		{"autostart", func(c *Config) { c.Autostart = [][]string{{}} }, "autostart[0]"},
		{"restart", func(c *Config) { c.RestartCommand = []string{" "} }, "restart_command"},
		{"log level", func(c *Config) { c.LogLevel = "trace" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			require.Equal(t, tt.path, verr.Path)
		})
	}
}

func TestBindings(t *testing.T) {
	cfg := DefaultConfig()

	bindings := cfg.Bindings()

	require.Len(t, bindings, len(cfg.Keys))
	require.Equal(t, hotkeys.Binding{
		Sequence: "Mod1-1",
		Action:   hotkeys.MethodAction{Method: "move_workspace", Arg: intPtr(0)},
	}, bindings[1])
	require.Equal(t, hotkeys.Binding{
		Sequence: "Mod1-p",
		Action:   hotkeys.CommandAction{Command: "rofi", Args: []string{"-show", "run"}},
	}, bindings[3])
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	res, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), res.Config)
}

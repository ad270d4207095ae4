package wm

import (
	"log/slog"
	"time"

	"github.com/1broseidon/spiralwm/internal/hotkeys"
	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/tiling"
)

// Launcher starts external programs.
type Launcher interface {
	Start(command string, args []string) error
	StartAll(commands [][]string)
}

// Config is everything the core needs that does not come from the display.
type Config struct {
	// Workspaces is the fixed number of workspaces. At least one is created.
	Workspaces int
	// Layout names the tiling engine, see tiling.New.
	Layout  string
	GapSize int

	// DragModifier is held together with a DragButtons entry to start a drag.
	DragModifier uint16
	DragButtons  []platform.Button

	Bindings  []hotkeys.Binding
	Autostart [][]string

	Launcher Launcher
	Logger   *slog.Logger
	// Now is the clock used for the motion throttle.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Workspaces < 1 {
		c.Workspaces = 1
	}
	if c.Layout == "" {
		c.Layout = tiling.LayoutSpiral
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

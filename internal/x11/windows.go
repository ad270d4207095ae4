package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// WindowConfig is a ConfigureWindow request in X11 terms. Fields not covered
// by Mask are ignored.
type WindowConfig struct {
	Mask      uint16
	X         int
	Y         int
	Width     int
	Height    int
	StackMode byte
}

// MapWindow makes a window viewable.
func (c *Connection) MapWindow(win xproto.Window) {
	xproto.MapWindow(c.Conn(), win)
}

// UnmapWindow hides a window.
func (c *Connection) UnmapWindow(win xproto.Window) {
	xproto.UnmapWindow(c.Conn(), win)
}

// ConfigureWindow sends the fields selected by cfg.Mask in the order the
// protocol expects them.
func (c *Connection) ConfigureWindow(win xproto.Window, cfg WindowConfig) {
	mask := cfg.Mask & (xproto.ConfigWindowX |
		xproto.ConfigWindowY |
		xproto.ConfigWindowWidth |
		xproto.ConfigWindowHeight |
		xproto.ConfigWindowStackMode)
	if mask == 0 {
		return
	}

	values := make([]uint32, 0, 5)
	if mask&xproto.ConfigWindowX != 0 {
		values = append(values, uint32(int32(cfg.X)))
	}
	if mask&xproto.ConfigWindowY != 0 {
		values = append(values, uint32(int32(cfg.Y)))
	}
	if mask&xproto.ConfigWindowWidth != 0 {
		values = append(values, uint32(clampDimension(cfg.Width)))
	}
	if mask&xproto.ConfigWindowHeight != 0 {
		values = append(values, uint32(clampDimension(cfg.Height)))
	}
	if mask&xproto.ConfigWindowStackMode != 0 {
		values = append(values, uint32(cfg.StackMode))
	}

	xproto.ConfigureWindow(c.Conn(), win, mask, values)
}

// SetInputFocus gives win the keyboard focus, reverting to its parent when
// win goes away.
func (c *Connection) SetInputFocus(win xproto.Window) {
	xproto.SetInputFocus(c.Conn(), xproto.InputFocusParent, win, xproto.TimeCurrentTime)
}

// ChangeEventMask replaces the event mask this client selects on win.
func (c *Connection) ChangeEventMask(win xproto.Window, mask uint32) {
	xproto.ChangeWindowAttributes(c.Conn(), win, xproto.CwEventMask, []uint32{mask})
}

// GetGeometry returns the window's position relative to its parent and its size.
func (c *Connection) GetGeometry(win xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get geometry of window %d: %w", win, err)
	}
	return int(geom.X), int(geom.Y), int(geom.Width), int(geom.Height), nil
}

// GrabButton grabs a pointer button with mods on the root window, once per
// ignored lock-modifier combination.
func (c *Connection) GrabButton(mods uint16, button xproto.Button) {
	for _, ignore := range ignoreMods() {
		xproto.GrabButton(
			c.Conn(),
			true,
			c.Root,
			xproto.EventMaskButtonPress,
			xproto.GrabModeAsync,
			xproto.GrabModeAsync,
			xproto.WindowNone,
			xproto.CursorNone,
			byte(button),
			mods|ignore,
		)
	}
}

// GrabPointer routes all motion and release events to the root window until
// UngrabPointer.
func (c *Connection) GrabPointer() error {
	reply, err := xproto.GrabPointer(
		c.Conn(),
		true,
		c.Root,
		xproto.EventMaskPointerMotion|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync,
		xproto.GrabModeAsync,
		xproto.WindowNone,
		xproto.CursorNone,
		xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("pointer grab failed: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("pointer grab failed with status %d", reply.Status)
	}
	return nil
}

// UngrabPointer releases a pointer grab.
func (c *Connection) UngrabPointer() {
	xproto.UngrabPointer(c.Conn(), xproto.TimeCurrentTime)
}

func clampDimension(v int) int {
	if v < 1 {
		return 1
	}
	if v > 0xffff {
		return 0xffff
	}
	return v
}

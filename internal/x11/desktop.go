package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// SetDesktops publishes _NET_NUMBER_OF_DESKTOPS and _NET_CURRENT_DESKTOP so
// pagers and bars can follow workspace switches.
func (c *Connection) SetDesktops(count, current int) error {
	if err := ewmh.NumberOfDesktopsSet(c.XUtil, uint(count)); err != nil {
		return fmt.Errorf("failed to set desktop count: %w", err)
	}
	if err := ewmh.CurrentDesktopSet(c.XUtil, uint(current)); err != nil {
		return fmt.Errorf("failed to set current desktop: %w", err)
	}
	return nil
}

// SetActiveWindow publishes _NET_ACTIVE_WINDOW.
func (c *Connection) SetActiveWindow(win xproto.Window) error {
	if err := ewmh.ActiveWindowSet(c.XUtil, win); err != nil {
		return fmt.Errorf("failed to set active window: %w", err)
	}
	return nil
}

// SetWMName advertises the window manager name through a
// _NET_SUPPORTING_WM_CHECK child window.
func (c *Connection) SetWMName(name string) error {
	conn := c.Conn()
	wid, err := xproto.NewWindowId(conn)
	if err != nil {
		return fmt.Errorf("failed to allocate check window: %w", err)
	}
	err = xproto.CreateWindowChecked(conn, c.Screen.RootDepth, wid, c.Root,
		-1, -1, 1, 1, 0,
		xproto.WindowClassInputOutput, c.Screen.RootVisual,
		xproto.CwOverrideRedirect, []uint32{1}).Check()
	if err != nil {
		return fmt.Errorf("failed to create check window: %w", err)
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, c.Root, wid); err != nil {
		return err
	}
	if err := ewmh.SupportingWmCheckSet(c.XUtil, wid, wid); err != nil {
		return err
	}
	return ewmh.WmNameSet(c.XUtil, wid, name)
}

package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
)

// ErrAnotherWM is returned by TakeOwnership when substructure redirection on
// the root window is already held by another client.
var ErrAnotherWM = errors.New("another window manager is already running")

// ErrClosed is returned by WaitForEvent once the server closed the connection.
var ErrClosed = errors.New("x11 connection closed")

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	Screen *xproto.ScreenInfo
}

// NewConnection establishes a connection to the X11 server and initializes
// the keyboard mapping used for binding resolution.
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, err
	}

	keybind.Initialize(xu)

	return &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		Screen: xu.Screen(),
	}, nil
}

// Conn returns the raw xgb connection.
func (c *Connection) Conn() *xgb.Conn {
	return c.XUtil.Conn()
}

// TakeOwnership selects the root window events a window manager needs:
// substructure redirection for map/configure requests plus enter/leave for
// focus-follows-pointer.
func (c *Connection) TakeOwnership() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskEnterWindow |
		xproto.EventMaskLeaveWindow |
		xproto.EventMaskFocusChange)

	err := xproto.ChangeWindowAttributesChecked(
		c.Conn(),
		c.Root,
		xproto.CwEventMask,
		[]uint32{mask},
	).Check()
	if err != nil {
		if _, ok := err.(xproto.AccessError); ok {
			return ErrAnotherWM
		}
		return fmt.Errorf("failed to select root events: %w", err)
	}
	return nil
}

// WaitForEvent blocks until the next event. Protocol errors (BadWindow after a
// client vanished and so on) are reported through onError and skipped; only a
// closed connection ends the wait with an error.
func (c *Connection) WaitForEvent(onError func(xgb.Error)) (xgb.Event, error) {
	for {
		ev, err := c.Conn().WaitForEvent()
		if ev == nil && err == nil {
			return nil, ErrClosed
		}
		if err != nil {
			if onError != nil {
				onError(err)
			}
			continue
		}
		return ev, nil
	}
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}

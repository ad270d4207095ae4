//go:build linux

package platform

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/1broseidon/spiralwm/internal/x11"
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn      *x11.Connection
	logger    *slog.Logger
	closeOnce sync.Once
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, logger *slog.Logger) *LinuxBackend {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinuxBackend{conn: conn, logger: logger}
}

// NewLinuxBackendFromDisplay opens a fresh X11 connection using $DISPLAY.
func NewLinuxBackendFromDisplay(logger *slog.Logger) (*LinuxBackend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	conn.ConfigureIgnoreMods()
	return NewLinuxBackend(conn, logger), nil
}

// Disconnect closes the underlying X11 connection. A blocked NextEvent
// returns once the connection is gone. Later calls do nothing.
func (b *LinuxBackend) Disconnect() {
	if b == nil || b.conn == nil {
		return
	}
	b.closeOnce.Do(b.conn.Close)
}

// TakeOwnership becomes the window manager for the root window and
// advertises the WM name.
func (b *LinuxBackend) TakeOwnership() error {
	if err := b.conn.TakeOwnership(); err != nil {
		return err
	}
	if err := b.conn.SetWMName("spiralwm"); err != nil {
		b.logger.Warn("failed to advertise wm name", "error", err)
	}
	return nil
}

func (b *LinuxBackend) ScreenSize() (int, int) {
	return b.conn.ScreenSize()
}

// NextEvent reads the next X event and converts it.
func (b *LinuxBackend) NextEvent() (Event, error) {
	ev, err := b.conn.WaitForEvent(func(xerr xgb.Error) {
		b.logger.Debug("x11 protocol error", "error", xerr)
	})
	if err != nil {
		return nil, err
	}
	return convertEvent(ev), nil
}

func (b *LinuxBackend) Map(w WindowID) {
	b.conn.MapWindow(xproto.Window(w))
}

func (b *LinuxBackend) Unmap(w WindowID) {
	b.conn.UnmapWindow(xproto.Window(w))
}

func (b *LinuxBackend) Configure(w WindowID, changes WindowChanges) {
	b.conn.ConfigureWindow(xproto.Window(w), x11.WindowConfig{
		Mask:      uint16(changes.Mask),
		X:         changes.X,
		Y:         changes.Y,
		Width:     changes.Width,
		Height:    changes.Height,
		StackMode: byte(changes.StackMode),
	})
}

// SetInputFocus focuses w and publishes it as _NET_ACTIVE_WINDOW.
func (b *LinuxBackend) SetInputFocus(w WindowID) {
	b.conn.SetInputFocus(xproto.Window(w))
	if err := b.conn.SetActiveWindow(xproto.Window(w)); err != nil {
		b.logger.Debug("failed to publish active window", "window", w, "error", err)
	}
}

func (b *LinuxBackend) ChangeEventMask(w WindowID, mask EventMask) {
	b.conn.ChangeEventMask(xproto.Window(w), uint32(mask))
}

func (b *LinuxBackend) Geometry(w WindowID) (Rect, error) {
	x, y, width, height, err := b.conn.GetGeometry(xproto.Window(w))
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

func (b *LinuxBackend) GrabKey(mods uint16, key Keycode) {
	b.conn.GrabKey(mods, xproto.Keycode(key))
}

func (b *LinuxBackend) GrabButton(mods uint16, button Button) {
	b.conn.GrabButton(mods, xproto.Button(button))
}

func (b *LinuxBackend) GrabPointer() error {
	return b.conn.GrabPointer()
}

func (b *LinuxBackend) UngrabPointer() {
	b.conn.UngrabPointer()
}

func (b *LinuxBackend) IgnoredMods() uint16 {
	return b.conn.IgnoredMods()
}

func (b *LinuxBackend) Keycodes(name string) []Keycode {
	return convertKeycodes(b.conn.Keycodes(name))
}

func (b *LinuxBackend) KeycodesForKeysym(sym uint32) []Keycode {
	return convertKeycodes(b.conn.KeycodesForKeysym(xproto.Keysym(sym)))
}

func (b *LinuxBackend) SetDesktops(count, current int) {
	if err := b.conn.SetDesktops(count, current); err != nil {
		b.logger.Debug("failed to publish desktops", "error", err)
	}
}

func convertKeycodes(codes []xproto.Keycode) []Keycode {
	if len(codes) == 0 {
		return nil
	}
	out := make([]Keycode, len(codes))
	for i, kc := range codes {
		out[i] = Keycode(kc)
	}
	return out
}

func convertEvent(ev xgb.Event) Event {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return KeyPress{Keycode: Keycode(e.Detail), State: e.State}
	case xproto.ButtonPressEvent:
		return ButtonPress{
			Button: Button(e.Detail),
			State:  e.State,
			Child:  WindowID(e.Child),
			RootX:  int(e.RootX),
			RootY:  int(e.RootY),
		}
	case xproto.ButtonReleaseEvent:
		return ButtonRelease{Button: Button(e.Detail), RootX: int(e.RootX), RootY: int(e.RootY)}
	case xproto.MotionNotifyEvent:
		return MotionNotify{RootX: int(e.RootX), RootY: int(e.RootY)}
	case xproto.MapRequestEvent:
		return MapRequest{Window: WindowID(e.Window)}
	case xproto.MapNotifyEvent:
		return MapNotify{Window: WindowID(e.Window)}
	case xproto.UnmapNotifyEvent:
		return UnmapNotify{Window: WindowID(e.Window)}
	case xproto.DestroyNotifyEvent:
		return DestroyNotify{Window: WindowID(e.Window)}
	case xproto.ConfigureRequestEvent:
		return ConfigureRequest{
			Window: WindowID(e.Window),
			Changes: WindowChanges{
				Mask:      ConfigMask(e.ValueMask),
				X:         int(e.X),
				Y:         int(e.Y),
				Width:     int(e.Width),
				Height:    int(e.Height),
				StackMode: StackMode(e.StackMode),
			},
		}
	case xproto.EnterNotifyEvent:
		return EnterNotify{Window: WindowID(e.Event)}
	default:
		return Unknown{Name: fmt.Sprintf("%T", ev)}
	}
}

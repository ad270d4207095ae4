package platform

// WindowID is a display-server window identifier.
type WindowID uint32

// Keycode is a hardware key code as reported by the display server.
type Keycode uint8

// Button is a pointer button number (1 = left, 3 = right).
type Button uint8

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ConfigMask selects which fields of WindowChanges are applied.
// Bit values match the X11 core protocol ConfigureWindow value mask.
type ConfigMask uint16

const (
	ConfigX           ConfigMask = 1 << 0
	ConfigY           ConfigMask = 1 << 1
	ConfigWidth       ConfigMask = 1 << 2
	ConfigHeight      ConfigMask = 1 << 3
	ConfigBorderWidth ConfigMask = 1 << 4
	ConfigSibling     ConfigMask = 1 << 5
	ConfigStackMode   ConfigMask = 1 << 6

	ConfigPosition = ConfigX | ConfigY
	ConfigSize     = ConfigWidth | ConfigHeight
	ConfigGeometry = ConfigPosition | ConfigSize
)

// StackMode is a restacking request.
type StackMode uint8

const (
	StackAbove StackMode = iota
	StackBelow
	StackTopIf
	StackBottomIf
	StackOpposite
)

// WindowChanges is a partial geometry/stacking change. Only fields selected
// by Mask are sent.
type WindowChanges struct {
	Mask      ConfigMask
	X         int
	Y         int
	Width     int
	Height    int
	StackMode StackMode
}

// Has reports whether every bit in m is set.
func (c WindowChanges) Has(m ConfigMask) bool {
	return c.Mask&m == m
}

// GeometryChanges returns a change that moves and resizes to r.
func GeometryChanges(r Rect) WindowChanges {
	return WindowChanges{
		Mask:   ConfigGeometry,
		X:      r.X,
		Y:      r.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

// EventMask is a set of window event kinds a client subscribes to.
type EventMask uint32

const (
	EventMaskEnterWindow EventMask = 1 << 4
	EventMaskLeaveWindow EventMask = 1 << 5
)

// Backend is the connection to the display server. Requests are fire and
// forget; protocol-level failures of the connection surface from NextEvent.
type Backend interface {
	// TakeOwnership selects substructure redirection on the root window.
	TakeOwnership() error
	ScreenSize() (width, height int)
	// NextEvent blocks until the next event arrives. A non-nil error means the
	// connection is unusable.
	NextEvent() (Event, error)

	Map(w WindowID)
	Unmap(w WindowID)
	Configure(w WindowID, changes WindowChanges)
	SetInputFocus(w WindowID)
	ChangeEventMask(w WindowID, mask EventMask)
	Geometry(w WindowID) (Rect, error)

	GrabKey(mods uint16, key Keycode)
	GrabButton(mods uint16, button Button)
	GrabPointer() error
	UngrabPointer()
	// IgnoredMods is the union of lock modifiers (CapsLock, NumLock,
	// ScrollLock) that must not affect binding lookup.
	IgnoredMods() uint16

	Keycodes(name string) []Keycode
	KeycodesForKeysym(sym uint32) []Keycode

	// SetDesktops publishes the workspace count and the current workspace.
	SetDesktops(count, current int)
}

package platform

// Event is one display-server notification. The concrete types below are the
// only implementations.
type Event interface {
	Kind() string
}

// KeyPress is a grabbed key going down.
type KeyPress struct {
	Keycode Keycode
	State   uint16
}

// ButtonPress is a grabbed pointer button going down. Child is the top-level
// window under the pointer, or 0 over the root.
type ButtonPress struct {
	Button Button
	State  uint16
	Child  WindowID
	RootX  int
	RootY  int
}

// ButtonRelease ends a pointer grab.
type ButtonRelease struct {
	Button Button
	RootX  int
	RootY  int
}

// MotionNotify reports pointer movement during a grab.
type MotionNotify struct {
	RootX int
	RootY int
}

// MapRequest asks the window manager to show a new top-level window.
type MapRequest struct {
	Window WindowID
}

// MapNotify reports a window became mapped.
type MapNotify struct {
	Window WindowID
}

// UnmapNotify reports a window became unmapped.
type UnmapNotify struct {
	Window WindowID
}

// DestroyNotify reports a window was destroyed.
type DestroyNotify struct {
	Window WindowID
}

// ConfigureRequest asks for a geometry or stacking change of Window.
type ConfigureRequest struct {
	Window  WindowID
	Changes WindowChanges
}

// EnterNotify reports the pointer entered Window.
type EnterNotify struct {
	Window WindowID
}

// Unknown carries any event kind the window manager does not route.
type Unknown struct {
	Name string
}

func (KeyPress) Kind() string         { return "KeyPress" }
func (ButtonPress) Kind() string      { return "ButtonPress" }
func (ButtonRelease) Kind() string    { return "ButtonRelease" }
func (MotionNotify) Kind() string     { return "MotionNotify" }
func (MapRequest) Kind() string       { return "MapRequest" }
func (MapNotify) Kind() string        { return "MapNotify" }
func (UnmapNotify) Kind() string      { return "UnmapNotify" }
func (DestroyNotify) Kind() string    { return "DestroyNotify" }
func (ConfigureRequest) Kind() string { return "ConfigureRequest" }
func (EnterNotify) Kind() string      { return "EnterNotify" }
func (e Unknown) Kind() string        { return e.Name }

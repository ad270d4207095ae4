// Package platformtest provides an in-memory platform.Backend that records
// every request, for tests that run without a display server.
package platformtest

import (
	"errors"
	"sync"

	"github.com/1broseidon/spiralwm/internal/platform"
)

// ErrNoMoreEvents is returned by NextEvent once the queued events are drained.
var ErrNoMoreEvents = errors.New("platformtest: no more events")

// Op names a recorded request.
type Op string

const (
	OpMap           Op = "map"
	OpUnmap         Op = "unmap"
	OpConfigure     Op = "configure"
	OpFocus         Op = "focus"
	OpEventMask     Op = "event-mask"
	OpGrabKey       Op = "grab-key"
	OpGrabButton    Op = "grab-button"
	OpGrabPointer   Op = "grab-pointer"
	OpUngrabPointer Op = "ungrab-pointer"
	OpSetDesktops   Op = "set-desktops"
	OpTakeOwnership Op = "take-ownership"
)

// Call is one recorded request.
type Call struct {
	Op      Op
	Window  platform.WindowID
	Changes platform.WindowChanges
	Mask    platform.EventMask
	Mods    uint16
	Keycode platform.Keycode
	Button  platform.Button
	Count   int
	Current int
}

// Backend is a fake display connection. Geometry requests are answered from
// the last configured geometry of each window.
type Backend struct {
	mu sync.Mutex

	Width  int
	Height int

	// OwnershipErr is returned from TakeOwnership.
	OwnershipErr error
	// GrabErr is returned from GrabPointer.
	GrabErr error
	// LockMods is returned from IgnoredMods.
	LockMods uint16
	// KeyNames maps keysym names to keycodes.
	KeyNames map[string][]platform.Keycode
	// Keysyms maps raw keysym values to keycodes.
	Keysyms map[uint32][]platform.Keycode

	events     []platform.Event
	eventsErr  error
	hold       chan struct{}
	arrived    chan struct{}
	calls      []Call
	geometries map[platform.WindowID]platform.Rect
}

var _ platform.Backend = (*Backend)(nil)

// New returns a fake backend with a width×height screen.
func New(width, height int) *Backend {
	return &Backend{
		Width:      width,
		Height:     height,
		KeyNames:   map[string][]platform.Keycode{},
		Keysyms:    map[uint32][]platform.Keycode{},
		geometries: map[platform.WindowID]platform.Rect{},
	}
}

// Queue appends events returned by NextEvent, in order.
func (b *Backend) Queue(events ...platform.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, events...)
	if b.arrived != nil {
		close(b.arrived)
		b.arrived = nil
	}
}

// FailWith makes NextEvent return err after the queued events are drained.
func (b *Backend) FailWith(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.eventsErr = err
}

// HoldWhenDrained makes NextEvent block once the queue is empty until
// events are queued or the returned release func is called.
func (b *Backend) HoldWhenDrained() (release func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hold := make(chan struct{})
	b.hold = hold
	var once sync.Once
	return func() { once.Do(func() { close(hold) }) }
}

// SetGeometry seeds the geometry reported for w.
func (b *Backend) SetGeometry(w platform.WindowID, r platform.Rect) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.geometries[w] = r
}

// GeometryOf returns the geometry the fake currently tracks for w.
func (b *Backend) GeometryOf(w platform.WindowID) (platform.Rect, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.geometries[w]
	return r, ok
}

// Calls returns a copy of every recorded request.
func (b *Backend) Calls() []Call {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Call, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallsOf returns the recorded requests with the given op.
func (b *Backend) CallsOf(op Op) []Call {
	var out []Call
	for _, c := range b.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded requests, keeping geometries.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = nil
}

func (b *Backend) record(c Call) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, c)
}

func (b *Backend) TakeOwnership() error {
	b.record(Call{Op: OpTakeOwnership})
	return b.OwnershipErr
}

func (b *Backend) ScreenSize() (int, int) {
	return b.Width, b.Height
}

func (b *Backend) NextEvent() (platform.Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for len(b.events) == 0 && b.hold != nil {
		hold := b.hold
		if b.arrived == nil {
			b.arrived = make(chan struct{})
		}
		arrived := b.arrived
		b.mu.Unlock()
		select {
		case <-hold:
		case <-arrived:
		}
		b.mu.Lock()
		if isClosed(hold) {
			b.hold = nil
		}
	}
	if len(b.events) == 0 {
		if b.eventsErr != nil {
			return nil, b.eventsErr
		}
		return nil, ErrNoMoreEvents
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func (b *Backend) Map(w platform.WindowID) {
	b.record(Call{Op: OpMap, Window: w})
}

func (b *Backend) Unmap(w platform.WindowID) {
	b.record(Call{Op: OpUnmap, Window: w})
}

func (b *Backend) Configure(w platform.WindowID, changes platform.WindowChanges) {
	b.record(Call{Op: OpConfigure, Window: w, Changes: changes})

	b.mu.Lock()
	defer b.mu.Unlock()
	r := b.geometries[w]
	if changes.Mask&platform.ConfigX != 0 {
		r.X = changes.X
	}
	if changes.Mask&platform.ConfigY != 0 {
		r.Y = changes.Y
	}
	if changes.Mask&platform.ConfigWidth != 0 {
		r.Width = changes.Width
	}
	if changes.Mask&platform.ConfigHeight != 0 {
		r.Height = changes.Height
	}
	b.geometries[w] = r
}

func (b *Backend) SetInputFocus(w platform.WindowID) {
	b.record(Call{Op: OpFocus, Window: w})
}

func (b *Backend) ChangeEventMask(w platform.WindowID, mask platform.EventMask) {
	b.record(Call{Op: OpEventMask, Window: w, Mask: mask})
}

func (b *Backend) Geometry(w platform.WindowID) (platform.Rect, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.geometries[w]
	if !ok {
		return platform.Rect{}, errors.New("platformtest: unknown window")
	}
	return r, nil
}

func (b *Backend) GrabKey(mods uint16, key platform.Keycode) {
	b.record(Call{Op: OpGrabKey, Mods: mods, Keycode: key})
}

func (b *Backend) GrabButton(mods uint16, button platform.Button) {
	b.record(Call{Op: OpGrabButton, Mods: mods, Button: button})
}

func (b *Backend) GrabPointer() error {
	b.record(Call{Op: OpGrabPointer})
	return b.GrabErr
}

func (b *Backend) UngrabPointer() {
	b.record(Call{Op: OpUngrabPointer})
}

func (b *Backend) IgnoredMods() uint16 {
	return b.LockMods
}

func (b *Backend) Keycodes(name string) []platform.Keycode {
	return b.KeyNames[name]
}

func (b *Backend) KeycodesForKeysym(sym uint32) []platform.Keycode {
	return b.Keysyms[sym]
}

func (b *Backend) SetDesktops(count, current int) {
	b.record(Call{Op: OpSetDesktops, Count: count, Current: current})
}

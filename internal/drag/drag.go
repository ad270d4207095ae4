// Package drag implements interactive pointer move and resize of a single
// window.
package drag

import (
	"time"

	"github.com/1broseidon/spiralwm/internal/platform"
)

const (
	// MoveButton drags the window; any other bound button resizes it.
	MoveButton platform.Button = 1
	// MinSize is the smallest width and height a resize can produce.
	MinSize = 300
	// Throttle is the minimum interval between two applied motion updates.
	Throttle = time.Second / 60
)

// Phase is the drag state of the window manager.
type Phase int

const (
	// PhaseIdle means no pointer grab is held.
	PhaseIdle Phase = iota
	// PhaseDragging means a session owns the pointer until release.
	PhaseDragging
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Session is one press-to-release drag. It only computes changes; applying
// them and holding the pointer grab is the caller's job.
type Session struct {
	Window platform.WindowID
	Button platform.Button
	// Origin is the window geometry when the button went down.
	Origin platform.Rect
	// StartX and StartY are the root pointer coordinates at grab.
	StartX int
	StartY int

	lastApplied time.Time
}

// Start snapshots a new session.
func Start(window platform.WindowID, button platform.Button, origin platform.Rect, rootX, rootY int) *Session {
	return &Session{
		Window: window,
		Button: button,
		Origin: origin,
		StartX: rootX,
		StartY: rootY,
	}
}

// Resizing reports whether the session changes size rather than position.
func (s *Session) Resizing() bool {
	return s.Button != MoveButton
}

// Motion computes the change for a pointer at (rootX, rootY) observed at now.
// It returns false when the update falls inside the throttle window; such
// updates are dropped, not deferred.
func (s *Session) Motion(now time.Time, rootX, rootY int) (platform.WindowChanges, bool) {
	if !s.lastApplied.IsZero() && now.Sub(s.lastApplied) <= Throttle {
		return platform.WindowChanges{}, false
	}
	s.lastApplied = now

	dx := rootX - s.StartX
	dy := rootY - s.StartY

	if !s.Resizing() {
		return platform.WindowChanges{
			Mask: platform.ConfigPosition,
			X:    s.Origin.X + dx,
			Y:    s.Origin.Y + dy,
		}, true
	}

	return platform.WindowChanges{
		Mask:   platform.ConfigSize,
		Width:  max(MinSize, s.Origin.Width+dx),
		Height: max(MinSize, s.Origin.Height+dy),
	}, true
}

package drag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/1broseidon/spiralwm/internal/platform"
)

var origin = platform.Rect{X: 100, Y: 50, Width: 400, Height: 400}

func TestMotion_MoveOffsetsFromSnapshot(t *testing.T) {
	s := Start(7, 1, origin, 200, 200)

	changes, ok := s.Motion(time.Unix(100, 0), 230, 190)

	require.True(t, ok)
	require.Equal(t, platform.WindowChanges{Mask: platform.ConfigPosition, X: 130, Y: 40}, changes)
	require.False(t, s.Resizing())
}

func TestMotion_ResizeFloor(t *testing.T) {
	s := Start(7, 3, origin, 200, 200)
	now := time.Unix(100, 0)

	changes, ok := s.Motion(now, 50, 120)
	require.True(t, ok)
	require.Equal(t, platform.ConfigSize, changes.Mask)
	require.Equal(t, MinSize, changes.Width)
	require.Equal(t, 320, changes.Height)

	changes, ok = s.Motion(now.Add(time.Second), -5000, -5000)
	require.True(t, ok)
	require.Equal(t, MinSize, changes.Width)
	require.Equal(t, MinSize, changes.Height)

	changes, ok = s.Motion(now.Add(2*time.Second), 300, 250)
	require.True(t, ok)
	require.Equal(t, 500, changes.Width)
	require.Equal(t, 450, changes.Height)
}

func TestMotion_AnyOtherButtonResizes(t *testing.T) {
	s := Start(7, 2, origin, 0, 0)
	require.True(t, s.Resizing())
}

func TestMotion_Throttle(t *testing.T) {
	s := Start(7, 1, origin, 0, 0)
	start := time.Unix(100, 0)

	_, ok := s.Motion(start, 1, 1)
	require.True(t, ok)

	_, ok = s.Motion(start.Add(5*time.Millisecond), 2, 2)
	require.False(t, ok)

	_, ok = s.Motion(start.Add(Throttle), 3, 3)
	require.False(t, ok, "updates exactly one interval apart are dropped")

	changes, ok := s.Motion(start.Add(Throttle+time.Millisecond), 4, 4)
	require.True(t, ok)
	require.Equal(t, 104, changes.X)
	require.Equal(t, 54, changes.Y)
}

func TestMotion_DroppedUpdatesDoNotResetWindow(t *testing.T) {
	s := Start(7, 1, origin, 0, 0)
	start := time.Unix(100, 0)

	applied := 0
	for i := 0; i < 100; i++ {
		if _, ok := s.Motion(start.Add(time.Duration(i)*time.Millisecond), i, i); ok {
			applied++
		}
	}

	// 100ms of motion at 1ms spacing: updates at 0, 17, 34, 51, 68, 85.
	require.Equal(t, 6, applied)
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", PhaseIdle.String())
	require.Equal(t, "dragging", PhaseDragging.String())
	require.Equal(t, "unknown", Phase(9).String())
}

package client

import (
	"testing"

	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/platform/platformtest"
	"github.com/stretchr/testify/require"
)

func TestFocusSetsInputFocusThenRaises(t *testing.T) {
	fake := platformtest.New(800, 600)
	c := New(fake, 7)

	c.Focus()

	calls := fake.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, platformtest.OpFocus, calls[0].Op)
	require.Equal(t, platform.WindowID(7), calls[0].Window)
	require.Equal(t, platformtest.OpConfigure, calls[1].Op)
	require.Equal(t, platform.ConfigStackMode, calls[1].Changes.Mask)
	require.Equal(t, platform.StackAbove, calls[1].Changes.StackMode)
}

func TestConfigureWithoutFieldsUsesDefaultGeometry(t *testing.T) {
	fake := platformtest.New(800, 600)
	c := New(fake, 3)

	c.Configure(platform.WindowChanges{})

	got, ok := fake.GeometryOf(3)
	require.True(t, ok)
	require.Equal(t, DefaultGeometry, got)
}

func TestConfigurePartialLeavesOtherFields(t *testing.T) {
	fake := platformtest.New(800, 600)
	fake.SetGeometry(3, platform.Rect{X: 10, Y: 20, Width: 500, Height: 400})
	c := New(fake, 3)

	c.Configure(platform.WindowChanges{Mask: platform.ConfigPosition, X: 50, Y: 60})

	got, _ := fake.GeometryOf(3)
	require.Equal(t, platform.Rect{X: 50, Y: 60, Width: 500, Height: 400}, got)
}

func TestMapUnmapAreForwarded(t *testing.T) {
	fake := platformtest.New(800, 600)
	c := New(fake, 9)

	c.Map()
	c.Unmap()
	c.Map()

	require.Len(t, fake.CallsOf(platformtest.OpMap), 2)
	require.Len(t, fake.CallsOf(platformtest.OpUnmap), 1)
}

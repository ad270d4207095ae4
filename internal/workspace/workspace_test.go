package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/platform/platformtest"
	"github.com/1broseidon/spiralwm/internal/tiling"
)

func newTestWorkspace() (*Workspace, *platformtest.Backend) {
	backend := platformtest.New(800, 600)
	return New(backend, 800, 600, nil, nil), backend
}

func TestManage_SingleWindowFillsScreen(t *testing.T) {
	ws, backend := newTestWorkspace()

	ws.Manage(10)

	require.Equal(t, []platform.WindowID{10}, ws.Clients())
	geom, ok := backend.GeometryOf(10)
	require.True(t, ok)
	require.Equal(t, platform.Rect{X: 0, Y: 0, Width: 800, Height: 600}, geom)

	require.Len(t, backend.CallsOf(platformtest.OpMap), 1)
	masks := backend.CallsOf(platformtest.OpEventMask)
	require.Len(t, masks, 1)
	require.Equal(t, platform.EventMaskEnterWindow|platform.EventMaskLeaveWindow, masks[0].Mask)
}

func TestManage_TwoWindowsFollowSpiral(t *testing.T) {
	ws, backend := newTestWorkspace()

	ws.Manage(1)
	ws.Manage(2)

	g1, _ := backend.GeometryOf(1)
	g2, _ := backend.GeometryOf(2)
	require.Equal(t, platform.Rect{X: 0, Y: 30, Width: 400, Height: 600}, g1)
	require.Equal(t, platform.Rect{X: 400, Y: 30, Width: 400, Height: 600}, g2)

	focused, ok := ws.Focused()
	require.True(t, ok)
	require.Equal(t, platform.WindowID(2), focused)
}

func TestManage_Idempotent(t *testing.T) {
	ws, backend := newTestWorkspace()

	ws.Manage(1)
	backend.Reset()
	ws.Manage(1)

	require.Equal(t, 1, ws.Len())
	require.Empty(t, backend.Calls())
}

func TestManageUnmanage_RoundTrip(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)
	before, _ := backend.GeometryOf(1)

	ws.Manage(3)
	ws.Unmanage(3)

	require.Equal(t, []platform.WindowID{1, 2}, ws.Clients())
	after, _ := backend.GeometryOf(1)
	require.Equal(t, before, after)
	g2, _ := backend.GeometryOf(2)
	require.Equal(t, platform.Rect{X: 400, Y: 30, Width: 400, Height: 600}, g2)
}

func TestUnmanage_PreservesOrder(t *testing.T) {
	ws, _ := newTestWorkspace()
	for _, id := range []platform.WindowID{1, 2, 3, 4} {
		ws.Manage(id)
	}

	ws.Unmanage(2)

	require.Equal(t, []platform.WindowID{1, 3, 4}, ws.Clients())
}

func TestUnmanage_UnknownIsNoop(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	backend.Reset()

	ws.Unmanage(99)

	require.Equal(t, 1, ws.Len())
	require.Empty(t, backend.Calls())
}

func TestFocusIndexStaysValid(t *testing.T) {
	ws, _ := newTestWorkspace()
	for _, id := range []platform.WindowID{1, 2, 3} {
		ws.Manage(id)
	}

	ws.Focus(2)
	ws.Unmanage(1)
	focused, ok := ws.Focused()
	require.True(t, ok)
	require.Equal(t, platform.WindowID(2), focused)

	ws.Unmanage(3)
	focused, _ = ws.Focused()
	require.Equal(t, platform.WindowID(2), focused)

	ws.Unmanage(2)
	_, ok = ws.Focused()
	require.False(t, ok)

	ws.Manage(7)
	focused, _ = ws.Focused()
	require.Equal(t, platform.WindowID(7), focused)
}

func TestUnmanage_FocusedLastClampsToEnd(t *testing.T) {
	ws, _ := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)

	ws.Unmanage(2)

	focused, ok := ws.Focused()
	require.True(t, ok)
	require.Equal(t, platform.WindowID(1), focused)
}

func TestFocus_SetsInputFocusAndRaises(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)
	backend.Reset()

	ws.Focus(1)

	calls := backend.Calls()
	require.Len(t, calls, 2)
	require.Equal(t, platformtest.OpFocus, calls[0].Op)
	require.Equal(t, platform.WindowID(1), calls[0].Window)
	require.Equal(t, platformtest.OpConfigure, calls[1].Op)
	require.Equal(t, platform.ConfigStackMode, calls[1].Changes.Mask)

	backend.Reset()
	ws.Focus(42)
	require.Empty(t, backend.Calls())
}

func TestMaximizeFocused(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)

	ws.MaximizeFocused()

	g2, _ := backend.GeometryOf(2)
	require.Equal(t, platform.Rect{X: 0, Y: 0, Width: 800, Height: 600}, g2)
	g1, _ := backend.GeometryOf(1)
	require.Equal(t, platform.Rect{X: 0, Y: 30, Width: 400, Height: 600}, g1)

	last := backend.Calls()[len(backend.Calls())-1]
	require.Equal(t, platform.ConfigStackMode, last.Changes.Mask)
	require.Equal(t, platform.StackAbove, last.Changes.StackMode)
}

func TestMaximizeFocused_FirstClient(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)
	before, _ := backend.GeometryOf(2)

	ws.Focus(1)
	focused, ok := ws.Focused()
	require.True(t, ok)
	require.Equal(t, platform.WindowID(1), focused)

	ws.MaximizeFocused()

	g1, _ := backend.GeometryOf(1)
	require.Equal(t, platform.Rect{X: 0, Y: 0, Width: 800, Height: 600}, g1)
	g2, _ := backend.GeometryOf(2)
	require.Equal(t, before, g2)
	require.Equal(t, []platform.WindowID{1, 2}, ws.Clients())
}

func TestMaximizeFocused_EmptyIsNoop(t *testing.T) {
	ws, backend := newTestWorkspace()

	ws.MaximizeFocused()

	require.Empty(t, backend.Calls())
}

func TestConfigure_SupportedCombinations(t *testing.T) {
	tests := []struct {
		name string
		mask platform.ConfigMask
	}{
		{"geometry", platform.ConfigGeometry},
		{"size", platform.ConfigSize},
		{"position", platform.ConfigPosition},
		{"stacking", platform.ConfigStackMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, backend := newTestWorkspace()
			changes := platform.WindowChanges{Mask: tt.mask, X: 5, Y: 6, Width: 70, Height: 80}

			ws.Configure(platform.ConfigureRequest{Window: 3, Changes: changes})

			calls := backend.CallsOf(platformtest.OpConfigure)
			require.Len(t, calls, 1)
			require.Equal(t, platform.WindowID(3), calls[0].Window)
			require.Equal(t, changes, calls[0].Changes)
		})
	}
}

func TestConfigure_UnsupportedCombinationsIgnored(t *testing.T) {
	masks := []platform.ConfigMask{
		platform.ConfigX,
		platform.ConfigWidth,
		platform.ConfigGeometry | platform.ConfigBorderWidth,
		platform.ConfigStackMode | platform.ConfigSibling,
		platform.ConfigPosition | platform.ConfigStackMode,
	}
	for _, mask := range masks {
		ws, backend := newTestWorkspace()

		ws.Configure(platform.ConfigureRequest{
			Window:  3,
			Changes: platform.WindowChanges{Mask: mask, Width: 10, Height: 10},
		})

		require.Empty(t, backend.Calls(), "mask %#x", uint16(mask))
	}
}

func TestHideShow(t *testing.T) {
	ws, backend := newTestWorkspace()
	ws.Manage(1)
	ws.Manage(2)
	backend.Reset()

	ws.Hide()
	unmaps := backend.CallsOf(platformtest.OpUnmap)
	require.Len(t, unmaps, 2)
	require.Equal(t, platform.WindowID(1), unmaps[0].Window)
	require.Equal(t, platform.WindowID(2), unmaps[1].Window)

	ws.Show()
	maps := backend.CallsOf(platformtest.OpMap)
	require.Len(t, maps, 2)
	require.Equal(t, platform.WindowID(1), maps[0].Window)
	require.Equal(t, platform.WindowID(2), maps[1].Window)
	require.Equal(t, 2, ws.Len())
}

func TestGridLayout(t *testing.T) {
	backend := platformtest.New(210, 100)
	ws := New(backend, 210, 100, tiling.Grid{Width: 210, Height: 100, GapSize: 10}, nil)

	ws.Manage(1)
	ws.Manage(2)

	g2, _ := backend.GeometryOf(2)
	require.Equal(t, platform.Rect{X: 110, Y: 10, Width: 90, Height: 80}, g2)
}

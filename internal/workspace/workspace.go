// Package workspace tracks an ordered set of managed windows sharing one
// screen-sized tiling area.
package workspace

import (
	"log/slog"
	"slices"

	"github.com/1broseidon/spiralwm/internal/client"
	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/tiling"
)

// Workspace is a group of clients tiled together. Insertion order is tiling
// order. The focus index is valid whenever the workspace is non-empty.
type Workspace struct {
	backend platform.Backend
	layout  tiling.Layout
	logger  *slog.Logger

	width   int
	height  int
	clients []*client.Client
	focused int
}

// New creates an empty workspace covering width×height.
func New(backend platform.Backend, width, height int, layout tiling.Layout, logger *slog.Logger) *Workspace {
	if layout == nil {
		layout = tiling.Spiral{Width: width, Height: height}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Workspace{
		backend: backend,
		layout:  layout,
		logger:  logger,
		width:   width,
		height:  height,
	}
}

// Len returns the number of managed clients.
func (w *Workspace) Len() int {
	return len(w.clients)
}

// Has reports whether id is managed here.
func (w *Workspace) Has(id platform.WindowID) bool {
	return w.indexOf(id) >= 0
}

// Clients returns the managed window handles in tiling order.
func (w *Workspace) Clients() []platform.WindowID {
	ids := make([]platform.WindowID, len(w.clients))
	for i, c := range w.clients {
		ids[i] = c.ID()
	}
	return ids
}

// Focused returns the focused window, or false when empty.
func (w *Workspace) Focused() (platform.WindowID, bool) {
	if len(w.clients) == 0 {
		return 0, false
	}
	return w.clients[w.focused].ID(), true
}

// Manage adopts id: it is appended, the workspace is re-tiled, and the new
// window is shown and subscribed to pointer crossing events. Managing a
// window that is already present does nothing.
func (w *Workspace) Manage(id platform.WindowID) {
	if w.Has(id) {
		return
	}

	c := client.New(w.backend, id)
	w.clients = append(w.clients, c)
	w.focused = len(w.clients) - 1
	w.retile()

	c.Map()
	c.ChangeEventMask(platform.EventMaskEnterWindow | platform.EventMaskLeaveWindow)

	w.logger.Debug("managed window", "window", id, "clients", len(w.clients))
}

// Unmanage forgets id and re-tiles the rest. Unknown windows are ignored.
func (w *Workspace) Unmanage(id platform.WindowID) {
	idx := w.indexOf(id)
	if idx < 0 {
		return
	}

	w.clients = slices.Delete(w.clients, idx, idx+1)
	switch {
	case len(w.clients) == 0:
		w.focused = 0
	case idx < w.focused:
		w.focused--
	case w.focused >= len(w.clients):
		w.focused = len(w.clients) - 1
	}
	w.retile()

	w.logger.Debug("unmanaged window", "window", id, "clients", len(w.clients))
}

// Focus gives id input focus if it is managed here.
func (w *Workspace) Focus(id platform.WindowID) {
	idx := w.indexOf(id)
	if idx < 0 {
		return
	}
	w.focused = idx
	w.clients[idx].Focus()
}

// Configure forwards a client's own geometry or stacking request. Only a
// full geometry, a size, a position, or a stacking change is honored; any
// other field combination is dropped. Windows that are not managed here are
// configured too, since they have not been tiled yet.
func (w *Workspace) Configure(req platform.ConfigureRequest) {
	changes := req.Changes
	switch changes.Mask {
	case platform.ConfigGeometry, platform.ConfigSize, platform.ConfigPosition, platform.ConfigStackMode:
	default:
		w.logger.Debug("ignoring configure request", "window", req.Window, "mask", uint16(changes.Mask))
		return
	}

	c := client.New(w.backend, req.Window)
	if idx := w.indexOf(req.Window); idx >= 0 {
		c = w.clients[idx]
	}
	c.Configure(changes)
}

// MaximizeFocused stretches the focused client over the whole workspace and
// raises it. The next re-tile puts it back in its slot.
func (w *Workspace) MaximizeFocused() {
	if len(w.clients) == 0 {
		return
	}
	c := w.clients[w.focused]
	c.MoveResize(platform.Rect{Width: w.width, Height: w.height})
	c.Raise()
}

// Hide unmaps every client.
func (w *Workspace) Hide() {
	for _, c := range w.clients {
		c.Unmap()
	}
}

// Show maps every client.
func (w *Workspace) Show() {
	for _, c := range w.clients {
		c.Map()
	}
}

func (w *Workspace) retile() {
	positions := w.layout.Arrange(len(w.clients))
	for i, c := range w.clients {
		c.MoveResize(positions[i])
	}
}

func (w *Workspace) indexOf(id platform.WindowID) int {
	return slices.IndexFunc(w.clients, func(c *client.Client) bool {
		return c.ID() == id
	})
}

// Package client wraps a single managed top-level window.
package client

import "github.com/1broseidon/spiralwm/internal/platform"

// DefaultGeometry is applied when Configure is called with no fields set.
var DefaultGeometry = platform.Rect{X: 0, Y: 0, Width: 300, Height: 300}

// Client is one managed window. It holds no geometry of its own; every
// operation is a request to the backend.
type Client struct {
	id      platform.WindowID
	backend platform.Backend
}

// New wraps id.
func New(backend platform.Backend, id platform.WindowID) *Client {
	return &Client{id: id, backend: backend}
}

// ID returns the wrapped window handle.
func (c *Client) ID() platform.WindowID {
	return c.id
}

// Map makes the window visible.
func (c *Client) Map() {
	c.backend.Map(c.id)
}

// Unmap hides the window.
func (c *Client) Unmap() {
	c.backend.Unmap(c.id)
}

// ChangeEventMask subscribes the window to mask.
func (c *Client) ChangeEventMask(mask platform.EventMask) {
	c.backend.ChangeEventMask(c.id, mask)
}

// Focus gives the window input focus and raises it.
func (c *Client) Focus() {
	c.backend.SetInputFocus(c.id)
	c.Raise()
}

// Raise restacks the window above its siblings.
func (c *Client) Raise() {
	c.backend.Configure(c.id, platform.WindowChanges{
		Mask:      platform.ConfigStackMode,
		StackMode: platform.StackAbove,
	})
}

// Configure applies the fields selected by changes.Mask. An empty mask
// places the window at DefaultGeometry.
func (c *Client) Configure(changes platform.WindowChanges) {
	if changes.Mask == 0 {
		changes = platform.GeometryChanges(DefaultGeometry)
	}
	c.backend.Configure(c.id, changes)
}

// MoveResize places the window at r.
func (c *Client) MoveResize(r platform.Rect) {
	c.Configure(platform.GeometryChanges(r))
}

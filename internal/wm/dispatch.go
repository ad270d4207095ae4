package wm

import (
	"github.com/1broseidon/spiralwm/internal/client"
	"github.com/1broseidon/spiralwm/internal/drag"
	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/workspace"
)

// Dispatch routes one event to its handler.
func (c *Core) Dispatch(ev platform.Event) {
	switch e := ev.(type) {
	case platform.KeyPress:
		c.keyPress(e)
	case platform.ButtonPress:
		c.buttonPress(e)
	case platform.ButtonRelease:
		c.buttonRelease(e)
	case platform.MotionNotify:
		c.motionNotify(e)
	case platform.MapRequest:
		ws := c.current()
		ws.Manage(e.Window)
		ws.Focus(e.Window)
	case platform.MapNotify:
	case platform.UnmapNotify:
		c.current().Unmanage(e.Window)
	case platform.DestroyNotify:
	case platform.ConfigureRequest:
		c.current().Configure(e)
	case platform.EnterNotify:
		c.current().Focus(e.Window)
	default:
		c.logger.Debug("unhandled event", "kind", kindOf(ev))
	}
}

func kindOf(ev platform.Event) string {
	if ev == nil {
		return "<nil>"
	}
	return ev.Kind()
}

func (c *Core) current() *workspace.Workspace {
	return c.workspaces[c.active]
}

func (c *Core) keyPress(e platform.KeyPress) {
	fn, ok := c.table.Key(e.State, e.Keycode)
	if !ok {
		c.logger.Debug("unbound key", "keycode", e.Keycode, "state", e.State)
		return
	}
	fn()
}

func (c *Core) buttonPress(e platform.ButtonPress) {
	if c.drag != nil {
		return
	}
	if e.Child == 0 || !c.table.Button(e.State, e.Button) {
		return
	}

	origin, err := c.backend.Geometry(e.Child)
	if err != nil {
		c.logger.Warn("cannot drag window without geometry", "window", e.Child, "error", err)
		return
	}
	if err := c.backend.GrabPointer(); err != nil {
		c.logger.Warn("failed to grab pointer", "error", err)
		return
	}

	c.drag = drag.Start(e.Child, e.Button, origin, e.RootX, e.RootY)
	c.logger.Debug("drag started", "window", e.Child, "button", e.Button, "resize", c.drag.Resizing())
}

func (c *Core) motionNotify(e platform.MotionNotify) {
	if c.drag == nil {
		return
	}
	changes, ok := c.drag.Motion(c.cfg.Now(), e.RootX, e.RootY)
	if !ok {
		return
	}
	client.New(c.backend, c.drag.Window).Configure(changes)
}

func (c *Core) buttonRelease(platform.ButtonRelease) {
	if c.drag == nil {
		return
	}
	c.backend.UngrabPointer()
	c.logger.Debug("drag finished", "window", c.drag.Window)
	c.drag = nil
}

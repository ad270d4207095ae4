package wm

import (
	"fmt"
	"time"

	"github.com/1broseidon/spiralwm/internal/drag"
)

// MoveWorkspace hides the active workspace and shows workspace i. Switching
// to the workspace already shown does nothing.
func (c *Core) MoveWorkspace(i int) error {
	if i < 0 || i >= len(c.workspaces) {
		c.logger.Warn("ignoring workspace switch", "index", i, "workspaces", len(c.workspaces))
		return fmt.Errorf("%w: %d", ErrWorkspaceIndex, i)
	}
	if i == c.active {
		return nil
	}

	c.current().Hide()
	c.active = i
	c.current().Show()
	c.backend.SetDesktops(len(c.workspaces), c.active)

	c.logger.Info("switched workspace", "index", i)
	return nil
}

// MaximizeFocused maximizes the focused window of the active workspace.
func (c *Core) MaximizeFocused() {
	c.current().MaximizeFocused()
}

// WorkspaceStatus describes one workspace.
type WorkspaceStatus struct {
	Index   int      `json:"index"`
	Active  bool     `json:"active"`
	Clients []uint32 `json:"clients"`
	Focused uint32   `json:"focused,omitempty"`
}

// Status is a snapshot of the core state.
type Status struct {
	ActiveWorkspace int               `json:"active_workspace"`
	Workspaces      []WorkspaceStatus `json:"workspaces"`
	Phase           string            `json:"phase"`
	Uptime          time.Duration     `json:"uptime"`
}

// Status returns a snapshot of the core state.
func (c *Core) Status() Status {
	st := Status{
		ActiveWorkspace: c.active,
		Phase:           c.Phase().String(),
	}
	if !c.startedAt.IsZero() {
		st.Uptime = c.cfg.Now().Sub(c.startedAt).Truncate(time.Second)
	}

	for i, ws := range c.workspaces {
		ids := ws.Clients()
		entry := WorkspaceStatus{
			Index:   i,
			Active:  i == c.active,
			Clients: make([]uint32, len(ids)),
		}
		for j, id := range ids {
			entry.Clients[j] = uint32(id)
		}
		if focused, ok := ws.Focused(); ok {
			entry.Focused = uint32(focused)
		}
		st.Workspaces = append(st.Workspaces, entry)
	}
	return st
}

// Phase reports whether a drag is in progress.
func (c *Core) Phase() drag.Phase {
	if c.drag != nil {
		return drag.PhaseDragging
	}
	return drag.PhaseIdle
}

// ActiveWorkspace returns the index of the visible workspace.
func (c *Core) ActiveWorkspace() int {
	return c.active
}

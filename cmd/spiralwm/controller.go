package main

import (
	"context"

	"github.com/1broseidon/spiralwm/internal/drag"
	"github.com/1broseidon/spiralwm/internal/ipc"
	"github.com/1broseidon/spiralwm/internal/wm"
)

// coreController serves IPC requests by running them on the event loop.
type coreController struct {
	core *wm.Core
}

var _ ipc.Controller = coreController{}

func (c coreController) Status(ctx context.Context) (ipc.StatusData, error) {
	var st wm.Status
	if err := c.core.Do(ctx, func() { st = c.core.Status() }); err != nil {
		return ipc.StatusData{}, err
	}
	return statusData(st), nil
}

func (c coreController) SwitchWorkspace(ctx context.Context, index int) error {
	var moveErr error
	if err := c.core.Do(ctx, func() { moveErr = c.core.MoveWorkspace(index) }); err != nil {
		return err
	}
	return moveErr
}

func (c coreController) MaximizeFocused(ctx context.Context) error {
	return c.core.Do(ctx, c.core.MaximizeFocused)
}

func statusData(st wm.Status) ipc.StatusData {
	data := ipc.StatusData{
		ActiveWorkspace: st.ActiveWorkspace,
		Dragging:        st.Phase == drag.PhaseDragging.String(),
		UptimeSeconds:   int64(st.Uptime.Seconds()),
		Workspaces:      make([]ipc.WorkspaceInfo, 0, len(st.Workspaces)),
	}
	for _, ws := range st.Workspaces {
		data.Workspaces = append(data.Workspaces, ipc.WorkspaceInfo{
			Index:   ws.Index,
			Active:  ws.Active,
			Clients: ws.Clients,
			Focused: ws.Focused,
		})
	}
	return data
}

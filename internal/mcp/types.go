package mcp

// GetStatusInput is the input for the get_status tool.
type GetStatusInput struct{}

// WorkspaceOutput describes one workspace.
type WorkspaceOutput struct {
	Index   int      `json:"index"`
	Active  bool     `json:"active"`
	Windows []uint32 `json:"windows,omitempty" jsonschema:"Managed window ids in tiling order"`
	Focused uint32   `json:"focused,omitempty" jsonschema:"Focused window id, absent when the workspace is empty"`
}

// GetStatusOutput is the output for the get_status tool.
type GetStatusOutput struct {
	ActiveWorkspace int               `json:"active_workspace"`
	Workspaces      []WorkspaceOutput `json:"workspaces,omitempty"`
	Dragging        bool              `json:"dragging" jsonschema:"True while a window is being moved or resized with the pointer"`
	UptimeSeconds   int64             `json:"uptime_seconds"`
}

// SwitchWorkspaceInput is the input for the switch_workspace tool.
type SwitchWorkspaceInput struct {
	Index int `json:"index" jsonschema:"Zero-based index of the workspace to show"`
}

// SwitchWorkspaceOutput is the output for the switch_workspace tool.
type SwitchWorkspaceOutput struct {
	ActiveWorkspace int `json:"active_workspace"`
}

// MaximizeFocusedInput is the input for the maximize_focused tool.
type MaximizeFocusedInput struct{}

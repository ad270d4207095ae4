package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.ctrl.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, fmt.Errorf("failed to get status: %w", err)
	}

	out := GetStatusOutput{
		ActiveWorkspace: status.ActiveWorkspace,
		Dragging:        status.Dragging,
		UptimeSeconds:   status.UptimeSeconds,
	}
	for _, ws := range status.Workspaces {
		out.Workspaces = append(out.Workspaces, WorkspaceOutput{
			Index:   ws.Index,
			Active:  ws.Active,
			Windows: ws.Clients,
			Focused: ws.Focused,
		})
	}
	return nil, out, nil
}

func (s *Server) handleSwitchWorkspace(_ context.Context, _ *mcpsdk.CallToolRequest, args SwitchWorkspaceInput) (*mcpsdk.CallToolResult, SwitchWorkspaceOutput, error) {
	if args.Index < 0 {
		return nil, SwitchWorkspaceOutput{}, fmt.Errorf("index must be >= 0, got %d", args.Index)
	}
	if err := s.ctrl.SwitchWorkspace(args.Index); err != nil {
		return nil, SwitchWorkspaceOutput{}, fmt.Errorf("failed to switch to workspace %d: %w", args.Index, err)
	}
	s.logger.Debug("mcp switched workspace", "index", args.Index)
	return nil, SwitchWorkspaceOutput{ActiveWorkspace: args.Index}, nil
}

func (s *Server) handleMaximizeFocused(_ context.Context, _ *mcpsdk.CallToolRequest, _ MaximizeFocusedInput) (*mcpsdk.CallToolResult, any, error) {
	if err := s.ctrl.MaximizeFocused(); err != nil {
		return nil, nil, fmt.Errorf("failed to maximize: %w", err)
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: "Maximized the focused window"},
		},
	}, nil, nil
}

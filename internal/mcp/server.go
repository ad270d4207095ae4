// Package mcp exposes the running window manager to MCP clients over stdio.
package mcp

import (
	"context"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/spiralwm/internal/ipc"
)

const (
	ServerName    = "spiralwm"
	ServerVersion = "0.1.0"
)

// Controller reaches the window manager, normally through an ipc.Client.
type Controller interface {
	GetStatus() (*ipc.StatusData, error)
	SwitchWorkspace(index int) error
	MaximizeFocused() error
}

var _ Controller = (*ipc.Client)(nil)

// Server is the MCP server for spiralwm.
type Server struct {
	mcpServer *mcpsdk.Server
	ctrl      Controller
	logger    *slog.Logger
}

// NewServer creates an MCP server whose tools call ctrl.
func NewServer(ctrl Controller, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		ctrl:   ctrl,
		logger: logger,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report the active workspace, the windows managed on every workspace in tiling order, the focused window of each, and whether a pointer drag is in progress.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "switch_workspace",
		Description: "Hide the windows of the active workspace and show the workspace with the given zero-based index. Switching to the workspace already shown does nothing.",
	}, s.handleSwitchWorkspace)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "maximize_focused",
		Description: "Resize the focused window of the active workspace to cover the whole screen and raise it. The next retile restores the spiral layout.",
	}, s.handleMaximizeFocused)
}

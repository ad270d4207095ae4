package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"

	"github.com/1broseidon/spiralwm/internal/mcp"
	"github.com/1broseidon/spiralwm/internal/supervise"
)

// NewMCPCmd creates the mcp command group with explicit dependencies.
func NewMCPCmd(ctrl mcp.Controller) *cobra.Command {
	if ctrl == nil {
		panic("NewMCPCmd: controller dependency cannot be nil")
	}

	mcpCmd := &cobra.Command{
		Use:   "mcp",
		Short: "Model Context Protocol integration",
		Args:  cobra.NoArgs,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the MCP server on stdio. The server forwards tool calls to the
running window manager over its control socket.

Example (Claude Code):
  claude mcp add spiralwm -- spiralwm mcp serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := InitLogger(slog.LevelWarn)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serveOnce(ctx, logger, "mcp.Server", mcp.NewServer(ctrl, logger).Run)
		},
	}

	mcpCmd.AddCommand(serveCmd)
	return mcpCmd
}

var errServeAborted = errors.New("server aborted")

// serveOnce runs fn under a supervisor so a panic is logged with its stack,
// but never restarts it: a stdio session cannot be resumed.
func serveOnce(ctx context.Context, logger *slog.Logger, name string, fn func(context.Context) error) error {
	var (
		once   sync.Once
		runErr error
	)
	super := supervise.New("spiralwm-"+name, logger)
	supervise.Add(super, supervise.NewFunc(name, func(ctx context.Context) error {
		once.Do(func() {
			runErr = errServeAborted
			runErr = fn(ctx)
		})
		return suture.ErrTerminateSupervisorTree
	}))

	err := super.Serve(ctx)
	switch {
	case ctx.Err() != nil:
		return nil
	case runErr != nil:
		return runErr
	case err != nil && !errors.Is(err, suture.ErrTerminateSupervisorTree):
		return err
	}
	return nil
}

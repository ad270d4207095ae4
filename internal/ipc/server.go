package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"
	"time"

	"github.com/1broseidon/spiralwm/internal/runtimepath"
)

// Controller is the window manager as seen by IPC requests.
type Controller interface {
	Status(ctx context.Context) (StatusData, error)
	SwitchWorkspace(ctx context.Context, index int) error
	MaximizeFocused(ctx context.Context) error
}

// requestTimeout bounds the wait for the window manager to run a command.
const requestTimeout = 5 * time.Second

// Server handles IPC requests from clients
type Server struct {
	socketPath string
	ctrl       Controller
	logger     *slog.Logger
}

// NewServer creates a new IPC server on the default socket path
func NewServer(ctrl Controller, logger *slog.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve IPC socket path: %w", err)
	}
	return NewServerAt(socketPath, ctrl, logger), nil
}

// NewServerAt creates a new IPC server listening on socketPath
func NewServerAt(socketPath string, ctrl Controller, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		socketPath: socketPath,
		ctrl:       ctrl,
		logger:     logger.With("service", "ipc"),
	}
}

func (s *Server) String() string {
	return "ipc.Server"
}

// SocketPath returns the path the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Serve listens for IPC connections until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	// Remove a stale socket left by a previous run.
	os.Remove(s.socketPath)

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create IPC socket: %w", err)
	}
	defer os.Remove(s.socketPath)

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		listener.Close()
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.logger.Info("IPC server listening", "socket", s.socketPath)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			s.logger.Warn("IPC accept error", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleConnection(ctx, conn)
		}()
	}
}

// handleConnection handles a single IPC connection
func (s *Server) handleConnection(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(requestTimeout))

	reader := bufio.NewReader(conn)

	// Read the request (expect JSON on a single line)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.logger.Debug("IPC read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.writeResponse(conn, NewErrorResponse(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	s.writeResponse(conn, s.handleCommand(ctx, req))
}

// handleCommand processes an IPC command and returns a response
func (s *Server) handleCommand(ctx context.Context, req *Request) *Response {
	s.logger.Debug("IPC request", "command", req.Command)

	switch req.Command {
	case CommandGetStatus:
		return s.handleGetStatus(ctx)
	case CommandSwitchWorkspace:
		return s.handleSwitchWorkspace(ctx, req.Payload)
	case CommandMaximizeFocused:
		return s.handleMaximizeFocused(ctx)
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}
}

func (s *Server) handleGetStatus(ctx context.Context) *Response {
	status, err := s.ctrl.Status(ctx)
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to get status: %v", err))
	}

	resp, err := NewOKResponse(status)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) handleSwitchWorkspace(ctx context.Context, payload json.RawMessage) *Response {
	var req SwitchWorkspacePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("Invalid switch payload: %v", err))
	}

	if err := s.ctrl.SwitchWorkspace(ctx, req.Index); err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to switch workspace: %v", err))
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleMaximizeFocused(ctx context.Context) *Response {
	if err := s.ctrl.MaximizeFocused(ctx); err != nil {
		return NewErrorResponse(fmt.Sprintf("Failed to maximize: %v", err))
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) writeResponse(conn net.Conn, resp *Response) {
	data, err := resp.Marshal()
	if err != nil {
		s.logger.Warn("Failed to marshal response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.logger.Debug("Failed to send response", "error", err)
	}
}

package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/1broseidon/spiralwm/internal/runtimepath"
)

// Client handles IPC communication with a running window manager
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}
	return NewClientAt(socketPath)
}

// NewClientAt creates a client for the socket at socketPath
func NewClientAt(socketPath string) *Client {
	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to window manager: %w (is spiralwm running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("window manager error: %s", resp.Error)
	}

	return &resp, nil
}

// GetStatus retrieves window manager status
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// SwitchWorkspace makes workspace index the visible one
func (c *Client) SwitchWorkspace(index int) error {
	payload, err := json.Marshal(SwitchWorkspacePayload{Index: index})
	if err != nil {
		return fmt.Errorf("failed to marshal switch payload: %w", err)
	}

	_, err = c.sendRequest(&Request{
		Command: CommandSwitchWorkspace,
		Payload: payload,
	})
	return err
}

// MaximizeFocused maximizes the focused window of the active workspace
func (c *Client) MaximizeFocused() error {
	_, err := c.sendRequest(&Request{Command: CommandMaximizeFocused})
	return err
}

// Ping checks if the window manager is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}

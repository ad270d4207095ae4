package mcp

import (
	"context"
	"errors"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/spiralwm/internal/ipc"
)

type fakeController struct {
	status    *ipc.StatusData
	err       error
	switched  []int
	maximized int
}

func (f *fakeController) GetStatus() (*ipc.StatusData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.status, nil
}

func (f *fakeController) SwitchWorkspace(index int) error {
	if f.err != nil {
		return f.err
	}
	f.switched = append(f.switched, index)
	return nil
}

func (f *fakeController) MaximizeFocused() error {
	if f.err != nil {
		return f.err
	}
	f.maximized++
	return nil
}

func TestHandleGetStatus(t *testing.T) {
	ctrl := &fakeController{status: &ipc.StatusData{
		ActiveWorkspace: 1,
		Workspaces: []ipc.WorkspaceInfo{
			{Index: 0, Clients: []uint32{}},
			{Index: 1, Active: true, Clients: []uint32{7, 9}, Focused: 9},
		},
		Dragging:      true,
		UptimeSeconds: 42,
	}}
	s := NewServer(ctrl, nil)

	_, out, err := s.handleGetStatus(context.Background(), nil, GetStatusInput{})
	require.NoError(t, err)

	assert.Equal(t, 1, out.ActiveWorkspace)
	assert.True(t, out.Dragging)
	assert.Equal(t, int64(42), out.UptimeSeconds)
	require.Len(t, out.Workspaces, 2)
	assert.Equal(t, []uint32{7, 9}, out.Workspaces[1].Windows)
	assert.Equal(t, uint32(9), out.Workspaces[1].Focused)
}

func TestHandleSwitchWorkspace(t *testing.T) {
	ctrl := &fakeController{}
	s := NewServer(ctrl, nil)

	_, out, err := s.handleSwitchWorkspace(context.Background(), nil, SwitchWorkspaceInput{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, out.ActiveWorkspace)
	assert.Equal(t, []int{1}, ctrl.switched)

	_, _, err = s.handleSwitchWorkspace(context.Background(), nil, SwitchWorkspaceInput{Index: -1})
	require.Error(t, err)
	assert.Equal(t, []int{1}, ctrl.switched)
}

func TestHandlersWrapControllerErrors(t *testing.T) {
	ctrl := &fakeController{err: errors.New("is spiralwm running?")}
	s := NewServer(ctrl, nil)

	_, _, err := s.handleGetStatus(context.Background(), nil, GetStatusInput{})
	assert.ErrorContains(t, err, "failed to get status")

	_, _, err = s.handleSwitchWorkspace(context.Background(), nil, SwitchWorkspaceInput{Index: 0})
	assert.ErrorContains(t, err, "failed to switch to workspace 0")

	_, _, err = s.handleMaximizeFocused(context.Background(), nil, MaximizeFocusedInput{})
	assert.ErrorContains(t, err, "failed to maximize")
}

func TestToolsOverSession(t *testing.T) {
	ctrl := &fakeController{}
	s := NewServer(ctrl, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverT, clientT := mcpsdk.NewInMemoryTransports()
	ss, err := s.mcpServer.Connect(ctx, serverT, nil)
	require.NoError(t, err)
	defer ss.Close()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test", Version: "0"}, nil)
	cs, err := client.Connect(ctx, clientT, nil)
	require.NoError(t, err)
	defer cs.Close()

	tools, err := cs.ListTools(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"get_status", "switch_workspace", "maximize_focused"}, names)

	res, err := cs.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "maximize_focused",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, 1, ctrl.maximized)

	res, err = cs.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "switch_workspace",
		Arguments: map[string]any{"index": -3},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Empty(t, ctrl.switched)
}

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		want    []int
	}{
		{name: "switch", args: []string{"1"}, want: []int{1}},
		{name: "zero", args: []string{"0"}, want: []int{0}},
		{name: "negative", args: []string{"--", "-1"}, wantErr: "invalid workspace index"},
		{name: "not a number", args: []string{"two"}, wantErr: "invalid workspace index"},
		{name: "missing", args: []string{}, wantErr: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeWMClient{}
			cmd := NewWorkspaceCmd(client)

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, client.switched)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, client.switched)
			assert.Contains(t, out.String(), "switched to workspace")
		})
	}
}

func TestWorkspaceCmdPropagatesClientError(t *testing.T) {
	client := &fakeWMClient{err: errors.New("workspace index out of range: 5")}
	cmd := NewWorkspaceCmd(client)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"5"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestMaximizeCmd(t *testing.T) {
	client := &fakeWMClient{}
	cmd := NewMaximizeCmd(client)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, 1, client.maximizeHits)
}

func TestCommandsPanicWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewWorkspaceCmd(nil) })
	assert.Panics(t, func() { NewMaximizeCmd(nil) })
	assert.Panics(t, func() { NewMCPCmd(nil) })
}

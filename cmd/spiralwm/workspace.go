package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

type workspaceClient interface {
	SwitchWorkspace(index int) error
}

// NewWorkspaceCmd creates the workspace command with explicit dependencies.
func NewWorkspaceCmd(client workspaceClient) *cobra.Command {
	if client == nil {
		panic("NewWorkspaceCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "workspace <index>",
		Short: "Switch the running window manager to a workspace",
		Long:  `Hide the windows of the active workspace and show workspace <index>, counting from 0.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 {
				return fmt.Errorf("invalid workspace index %q", args[0])
			}
			if err := client.SwitchWorkspace(index); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "switched to workspace %d\n", index)
			return nil
		},
	}
}

type maximizeClient interface {
	MaximizeFocused() error
}

// NewMaximizeCmd creates the maximize command with explicit dependencies.
func NewMaximizeCmd(client maximizeClient) *cobra.Command {
	if client == nil {
		panic("NewMaximizeCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "maximize",
		Short: "Maximize the focused window of the active workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return client.MaximizeFocused()
		},
	}
}

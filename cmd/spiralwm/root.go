package main

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/spiralwm/internal/ipc"
)

// NewRootCmd assembles the spiralwm command tree. Commands that talk to a
// running window manager share one IPC client.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spiralwm",
		Short: "A minimal tiling window manager for X11",
		Long: `spiralwm tiles windows in a spiral: each new window takes half of the
space left by the previous one, alternating between vertical and horizontal
splits.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	client := ipc.NewClient()

	rootCmd.AddCommand(
		NewRunCmd(),
		NewConfigCmd(),
		NewStatusCmd(client),
		NewWorkspaceCmd(client),
		NewMaximizeCmd(client),
		NewMCPCmd(client),
		NewVersionCmd(),
	)
	return rootCmd
}

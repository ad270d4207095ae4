package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/1broseidon/spiralwm/internal/ipc"
)

type statusClient interface {
	GetStatus() (*ipc.StatusData, error)
}

// NewStatusCmd creates the status command with explicit dependencies.
func NewStatusCmd(client statusClient) *cobra.Command {
	if client == nil {
		panic("NewStatusCmd: client dependency cannot be nil")
	}

	var asJSON bool

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show workspaces and windows of the running window manager",
		Long: `Show the active workspace, the windows of every workspace in tiling order
and whether a drag is in progress. Output is JSON when --json is given or
stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := client.GetStatus()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON || !isTerminal(out) {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(status)
			}
			renderStatus(out, status, true)
			return nil
		},
	}
	statusCmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return statusCmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var (
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func renderStatus(w io.Writer, status *ipc.StatusData, styled bool) {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	for _, ws := range status.Workspaces {
		title := fmt.Sprintf("workspace %d", ws.Index)
		if ws.Active {
			title = paint(activeStyle, title+" (active)")
		} else {
			title = paint(headerStyle, title)
		}
		fmt.Fprintf(w, "%s  %s\n", title, paint(dimStyle, windowCount(len(ws.Clients))))

		if len(ws.Clients) == 0 {
			continue
		}
		ids := make([]string, len(ws.Clients))
		for i, id := range ws.Clients {
			ids[i] = fmt.Sprintf("0x%x", id)
			if id == ws.Focused {
				ids[i] = paint(focusStyle, ids[i]+"*")
			}
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(ids, " "))
	}

	phase := "idle"
	if status.Dragging {
		phase = "dragging"
	}
	uptime := (time.Duration(status.UptimeSeconds) * time.Second).String()
	fmt.Fprintln(w, paint(dimStyle, fmt.Sprintf("drag: %s  uptime: %s", phase, uptime)))
}

func windowCount(n int) string {
	if n == 1 {
		return "1 window"
	}
	return fmt.Sprintf("%d windows", n)
}

// Package launcher starts external programs on behalf of key bindings and
// replaces the running process on restart.
package launcher

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
)

// execFn is swapped in tests.
var execFn = syscall.Exec

// Launcher spawns detached child processes. Children are reaped in the
// background so they never linger as zombies.
type Launcher struct {
	logger *slog.Logger
}

// New returns a launcher that logs child exit failures to logger.
func New(logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{logger: logger}
}

// Start runs command with args and returns once the process has started.
func (l *Launcher) Start(command string, args []string) error {
	cmd := exec.Command(command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %q: %w", command, err)
	}

	l.logger.Debug("launched", "command", command, "pid", cmd.Process.Pid)
	go func() {
		if err := cmd.Wait(); err != nil {
			l.logger.Debug("child exited", "command", command, "error", err)
		}
	}()
	return nil
}

// StartAll launches each argv in order, logging failures and carrying on.
func (l *Launcher) StartAll(commands [][]string) {
	for _, argv := range commands {
		if len(argv) == 0 {
			continue
		}
		if err := l.Start(argv[0], argv[1:]); err != nil {
			l.logger.Warn("autostart failed", "error", err)
		}
	}
}

// Restart replaces the current process with argv. An empty argv re-executes
// the running binary with its original arguments. It only returns on error.
func Restart(argv []string) error {
	if len(argv) == 0 {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve executable: %w", err)
		}
		argv = append([]string{exe}, os.Args[1:]...)
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("restart command %q: %w", argv[0], err)
	}
	if err := execFn(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %q: %w", path, err)
	}
	return nil
}

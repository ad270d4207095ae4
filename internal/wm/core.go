// Package wm is the window manager core: it owns the workspaces and the
// binding table and processes display events one at a time.
package wm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/1broseidon/spiralwm/internal/drag"
	"github.com/1broseidon/spiralwm/internal/hotkeys"
	"github.com/1broseidon/spiralwm/internal/launcher"
	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/tiling"
	"github.com/1broseidon/spiralwm/internal/workspace"
)

var (
	// ErrWorkspaceIndex is returned when a workspace index is out of range.
	ErrWorkspaceIndex = errors.New("workspace index out of range")
	// ErrStopped is returned by Do once the event loop has exited.
	ErrStopped = errors.New("window manager stopped")
)

// Core is the window manager. Apart from Do, its methods must be called from
// the goroutine running Run, or before Run starts.
type Core struct {
	cfg      Config
	backend  platform.Backend
	logger   *slog.Logger
	launcher Launcher

	workspaces []*workspace.Workspace
	active     int
	table      *hotkeys.Table
	drag       *drag.Session

	running   bool
	restart   bool
	startedAt time.Time

	cmds    chan func()
	stopped chan struct{}
}

// New builds the workspaces and compiles the binding table. Nothing is sent
// to the display until Init.
func New(backend platform.Backend, cfg Config) (*Core, error) {
	cfg = cfg.withDefaults()

	c := &Core{
		cfg:      cfg,
		backend:  backend,
		logger:   cfg.Logger,
		launcher: cfg.Launcher,
		cmds:     make(chan func()),
		stopped:  make(chan struct{}),
	}
	if c.launcher == nil {
		c.launcher = launcher.New(cfg.Logger)
	}

	width, height := backend.ScreenSize()
	for i := 0; i < cfg.Workspaces; i++ {
		layout, err := tiling.New(cfg.Layout, width, height, cfg.GapSize)
		if err != nil {
			return nil, err
		}
		logger := c.logger.With("workspace", i)
		c.workspaces = append(c.workspaces, workspace.New(backend, width, height, layout, logger))
	}

	table, err := hotkeys.Compile(backend, cfg.Bindings, c.methods(), c.launcher.Start, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to compile key bindings: %w", err)
	}
	for _, b := range cfg.DragButtons {
		table.AddButton(cfg.DragModifier, b)
	}
	c.table = table

	return c, nil
}

func (c *Core) methods() map[string]hotkeys.Method {
	return map[string]hotkeys.Method{
		hotkeys.MethodMaximizeFocused: {Run: func(int) error {
			c.MaximizeFocused()
			return nil
		}},
		hotkeys.MethodMoveWorkspace: {
			TakesArg: hotkeys.MethodTakesArg[hotkeys.MethodMoveWorkspace],
			Run:      c.MoveWorkspace,
		},
		hotkeys.MethodRestart: {Run: func(int) error {
			c.Restart()
			return nil
		}},
		hotkeys.MethodExit: {Run: func(int) error {
			c.Exit()
			return nil
		}},
	}
}

// Init takes ownership of the root window, grabs bindings, publishes the
// desktop layout and runs the autostart commands.
func (c *Core) Init() error {
	if err := c.backend.TakeOwnership(); err != nil {
		return fmt.Errorf("failed to become window manager: %w", err)
	}

	c.table.Grab(c.backend)
	c.backend.SetDesktops(len(c.workspaces), c.active)
	c.launcher.StartAll(c.cfg.Autostart)

	c.logger.Info("window manager initialized",
		"workspaces", len(c.workspaces),
		"layout", c.cfg.Layout,
		"keys", c.table.Len())
	return nil
}

type eventResult struct {
	ev  platform.Event
	err error
}

// Run processes events until Exit, Restart, cancellation of ctx, or a read
// failure on the display connection. Only the last returns an error.
func (c *Core) Run(ctx context.Context) error {
	defer close(c.stopped)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventC := make(chan eventResult)
	go c.receiveEvents(ctx, eventC)

	c.running = true
	c.startedAt = c.cfg.Now()

	for c.running {
		select {
		case <-ctx.Done():
			c.logger.Debug("event loop cancelled")
			return nil
		case fn := <-c.cmds:
			fn()
		case res := <-eventC:
			if res.err != nil {
				return fmt.Errorf("display connection failed: %w", res.err)
			}
			c.Dispatch(res.ev)
		}
	}

	c.logger.Info("event loop stopped", "restart", c.restart)
	return nil
}

func (c *Core) receiveEvents(ctx context.Context, eventC chan<- eventResult) {
	for {
		ev, err := c.backend.NextEvent()

		select {
		case <-ctx.Done():
			return
		case eventC <- eventResult{ev: ev, err: err}:
		}

		if err != nil {
			return
		}
	}
}

// Do runs fn on the event loop goroutine between two events and waits for
// it to finish.
func (c *Core) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	wrapped := func() {
		defer close(done)
		fn()
	}

	select {
	case c.cmds <- wrapped:
	case <-c.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Exit stops the event loop after the current event.
func (c *Core) Exit() {
	c.logger.Info("exit requested")
	c.running = false
}

// Restart stops the event loop and marks the process for re-execution.
func (c *Core) Restart() {
	c.logger.Info("restart requested")
	c.running = false
	c.restart = true
}

// RestartRequested reports whether the loop stopped through Restart.
func (c *Core) RestartRequested() bool {
	return c.restart
}

// Shutdown maps the windows of hidden workspaces so nothing is left
// invisible once the window manager is gone. Call it after Run returns.
func (c *Core) Shutdown() {
	for i, ws := range c.workspaces {
		if i != c.active {
			ws.Show()
		}
	}
	c.logger.Debug("shutdown complete")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"

	"github.com/1broseidon/spiralwm/internal/config"
	"github.com/1broseidon/spiralwm/internal/ipc"
	"github.com/1broseidon/spiralwm/internal/launcher"
	"github.com/1broseidon/spiralwm/internal/platform"
	"github.com/1broseidon/spiralwm/internal/supervise"
	"github.com/1broseidon/spiralwm/internal/wm"
)

// loopStopTimeout bounds the wait for the event loop after the supervisor
// returns.
const loopStopTimeout = 5 * time.Second

type runOptions struct {
	configPath string
	debug      bool
}

// NewRunCmd creates the command that takes over the display.
func NewRunCmd() *cobra.Command {
	var opts runOptions

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Manage the windows of the current X display",
		Long: `Become the window manager of $DISPLAY and tile every window that asks to
be shown. Exits when the exit binding is pressed, on SIGINT or SIGTERM, or
when the display connection fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWM(cmd.Context(), opts)
		},
	}
	runCmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spiralwm/config.yaml)")
	runCmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return runCmd
}

func loadConfig(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

// coreConfig translates the file configuration into what the core needs.
func coreConfig(cfg *config.Config, logger *slog.Logger) wm.Config {
	buttons := make([]platform.Button, 0, len(cfg.DragButtons))
	for _, b := range cfg.DragButtons {
		buttons = append(buttons, platform.Button(b))
	}
	return wm.Config{
		Workspaces:   cfg.Workspaces,
		Layout:       cfg.Layout,
		GapSize:      cfg.GapSize,
		DragModifier: cfg.ModifierMask(),
		DragButtons:  buttons,
		Bindings:     cfg.Bindings(),
		Autostart:    cfg.Autostart,
		Logger:       logger,
	}
}

func runWM(ctx context.Context, opts runOptions) error {
	res, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := res.Config

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := InitLogger(level)
	if res.File != "" {
		logger.Info("loaded config", "path", res.File)
	} else {
		logger.Info("no config file, using defaults")
	}

	backend, err := platform.NewLinuxBackendFromDisplay(logger)
	if err != nil {
		return err
	}
	defer backend.Disconnect()

	core, err := wm.New(backend, coreConfig(cfg, logger))
	if err != nil {
		return err
	}
	if err := core.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := newLoopService(core)
	super := supervise.New("spiralwm", logger)
	supervise.Add(super, loop)

	ipcServer, err := ipc.NewServer(coreController{core: core}, logger)
	if err != nil {
		logger.Warn("ipc disabled", "error", err)
	} else {
		supervise.Add(super, ipcServer)
	}

	if err := super.Serve(ctx); err != nil && !errors.Is(err, suture.ErrTerminateSupervisorTree) && !errors.Is(err, context.Canceled) {
		logger.Error("supervisor stopped", "error", err)
	}
	if !loop.Wait(loopStopTimeout) {
		logger.Warn("event loop did not stop in time")
	}

	core.Shutdown()
	if err := loop.Err(); err != nil {
		return err
	}

	if core.RestartRequested() {
		backend.Disconnect()
		logger.Info("restarting", "command", cfg.RestartCommand)
		return launcher.Restart(cfg.RestartCommand)
	}
	return nil
}

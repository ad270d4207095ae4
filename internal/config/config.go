package config

import (
	"fmt"
	"strings"

	"github.com/1broseidon/spiralwm/internal/hotkeys"
	"github.com/1broseidon/spiralwm/internal/tiling"
)

const defaultWorkspaces = 2

// KeyBinding binds a key sequence to either a method or a command.
type KeyBinding struct {
	Key     string   `yaml:"key"`
	Method  string   `yaml:"method,omitempty"`
	Arg     *int     `yaml:"arg,omitempty"`
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// Config is the effective window manager configuration.
type Config struct {
	Workspaces  int    `yaml:"workspaces"`
	Layout      string `yaml:"layout"`
	GapSize     int    `yaml:"gap_size"`
	Modifier    string `yaml:"modifier"`
	DragButtons []int  `yaml:"drag_buttons"`

	Keys []KeyBinding `yaml:"keys"`

	// Autostart commands run once after the window manager takes over.
	Autostart [][]string `yaml:"autostart"`
	// RestartCommand replaces the process on restart. Empty re-executes
	// spiralwm itself.
	RestartCommand []string `yaml:"restart_command"`

	LogLevel string `yaml:"log_level"`
}

func intPtr(v int) *int { return &v }

// DefaultKeys returns the built-in binding table.
func DefaultKeys() []KeyBinding {
	return []KeyBinding{
		{Key: "Mod1-m", Method: hotkeys.MethodMaximizeFocused},
		{Key: "Mod1-1", Method: hotkeys.MethodMoveWorkspace, Arg: intPtr(0)},
		{Key: "Mod1-2", Method: hotkeys.MethodMoveWorkspace, Arg: intPtr(1)},
		{Key: "Mod1-p", Command: "rofi", Args: []string{"-show", "run"}},
		{Key: "Mod1-t", Command: "xterm"},
		{Key: "Mod1-Shift-e", Command: "emacs"},
		{Key: "Mod1-Shift-f", Command: "firefox"},
		{Key: "Mod1-Control-r", Method: hotkeys.MethodRestart},
		{Key: "Mod1-Shift-q", Method: hotkeys.MethodExit},
	}
}

// defaultKeysFor returns the built-in bindings minus workspace switches
// past the last of n workspaces.
func defaultKeysFor(n int) []KeyBinding {
	keys := DefaultKeys()
	out := keys[:0]
	for _, k := range keys {
		if k.Method == hotkeys.MethodMoveWorkspace && *k.Arg >= n {
			continue
		}
		out = append(out, k)
	}
	return out
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Workspaces:  defaultWorkspaces,
		Layout:      tiling.LayoutSpiral,
		GapSize:     0,
		Modifier:    "Mod1",
		DragButtons: []int{1, 3},
		Keys:        DefaultKeys(),
		LogLevel:    "info",
	}
}

// ModifierMask returns the drag modifier as an X modifier mask.
func (c *Config) ModifierMask() uint16 {
	mask, err := hotkeys.ParseModifier(c.Modifier)
	if err != nil {
		return 0
	}
	return mask
}

// Bindings converts the key table into hotkey bindings.
func (c *Config) Bindings() []hotkeys.Binding {
	out := make([]hotkeys.Binding, 0, len(c.Keys))
	for _, k := range c.Keys {
		var action hotkeys.Action
		if k.Method != "" {
			action = hotkeys.MethodAction{Method: k.Method, Arg: k.Arg}
		} else {
			action = hotkeys.CommandAction{Command: k.Command, Args: k.Args}
		}
		out = append(out, hotkeys.Binding{Sequence: k.Key, Action: action})
	}
	return out
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Workspaces < 1 {
		return &ValidationError{Path: "workspaces", Err: fmt.Errorf("workspaces must be >= 1")}
	}
	switch c.Layout {
	case tiling.LayoutSpiral, tiling.LayoutGrid:
	default:
		return &ValidationError{Path: "layout", Err: fmt.Errorf("layout must be one of: spiral, grid")}
	}
	if c.GapSize < 0 {
		return &ValidationError{Path: "gap_size", Err: fmt.Errorf("gap_size must be >= 0")}
	}
	if _, err := hotkeys.ParseModifier(c.Modifier); err != nil {
		return &ValidationError{Path: "modifier", Err: err}
	}
	for i, b := range c.DragButtons {
		if b < 1 || b > 5 {
			return &ValidationError{Path: fmt.Sprintf("drag_buttons[%d]", i), Err: fmt.Errorf("button must be between 1 and 5")}
		}
	}
	for i, k := range c.Keys {
		if err := c.validateKey(k); err != nil {
			return &ValidationError{Path: fmt.Sprintf("keys[%d]", i), Err: err}
		}
	}
	for i, argv := range c.Autostart {
		if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
			return &ValidationError{Path: fmt.Sprintf("autostart[%d]", i), Err: fmt.Errorf("command must not be empty")}
		}
	}
	if len(c.RestartCommand) > 0 && strings.TrimSpace(c.RestartCommand[0]) == "" {
		return &ValidationError{Path: "restart_command", Err: fmt.Errorf("command must not be empty")}
	}
	if c.LogLevel != "debug" && c.LogLevel != "info" && c.LogLevel != "warning" && c.LogLevel != "error" {
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

func (c *Config) validateKey(k KeyBinding) error {
	if _, _, err := hotkeys.ParseSequence(k.Key); err != nil {
		return err
	}

	switch {
	case k.Method != "" && k.Command != "":
		return fmt.Errorf("%s: method and command are mutually exclusive", k.Key)
	case k.Method == "" && k.Command == "":
		return fmt.Errorf("%s: one of method or command is required", k.Key)
	case k.Command != "":
		if k.Arg != nil {
			return fmt.Errorf("%s: arg is only valid with method, use args for commands", k.Key)
		}
		return nil
	}

	takesArg, ok := hotkeys.MethodTakesArg[k.Method]
	if !ok {
		return fmt.Errorf("%s: %w: %s", k.Key, hotkeys.ErrUnknownMethod, k.Method)
	}
	if takesArg && k.Arg == nil {
		return fmt.Errorf("%s: %s requires arg", k.Key, k.Method)
	}
	if k.Method == hotkeys.MethodMoveWorkspace && (*k.Arg < 0 || *k.Arg >= c.Workspaces) {
		return fmt.Errorf("%s: workspace %d out of range [0, %d)", k.Key, *k.Arg, c.Workspaces)
	}
	return nil
}

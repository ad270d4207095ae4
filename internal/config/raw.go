package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CommandLine supports either:
//
//	restart_command: "startx --wm spiralwm"
//
// or:
//
//	restart_command: ["startx", "--wm", "spiralwm"]
type CommandLine []string

func (l *CommandLine) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		// Not present.
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("command must be a string or list of strings")
		}
		*l = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("command entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("command must be a string or list of strings")
	}
}

// RawConfig mirrors the file format. Nil fields were not set by the file.
type RawConfig struct {
	Workspaces  *int    `yaml:"workspaces"`
	Layout      *string `yaml:"layout"`
	GapSize     *int    `yaml:"gap_size"`
	Modifier    *string `yaml:"modifier"`
	DragButtons []int   `yaml:"drag_buttons"`

	Keys []KeyBinding `yaml:"keys"`
	// KeysAppend adds bindings after the defaults instead of replacing them.
	KeysAppend []KeyBinding `yaml:"keys_append"`

	Autostart      []CommandLine `yaml:"autostart"`
	RestartCommand CommandLine   `yaml:"restart_command"`

	LogLevel *string `yaml:"log_level"`
}

// BuildEffectiveConfig applies raw over the defaults.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.Workspaces != nil {
		cfg.Workspaces = *raw.Workspaces
	}
	if raw.Layout != nil {
		cfg.Layout = strings.ToLower(strings.TrimSpace(*raw.Layout))
	}
	if raw.GapSize != nil {
		cfg.GapSize = *raw.GapSize
	}
	if raw.Modifier != nil {
		cfg.Modifier = *raw.Modifier
	}
	if raw.DragButtons != nil {
		cfg.DragButtons = raw.DragButtons
	}
	if raw.Keys != nil {
		cfg.Keys = raw.Keys
	} else {
		cfg.Keys = defaultKeysFor(cfg.Workspaces)
	}
	cfg.Keys = append(cfg.Keys, raw.KeysAppend...)
	for _, argv := range raw.Autostart {
		cfg.Autostart = append(cfg.Autostart, []string(argv))
	}
	if len(raw.RestartCommand) > 0 {
		cfg.RestartCommand = raw.RestartCommand
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}

	return cfg
}

// Package hotkeys turns configured key and button bindings into a lookup
// table of ready-to-run closures.
package hotkeys

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/1broseidon/spiralwm/internal/platform"
)

// FallbackKeysyms resolves key names that are missing from the keysym name
// table of the display server.
var FallbackKeysyms = map[string]uint32{
	"XF86AudioRaiseVolume": 0x1008ff13,
	"XF86AudioLowerVolume": 0x1008ff11,
}

// Method is a window manager operation a binding can call by name.
type Method struct {
	// TakesArg marks methods that need an integer argument.
	TakesArg bool
	Run      func(arg int) error
}

// LaunchFunc starts an external program without waiting for it.
type LaunchFunc func(command string, args []string) error

// Combo identifies a grabbed key: cleaned modifier mask plus keycode.
type Combo struct {
	Mods    uint16
	Keycode platform.Keycode
}

type buttonCombo struct {
	Mods   uint16
	Button platform.Button
}

// Table is the compiled binding table.
type Table struct {
	keys    map[Combo]func()
	buttons map[buttonCombo]struct{}
	ignored uint16
}

// Resolve returns the keycodes that produce key on the current keyboard,
// consulting FallbackKeysyms when the name is not known.
func Resolve(backend platform.Backend, key string) []platform.Keycode {
	if codes := backend.Keycodes(key); len(codes) > 0 {
		return codes
	}
	if sym, ok := FallbackKeysyms[key]; ok {
		return backend.KeycodesForKeysym(sym)
	}
	return nil
}

// Compile resolves every binding against the keyboard and builds its closure.
// Keys that do not resolve to a keycode are skipped with a warning. Unknown
// methods and malformed sequences are errors.
func Compile(backend platform.Backend, bindings []Binding, methods map[string]Method, launch LaunchFunc, logger *slog.Logger) (*Table, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &Table{
		keys:    make(map[Combo]func()),
		buttons: make(map[buttonCombo]struct{}),
		ignored: backend.IgnoredMods(),
	}

	for _, b := range bindings {
		mods, key, err := ParseSequence(b.Sequence)
		if err != nil {
			return nil, err
		}

		fn, err := compileAction(b, methods, launch, logger)
		if err != nil {
			return nil, err
		}

		codes := Resolve(backend, key)
		if len(codes) == 0 {
			logger.Warn("no keycode for binding, skipping", "key", b.Sequence)
			continue
		}
		for _, kc := range codes {
			t.keys[Combo{Mods: CleanMods(mods, t.ignored), Keycode: kc}] = fn
		}
	}

	return t, nil
}

func compileAction(b Binding, methods map[string]Method, launch LaunchFunc, logger *slog.Logger) (func(), error) {
	switch a := b.Action.(type) {
	case MethodAction:
		m, ok := methods[a.Method]
		if !ok {
			return nil, fmt.Errorf("binding %q: %w: %s", b.Sequence, ErrUnknownMethod, a.Method)
		}
		if m.TakesArg && a.Arg == nil {
			return nil, fmt.Errorf("binding %q: %w for %s", b.Sequence, ErrMissingArg, a.Method)
		}
		arg := 0
		if a.Arg != nil {
			arg = *a.Arg
		}
		return func() {
			logger.Debug("running method", "key", b.Sequence, "method", a.String())
			if err := m.Run(arg); err != nil {
				logger.Warn("method failed", "method", a.Method, "error", err)
			}
		}, nil

	case CommandAction:
		if a.Command == "" {
			return nil, fmt.Errorf("binding %q: empty command", b.Sequence)
		}
		args := append([]string(nil), a.Args...)
		return func() {
			logger.Debug("launching", "key", b.Sequence, "command", a.String())
			if err := launch(a.Command, args); err != nil {
				logger.Warn("launch failed", "command", a.Command, "error", err)
			}
		}, nil

	default:
		return nil, fmt.Errorf("binding %q: no action", b.Sequence)
	}
}

// AddButton registers a drag button with its modifier mask.
func (t *Table) AddButton(mods uint16, button platform.Button) {
	t.buttons[buttonCombo{Mods: CleanMods(mods, t.ignored), Button: button}] = struct{}{}
}

// Grab asks the display server to deliver every bound key and button.
// Keys are grabbed in a stable order.
func (t *Table) Grab(backend platform.Backend) {
	combos := make([]Combo, 0, len(t.keys))
	for c := range t.keys {
		combos = append(combos, c)
	}
	sort.Slice(combos, func(i, j int) bool {
		if combos[i].Keycode != combos[j].Keycode {
			return combos[i].Keycode < combos[j].Keycode
		}
		return combos[i].Mods < combos[j].Mods
	})
	for _, c := range combos {
		backend.GrabKey(c.Mods, c.Keycode)
	}

	for b := range t.buttons {
		backend.GrabButton(b.Mods, b.Button)
	}
}

// Key returns the closure bound to a key press, if any.
func (t *Table) Key(state uint16, keycode platform.Keycode) (func(), bool) {
	fn, ok := t.keys[Combo{Mods: CleanMods(state, t.ignored), Keycode: keycode}]
	return fn, ok
}

// Button reports whether a button press starts a drag.
func (t *Table) Button(state uint16, button platform.Button) bool {
	_, ok := t.buttons[buttonCombo{Mods: CleanMods(state, t.ignored), Button: button}]
	return ok
}

// Len returns the number of grabbed key combinations.
func (t *Table) Len() int {
	return len(t.keys)
}

package hotkeys

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

var (
	// ErrUnknownMethod is returned by Compile for a method binding that names
	// no registered operation.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrMissingArg is returned by Compile when a method needs an argument
	// and the binding has none.
	ErrMissingArg = errors.New("missing method argument")
)

// Method names the window manager registers for key bindings.
const (
	MethodMaximizeFocused = "maximize_focused"
	MethodMoveWorkspace   = "move_workspace"
	MethodRestart         = "restart"
	MethodExit            = "exit"
)

// MethodTakesArg lists every method name a binding may call, mapped to
// whether it needs an integer argument.
var MethodTakesArg = map[string]bool{
	MethodMaximizeFocused: false,
	MethodMoveWorkspace:   true,
	MethodRestart:         false,
	MethodExit:            false,
}

// Action is what a binding does when its key is pressed. It is either a
// MethodAction or a CommandAction.
type Action interface {
	isAction()
}

// MethodAction invokes a named window manager operation.
type MethodAction struct {
	Method string
	Arg    *int
}

// CommandAction launches an external program.
type CommandAction struct {
	Command string
	Args    []string
}

func (MethodAction) isAction()  {}
func (CommandAction) isAction() {}

func (a MethodAction) String() string {
	if a.Arg == nil {
		return a.Method
	}
	return fmt.Sprintf("%s(%d)", a.Method, *a.Arg)
}

func (a CommandAction) String() string {
	return strings.Join(append([]string{a.Command}, a.Args...), " ")
}

// Binding pairs a key sequence such as "Mod1-Shift-e" with an action.
type Binding struct {
	Sequence string
	Action   Action
}

// Modifier masks that take part in binding lookup.
const relevantMods = xproto.ModMaskShift | xproto.ModMaskControl |
	xproto.ModMask1 | xproto.ModMask2 | xproto.ModMask3 | xproto.ModMask4 | xproto.ModMask5

var modifierNames = map[string]uint16{
	"shift":   xproto.ModMaskShift,
	"lock":    xproto.ModMaskLock,
	"control": xproto.ModMaskControl,
	"ctrl":    xproto.ModMaskControl,
	"mod1":    xproto.ModMask1,
	"alt":     xproto.ModMask1,
	"mod2":    xproto.ModMask2,
	"mod3":    xproto.ModMask3,
	"mod4":    xproto.ModMask4,
	"super":   xproto.ModMask4,
	"mod5":    xproto.ModMask5,
}

// ParseModifier converts a single modifier name ("Mod1", "Shift") to its mask.
func ParseModifier(name string) (uint16, error) {
	mask, ok := modifierNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown modifier %q", name)
	}
	return mask, nil
}

// ParseSequence splits "Mod1-Shift-e" into its modifier mask and key name.
// The key name is the last dash-separated field and keeps its case.
func ParseSequence(seq string) (mods uint16, key string, err error) {
	fields := strings.Split(strings.TrimSpace(seq), "-")
	key = fields[len(fields)-1]
	if key == "" {
		return 0, "", fmt.Errorf("key sequence %q has no key", seq)
	}

	for _, name := range fields[:len(fields)-1] {
		mask, err := ParseModifier(name)
		if err != nil {
			return 0, "", fmt.Errorf("key sequence %q: %w", seq, err)
		}
		mods |= mask
	}
	return mods, key, nil
}

// CleanMods strips lock modifiers and pointer button state from an event
// state so it can be compared against a binding.
func CleanMods(state, ignored uint16) uint16 {
	return state & relevantMods &^ ignored
}

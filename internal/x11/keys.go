package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// ConfigureIgnoreMods computes every combination of CapsLock, NumLock and
// ScrollLock and installs them as xevent.IgnoreMods so grabs fire regardless
// of lock state.
func (c *Connection) ConfigureIgnoreMods() {
	caps := uint16(xproto.ModMaskLock)

	numLock := modMaskForKeysym(c.XUtil, "Num_Lock")
	scrollLock := modMaskForKeysym(c.XUtil, "Scroll_Lock")

	unique := make(map[uint16]struct{})
	add := func(mask uint16) {
		unique[mask] = struct{}{}
	}

	add(0)
	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	for subset := 1; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		add(mask)
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}

	xevent.IgnoreMods = ignore
}

// IgnoredMods returns the union of all configured lock modifiers.
func (c *Connection) IgnoredMods() uint16 {
	var all uint16
	for _, m := range ignoreMods() {
		all |= m
	}
	return all
}

// GrabKey grabs key with mods on the root window (plus lock variants).
func (c *Connection) GrabKey(mods uint16, key xproto.Keycode) {
	keybind.Grab(c.XUtil, c.Root, mods, key)
}

// Keycodes resolves a keysym name ("m", "Return", "XF86AudioMute") to the
// keycodes that currently produce it.
func (c *Connection) Keycodes(name string) []xproto.Keycode {
	return keybind.StrToKeycodes(c.XUtil, name)
}

// KeycodesForKeysym scans the keyboard mapping for a raw keysym value. Used
// when a name is unknown to the keysym table.
func (c *Connection) KeycodesForKeysym(sym xproto.Keysym) []xproto.Keycode {
	setup := xproto.Setup(c.Conn())
	mapping := keybind.KeyMapGet(c.XUtil)
	if mapping == nil {
		return nil
	}

	var codes []xproto.Keycode
	for kc := int(setup.MinKeycode); kc <= int(setup.MaxKeycode); kc++ {
		for col := byte(0); col < mapping.KeysymsPerKeycode; col++ {
			if keybind.KeysymGet(c.XUtil, xproto.Keycode(kc), col) == sym {
				codes = append(codes, xproto.Keycode(kc))
				break
			}
		}
	}
	return codes
}

func ignoreMods() []uint16 {
	if len(xevent.IgnoreMods) == 0 {
		return []uint16{0}
	}
	return xevent.IgnoreMods
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}

package key

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key.
// Modifier keys (Shift, Control, Alt, Meta) are ordinary keys here: the
// matcher models the full set of currently held keys, and a shortcut like
// Ctrl+Left-button is expressed as the key set {KeyControl} plus a button.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Modifier keys
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeySpace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Digit keys
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	// Letter keys
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// IsModifier returns true if this is a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyShift && k <= KeyMeta
}

// IsLetter returns true if this is a letter key (A-Z).
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// IsDigit returns true if this is a digit key (0-9).
func (k Key) IsDigit() bool {
	return k >= Key0 && k <= Key9
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch {
	case k == KeyNone:
		return "None"
	case k == KeyShift:
		return "Shift"
	case k == KeyControl:
		return "Ctrl"
	case k == KeyAlt:
		return "Alt"
	case k == KeyMeta:
		return "Meta"
	case k == KeyEscape:
		return "Escape"
	case k == KeyEnter:
		return "Enter"
	case k == KeyTab:
		return "Tab"
	case k == KeyBackspace:
		return "Backspace"
	case k == KeyDelete:
		return "Delete"
	case k == KeyInsert:
		return "Insert"
	case k == KeyHome:
		return "Home"
	case k == KeyEnd:
		return "End"
	case k == KeyPageUp:
		return "PageUp"
	case k == KeyPageDown:
		return "PageDown"
	case k == KeySpace:
		return "Space"
	case k == KeyUp:
		return "Up"
	case k == KeyDown:
		return "Down"
	case k == KeyLeft:
		return "Left"
	case k == KeyRight:
		return "Right"
	case k.IsFunctionKey():
		return fmt.Sprintf("F%d", k-KeyF1+1)
	case k.IsDigit():
		return string(rune('0' + k - Key0))
	case k.IsLetter():
		return string(rune('A' + k - KeyA))
	default:
		return fmt.Sprintf("Key(%d)", uint16(k))
	}
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":      KeyNone,
	"shift":     KeyShift,
	"ctrl":      KeyControl,
	"control":   KeyControl,
	"alt":       KeyAlt,
	"meta":      KeyMeta,
	"cmd":       KeyMeta,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"bs":        KeyBackspace,
	"delete":    KeyDelete,
	"del":       KeyDelete,
	"insert":    KeyInsert,
	"ins":       KeyInsert,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pgup":      KeyPageUp,
	"pagedown":  KeyPageDown,
	"pgdn":      KeyPageDown,
	"space":     KeySpace,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
}

func init() {
	for i := 0; i < 12; i++ {
		keyNameMap[fmt.Sprintf("f%d", i+1)] = KeyF1 + Key(i)
	}
	for i := 0; i < 10; i++ {
		keyNameMap[string(rune('0'+i))] = Key0 + Key(i)
	}
	for i := 0; i < 26; i++ {
		keyNameMap[string(rune('a'+i))] = KeyA + Key(i)
	}
}

// FromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func FromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

// FromRune returns the Key for a letter or digit rune.
// Returns KeyNone for runes outside [a-zA-Z0-9].
func FromRune(r rune) Key {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return KeyA + Key(r-'A')
	case r >= '0' && r <= '9':
		return Key0 + Key(r-'0')
	default:
		return KeyNone
	}
}

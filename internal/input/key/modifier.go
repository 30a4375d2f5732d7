package key

import "strings"

// Modifier represents keyboard modifier keys as a bitmask. It is the form
// modifier state arrives in from windowing backends; the matcher itself
// tracks modifiers as held keys, and ModifierKeys bridges the two.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Keys returns the modifier keys present in the mask as a key set.
func (m Modifier) Keys() Set {
	s := NewSet()
	if m.Has(ModShift) {
		s.Add(KeyShift)
	}
	if m.Has(ModCtrl) {
		s.Add(KeyControl)
	}
	if m.Has(ModAlt) {
		s.Add(KeyAlt)
	}
	if m.Has(ModMeta) {
		s.Add(KeyMeta)
	}
	return s
}

// ModifierForKey returns the modifier bit for a modifier key,
// or ModNone for any other key.
func ModifierForKey(k Key) Modifier {
	switch k {
	case KeyShift:
		return ModShift
	case KeyControl:
		return ModCtrl
	case KeyAlt:
		return ModAlt
	case KeyMeta:
		return ModMeta
	default:
		return ModNone
	}
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

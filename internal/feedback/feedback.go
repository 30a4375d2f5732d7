// Package feedback computes the cursor and status tint colors shown while
// input actions move through their lifecycle: an armed action glows
// halfway toward the accent, a running one takes it fully.
package feedback

import "github.com/lucasb-eyer/go-colorful"

// State is the lifecycle state an action slot is displayed in.
type State uint8

const (
	// StateIdle means no shortcut is armed or running.
	StateIdle State = iota
	// StateReady means a shortcut is activated but not begun.
	StateReady
	// StateRunning means a shortcut is running.
	StateRunning
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	default:
		return "idle"
	}
}

// Palette holds the base and accent colors feedback tints blend between.
type Palette struct {
	Base   colorful.Color
	Accent colorful.Color
}

// DefaultPalette returns a neutral gray base with a blue accent.
func DefaultPalette() Palette {
	base, _ := colorful.Hex("#8a8a8a")
	accent, _ := colorful.Hex("#3584e4")
	return Palette{Base: base, Accent: accent}
}

// NewPalette builds a palette from hex color strings.
func NewPalette(baseHex, accentHex string) (Palette, error) {
	base, err := colorful.Hex(baseHex)
	if err != nil {
		return Palette{}, err
	}
	accent, err := colorful.Hex(accentHex)
	if err != nil {
		return Palette{}, err
	}
	return Palette{Base: base, Accent: accent}, nil
}

// Tint returns the display color for a lifecycle state. Blending happens
// in Lab space so the midpoint reads as perceptually halfway.
func (p Palette) Tint(state State) colorful.Color {
	switch state {
	case StateReady:
		return p.Base.BlendLab(p.Accent, 0.5).Clamped()
	case StateRunning:
		return p.Accent
	default:
		return p.Base
	}
}

// TintHex returns the display color as a "#rrggbb" string.
func (p Palette) TintHex(state State) string {
	return p.Tint(state).Hex()
}

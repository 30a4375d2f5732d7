// Package gesture defines native OS gesture kinds and events, such as the
// pinch-zoom and two-finger pan gestures reported by macOS trackpads.
package gesture

import "github.com/dshills/canvasinput/internal/input/pointer"

// Kind identifies a native gesture as classified by the OS.
type Kind uint8

const (
	// KindNone indicates no gesture.
	KindNone Kind = iota
	// KindZoom is a pinch zoom gesture.
	KindZoom
	// KindPan is a two-finger pan gesture.
	KindPan
	// KindRotate is a two-finger rotate gesture.
	KindRotate
	// KindSwipe is a multi-finger swipe gesture.
	KindSwipe
	// KindSmartZoom is a two-finger double-tap zoom gesture.
	KindSmartZoom
)

// String returns a string representation of the gesture kind.
func (k Kind) String() string {
	switch k {
	case KindZoom:
		return "Zoom"
	case KindPan:
		return "Pan"
	case KindRotate:
		return "Rotate"
	case KindSwipe:
		return "Swipe"
	case KindSmartZoom:
		return "SmartZoom"
	default:
		return "None"
	}
}

// Event is one native gesture update delivered by the OS.
type Event struct {
	// Kind is the OS classification of the gesture.
	Kind Kind

	// Pos is the gesture's position in canvas-local coordinates.
	Pos pointer.Position

	// Value is the gesture magnitude: zoom factor delta, rotation angle,
	// or pan distance, depending on Kind.
	Value float64
}

// ImplementsEvent marks Event as an input event.
func (Event) ImplementsEvent() {}

// Package touch defines multi-touch points and events for the canvas input
// matcher.
package touch

import "github.com/dshills/canvasinput/internal/input/pointer"

// PointState describes what a single touch point did in an event.
type PointState uint8

const (
	// StateStationary means the point did not move since the last event.
	StateStationary PointState = iota
	// StatePressed means the point made contact in this event.
	StatePressed
	// StateMoved means the point moved in this event.
	StateMoved
	// StateReleased means the point lifted in this event.
	StateReleased
)

// String returns a string representation of the point state.
func (s PointState) String() string {
	switch s {
	case StatePressed:
		return "Pressed"
	case StateMoved:
		return "Moved"
	case StateReleased:
		return "Released"
	default:
		return "Stationary"
	}
}

// StateMask is the aggregate of the point states present in an event.
type StateMask uint8

const (
	// MaskStationary is set when any point is stationary.
	MaskStationary StateMask = 1 << iota
	// MaskPressed is set when any point made contact.
	MaskPressed
	// MaskMoved is set when any point moved.
	MaskMoved
	// MaskReleased is set when any point lifted.
	MaskReleased
)

// Has returns true if the mask contains the given bits.
func (m StateMask) Has(bits StateMask) bool {
	return m&bits != 0
}

// Point is one finger contact within a touch event.
type Point struct {
	// ID identifies the contact across events of one touch sequence.
	ID int

	// Pos is the current position in canvas-local coordinates.
	Pos pointer.Position

	// StartPos is the position where this contact first touched down.
	StartPos pointer.Position

	// State describes what the contact did in this event.
	State PointState
}

// Delta returns the displacement from the contact's start position.
func (p Point) Delta() pointer.Position {
	return p.Pos.Sub(p.StartPos)
}

// Event is one multi-touch event carrying all current contacts.
type Event struct {
	// Points holds every contact known at the time of the event,
	// including stationary ones.
	Points []Point
}

// ImplementsEvent marks Event as an input event.
func (Event) ImplementsEvent() {}

// Count returns the number of contacts in the event.
func (e Event) Count() int {
	return len(e.Points)
}

// States returns the aggregate state mask over all contacts.
func (e Event) States() StateMask {
	var m StateMask
	for _, p := range e.Points {
		switch p.State {
		case StatePressed:
			m |= MaskPressed
		case StateMoved:
			m |= MaskMoved
		case StateReleased:
			m |= MaskReleased
		default:
			m |= MaskStationary
		}
	}
	return m
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	points := make([]Point, len(e.Points))
	copy(points, e.Points)
	return Event{Points: points}
}

// WithPoints returns a copy of the event carrying the given contacts.
// Used to reconstruct cancel events that arrive stripped of points.
func (e Event) WithPoints(points []Point) Event {
	clone := make([]Point, len(points))
	copy(clone, points)
	return Event{Points: clone}
}

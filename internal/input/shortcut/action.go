package shortcut

import "github.com/dshills/canvasinput/internal/input/event"

// Action is the external object a shortcut drives: the thing that actually
// paints, pans, or zooms. The matcher guarantees a paired lifecycle per
// invocation:
//
//	Activate -> Begin -> InputEvent* -> End -> Deactivate
//
// or, when an armed action is abandoned before any button arrives,
// Activate followed directly by Deactivate.
//
// The index passed to Activate, Begin, and Deactivate is the shortcut
// index registered with the descriptor; it tells the action which of its
// variants was triggered.
type Action interface {
	// Activate prepares the action, for example by showing cursor
	// feedback. Every Activate is paired with exactly one Deactivate.
	Activate(index int)

	// Begin commences the interaction. The event may be nil for
	// discrete triggers such as key shortcuts.
	Begin(index int, ev event.Event)

	// InputEvent delivers continuous input while the action runs.
	InputEvent(ev event.Event)

	// End finalises the interaction. The event may be nil.
	End(ev event.Event)

	// Deactivate tears the action down.
	Deactivate(index int)

	// SupportsHiResInputEvents reports whether the variant wants
	// high-resolution move and scroll deltas.
	SupportsHiResInputEvents(index int) bool
}

package shortcut

import (
	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
)

// Stroke is a two-phase shortcut: it becomes a ready candidate while its
// key precondition holds and some of its buttons are still expected, and
// begins running when the final button arrives.
type Stroke struct {
	action   Action
	index    int
	priority int
	group    GroupMask

	keys    key.Set
	buttons pointer.Set
}

// NewStroke creates a stroke shortcut requiring the given held keys and
// pressed buttons.
func NewStroke(action Action, index int, keys key.Set, buttons pointer.Set) *Stroke {
	return &Stroke{
		action:  action,
		index:   index,
		group:   GroupModifying,
		keys:    keys.Clone(),
		buttons: buttons.Clone(),
	}
}

// WithPriority sets the shortcut priority and returns the shortcut.
func (s *Stroke) WithPriority(priority int) *Stroke {
	s.priority = priority
	return s
}

// WithGroup sets the shortcut's action groups and returns the shortcut.
func (s *Stroke) WithGroup(group GroupMask) *Stroke {
	s.group = group
	return s
}

// Action returns the driven action.
func (s *Stroke) Action() Action { return s.action }

// Index returns the shortcut index passed to the action.
func (s *Stroke) Index() int { return s.index }

// Priority returns the shortcut priority.
func (s *Stroke) Priority() int { return s.priority }

// Buttons returns the required button set.
func (s *Stroke) Buttons() pointer.Set { return s.buttons }

// Available returns true if the shortcut's groups are enabled in mask.
func (s *Stroke) Available(mask GroupMask) bool {
	return s.group.SubsetOf(mask)
}

// MatchReady returns true if the shortcut is armed for the given state:
// the key requirement is met exactly and the held buttons are a proper
// subset of the required ones, so at least one button is still expected.
func (s *Stroke) MatchReady(keys key.Set, buttons pointer.Set) bool {
	return s.keys.Equal(keys) && buttons.ProperSubsetOf(s.buttons)
}

// MatchBegin returns true if pressing (or releasing) b against the given
// held buttons completes the shortcut's button requirement. Key equality
// is not rechecked here: candidates are filtered by MatchReady, and a
// running stroke must still end on its button even after keys changed.
func (s *Stroke) MatchBegin(held pointer.Set, b pointer.Button) bool {
	return s.buttons.Equal(held.With(b))
}

// FakeEndEvent synthesises a release event at pos, used when a stroke
// must be force-ended without a real button release.
func (s *Stroke) FakeEndEvent(pos pointer.Position) pointer.Event {
	button := pointer.ButtonNone
	if buttons := s.buttons.Buttons(); len(buttons) > 0 {
		button = buttons[0]
	}
	return pointer.Event{Pos: pos, Button: button, Synthetic: true}
}

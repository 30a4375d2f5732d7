package shortcut

import (
	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
)

// SingleAction is a shortcut that fires once per discrete event: a key
// press with a set of held keys, or a wheel tick. Its action observes the
// whole lifecycle synchronously.
type SingleAction struct {
	action   Action
	index    int
	priority int
	group    GroupMask

	keys    key.Set
	trigger key.Key
	wheel   pointer.WheelAction
}

// NewSingleAction creates a key-triggered single-action shortcut.
// The keys set holds the keys that must be held when trigger is struck.
func NewSingleAction(action Action, index int, keys key.Set, trigger key.Key) *SingleAction {
	return &SingleAction{
		action:  action,
		index:   index,
		group:   GroupModifying,
		keys:    keys.Clone(),
		trigger: trigger,
	}
}

// NewWheelAction creates a wheel-triggered single-action shortcut.
func NewWheelAction(action Action, index int, keys key.Set, wheel pointer.WheelAction) *SingleAction {
	return &SingleAction{
		action: action,
		index:  index,
		group:  GroupModifying,
		keys:   keys.Clone(),
		wheel:  wheel,
	}
}

// WithPriority sets the shortcut priority and returns the shortcut.
func (s *SingleAction) WithPriority(priority int) *SingleAction {
	s.priority = priority
	return s
}

// WithGroup sets the shortcut's action groups and returns the shortcut.
func (s *SingleAction) WithGroup(group GroupMask) *SingleAction {
	s.group = group
	return s
}

// Action returns the driven action.
func (s *SingleAction) Action() Action { return s.action }

// Index returns the shortcut index passed to the action.
func (s *SingleAction) Index() int { return s.index }

// Priority returns the shortcut priority.
func (s *SingleAction) Priority() int { return s.priority }

// Available returns true if the shortcut's groups are enabled in mask.
func (s *SingleAction) Available(mask GroupMask) bool {
	return s.group.SubsetOf(mask)
}

// MatchKey returns true if the held-key state equals the required set and
// k is the trigger key.
func (s *SingleAction) MatchKey(state key.Set, k key.Key) bool {
	return s.trigger != key.KeyNone && s.trigger == k && s.keys.Equal(state)
}

// MatchWheel returns true if the held-key state equals the required set
// and w is the trigger wheel action.
func (s *SingleAction) MatchWheel(state key.Set, w pointer.WheelAction) bool {
	return s.wheel != pointer.WheelNone && s.wheel == w && s.keys.Equal(state)
}

// Chord returns the shortcut's key combination as a chord, for comparison
// against menu accelerator sequences. Wheel-triggered shortcuts have no
// chord and return false.
func (s *SingleAction) Chord() (key.Chord, bool) {
	if s.trigger == key.KeyNone {
		return key.Chord{}, false
	}
	return key.Chord{Keys: s.keys.Clone(), Trigger: s.trigger}, true
}

// ConflictsWith returns true if this shortcut's chord is a prefix-or-equal
// match of the given accelerator sequence.
func (s *SingleAction) ConflictsWith(seq key.Sequence) bool {
	chord, ok := s.Chord()
	if !ok {
		return false
	}
	return seq.StartsWith(key.Sequence{chord})
}

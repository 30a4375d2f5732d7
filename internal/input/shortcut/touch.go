package shortcut

import "github.com/dshills/canvasinput/internal/input/touch"

// TouchGesture distinguishes the two touch shortcut families.
type TouchGesture uint8

const (
	// GestureTap fires when the contacts lift without dragging.
	GestureTap TouchGesture = iota
	// GestureDrag runs while the contacts move past the touch slop.
	GestureDrag
)

// String returns a string representation of the touch gesture kind.
func (g TouchGesture) String() string {
	if g == GestureDrag {
		return "Drag"
	}
	return "Tap"
}

// Touch is a multi-touch shortcut matched by contact count and by whether
// the contacts are tapping or dragging.
type Touch struct {
	action   Action
	index    int
	priority int
	group    GroupMask

	gesture   TouchGesture
	minPoints int
	maxPoints int
}

// NewTouch creates a touch shortcut accepting between minPoints and
// maxPoints simultaneous contacts.
func NewTouch(action Action, index int, gesture TouchGesture, minPoints, maxPoints int) *Touch {
	return &Touch{
		action:    action,
		index:     index,
		group:     GroupModifying,
		gesture:   gesture,
		minPoints: minPoints,
		maxPoints: maxPoints,
	}
}

// WithPriority sets the shortcut priority and returns the shortcut.
func (t *Touch) WithPriority(priority int) *Touch {
	t.priority = priority
	return t
}

// WithGroup sets the shortcut's action groups and returns the shortcut.
func (t *Touch) WithGroup(group GroupMask) *Touch {
	t.group = group
	return t
}

// Action returns the driven action.
func (t *Touch) Action() Action { return t.action }

// Index returns the shortcut index passed to the action.
func (t *Touch) Index() int { return t.index }

// Priority returns the shortcut priority.
func (t *Touch) Priority() int { return t.priority }

// Available returns true if the shortcut's groups are enabled in mask.
func (t *Touch) Available(mask GroupMask) bool {
	return t.group.SubsetOf(mask)
}

// matchCount returns true if the event's contact count is in range.
func (t *Touch) matchCount(ev touch.Event) bool {
	n := ev.Count()
	return n >= t.minPoints && n <= t.maxPoints
}

// MatchTap returns true for tap shortcuts whose contact range matches.
func (t *Touch) MatchTap(ev touch.Event) bool {
	return t.gesture == GestureTap && t.matchCount(ev)
}

// MatchDrag returns true for drag shortcuts whose contact range matches.
func (t *Touch) MatchDrag(ev touch.Event) bool {
	return t.gesture == GestureDrag && t.matchCount(ev)
}

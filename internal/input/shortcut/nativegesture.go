package shortcut

import "github.com/dshills/canvasinput/internal/input/gesture"

// NativeGesture is a shortcut driven by an OS-classified gesture such as
// pinch zoom. It has the simplest lifecycle of the shortcut kinds.
type NativeGesture struct {
	action   Action
	index    int
	priority int
	group    GroupMask

	kind gesture.Kind
}

// NewNativeGesture creates a native gesture shortcut for the given kind.
func NewNativeGesture(action Action, index int, kind gesture.Kind) *NativeGesture {
	return &NativeGesture{
		action: action,
		index:  index,
		group:  GroupViewTransform,
		kind:   kind,
	}
}

// WithPriority sets the shortcut priority and returns the shortcut.
func (g *NativeGesture) WithPriority(priority int) *NativeGesture {
	g.priority = priority
	return g
}

// WithGroup sets the shortcut's action groups and returns the shortcut.
func (g *NativeGesture) WithGroup(group GroupMask) *NativeGesture {
	g.group = group
	return g
}

// Action returns the driven action.
func (g *NativeGesture) Action() Action { return g.action }

// Index returns the shortcut index passed to the action.
func (g *NativeGesture) Index() int { return g.index }

// Priority returns the shortcut priority.
func (g *NativeGesture) Priority() int { return g.priority }

// Available returns true if the shortcut's groups are enabled in mask.
func (g *NativeGesture) Available(mask GroupMask) bool {
	return g.group.SubsetOf(mask)
}

// Match returns true if the event's gesture kind equals the shortcut's.
func (g *NativeGesture) Match(ev gesture.Event) bool {
	return ev.Kind == g.kind
}

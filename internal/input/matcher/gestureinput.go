package matcher

import (
	"github.com/dshills/canvasinput/internal/input/gesture"
	"github.com/dshills/canvasinput/internal/input/shortcut"
)

// NativeGestureBeginEvent opens a native gesture sequence. It only
// performs the recursion check; matching happens on the first update.
func (m *Matcher) NativeGestureBeginEvent(ev gesture.Event) bool {
	n := m.notifyRecursion()
	defer n.exit()

	return !n.inRecursion()
}

// NativeGestureEvent runs the best matching gesture shortcut, or streams
// the update into the one already running.
func (m *Matcher) NativeGestureEvent(ev gesture.Event) bool {
	if m.nativeGestureShortcut == nil {
		return m.tryRunNativeGestureShortcut(ev)
	}

	if !m.callInput(m.nativeGestureShortcut.Action(), ev) {
		g := m.nativeGestureShortcut
		m.nativeGestureShortcut = nil
		m.callDeactivate(g.Action(), g.Index())
	}
	return true
}

// NativeGestureEndEvent closes the gesture sequence and ends the running
// gesture shortcut.
func (m *Matcher) NativeGestureEndEvent(ev gesture.Event) bool {
	m.tryEndNativeGestureShortcut(ev)
	m.usingNativeGesture = false
	return true
}

// tryRunNativeGestureShortcut starts the highest-priority matching
// gesture shortcut inside a recursion guard.
func (m *Matcher) tryRunNativeGestureShortcut(ev gesture.Event) bool {
	if m.actionsSuppressed() {
		return false
	}

	var best *shortcut.NativeGesture
	for _, s := range m.nativeGestureShortcuts {
		if !s.Available(m.actionGroupMask()) || !s.Match(ev) {
			continue
		}
		if best == nil || s.Priority() > best.Priority() {
			best = s
		}
	}

	if best == nil {
		return false
	}

	m.nativeGestureShortcut = best
	m.usingNativeGesture = true

	guard := m.beginGuard()
	activated := m.callActivate(best.Action(), best.Index())
	ok := activated && m.callBegin(best.Action(), best.Index(), ev)

	switch {
	case !ok:
		m.nativeGestureShortcut = nil
		if activated {
			m.callDeactivate(best.Action(), best.Index())
		}
		m.forceDeactivateAllActions()
	case guard.brokenByRecursion():
		// the action might have opened a dialog that pumped the
		// event loop back into the matcher
		m.callEnd(best.Action(), ev)
		m.nativeGestureShortcut = nil
		m.callDeactivate(best.Action(), best.Index())
		m.forceDeactivateAllActions()
	}

	return m.nativeGestureShortcut != nil
}

// tryEndNativeGestureShortcut ends the running gesture shortcut, if any.
func (m *Matcher) tryEndNativeGestureShortcut(ev gesture.Event) bool {
	if m.nativeGestureShortcut == nil {
		return false
	}

	g := m.nativeGestureShortcut
	m.nativeGestureShortcut = nil

	m.callEnd(g.Action(), ev)
	m.callDeactivate(g.Action(), g.Index())
	return true
}

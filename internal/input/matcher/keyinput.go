package matcher

import (
	"github.com/dshills/canvasinput/internal/input/event"
	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
)

// KeyPressed records a key press, fires any matching single-action
// shortcut, and re-arms the stroke engine. Returns true if a shortcut
// fired.
func (m *Matcher) KeyPressed(k key.Key) bool {
	n := m.notifyRecursion()
	defer n.exit()

	handled := false

	if m.keys.Contains(k) {
		m.log.Debug("key press recorded for a key already held", "key", k)
	}

	if m.runningShortcut == nil && !n.inRecursion() {
		handled = m.tryRunSingleActionShortcut(nil, func(s *shortcut.SingleAction) bool {
			return s.MatchKey(m.keys, k)
		})
	}

	m.keys.Add(k)

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}

	return handled
}

// AutoRepeatedKeyPressed handles OS key autorepeat. The repeating key is
// excluded from the key state so a held modifier does not drop its
// shortcuts: a shortcut triggered by the repeating key fires again on
// every repeat while its held keys still match.
func (m *Matcher) AutoRepeatedKeyPressed(k key.Key) bool {
	n := m.notifyRecursion()
	defer n.exit()

	handled := false

	if !m.keys.Contains(k) {
		m.log.Debug("autorepeat for a key not recorded as held", "key", k)
	}

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		filtered := m.keys.Clone()
		filtered.Remove(k)
		handled = m.tryRunSingleActionShortcut(nil, func(s *shortcut.SingleAction) bool {
			return s.MatchKey(filtered, k)
		})
	}

	return handled
}

// KeyReleased records a key release and re-arms the stroke engine.
func (m *Matcher) KeyReleased(k key.Key) bool {
	n := m.notifyRecursion()
	defer n.exit()

	if !m.keys.Contains(k) {
		m.log.Debug("key released but not recorded as held", "key", k)
	} else {
		m.keys.Remove(k)
	}

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}

	return false
}

// WheelEvent fires the single-action shortcut matching the wheel
// direction and the held keys. Wheel events are dropped while a stroke
// runs, while touch input is in use, and in recursion.
func (m *Matcher) WheelEvent(action pointer.WheelAction, ev pointer.WheelEvent) bool {
	n := m.notifyRecursion()
	defer n.exit()

	if m.runningShortcut != nil || m.usingTouchInput() || n.inRecursion() {
		m.log.Debug("wheel event cancelled", "action", action)
		return false
	}

	return m.tryRunSingleActionShortcut(ev, func(s *shortcut.SingleAction) bool {
		return s.MatchWheel(m.keys, action)
	})
}

// tryRunSingleActionShortcut selects the highest-priority available
// shortcut accepted by match and fires its action synchronously with a
// Begin/End pair. Registration order breaks priority ties.
func (m *Matcher) tryRunSingleActionShortcut(ev event.Event, match func(*shortcut.SingleAction) bool) bool {
	if m.actionsSuppressedIgnoreFocus() {
		return false
	}

	var best *shortcut.SingleAction
	for _, s := range m.singleActionShortcuts {
		if m.isSuppressed(s) || !s.Available(m.actionGroupMask()) || !match(s) {
			continue
		}
		if best == nil || s.Priority() > best.Priority() {
			best = s
		}
	}

	if best == nil {
		return false
	}

	if m.callBegin(best.Action(), best.Index(), ev) {
		m.callEnd(best.Action(), nil)
	}
	return true
}

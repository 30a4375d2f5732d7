package matcher

import (
	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
)

// ButtonPressed records a button press and promotes the best ready
// stroke candidate to running. Returns true if a stroke began.
func (m *Matcher) ButtonPressed(b pointer.Button, ev pointer.Event) bool {
	n := m.notifyRecursion()
	defer n.exit()

	if m.usingTouchInput() {
		return false
	}

	if m.buttons.Contains(b) {
		m.log.Debug("button press recorded for a button already held", "button", b)
	}

	handled := false
	if m.runningShortcut == nil && !n.inRecursion() {
		m.prepareReadyShortcuts()
		handled = m.tryRunReadyShortcut(b, ev)
	}

	m.buttons.Add(b)

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}

	return handled
}

// ButtonReleased records a button release and ends the running stroke
// when the release completes its button set.
func (m *Matcher) ButtonReleased(b pointer.Button, ev pointer.Event) bool {
	n := m.notifyRecursion()
	defer n.exit()

	if m.usingTouchInput() {
		return false
	}

	handled := false
	if m.runningShortcut != nil {
		if n.inRecursion() {
			m.log.Warn("button release while a running shortcut ends in recursion")
		}
		handled = m.tryEndRunningShortcut(b, ev)
	}

	if !m.buttons.Contains(b) {
		m.reset("button released but not recorded as held")
	} else {
		m.buttons.Remove(b)
	}

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}

	return handled
}

// PointerMoved forwards a pointer move to the running stroke action.
func (m *Matcher) PointerMoved(ev pointer.Event) bool {
	n := m.notifyRecursion()
	defer n.exit()

	if m.usingTouchInput() || m.runningShortcut == nil || n.inRecursion() {
		return false
	}

	if !m.callInput(m.runningShortcut.Action(), ev) {
		running := m.runningShortcut
		m.runningShortcut = nil
		m.callDeactivate(running.Action(), running.Index())
	}
	return true
}

// EnterEvent records the pointer entering the focus region.
func (m *Matcher) EnterEvent() {
	n := m.notifyRecursion()
	defer n.exit()

	m.cursorEntered = true

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

// LeaveEvent records the pointer leaving the focus region.
func (m *Matcher) LeaveEvent() {
	n := m.notifyRecursion()
	defer n.exit()

	m.cursorEntered = false

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

// LostFocusEvent terminates any in-flight stroke with a synthetic release
// at pos and deactivates everything.
func (m *Matcher) LostFocusEvent(pos pointer.Position) {
	n := m.notifyRecursion()
	defer n.exit()

	if m.runningShortcut != nil {
		m.forceEndRunningShortcut(pos)
	}

	m.forceDeactivateAllActions()
}

// ToolHasBeenActivated re-arms the stroke engine after a tool switch.
func (m *Matcher) ToolHasBeenActivated() {
	n := m.notifyRecursion()
	defer n.exit()

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

// Reinitialize clears the held key and button sets and re-arms the
// stroke engine. Calling it twice in a row has no further effect.
func (m *Matcher) Reinitialize() {
	n := m.notifyRecursion()
	defer n.exit()

	m.reset("reinitialize")

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

// ReinitializeButtons clears the held button set only.
func (m *Matcher) ReinitializeButtons() {
	n := m.notifyRecursion()
	defer n.exit()

	m.buttons.Clear()
	m.log.Debug("buttons reinitialized")

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

// RecoveryModifiersWithoutFocus reconciles the held-key set with the set
// of keys actually held after an OS focus transition, synthesising the
// missing press and release events.
func (m *Matcher) RecoveryModifiersWithoutFocus(keys key.Set) {
	for _, k := range m.keys.Keys() {
		if !keys.Contains(k) {
			m.KeyReleased(k)
		}
	}

	for _, k := range keys.Keys() {
		if !m.keys.Contains(k) {
			m.KeyPressed(k)
		}
	}

	n := m.notifyRecursion()
	defer n.exit()

	if n.inRecursion() {
		m.forceDeactivateAllActions()
	} else if m.runningShortcut == nil {
		m.prepareReadyShortcuts()
		m.tryActivateReadyShortcut()
	}
}

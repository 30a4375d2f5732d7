package matcher

import (
	"github.com/dshills/canvasinput/internal/input/event"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
)

// prepareReadyShortcuts recomputes the stroke candidates for the current
// held keys and buttons. The list is empty while actions are suppressed.
func (m *Matcher) prepareReadyShortcuts() {
	m.candidateShortcuts = m.candidateShortcuts[:0]
	if m.actionsSuppressed() {
		return
	}

	for _, s := range m.strokeShortcuts {
		if s.MatchReady(m.keys, m.buttons) {
			m.candidateShortcuts = append(m.candidateShortcuts, s)
		}
	}
}

// tryRunReadyShortcut promotes the best candidate completed by button b
// to running and begins its action inside a recursion guard.
func (m *Matcher) tryRunReadyShortcut(b pointer.Button, ev pointer.Event) bool {
	var best *shortcut.Stroke
	for _, s := range m.candidateShortcuts {
		if !s.Available(m.actionGroupMask()) || !s.MatchBegin(m.buttons, b) {
			continue
		}
		if best == nil || s.Priority() > best.Priority() {
			best = s
		}
	}

	if best == nil {
		return m.runningShortcut != nil
	}

	if m.readyShortcut != nil {
		if m.readyShortcut != best {
			m.callDeactivate(m.readyShortcut.Action(), m.readyShortcut.Index())
			m.callActivate(best.Action(), best.Index())
		}
		m.readyShortcut = nil
	} else {
		m.callActivate(best.Action(), best.Index())
	}

	m.runningShortcut = best
	guard := m.beginGuard()
	ok := m.callBegin(best.Action(), best.Index(), ev)

	switch {
	case !ok:
		m.runningShortcut = nil
		m.callDeactivate(best.Action(), best.Index())
		m.forceDeactivateAllActions()
	case guard.brokenByRecursion():
		// the action might have opened a dialog that pumped the
		// event loop back into the matcher
		m.callEnd(best.Action(), ev)
		m.runningShortcut = nil
		m.callDeactivate(best.Action(), best.Index())
		m.forceDeactivateAllActions()
	}

	return m.runningShortcut != nil
}

// tryActivateReadyShortcut activates the highest-priority candidate,
// deactivating a previously ready one when the winner changed.
func (m *Matcher) tryActivateReadyShortcut() {
	var best *shortcut.Stroke
	for _, s := range m.candidateShortcuts {
		if best == nil || s.Priority() > best.Priority() {
			best = s
		}
	}

	if best != nil {
		if m.readyShortcut != nil && m.readyShortcut != best {
			m.callDeactivate(m.readyShortcut.Action(), m.readyShortcut.Index())
			m.readyShortcut = nil
		}
		if m.readyShortcut == nil {
			m.callActivate(best.Action(), best.Index())
			m.readyShortcut = best
		}
	} else if m.readyShortcut != nil {
		m.callDeactivate(m.readyShortcut.Action(), m.readyShortcut.Index())
		m.readyShortcut = nil
	}
}

// tryEndRunningShortcut ends the running stroke if releasing b completes
// its button set. The slot is cleared before End so a re-entrant End
// cannot loop back into the running stroke.
func (m *Matcher) tryEndRunningShortcut(b pointer.Button, ev event.Event) bool {
	if m.runningShortcut == nil {
		m.log.Warn("no running shortcut to end")
		return true
	}
	if m.readyShortcut != nil {
		m.log.Warn("running and ready shortcuts set at the same time")
		m.forceDeactivateAllActions()
	}

	if m.runningShortcut.MatchBegin(m.buttons, b) {
		running := m.runningShortcut
		m.runningShortcut = nil

		m.callEnd(running.Action(), ev)
		m.callDeactivate(running.Action(), running.Index())
	}

	return m.runningShortcut == nil
}

// forceEndRunningShortcut terminates the running stroke with a synthetic
// release event at pos. Used on focus loss and touch cancellation.
func (m *Matcher) forceEndRunningShortcut(pos pointer.Position) {
	if m.runningShortcut == nil {
		m.log.Warn("force end requested without a running shortcut")
		return
	}
	if m.readyShortcut != nil {
		m.log.Warn("running and ready shortcuts set at the same time")
		m.forceDeactivateAllActions()
	}

	running := m.runningShortcut
	m.runningShortcut = nil

	ev := running.FakeEndEvent(pos)
	m.callEnd(running.Action(), ev)
	m.callDeactivate(running.Action(), running.Index())
}

// forceDeactivateAllActions deactivates the ready shortcut, if any.
func (m *Matcher) forceDeactivateAllActions() {
	if m.readyShortcut != nil {
		m.callDeactivate(m.readyShortcut.Action(), m.readyShortcut.Index())
		m.readyShortcut = nil
	}
}

package matcher

import (
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
	"github.com/dshills/canvasinput/internal/input/touch"
)

// TouchBeginEvent starts a new touch sequence: it snapshots the contacts
// and resets the disambiguation state.
func (m *Matcher) TouchBeginEvent(ev touch.Event) bool {
	n := m.notifyRecursion()
	defer n.exit()

	m.lastTouchPoints = append(m.lastTouchPoints[:0], ev.Points...)

	m.maxTouchPoints = ev.Count()
	m.matchingIteration = 1
	m.touchDragDetected = false
	best := ev.Clone()
	m.bestCandidateTouch = &best

	return !n.inRecursion()
}

// TouchUpdateEvent advances the touch disambiguation. Early updates are
// buffered while the contacts stay within the touch slop; after that the
// event either streams into a running drag shortcut or arms a tap.
func (m *Matcher) TouchUpdateEvent(ev touch.Event) bool {
	handled := false
	count := ev.Count()
	m.lastTouchPoints = append(m.lastTouchPoints[:0], ev.Points...)

	// Once a drag is detected it stays a drag until the next TouchBegin.
	for _, p := range ev.Points {
		if m.touchDragDetected {
			break
		}
		if p.Delta().LengthSquared() > m.cfg.TouchSlopSquared {
			m.touchDragDetected = true
		}
	}

	// Buffer the first updates and track the event with the most
	// contacts, so a three-finger tap is not matched as two-finger
	// while the third finger is still landing.
	if m.matchingIteration <= m.cfg.TouchLatencyIterations && !m.touchDragDetected {
		m.matchingIteration++
		m.setMaxTouchPointEvent(ev)
		if m.bestCandidateTouch == nil {
			return false
		}
		return m.matchTouchShortcut(*m.bestCandidateTouch) != nil
	}

	if m.touchDragDetected {
		if m.touchShortcut != nil && !m.touchShortcut.MatchDrag(ev) {
			// an event with a different contact count no longer
			// fits the running shortcut
			handled = m.tryEndTouchShortcut(ev)
		}
		if m.touchShortcut == nil && count >= m.maxTouchPoints {
			m.maxTouchPoints = count
			handled = m.tryRunTouchShortcut(ev)
		} else if m.touchShortcut != nil {
			handled = true
			states := ev.States()
			switch {
			case states.Has(touch.MaskPressed):
				// a finger was lifted and re-added without the
				// shortcut ever ending; tell the action the
				// sequence restarted
				if !m.callBegin(m.touchShortcut.Action(), m.touchShortcut.Index(), ev) {
					m.failTouchShortcut()
				}
			case states.Has(touch.MaskReleased):
				if !m.callEnd(m.touchShortcut.Action(), ev) {
					m.failTouchShortcut()
				}
			default:
				if !m.callInput(m.touchShortcut.Action(), ev) {
					m.failTouchShortcut()
				}
			}
		}
	} else if ev.States().Has(touch.MaskReleased) {
		// a finger lifted without dragging: complete the tap if no
		// later event saw more contacts
		if m.maxTouchPoints <= count {
			m.maxTouchPoints = count
			m.fireReadyTouchShortcut(ev)
			m.bestCandidateTouch = nil
			handled = true
		}
	}

	return handled
}

// TouchEndEvent finishes a touch sequence: a pending tap fires, and any
// running touch shortcut ends.
func (m *Matcher) TouchEndEvent(ev touch.Event) bool {
	// no further touch events will arrive for this sequence
	m.usingTouch = false
	m.maxTouchPoints = 0

	if !m.touchDragDetected && m.bestCandidateTouch != nil {
		m.fireReadyTouchShortcut(*m.bestCandidateTouch)
		m.bestCandidateTouch = nil
	}

	return m.tryEndTouchShortcut(ev)
}

// TouchCancelEvent aborts a touch sequence. A running stroke is force-
// ended at pos; a running touch shortcut ends with a synthetic event
// carrying the last seen contacts, since the OS cancel event may arrive
// stripped of touch points.
func (m *Matcher) TouchCancelEvent(ev touch.Event, pos pointer.Position) {
	m.usingTouch = false
	m.maxTouchPoints = 0

	if m.runningShortcut != nil {
		m.forceEndRunningShortcut(pos)
	}

	if m.touchShortcut != nil {
		ts := m.touchShortcut
		m.touchShortcut = nil

		synthetic := ev.WithPoints(m.lastTouchPoints)
		m.callEnd(ts.Action(), synthetic)
		m.callDeactivate(ts.Action(), ts.Index())
	}
}

// TouchResetStateForPointerEvents restores the pointer ready-shortcut
// state once touch interaction is over.
func (m *Matcher) TouchResetStateForPointerEvents() {
	m.forceDeactivateAllActions()
	m.prepareReadyShortcuts()
	m.tryActivateReadyShortcut()
}

// setMaxTouchPointEvent retains ev as the best candidate if it carries at
// least as many contacts as any event seen so far.
func (m *Matcher) setMaxTouchPointEvent(ev touch.Event) {
	if count := ev.Count(); count >= m.maxTouchPoints {
		m.maxTouchPoints = count
		best := ev.Clone()
		m.bestCandidateTouch = &best
	}
}

// fireReadyTouchShortcut fires the best matching touch shortcut as a
// complete synchronous lifecycle, as taps have no running phase.
func (m *Matcher) fireReadyTouchShortcut(ev touch.Event) {
	best := m.matchTouchShortcut(ev)
	if best == nil {
		return
	}

	if m.callActivate(best.Action(), best.Index()) {
		if m.callBegin(best.Action(), best.Index(), ev) {
			m.callEnd(best.Action(), ev)
		}
		m.callDeactivate(best.Action(), best.Index())
	}
}

// matchTouchShortcut selects the highest-priority touch shortcut whose
// gesture family matches the drag flag and whose contact range fits.
func (m *Matcher) matchTouchShortcut(ev touch.Event) *shortcut.Touch {
	var best *shortcut.Touch
	for _, s := range m.touchShortcuts {
		if !s.Available(m.actionGroupMask()) {
			continue
		}
		matched := (m.touchDragDetected && s.MatchDrag(ev)) ||
			(!m.touchDragDetected && s.MatchTap(ev))
		if !matched {
			continue
		}
		if best == nil || s.Priority() > best.Priority() {
			best = s
		}
	}
	return best
}

// tryRunTouchShortcut promotes the best matching drag shortcut to
// running, first clearing any pointer-side stroke state.
func (m *Matcher) tryRunTouchShortcut(ev touch.Event) bool {
	best := m.matchTouchShortcut(ev)

	if m.actionsSuppressed() {
		return false
	}
	if best == nil {
		return false
	}

	if m.runningShortcut != nil {
		// end the pointer stroke with a synthetic all-released event
		released := ev.Clone()
		for i := range released.Points {
			released.Points[i].State = touch.StateReleased
		}
		running := m.runningShortcut
		m.runningShortcut = nil
		m.callEnd(running.Action(), released)
		m.callDeactivate(running.Action(), running.Index())
	}

	// keyboard and button shortcuts are not matched against the touch
	// system; an armed ready shortcut must be deactivated so the stroke
	// state machine stays consistent
	if m.readyShortcut != nil {
		m.callDeactivate(m.readyShortcut.Action(), m.readyShortcut.Index())
		m.readyShortcut = nil
	}

	m.touchShortcut = best
	m.usingTouch = true

	guard := m.beginGuard()
	activated := m.callActivate(best.Action(), best.Index())
	ok := activated && m.callBegin(best.Action(), best.Index(), ev)

	switch {
	case !ok:
		m.touchShortcut = nil
		if activated {
			m.callDeactivate(best.Action(), best.Index())
		}
		m.forceDeactivateAllActions()
	case guard.brokenByRecursion():
		// the action might have opened a dialog that pumped the
		// event loop back into the matcher
		m.callEnd(best.Action(), ev)
		m.touchShortcut = nil
		m.callDeactivate(best.Action(), best.Index())
		m.forceDeactivateAllActions()
	}

	return m.touchShortcut != nil
}

// tryEndTouchShortcut ends the running touch shortcut, if any. The slot
// is cleared before End so a re-entrant End cannot loop back.
func (m *Matcher) tryEndTouchShortcut(ev touch.Event) bool {
	if m.touchShortcut == nil {
		return false
	}

	ts := m.touchShortcut
	m.touchShortcut = nil

	m.callEnd(ts.Action(), ev)
	m.callDeactivate(ts.Action(), ts.Index())
	return true
}

// failTouchShortcut terminates the running touch shortcut after its
// action failed.
func (m *Matcher) failTouchShortcut() {
	ts := m.touchShortcut
	m.touchShortcut = nil
	m.callDeactivate(ts.Action(), ts.Index())
}

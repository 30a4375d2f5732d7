package matcher

import (
	"github.com/dshills/canvasinput/internal/input/event"
	"github.com/dshills/canvasinput/internal/input/shortcut"
)

// Action methods are external code and may panic. The matcher's contract
// is that a failing action is treated as terminated: the caller clears the
// running slot and deactivates, and event processing continues. These
// helpers recover, log, and report success so call sites can do that.

func (m *Matcher) callActivate(a shortcut.Action, index int) (ok bool) {
	defer m.recoverActionFailure("activate", &ok)
	a.Activate(index)
	return true
}

func (m *Matcher) callBegin(a shortcut.Action, index int, ev event.Event) (ok bool) {
	defer m.recoverActionFailure("begin", &ok)
	a.Begin(index, ev)
	return true
}

func (m *Matcher) callInput(a shortcut.Action, ev event.Event) (ok bool) {
	defer m.recoverActionFailure("inputEvent", &ok)
	a.InputEvent(ev)
	return true
}

func (m *Matcher) callEnd(a shortcut.Action, ev event.Event) (ok bool) {
	defer m.recoverActionFailure("end", &ok)
	a.End(ev)
	return true
}

func (m *Matcher) callDeactivate(a shortcut.Action, index int) {
	var ok bool
	defer m.recoverActionFailure("deactivate", &ok)
	a.Deactivate(index)
}

func (m *Matcher) recoverActionFailure(call string, ok *bool) {
	if r := recover(); r != nil {
		m.log.Warn("input action failed", "call", call, "panic", r)
		*ok = false
	}
}

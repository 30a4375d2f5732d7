package matcher

// The only concurrency hazard the matcher faces is synchronous re-entry:
// an action's Begin pumping its own event loop (a modal dialog) and
// re-invoking matcher entry points from inside the call. Two scoped
// helpers detect this. Both rely on deferred exit calls so the counters
// are restored on every exit path.

// recursionNotifier tracks entry into a public entry point.
type recursionNotifier struct {
	m *Matcher
}

// notifyRecursion is called at the top of the key, button, pointer, wheel,
// focus and reinitialisation entry points, TouchBeginEvent and
// NativeGestureBeginEvent (RecoveryModifiersWithoutFocus calls it after its
// synthetic key events). TouchUpdateEvent, TouchEndEvent, TouchCancelEvent,
// TouchResetStateForPointerEvents, NativeGestureEvent and
// NativeGestureEndEvent do not call it, so re-entry through them is not
// counted. The caller must defer exit().
func (m *Matcher) notifyRecursion() recursionNotifier {
	m.recursionDepth++
	m.brokenByRecursion++
	return recursionNotifier{m: m}
}

// inRecursion returns true if this entry point runs nested inside another.
// An entry point observing recursion must refuse to start new work and
// force-deactivate everything instead.
func (n recursionNotifier) inRecursion() bool {
	return n.m.recursionDepth > 1
}

// exit restores the recursion depth.
func (n recursionNotifier) exit() {
	n.m.recursionDepth--
}

// recursionGuard brackets a single Begin call.
type recursionGuard struct {
	m *Matcher
}

// beginGuard is called just before invoking an action's Begin.
func (m *Matcher) beginGuard() recursionGuard {
	m.brokenByRecursion = 0
	return recursionGuard{m: m}
}

// brokenByRecursion returns true if some other matcher entry point ran
// nested inside the guarded Begin. The caller must then end the action,
// clear the running slot, and deactivate everything.
func (g recursionGuard) brokenByRecursion() bool {
	return g.m.brokenByRecursion > 0
}

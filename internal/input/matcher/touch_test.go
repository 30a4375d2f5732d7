package matcher

import (
	"testing"

	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
	"github.com/dshills/canvasinput/internal/input/touch"
)

// touchEvent builds an event with n contacts in the given state. The
// first contact is offset from its start position by (dx, dy).
func touchEvent(n int, state touch.PointState, dx, dy float64) touch.Event {
	points := make([]touch.Point, n)
	for i := range points {
		start := pointer.Position{X: float64(20 * i), Y: 40}
		points[i] = touch.Point{ID: i, Pos: start, StartPos: start, State: state}
	}
	if n > 0 {
		points[0].Pos.X += dx
		points[0].Pos.Y += dy
	}
	return touch.Event{Points: points}
}

func TestTouchTapThreeFinger(t *testing.T) {
	m := newTestMatcher()
	tap := &recordingAction{name: "T3"}
	drag := &recordingAction{name: "D3"}
	m.AddTouch(shortcut.NewTouch(tap, 0, shortcut.GestureTap, 3, 3))
	m.AddTouch(shortcut.NewTouch(drag, 1, shortcut.GestureDrag, 3, 3))

	m.TouchBeginEvent(touchEvent(3, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(3, touch.StateStationary, 4, 0))
	m.TouchUpdateEvent(touchEvent(3, touch.StateStationary, 8, 0))

	if len(tap.calls) != 0 {
		t.Fatalf("tap fired before the sequence ended: %v", tap.calls)
	}

	m.TouchEndEvent(touchEvent(3, touch.StateReleased, 8, 0))

	checkCalls(t, tap, []string{"activate(0)", "begin(0)", "end", "deactivate(0)"})
	if len(drag.calls) != 0 {
		t.Errorf("drag action fired for a tap: %v", drag.calls)
	}
}

func TestTouchDragThreeFinger(t *testing.T) {
	m := newTestMatcher()
	tap := &recordingAction{name: "T3"}
	drag := &recordingAction{name: "D3"}
	m.AddTouch(shortcut.NewTouch(tap, 0, shortcut.GestureTap, 3, 3))
	m.AddTouch(shortcut.NewTouch(drag, 1, shortcut.GestureDrag, 3, 3))

	m.TouchBeginEvent(touchEvent(3, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(3, touch.StateMoved, 25, 0))
	checkCalls(t, drag, []string{"activate(1)", "begin(1)"})

	m.TouchUpdateEvent(touchEvent(3, touch.StateMoved, 30, 0))
	m.TouchUpdateEvent(touchEvent(3, touch.StateStationary, 30, 0))
	if len(drag.inputEvents) != 2 {
		t.Fatalf("inputEvents = %d, want 2 (stationary updates forward too)", len(drag.inputEvents))
	}

	m.TouchEndEvent(touchEvent(3, touch.StateReleased, 30, 0))
	checkCalls(t, drag, []string{"activate(1)", "begin(1)", "inputEvent", "inputEvent", "end", "deactivate(1)"})
	if len(tap.calls) != 0 {
		t.Errorf("tap action fired for a drag: %v", tap.calls)
	}
}

func TestTouchSlopBoundary(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		wantDrag bool
	}{
		{name: "exactly at slop stays a tap", dx: 16, dy: 0, wantDrag: false},
		{name: "one past slop becomes a drag", dx: 16, dy: 1, wantDrag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatcher()
			m.TouchBeginEvent(touchEvent(1, touch.StatePressed, 0, 0))
			m.TouchUpdateEvent(touchEvent(1, touch.StateMoved, tt.dx, tt.dy))

			if m.touchDragDetected != tt.wantDrag {
				t.Errorf("touchDragDetected = %v, want %v (delta² = %v)",
					m.touchDragDetected, tt.wantDrag, tt.dx*tt.dx+tt.dy*tt.dy)
			}
		})
	}
}

func TestTouchEarlyWindowCommitsOnEleventh(t *testing.T) {
	m := newTestMatcher()
	tap := &recordingAction{name: "T1"}
	m.AddTouch(shortcut.NewTouch(tap, 0, shortcut.GestureTap, 1, 1))

	m.TouchBeginEvent(touchEvent(1, touch.StatePressed, 0, 0))

	for i := 0; i < 10; i++ {
		m.TouchUpdateEvent(touchEvent(1, touch.StateStationary, 0, 0))
		if len(tap.calls) != 0 {
			t.Fatalf("tap fired inside the early window (update %d): %v", i+1, tap.calls)
		}
	}

	// the 11th update is past the latency buffer; a lifted finger
	// completes the tap
	m.TouchUpdateEvent(touchEvent(1, touch.StateReleased, 0, 0))
	checkCalls(t, tap, []string{"activate(0)", "begin(0)", "end", "deactivate(0)"})
}

func TestTouchPrefersEventWithMostContacts(t *testing.T) {
	m := newTestMatcher()
	two := &recordingAction{name: "T2"}
	three := &recordingAction{name: "T3"}
	m.AddTouch(shortcut.NewTouch(two, 0, shortcut.GestureTap, 2, 2))
	m.AddTouch(shortcut.NewTouch(three, 0, shortcut.GestureTap, 3, 3))

	// the third finger lands one update late; the best-candidate buffer
	// must absorb the latency
	m.TouchBeginEvent(touchEvent(2, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(3, touch.StatePressed, 0, 0))
	m.TouchEndEvent(touchEvent(3, touch.StateReleased, 0, 0))

	checkCalls(t, three, []string{"activate(0)", "begin(0)", "end", "deactivate(0)"})
	if len(two.calls) != 0 {
		t.Errorf("two-finger tap fired despite three contacts: %v", two.calls)
	}
}

func TestTouchCancelEndsRunningTouch(t *testing.T) {
	m := newTestMatcher()
	drag := &recordingAction{name: "D"}
	m.AddTouch(shortcut.NewTouch(drag, 0, shortcut.GestureDrag, 1, 5))

	m.TouchBeginEvent(touchEvent(2, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(2, touch.StateMoved, 40, 0))
	checkCalls(t, drag, []string{"activate(0)", "begin(0)"})

	// the OS cancel event arrives stripped of contacts; the matcher
	// reconstructs one from the last seen points
	m.TouchCancelEvent(touch.Event{}, pointer.Position{X: 5, Y: 5})

	checkCalls(t, drag, []string{"activate(0)", "begin(0)", "end", "deactivate(0)"})
	endEv, ok := drag.lastEndEvent.(touch.Event)
	if !ok {
		t.Fatalf("end event = %T, want touch.Event", drag.lastEndEvent)
	}
	if endEv.Count() != 2 {
		t.Errorf("synthetic cancel event carries %d contacts, want 2", endEv.Count())
	}
}

func TestTouchCancelForceEndsRunningStroke(t *testing.T) {
	m := newTestMatcher()
	stroke := &recordingAction{name: "S"}
	m.AddStroke(shortcut.NewStroke(stroke, 0, key.NewSet(), pointer.NewSet(pointer.ButtonLeft)))

	m.ButtonPressed(pointer.ButtonLeft, pointer.Event{Button: pointer.ButtonLeft})
	if !m.HasRunningShortcut() {
		t.Fatal("stroke should be running")
	}

	m.TouchCancelEvent(touch.Event{}, pointer.Position{X: 7, Y: 9})

	if m.HasRunningShortcut() {
		t.Fatal("stroke must be force-ended on touch cancel")
	}
	endEv, ok := stroke.lastEndEvent.(pointer.Event)
	if !ok {
		t.Fatalf("end event = %T, want pointer.Event", stroke.lastEndEvent)
	}
	if endEv.Pos.X != 7 || endEv.Pos.Y != 9 {
		t.Errorf("end event pos = %v, want (7,9)", endEv.Pos)
	}
}

func TestTouchReBeginOnLateContact(t *testing.T) {
	m := newTestMatcher()
	drag := &recordingAction{name: "D"}
	m.AddTouch(shortcut.NewTouch(drag, 0, shortcut.GestureDrag, 1, 5))

	m.TouchBeginEvent(touchEvent(2, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(2, touch.StateMoved, 40, 0))
	checkCalls(t, drag, []string{"activate(0)", "begin(0)"})

	// a finger lifted and re-landed without the shortcut ending; the
	// pressed state tells the action the sequence restarted
	m.TouchUpdateEvent(touchEvent(2, touch.StatePressed, 40, 0))
	checkCalls(t, drag, []string{"activate(0)", "begin(0)", "begin(0)"})
}

func TestButtonsIgnoredWhileTouching(t *testing.T) {
	m := newTestMatcher()
	stroke := &recordingAction{name: "S"}
	drag := &recordingAction{name: "D"}
	m.AddStroke(shortcut.NewStroke(stroke, 0, key.NewSet(), pointer.NewSet(pointer.ButtonLeft)))
	m.AddTouch(shortcut.NewTouch(drag, 0, shortcut.GestureDrag, 1, 5))

	m.TouchBeginEvent(touchEvent(1, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(1, touch.StateMoved, 40, 0))
	if len(drag.calls) == 0 {
		t.Fatal("drag shortcut should be running")
	}

	if m.ButtonPressed(pointer.ButtonLeft, pointer.Event{Button: pointer.ButtonLeft}) {
		t.Fatal("button press must be ignored while touch input is in use")
	}
	if len(stroke.calls) != 0 {
		t.Errorf("stroke action driven during touch input: %v", stroke.calls)
	}
}

func TestTouchPromotionDeactivatesReadyStroke(t *testing.T) {
	m := newTestMatcher()
	ready := &recordingAction{name: "ready"}
	drag := &recordingAction{name: "D"}
	m.AddStroke(shortcut.NewStroke(ready, 0, key.NewSet(key.KeySpace), pointer.NewSet(pointer.ButtonLeft)))
	m.AddTouch(shortcut.NewTouch(drag, 0, shortcut.GestureDrag, 1, 5))

	m.KeyPressed(key.KeySpace)
	checkCalls(t, ready, []string{"activate(0)"})

	m.TouchBeginEvent(touchEvent(1, touch.StatePressed, 0, 0))
	m.TouchUpdateEvent(touchEvent(1, touch.StateMoved, 40, 0))

	checkCalls(t, ready, []string{"activate(0)", "deactivate(0)"})
	checkCalls(t, drag, []string{"activate(0)", "begin(0)"})
}

func TestTouchResetStateForPointerEvents(t *testing.T) {
	m := newTestMatcher()
	ready := &recordingAction{name: "ready"}
	m.AddStroke(shortcut.NewStroke(ready, 0, key.NewSet(key.KeySpace), pointer.NewSet(pointer.ButtonLeft)))

	m.KeyPressed(key.KeySpace)
	checkCalls(t, ready, []string{"activate(0)"})

	m.TouchResetStateForPointerEvents()

	// the ready shortcut is re-armed against the current key state
	checkCalls(t, ready, []string{"activate(0)", "deactivate(0)", "activate(0)"})
}

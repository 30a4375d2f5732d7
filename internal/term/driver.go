// Package term translates tcell terminal events into canvas input
// matcher entry points. It is the event-transport adapter used by the
// demo application; real canvas hosts feed the matcher from their own
// windowing system.
package term

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/matcher"
	"github.com/dshills/canvasinput/internal/input/pointer"
)

// Driver feeds a matcher from tcell events. Terminals do not report key
// releases, so every translated key press is followed by a synthetic
// release; modifier keys are reconstructed by diffing the modifier mask
// between events.
type Driver struct {
	m    *matcher.Matcher
	log  *slog.Logger
	mods key.Modifier

	buttons tcell.ButtonMask
	lastPos pointer.Position
}

// NewDriver creates a driver for the matcher.
func NewDriver(m *matcher.Matcher) *Driver {
	return &Driver{m: m, log: slog.Default()}
}

// SetLogger sets the diagnostics logger.
func (d *Driver) SetLogger(log *slog.Logger) {
	d.log = log
}

// HandleEvent dispatches one tcell event into the matcher. Returns true
// if the event triggered a shortcut.
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(tev)
	case *tcell.EventMouse:
		return d.handleMouse(tev)
	case *tcell.EventFocus:
		d.handleFocus(tev)
		return false
	default:
		return false
	}
}

func (d *Driver) handleKey(ev *tcell.EventKey) bool {
	d.syncModifiers(translateModifiers(ev.Modifiers()))

	k := translateKey(ev)
	if k == key.KeyNone {
		d.log.Debug("unmapped terminal key", "key", ev.Key(), "rune", ev.Rune())
		return false
	}

	handled := d.m.KeyPressed(k)
	d.m.KeyReleased(k)
	return handled
}

func (d *Driver) handleMouse(ev *tcell.EventMouse) bool {
	d.syncModifiers(translateModifiers(ev.Modifiers()))

	x, y := ev.Position()
	pos := pointer.Position{X: float64(x), Y: float64(y)}

	handled := false
	mask := ev.Buttons()

	if wheel := translateWheel(mask); wheel != pointer.WheelNone {
		wheelEv := pointer.WheelEvent{Pos: pos, Action: wheel, Delta: wheelDelta(wheel)}
		handled = d.m.WheelEvent(wheel, wheelEv) || handled
	}

	pressed := mask &^ d.buttons
	released := d.buttons &^ mask
	d.buttons = mask

	for tb, b := range buttonMap {
		if pressed&tb != 0 {
			handled = d.m.ButtonPressed(b, pointer.Event{Pos: pos, Button: b}) || handled
		}
		if released&tb != 0 {
			handled = d.m.ButtonReleased(b, pointer.Event{Pos: pos, Button: b}) || handled
		}
	}

	if pressed == 0 && released == 0 && pos != d.lastPos {
		handled = d.m.PointerMoved(pointer.Event{Pos: pos}) || handled
	}
	d.lastPos = pos

	return handled
}

func (d *Driver) handleFocus(ev *tcell.EventFocus) {
	if ev.Focused {
		d.m.EnterEvent()
		return
	}
	d.m.LostFocusEvent(d.lastPos)
	d.m.LeaveEvent()
}

// syncModifiers reconciles the matcher's modifier keys with the mask
// reported on the latest event.
func (d *Driver) syncModifiers(mods key.Modifier) {
	if mods == d.mods {
		return
	}

	for _, mk := range []key.Key{key.KeyShift, key.KeyControl, key.KeyAlt, key.KeyMeta} {
		bit := key.ModifierForKey(mk)
		switch {
		case mods.Has(bit) && !d.mods.Has(bit):
			d.m.KeyPressed(mk)
		case !mods.Has(bit) && d.mods.Has(bit):
			d.m.KeyReleased(mk)
		}
	}
	d.mods = mods
}

// buttonMap maps tcell button bits to pointer buttons.
var buttonMap = map[tcell.ButtonMask]pointer.Button{
	tcell.Button1: pointer.ButtonLeft,
	tcell.Button2: pointer.ButtonRight,
	tcell.Button3: pointer.ButtonMiddle,
	tcell.Button4: pointer.ButtonBack,
	tcell.Button5: pointer.ButtonForward,
}

// translateModifiers converts a tcell modifier mask.
func translateModifiers(mods tcell.ModMask) key.Modifier {
	var out key.Modifier
	if mods&tcell.ModShift != 0 {
		out = out.With(key.ModShift)
	}
	if mods&tcell.ModCtrl != 0 {
		out = out.With(key.ModCtrl)
	}
	if mods&tcell.ModAlt != 0 {
		out = out.With(key.ModAlt)
	}
	if mods&tcell.ModMeta != 0 {
		out = out.With(key.ModMeta)
	}
	return out
}

// translateWheel converts tcell wheel bits to a wheel action.
func translateWheel(mask tcell.ButtonMask) pointer.WheelAction {
	switch {
	case mask&tcell.WheelUp != 0:
		return pointer.WheelUp
	case mask&tcell.WheelDown != 0:
		return pointer.WheelDown
	case mask&tcell.WheelLeft != 0:
		return pointer.WheelLeft
	case mask&tcell.WheelRight != 0:
		return pointer.WheelRight
	default:
		return pointer.WheelNone
	}
}

// wheelDelta returns the unit delta for a wheel direction.
func wheelDelta(w pointer.WheelAction) pointer.Position {
	switch w {
	case pointer.WheelUp:
		return pointer.Position{Y: -1}
	case pointer.WheelDown:
		return pointer.Position{Y: 1}
	case pointer.WheelLeft:
		return pointer.Position{X: -1}
	case pointer.WheelRight:
		return pointer.Position{X: 1}
	default:
		return pointer.Position{}
	}
}

// translateKey converts a tcell key event to a canvas key.
func translateKey(ev *tcell.EventKey) key.Key {
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return key.KeySpace
		}
		return key.FromRune(ev.Rune())
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return key.KeyF1 + key.Key(k-tcell.KeyF1)
	}

	// control characters arrive as dedicated key codes with the rune
	// stripped; recover the letter
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.KeyA + key.Key(k-tcell.KeyCtrlA)
	}

	return key.KeyNone
}

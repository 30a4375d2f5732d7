// Package luaaction adapts Lua scripts to the canvas Action interface, so
// input actions can be defined without recompiling. A script declares any
// of the lifecycle functions:
//
//	function activate(index) end
//	function begin(index, event) end
//	function input_event(event) end
//	function finish(event) end
//	function deactivate(index) end
//	function supports_hires(index) return false end
//
// Undeclared functions are skipped. Events arrive as tables with a "kind"
// field ("pointer", "wheel", "touch", "gesture") and kind-specific fields.
//
// gopher-lua's LState is not goroutine-safe; like the matcher itself, a
// lua action must only be driven from the UI goroutine.
package luaaction

import (
	"fmt"
	"log/slog"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/canvasinput/internal/input/event"
	"github.com/dshills/canvasinput/internal/input/gesture"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/touch"
)

// Lifecycle function names looked up in the script's globals. Lua
// reserves "end", so the End hook is named "finish".
const (
	fnActivate      = "activate"
	fnBegin         = "begin"
	fnInputEvent    = "input_event"
	fnFinish        = "finish"
	fnDeactivate    = "deactivate"
	fnSupportsHiRes = "supports_hires"
)

// Action drives a Lua script through the canvas action lifecycle.
type Action struct {
	L   *lua.LState
	log *slog.Logger
}

// Option configures an Action.
type Option func(*Action)

// WithLogger sets the logger for script failures.
func WithLogger(log *slog.Logger) Option {
	return func(a *Action) { a.log = log }
}

// New compiles and runs the script, keeping its globals for lifecycle
// dispatch. The caller owns the action and must Close it.
func New(script string, opts ...Option) (*Action, error) {
	L := lua.NewState()

	// same restriction set the plugin sandbox applies: no loading of
	// further chunks from within the script
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading action script: %w", err)
	}

	a := &Action{L: L, log: slog.Default()}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Close releases the Lua state.
func (a *Action) Close() {
	a.L.Close()
}

// Activate implements shortcut.Action.
func (a *Action) Activate(index int) {
	a.call(fnActivate, lua.LNumber(index))
}

// Begin implements shortcut.Action.
func (a *Action) Begin(index int, ev event.Event) {
	a.call(fnBegin, lua.LNumber(index), a.eventTable(ev))
}

// InputEvent implements shortcut.Action.
func (a *Action) InputEvent(ev event.Event) {
	a.call(fnInputEvent, a.eventTable(ev))
}

// End implements shortcut.Action.
func (a *Action) End(ev event.Event) {
	a.call(fnFinish, a.eventTable(ev))
}

// Deactivate implements shortcut.Action.
func (a *Action) Deactivate(index int) {
	a.call(fnDeactivate, lua.LNumber(index))
}

// SupportsHiResInputEvents implements shortcut.Action.
func (a *Action) SupportsHiResInputEvents(index int) bool {
	fn := a.L.GetGlobal(fnSupportsHiRes)
	if fn.Type() != lua.LTFunction {
		return false
	}

	if err := a.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, lua.LNumber(index)); err != nil {
		a.log.Warn("lua action call failed", "fn", fnSupportsHiRes, "error", err)
		return false
	}
	ret := a.L.Get(-1)
	a.L.Pop(1)
	return lua.LVAsBool(ret)
}

// call invokes a lifecycle function if the script declares it.
func (a *Action) call(name string, args ...lua.LValue) {
	fn := a.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return
	}

	if err := a.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...); err != nil {
		a.log.Warn("lua action call failed", "fn", name, "error", err)
	}
}

// eventTable converts an input event into a Lua table.
func (a *Action) eventTable(ev event.Event) lua.LValue {
	if ev == nil {
		return lua.LNil
	}

	t := a.L.NewTable()
	switch e := ev.(type) {
	case pointer.Event:
		t.RawSetString("kind", lua.LString("pointer"))
		t.RawSetString("x", lua.LNumber(e.Pos.X))
		t.RawSetString("y", lua.LNumber(e.Pos.Y))
		t.RawSetString("button", lua.LString(e.Button.String()))
		t.RawSetString("synthetic", lua.LBool(e.Synthetic))

	case pointer.WheelEvent:
		t.RawSetString("kind", lua.LString("wheel"))
		t.RawSetString("action", lua.LString(e.Action.String()))
		t.RawSetString("x", lua.LNumber(e.Pos.X))
		t.RawSetString("y", lua.LNumber(e.Pos.Y))
		t.RawSetString("dx", lua.LNumber(e.Delta.X))
		t.RawSetString("dy", lua.LNumber(e.Delta.Y))

	case touch.Event:
		t.RawSetString("kind", lua.LString("touch"))
		points := a.L.NewTable()
		for _, p := range e.Points {
			pt := a.L.NewTable()
			pt.RawSetString("id", lua.LNumber(p.ID))
			pt.RawSetString("x", lua.LNumber(p.Pos.X))
			pt.RawSetString("y", lua.LNumber(p.Pos.Y))
			pt.RawSetString("start_x", lua.LNumber(p.StartPos.X))
			pt.RawSetString("start_y", lua.LNumber(p.StartPos.Y))
			pt.RawSetString("state", lua.LString(p.State.String()))
			points.Append(pt)
		}
		t.RawSetString("points", points)

	case gesture.Event:
		t.RawSetString("kind", lua.LString("gesture"))
		t.RawSetString("gesture", lua.LString(e.Kind.String()))
		t.RawSetString("x", lua.LNumber(e.Pos.X))
		t.RawSetString("y", lua.LNumber(e.Pos.Y))
		t.RawSetString("value", lua.LNumber(e.Value))

	default:
		t.RawSetString("kind", lua.LString("unknown"))
	}

	return t
}

package main

import (
	"sort"

	"github.com/dshills/canvasinput/internal/feedback"
	"github.com/dshills/canvasinput/internal/input/event"
)

// statusBoard tracks the lifecycle state of every demo action for the
// renderer.
type statusBoard struct {
	states map[string]feedback.State
	order  []string
}

func newStatusBoard() *statusBoard {
	return &statusBoard{states: make(map[string]feedback.State)}
}

// action creates a demo action that mirrors its lifecycle into the board.
func (b *statusBoard) action(name string) *statusAction {
	if _, ok := b.states[name]; !ok {
		b.states[name] = feedback.StateIdle
		b.order = append(b.order, name)
		sort.Strings(b.order)
	}
	return &statusAction{board: b, name: name}
}

type statusLine struct {
	name  string
	state feedback.State
}

// lines returns the board rows in stable order.
func (b *statusBoard) lines() []statusLine {
	lines := make([]statusLine, 0, len(b.order))
	for _, name := range b.order {
		lines = append(lines, statusLine{name: name, state: b.states[name]})
	}
	return lines
}

// statusAction is a demo action whose only work is reporting its state.
type statusAction struct {
	board *statusBoard
	name  string
}

func (a *statusAction) Activate(int) {
	a.board.states[a.name] = feedback.StateReady
}

func (a *statusAction) Begin(int, event.Event) {
	a.board.states[a.name] = feedback.StateRunning
}

func (a *statusAction) InputEvent(event.Event) {}

func (a *statusAction) End(event.Event) {
	a.board.states[a.name] = feedback.StateReady
}

func (a *statusAction) Deactivate(int) {
	a.board.states[a.name] = feedback.StateIdle
}

func (a *statusAction) SupportsHiResInputEvents(int) bool { return false }

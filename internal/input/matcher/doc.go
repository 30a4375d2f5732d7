// Package matcher implements the canvas input shortcut matcher: the state
// machine that interprets streams of low-level input events and dispatches
// them to registered actions.
//
// # Engines
//
// Four engines share the matcher's state:
//
//   - Single-action: discrete key and wheel shortcuts, fired synchronously.
//   - Stroke: two-phase key+button shortcuts (Idle, ReadyActivated,
//     Running) driving continuous pointer interaction.
//   - Touch: multi-touch tap/drag disambiguation with a latency window
//     that absorbs fingers landing a few events apart.
//   - Native gesture: single-shot OS gesture lifecycle.
//
// At most one stroke, touch, or native gesture shortcut runs at a time,
// and every action invocation observes a paired lifecycle: Activate,
// Begin, InputEvent..., End, Deactivate — or Activate directly followed
// by Deactivate when an armed shortcut is abandoned.
//
// # Re-entrancy
//
// The matcher is single-goroutine; the one concurrency hazard is an
// action's Begin pumping its own event loop and re-invoking matcher
// entry points. Scoped recursion counters detect this and force-terminate
// the affected action so no dangling activation survives a modal dialog.
package matcher

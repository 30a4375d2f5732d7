// Package key defines keyboard keys, key sets, and chord sequences for the
// canvas input system.
//
// Unlike text-entry oriented key handling, the canvas matcher cares about
// which keys are held *right now*: shortcuts are expressed as key sets, and
// modifier keys are tracked as ordinary keys. Chords and sequences exist
// only for interoperating with menu-level accelerators, which describe
// their bindings in "Ctrl+C" notation.
package key

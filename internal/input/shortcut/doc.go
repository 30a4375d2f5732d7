// Package shortcut defines the Action lifecycle contract, action group
// masks, and the four shortcut descriptor kinds the matcher dispatches on:
// single-action, stroke, touch, and native gesture.
//
// The kinds carry disjoint matching predicates and are kept as distinct
// types; the matcher switches over them explicitly rather than dispatching
// through a common interface.
package shortcut

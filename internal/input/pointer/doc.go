// Package pointer defines pointer buttons, button sets, positions, and the
// pointer and wheel event types consumed by the canvas input matcher.
package pointer

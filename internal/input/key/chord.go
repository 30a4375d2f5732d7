package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Chord is one simultaneous key combination, such as Ctrl+C: a set of
// held keys plus the final triggering key.
type Chord struct {
	// Keys are the keys held while the trigger is struck, usually modifiers.
	Keys Set

	// Trigger is the key that completes the chord.
	Trigger Key
}

// NewChord creates a chord from held keys and a trigger.
func NewChord(trigger Key, held ...Key) Chord {
	return Chord{Keys: NewSet(held...), Trigger: trigger}
}

// Equal returns true if both chords have the same held keys and trigger.
func (c Chord) Equal(other Chord) bool {
	return c.Trigger == other.Trigger && c.Keys.Equal(other.Keys)
}

// String returns a "Shift+Ctrl+Z" style representation: the held keys in
// Set.String order, then the trigger.
func (c Chord) String() string {
	if c.Keys.Len() == 0 {
		return c.Trigger.String()
	}
	return c.Keys.String() + "+" + c.Trigger.String()
}

// Sequence is an ordered list of chords, as used by menu accelerators
// ("Ctrl+X Ctrl+S"). Most sequences are a single chord.
type Sequence []Chord

// StartsWith returns true if the sequence begins with the given prefix.
// An empty prefix never matches.
func (s Sequence) StartsWith(prefix Sequence) bool {
	if len(prefix) == 0 || len(prefix) > len(s) {
		return false
	}
	for i, c := range prefix {
		if !s[i].Equal(c) {
			return false
		}
	}
	return true
}

// String returns the chords joined by spaces.
func (s Sequence) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

// ParseChord parses a single chord specification like "Ctrl+C" or
// "Ctrl+Shift+Z". The last component is the trigger; preceding components
// are held keys.
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	parts := strings.Split(spec, "+")
	trigger := FromName(parts[len(parts)-1])
	if trigger == KeyNone {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, parts[len(parts)-1])
	}

	held := NewSet()
	for _, p := range parts[:len(parts)-1] {
		k := FromName(p)
		if k == KeyNone {
			return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, p)
		}
		held.Add(k)
	}

	return Chord{Keys: held, Trigger: trigger}, nil
}

// ParseSequence parses a space-separated list of chord specifications,
// for example "Ctrl+X Ctrl+S".
func ParseSequence(spec string) (Sequence, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, ErrEmptySpec
	}

	var seq Sequence
	for _, field := range strings.Fields(spec) {
		c, err := ParseChord(field)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", spec, err)
		}
		seq = append(seq, c)
	}
	return seq, nil
}

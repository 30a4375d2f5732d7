package key

import (
	"sort"
	"strings"
)

// Set is an unordered collection of keys, used to model the keys
// currently held and the key requirements of shortcuts.
type Set map[Key]struct{}

// NewSet creates a set containing the given keys.
func NewSet(keys ...Key) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add inserts a key into the set.
func (s Set) Add(k Key) {
	s[k] = struct{}{}
}

// Remove deletes a key from the set.
func (s Set) Remove(k Key) {
	delete(s, k)
}

// Contains returns true if the key is in the set.
func (s Set) Contains(k Key) bool {
	_, ok := s[k]
	return ok
}

// Len returns the number of keys in the set.
func (s Set) Len() int {
	return len(s)
}

// Clear removes all keys from the set.
func (s Set) Clear() {
	for k := range s {
		delete(s, k)
	}
}

// Equal returns true if both sets contain exactly the same keys.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for k := range s {
		clone[k] = struct{}{}
	}
	return clone
}

// Keys returns the keys in a stable sorted order.
func (s Set) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// String returns a stable "Shift+Ctrl" style representation, with keys
// in the order of Keys.
func (s Set) String() string {
	keys := s.Keys()
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, "+")
}

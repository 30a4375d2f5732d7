package matcher

import (
	"log/slog"

	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
	"github.com/dshills/canvasinput/internal/input/touch"
)

// Matcher interprets streams of low-level input events and dispatches
// them to registered actions according to priority and matching rules.
//
// One Matcher instance is private to one canvas. All entry points are
// called from the UI goroutine in sequence; the matcher owns no timers
// and no background work, and the only concurrency it handles is
// synchronous re-entry through an action's Begin.
type Matcher struct {
	cfg Config
	log *slog.Logger

	// Shortcut catalogues, in registration order. On equal priority the
	// earlier registration wins.
	singleActionShortcuts  []*shortcut.SingleAction
	strokeShortcuts        []*shortcut.Stroke
	touchShortcuts         []*shortcut.Touch
	nativeGestureShortcuts []*shortcut.NativeGesture

	// suppressedSingles holds single-action shortcuts hidden because
	// their chord conflicts with a menu-level accelerator.
	suppressedSingles map[*shortcut.SingleAction]struct{}

	// keys and buttons model what is currently held.
	keys    key.Set
	buttons pointer.Set

	// Stroke engine state. runningShortcut and readyShortcut are never
	// both set.
	runningShortcut    *shortcut.Stroke
	readyShortcut      *shortcut.Stroke
	candidateShortcuts []*shortcut.Stroke

	// Touch engine state.
	touchShortcut      *shortcut.Touch
	lastTouchPoints    []touch.Point
	maxTouchPoints     int
	matchingIteration  int
	touchDragDetected  bool
	bestCandidateTouch *touch.Event

	// Native gesture engine state.
	nativeGestureShortcut *shortcut.NativeGesture

	actionGroupMask    func() shortcut.GroupMask
	suppressAll        bool
	cursorEntered      bool
	usingTouch         bool
	usingNativeGesture bool

	recursionDepth    int
	brokenByRecursion int
}

// New creates an empty matcher with the default configuration.
func New() *Matcher {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an empty matcher with the given configuration.
func NewWithConfig(cfg Config) *Matcher {
	cfg = cfg.normalize()
	return &Matcher{
		cfg:               cfg,
		log:               cfg.Logger,
		suppressedSingles: make(map[*shortcut.SingleAction]struct{}),
		keys:              key.NewSet(),
		buttons:           pointer.NewSet(),
		actionGroupMask:   func() shortcut.GroupMask { return shortcut.AllGroups },
	}
}

// AddSingleAction registers a single-action shortcut. The matcher owns
// the descriptor until ClearShortcuts.
func (m *Matcher) AddSingleAction(s *shortcut.SingleAction) {
	m.singleActionShortcuts = append(m.singleActionShortcuts, s)
}

// AddStroke registers a stroke shortcut.
func (m *Matcher) AddStroke(s *shortcut.Stroke) {
	m.strokeShortcuts = append(m.strokeShortcuts, s)
}

// AddTouch registers a touch shortcut.
func (m *Matcher) AddTouch(s *shortcut.Touch) {
	m.touchShortcuts = append(m.touchShortcuts, s)
}

// AddNativeGesture registers a native gesture shortcut.
func (m *Matcher) AddNativeGesture(s *shortcut.NativeGesture) {
	m.nativeGestureShortcuts = append(m.nativeGestureShortcuts, s)
}

// ClearShortcuts releases every registered shortcut and resets the
// matching state. Re-registering the same shortcuts afterwards produces
// identical matching for identical event sequences.
func (m *Matcher) ClearShortcuts() {
	m.reset("clearing shortcuts")
	m.singleActionShortcuts = nil
	m.strokeShortcuts = nil
	m.touchShortcuts = nil
	m.nativeGestureShortcuts = nil
	m.suppressedSingles = make(map[*shortcut.SingleAction]struct{})
	m.candidateShortcuts = nil
	m.runningShortcut = nil
	m.readyShortcut = nil
	m.touchShortcut = nil
	m.nativeGestureShortcut = nil
}

// SuppressConflictingKeyActions hides every single-action shortcut whose
// chord is a prefix-or-equal match of any of the given accelerator
// sequences, so menu accelerators take precedence over canvas shortcuts.
// The previous suppression set is replaced.
func (m *Matcher) SuppressConflictingKeyActions(sequences []key.Sequence) {
	m.suppressedSingles = make(map[*shortcut.SingleAction]struct{})

	for _, s := range m.singleActionShortcuts {
		for _, seq := range sequences {
			if s.ConflictsWith(seq) {
				m.suppressedSingles[s] = struct{}{}
			}
		}
	}
}

// SuppressAllActions globally disables matching. State tracking
// continues: keys and buttons are still recorded while suppressed.
func (m *Matcher) SuppressAllActions(suppress bool) {
	m.suppressAll = suppress
}

// SetActionGroupMaskCallback installs the provider of the current action
// group mask. A nil callback restores the all-groups default.
func (m *Matcher) SetActionGroupMaskCallback(fn func() shortcut.GroupMask) {
	if fn == nil {
		fn = func() shortcut.GroupMask { return shortcut.AllGroups }
	}
	m.actionGroupMask = fn
}

// HasRunningShortcut returns true while a stroke shortcut runs.
func (m *Matcher) HasRunningShortcut() bool {
	return m.runningShortcut != nil
}

// SupportsHiResInputEvents returns true if the currently running stroke
// or touch action wants high-resolution input events.
func (m *Matcher) SupportsHiResInputEvents() bool {
	if m.runningShortcut != nil &&
		m.runningShortcut.Action().SupportsHiResInputEvents(m.runningShortcut.Index()) {
		return true
	}
	return m.touchShortcut != nil &&
		m.touchShortcut.Action().SupportsHiResInputEvents(m.touchShortcut.Index())
}

// DebugPressedKeys returns the currently held keys in sorted order.
func (m *Matcher) DebugPressedKeys() []key.Key {
	return m.keys.Keys()
}

// SanityCheckModifiersCorrectness verifies the held-key set against an
// externally reported modifier mask.
func (m *Matcher) SanityCheckModifiersCorrectness(mods key.Modifier) bool {
	check := func(k key.Key, mod key.Modifier) bool {
		return m.keys.Contains(k) == mods.Has(mod)
	}
	return check(key.KeyShift, key.ModShift) &&
		check(key.KeyControl, key.ModCtrl) &&
		check(key.KeyAlt, key.ModAlt) &&
		check(key.KeyMeta, key.ModMeta)
}

// reset clears the held key and button sets.
func (m *Matcher) reset(msg string) {
	m.keys.Clear()
	m.buttons.Clear()
	m.log.Debug("matcher state reset", "reason", msg)
}

// actionsSuppressed returns true while matching is disabled, including
// the cursor-outside-canvas condition unless configuration ignores it.
func (m *Matcher) actionsSuppressed() bool {
	if m.cfg.IgnoreCursorEnteredCheck {
		return m.suppressAll
	}
	return m.suppressAll || !m.cursorEntered
}

// actionsSuppressedIgnoreFocus returns true only for global suppression.
func (m *Matcher) actionsSuppressedIgnoreFocus() bool {
	return m.suppressAll
}

// usingTouchInput returns true from the start of a running touch or
// native gesture shortcut until TouchEndEvent, TouchCancelEvent or
// NativeGestureEndEvent; pointer button events are ignored for that span.
// A touch sequence that has not started a shortcut does not set it.
func (m *Matcher) usingTouchInput() bool {
	return m.usingTouch || m.usingNativeGesture
}

func (m *Matcher) isSuppressed(s *shortcut.SingleAction) bool {
	_, ok := m.suppressedSingles[s]
	return ok
}

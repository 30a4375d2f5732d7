// Package profile loads and saves shortcut profiles: declarative JSON
// documents binding named actions to shortcut specifications. The matcher
// itself only sees parsed descriptors; this package is the bridge from
// persisted bindings to registered shortcuts.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/canvasinput/internal/input/gesture"
	"github.com/dshills/canvasinput/internal/input/key"
	"github.com/dshills/canvasinput/internal/input/matcher"
	"github.com/dshills/canvasinput/internal/input/pointer"
	"github.com/dshills/canvasinput/internal/input/shortcut"
)

// Profile errors.
var (
	ErrInvalidJSON   = errors.New("profile is not valid JSON")
	ErrUnknownType   = errors.New("unknown shortcut type")
	ErrUnknownAction = errors.New("unknown action name")
)

// Shortcut types accepted in a profile document.
const (
	TypeKey     = "key"
	TypeWheel   = "wheel"
	TypeStroke  = "stroke"
	TypeTouch   = "touch"
	TypeGesture = "gesture"
)

// Spec is one declarative shortcut binding.
type Spec struct {
	// Type selects the shortcut kind: key, wheel, stroke, touch, gesture.
	Type string

	// Action names the action the shortcut drives.
	Action string

	// Index is the shortcut index reported to the action.
	Index int

	// Priority disambiguates competing shortcuts.
	Priority int

	// Group restricts the shortcut to action groups: "view",
	// "modifying", or "all". Empty selects the kind's default.
	Group string

	// Keys is a "Ctrl+Shift" style list of held keys.
	Keys string

	// Trigger is the triggering key for key shortcuts.
	Trigger string

	// Wheel is the wheel direction for wheel shortcuts.
	Wheel string

	// Buttons is a "Left+Right" style list for stroke shortcuts.
	Buttons string

	// Gesture is "tap" or "drag" for touch shortcuts.
	Gesture string

	// MinPoints and MaxPoints bound the contact count for touch
	// shortcuts.
	MinPoints int
	MaxPoints int

	// Kind is the native gesture kind for gesture shortcuts.
	Kind string
}

// Profile is a named collection of shortcut bindings.
type Profile struct {
	Name      string
	Shortcuts []Spec
}

// Parse decodes a profile document.
func Parse(data []byte) (*Profile, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	root := gjson.ParseBytes(data)
	p := &Profile{Name: root.Get("name").String()}

	var parseErr error
	root.Get("shortcuts").ForEach(func(_, entry gjson.Result) bool {
		spec := Spec{
			Type:      entry.Get("type").String(),
			Action:    entry.Get("action").String(),
			Index:     int(entry.Get("index").Int()),
			Priority:  int(entry.Get("priority").Int()),
			Group:     entry.Get("group").String(),
			Keys:      entry.Get("keys").String(),
			Trigger:   entry.Get("trigger").String(),
			Wheel:     entry.Get("wheel").String(),
			Buttons:   entry.Get("buttons").String(),
			Gesture:   entry.Get("gesture").String(),
			MinPoints: int(entry.Get("min_points").Int()),
			MaxPoints: int(entry.Get("max_points").Int()),
			Kind:      entry.Get("kind").String(),
		}
		switch spec.Type {
		case TypeKey, TypeWheel, TypeStroke, TypeTouch, TypeGesture:
			p.Shortcuts = append(p.Shortcuts, spec)
			return true
		default:
			parseErr = fmt.Errorf("%w: %q", ErrUnknownType, spec.Type)
			return false
		}
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return p, nil
}

// Marshal encodes the profile as a JSON document.
func (p *Profile) Marshal() ([]byte, error) {
	out := []byte(`{}`)
	out, err := sjson.SetBytes(out, "name", p.Name)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	out, err = sjson.SetRawBytes(out, "shortcuts", []byte(`[]`))
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}

	set := func(path string, value any) {
		if err != nil {
			return
		}
		out, err = sjson.SetBytes(out, path, value)
	}

	for i, s := range p.Shortcuts {
		prefix := fmt.Sprintf("shortcuts.%d.", i)
		set(prefix+"type", s.Type)
		set(prefix+"action", s.Action)
		if s.Index != 0 {
			set(prefix+"index", s.Index)
		}
		if s.Priority != 0 {
			set(prefix+"priority", s.Priority)
		}
		if s.Group != "" {
			set(prefix+"group", s.Group)
		}
		if s.Keys != "" {
			set(prefix+"keys", s.Keys)
		}
		switch s.Type {
		case TypeKey:
			set(prefix+"trigger", s.Trigger)
		case TypeWheel:
			set(prefix+"wheel", s.Wheel)
		case TypeStroke:
			set(prefix+"buttons", s.Buttons)
		case TypeTouch:
			set(prefix+"gesture", s.Gesture)
			set(prefix+"min_points", s.MinPoints)
			set(prefix+"max_points", s.MaxPoints)
		case TypeGesture:
			set(prefix+"kind", s.Kind)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}

	return out, nil
}

// Resolver maps action names to action implementations.
type Resolver interface {
	// Resolve returns the action registered under name.
	Resolve(name string) (shortcut.Action, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (shortcut.Action, bool)

// Resolve returns the action registered under name.
func (f ResolverFunc) Resolve(name string) (shortcut.Action, bool) {
	return f(name)
}

// Apply registers every binding of the profile with the matcher,
// resolving action names through r.
func (p *Profile) Apply(m *matcher.Matcher, r Resolver) error {
	for i, s := range p.Shortcuts {
		if err := applySpec(m, r, s); err != nil {
			return fmt.Errorf("shortcut %d (%s %q): %w", i, s.Type, s.Action, err)
		}
	}
	return nil
}

func applySpec(m *matcher.Matcher, r Resolver, s Spec) error {
	action, ok := r.Resolve(s.Action)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, s.Action)
	}

	group, err := parseGroup(s.Group)
	if err != nil {
		return err
	}

	keys, err := parseKeySet(s.Keys)
	if err != nil {
		return err
	}

	switch s.Type {
	case TypeKey:
		trigger := key.FromName(s.Trigger)
		if trigger == key.KeyNone {
			return fmt.Errorf("unknown trigger key %q", s.Trigger)
		}
		sc := shortcut.NewSingleAction(action, s.Index, keys, trigger).WithPriority(s.Priority)
		if group != shortcut.GroupNone {
			sc.WithGroup(group)
		}
		m.AddSingleAction(sc)

	case TypeWheel:
		wheel, err := parseWheel(s.Wheel)
		if err != nil {
			return err
		}
		sc := shortcut.NewWheelAction(action, s.Index, keys, wheel).WithPriority(s.Priority)
		if group != shortcut.GroupNone {
			sc.WithGroup(group)
		}
		m.AddSingleAction(sc)

	case TypeStroke:
		buttons, err := parseButtonSet(s.Buttons)
		if err != nil {
			return err
		}
		sc := shortcut.NewStroke(action, s.Index, keys, buttons).WithPriority(s.Priority)
		if group != shortcut.GroupNone {
			sc.WithGroup(group)
		}
		m.AddStroke(sc)

	case TypeTouch:
		g, err := parseTouchGesture(s.Gesture)
		if err != nil {
			return err
		}
		sc := shortcut.NewTouch(action, s.Index, g, s.MinPoints, s.MaxPoints).WithPriority(s.Priority)
		if group != shortcut.GroupNone {
			sc.WithGroup(group)
		}
		m.AddTouch(sc)

	case TypeGesture:
		kind, err := parseGestureKind(s.Kind)
		if err != nil {
			return err
		}
		sc := shortcut.NewNativeGesture(action, s.Index, kind).WithPriority(s.Priority)
		if group != shortcut.GroupNone {
			sc.WithGroup(group)
		}
		m.AddNativeGesture(sc)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}

	return nil
}

func parseKeySet(spec string) (key.Set, error) {
	set := key.NewSet()
	if strings.TrimSpace(spec) == "" {
		return set, nil
	}
	for _, name := range strings.Split(spec, "+") {
		k := key.FromName(name)
		if k == key.KeyNone {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		set.Add(k)
	}
	return set, nil
}

func parseButtonSet(spec string) (pointer.Set, error) {
	set := pointer.NewSet()
	if strings.TrimSpace(spec) == "" {
		return set, nil
	}
	for _, name := range strings.Split(spec, "+") {
		b := pointer.ButtonFromName(name)
		if b == pointer.ButtonNone {
			return nil, fmt.Errorf("unknown button %q", name)
		}
		set.Add(b)
	}
	return set, nil
}

func parseWheel(name string) (pointer.WheelAction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up":
		return pointer.WheelUp, nil
	case "down":
		return pointer.WheelDown, nil
	case "left":
		return pointer.WheelLeft, nil
	case "right":
		return pointer.WheelRight, nil
	case "zoom-in", "zoomin":
		return pointer.WheelZoomIn, nil
	case "zoom-out", "zoomout":
		return pointer.WheelZoomOut, nil
	case "trackpad-pan", "pan":
		return pointer.WheelTrackpadPan, nil
	default:
		return pointer.WheelNone, fmt.Errorf("unknown wheel action %q", name)
	}
}

func parseTouchGesture(name string) (shortcut.TouchGesture, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tap":
		return shortcut.GestureTap, nil
	case "drag":
		return shortcut.GestureDrag, nil
	default:
		return 0, fmt.Errorf("unknown touch gesture %q", name)
	}
}

func parseGestureKind(name string) (gesture.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zoom":
		return gesture.KindZoom, nil
	case "pan":
		return gesture.KindPan, nil
	case "rotate":
		return gesture.KindRotate, nil
	case "swipe":
		return gesture.KindSwipe, nil
	case "smart-zoom", "smartzoom":
		return gesture.KindSmartZoom, nil
	default:
		return gesture.KindNone, fmt.Errorf("unknown gesture kind %q", name)
	}
}

func parseGroup(name string) (shortcut.GroupMask, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return shortcut.GroupNone, nil
	case "view":
		return shortcut.GroupViewTransform, nil
	case "modifying":
		return shortcut.GroupModifying, nil
	case "all":
		return shortcut.AllGroups, nil
	default:
		return shortcut.GroupNone, fmt.Errorf("unknown action group %q", name)
	}
}

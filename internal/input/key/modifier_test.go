package key

import "testing"

func TestModifierKeys(t *testing.T) {
	m := ModCtrl | ModShift
	keys := m.Keys()

	want := NewSet(KeyControl, KeyShift)
	if !keys.Equal(want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	if !ModNone.Keys().Equal(NewSet()) {
		t.Error("ModNone should produce an empty set")
	}
}

func TestModifierForKey(t *testing.T) {
	tests := []struct {
		k    Key
		want Modifier
	}{
		{KeyShift, ModShift},
		{KeyControl, ModCtrl},
		{KeyAlt, ModAlt},
		{KeyMeta, ModMeta},
		{KeyA, ModNone},
	}

	for _, tt := range tests {
		if got := ModifierForKey(tt.k); got != tt.want {
			t.Errorf("ModifierForKey(%v) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModAlt)
	if !m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("With failed: %v", m)
	}

	m = m.Without(ModCtrl)
	if m.Has(ModCtrl) || !m.Has(ModAlt) {
		t.Errorf("Without failed: %v", m)
	}
}

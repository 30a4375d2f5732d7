package key

import (
	"errors"
	"testing"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec    string
		want    Chord
		wantErr bool
	}{
		{spec: "Ctrl+C", want: NewChord(KeyC, KeyControl)},
		{spec: "ctrl+shift+z", want: NewChord(KeyZ, KeyControl, KeyShift)},
		{spec: "F5", want: NewChord(KeyF5)},
		{spec: "Alt+Enter", want: NewChord(KeyEnter, KeyAlt)},
		{spec: "Ctrl+Bogus", wantErr: true},
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseChord(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChord(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q): %v", tt.spec, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseChord(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestParseChordEmptyError(t *testing.T) {
	_, err := ParseChord("  ")
	if !errors.Is(err, ErrEmptySpec) {
		t.Errorf("error = %v, want ErrEmptySpec", err)
	}
}

func TestParseSequence(t *testing.T) {
	seq, err := ParseSequence("Ctrl+X Ctrl+S")
	if err != nil {
		t.Fatalf("ParseSequence: %v", err)
	}
	if len(seq) != 2 {
		t.Fatalf("len = %d, want 2", len(seq))
	}
	if !seq[0].Equal(NewChord(KeyX, KeyControl)) || !seq[1].Equal(NewChord(KeyS, KeyControl)) {
		t.Errorf("sequence = %v", seq)
	}
}

func TestSequenceStartsWith(t *testing.T) {
	full, _ := ParseSequence("Ctrl+X Ctrl+S")
	prefix, _ := ParseSequence("Ctrl+X")
	other, _ := ParseSequence("Ctrl+C")

	tests := []struct {
		name   string
		seq    Sequence
		prefix Sequence
		want   bool
	}{
		{"proper prefix", full, prefix, true},
		{"equal", full, full, true},
		{"mismatch", full, other, false},
		{"longer than sequence", prefix, full, false},
		{"empty prefix", full, Sequence{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.StartsWith(tt.prefix); got != tt.want {
				t.Errorf("StartsWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSequenceString(t *testing.T) {
	seq, _ := ParseSequence("Ctrl+X Ctrl+S")
	if got := seq.String(); got != "Ctrl+X Ctrl+S" {
		t.Errorf("String = %q, want %q", got, "Ctrl+X Ctrl+S")
	}
}

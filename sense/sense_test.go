package sense

import (
	"strings"
	"testing"
)

func TestIsAmbiguous(t *testing.T) {
	d := NewDisambiguator()

	if !d.IsAmbiguous("bank") || !d.IsAmbiguous("Bat") {
		t.Error("bank and bat should be ambiguous")
	}
	if d.IsAmbiguous("table") {
		t.Error("table has no registered senses")
	}
}

func TestDisambiguate(t *testing.T) {
	d := NewDisambiguator()

	tests := []struct {
		word    string
		context string
		wantID  string
	}{
		{"bank", "I deposited money at the bank", "bank/money"},
		{"bank", "we sat on the bank of the river fishing", "bank/river"},
		{"bat", "he swung the bat at the ball", "bat/sports"},
		{"bat", "a bat flew out of the cave at night", "bat/animal"},
		{"spring", "flowers bloom in spring after winter", "spring/season"},
		{"watch", "my wrist watch stopped", "watch/timepiece"},
		{"watch", "let us watch a movie", "watch/observe"},
	}

	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			s, ok := d.Disambiguate(tt.word, strings.Fields(tt.context))
			if !ok {
				t.Fatalf("no senses for %q", tt.word)
			}
			if s.ID != tt.wantID {
				t.Errorf("Disambiguate(%q, %q) = %s, want %s", tt.word, tt.context, s.ID, tt.wantID)
			}
		})
	}
}

func TestDisambiguateTieDefaultsToFirst(t *testing.T) {
	d := NewDisambiguator()

	// No clue words at all: the first-registered sense wins.
	s, ok := d.Disambiguate("bank", []string{"hello", "there"})
	if !ok || s.ID != "bank/money" {
		t.Errorf("expected default bank/money, got %v (ok=%v)", s.ID, ok)
	}
}

func TestDisambiguateUnknownWord(t *testing.T) {
	d := NewDisambiguator()

	if _, ok := d.Disambiguate("table", nil); ok {
		t.Error("unknown word must report ok=false")
	}
}

func TestTranslateSense(t *testing.T) {
	d := NewDisambiguator()

	s, _ := d.Disambiguate("bank", []string{"river", "water"})
	if got := TranslateSense(s, "spanish"); got != "orilla" {
		t.Errorf("TranslateSense = %q, want orilla", got)
	}
	if got := TranslateSense(s, "telugu"); got != "bank" {
		t.Errorf("missing language should fall back to the word, got %q", got)
	}
}

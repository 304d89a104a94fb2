package morph

import "testing"

func TestLemmatize(t *testing.T) {
	tests := []struct {
		word     string
		expected string
	}{
		{"running", "run"},
		{"taking", "take"},
		{"went", "go"},
		{"was", "be"},
		{"were", "be"},
		{"gone", "go"},
		{"children", "child"},
		{"mice", "mouse"},
		{"cats", "cat"},
		{"cities", "city"},
		{"boxes", "box"},
		{"thought", "think"},
		{"stopped", "stop"},
		{"tried", "try"},
		{"loves", "love"},
		{"glass", "glass"},
		{"run", "run"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Lemmatize(tt.word); got != tt.expected {
				t.Errorf("Lemmatize(%q) = %q, want %q", tt.word, got, tt.expected)
			}
		})
	}
}

func TestPluralizeSingularize(t *testing.T) {
	tests := []struct {
		singular string
		plural   string
	}{
		{"cat", "cats"},
		{"box", "boxes"},
		{"city", "cities"},
		{"man", "men"},
		{"child", "children"},
		{"knife", "knives"},
		{"sheep", "sheep"},
		{"hero", "heroes"},
	}

	for _, tt := range tests {
		t.Run(tt.singular, func(t *testing.T) {
			if got := Pluralize(tt.singular); got != tt.plural {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.singular, got, tt.plural)
			}
			if got := Singularize(tt.plural); got != tt.singular {
				t.Errorf("Singularize(%q) = %q, want %q", tt.plural, got, tt.singular)
			}
		})
	}
}

func TestConjugate(t *testing.T) {
	tests := []struct {
		verb     string
		tense    Tense
		person   int
		plural   bool
		expected string
	}{
		{"be", Present, 1, false, "am"},
		{"be", Present, 3, false, "is"},
		{"be", Present, 3, true, "are"},
		{"be", Past, 1, false, "was"},
		{"be", Past, 3, true, "were"},
		{"have", Present, 3, false, "has"},
		{"do", Present, 3, false, "does"},
		{"go", Present, 3, false, "goes"},
		{"go", Past, 3, false, "went"},
		{"walk", Past, 1, false, "walked"},
		{"stop", Past, 3, false, "stopped"},
		{"try", Past, 3, false, "tried"},
		{"love", Present, 3, false, "loves"},
		{"watch", Present, 3, false, "watches"},
		{"eat", Perfect, 3, false, "has eaten"},
		{"eat", Perfect, 3, true, "have eaten"},
		{"run", Progressive, 3, false, "is running"},
		{"take", Progressive, 1, false, "am taking"},
	}

	for _, tt := range tests {
		t.Run(tt.verb+"/"+string(tt.tense), func(t *testing.T) {
			got := Conjugate(tt.verb, tt.tense, tt.person, tt.plural)
			if got != tt.expected {
				t.Errorf("Conjugate(%q, %s, %d, %v) = %q, want %q",
					tt.verb, tt.tense, tt.person, tt.plural, got, tt.expected)
			}
		})
	}
}

func TestDetectPOS(t *testing.T) {
	tests := []struct {
		word     string
		context  []string
		expected POS
	}{
		{"the", nil, Determiner},
		{"she", nil, Pronoun},
		{"under", nil, Preposition},
		{"because", nil, Conjunction},
		{"quickly", nil, Adverb},
		{"beautiful", nil, Adjective},
		{"wonderful", nil, Adjective},
		{"simplify", nil, Verb},
		{"running", nil, Verb},
		{"went", nil, Verb},
		{"happiness", nil, Noun},
		{"dog", nil, Noun},
		{"zorp", []string{"the"}, Noun},
		{"zorp", []string{"to"}, Verb},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := DetectPOS(tt.word, tt.context...); got != tt.expected {
				t.Errorf("DetectPOS(%q, %v) = %q, want %q", tt.word, tt.context, got, tt.expected)
			}
		})
	}
}

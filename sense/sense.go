// Package sense resolves ambiguous words to a specific sense using the
// words surrounding them, before dictionary translation picks a rendering.
//
// Each sense registers context-clue words; disambiguation scores candidate
// senses by clue overlap with the actual context and the highest score wins.
// Ties fall back to the first-registered sense, which is also the default
// when no context is available.
package sense

import "strings"

// Sense is one meaning of an ambiguous word.
type Sense struct {
	Word         string
	ID           string   // short sense label, e.g. "bank/river"
	Meaning      string   // human gloss
	Clues        []string // context words that select this sense
	Translations map[string]string
}

// Disambiguator holds the sense inventory. Immutable after construction.
type Disambiguator struct {
	senses map[string][]Sense
}

// NewDisambiguator builds a disambiguator with the built-in inventory.
func NewDisambiguator() *Disambiguator {
	d := &Disambiguator{senses: make(map[string][]Sense)}
	for _, s := range builtinSenses {
		d.Add(s)
	}
	return d
}

// Add registers a sense. Registration order decides the default.
func (d *Disambiguator) Add(s Sense) {
	w := strings.ToLower(s.Word)
	d.senses[w] = append(d.senses[w], s)
}

// IsAmbiguous reports whether the word has more than one registered sense.
func (d *Disambiguator) IsAmbiguous(word string) bool {
	return len(d.senses[strings.ToLower(word)]) > 1
}

// Senses returns all registered senses for a word in registration order.
func (d *Disambiguator) Senses(word string) []Sense {
	return d.senses[strings.ToLower(word)]
}

// Disambiguate picks the sense whose clues overlap most with the context
// words. The first-registered sense is returned on a tie or when the word
// has no senses at all (ok=false in that case).
func (d *Disambiguator) Disambiguate(word string, context []string) (Sense, bool) {
	candidates := d.senses[strings.ToLower(word)]
	if len(candidates) == 0 {
		return Sense{}, false
	}

	ctx := make(map[string]bool, len(context))
	for _, w := range context {
		ctx[strings.ToLower(strings.Trim(w, ".,!?;:'\""))] = true
	}

	best := 0
	bestScore := 0
	for i, s := range candidates {
		score := 0
		for _, clue := range s.Clues {
			if ctx[clue] {
				score++
			}
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return candidates[best], true
}

// TranslateSense returns the sense's rendering in the target language.
// Falls back to the word itself when no translation is registered.
func TranslateSense(s Sense, targetLang string) string {
	if t, ok := s.Translations[targetLang]; ok && t != "" {
		return t
	}
	return s.Word
}

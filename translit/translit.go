// Package translit converts text between Latin keyboard spelling and native
// scripts, preserving pronunciation rather than meaning.
//
// The forward direction uses a greedy longest-match scan over phonetic
// building blocks (consonant digraphs and trigraphs before single letters,
// then vowels), attaching dependent vowel signs to consonants and applying
// the virama between consonant clusters, per Brahmic-script convention. The
// reverse direction is a best-effort, lossy character substitution.
//
// Languages whose script has no registered scheme transliterate as identity
// in both directions; many supported languages are natively Latin and this
// silent no-op is the intended behavior, not an error.
package translit

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"

	"github.com/openlexica/bhasha/language"
)

// Transliterator converts between Latin spelling and native scripts for the
// languages of a registry. Safe for concurrent use.
type Transliterator struct {
	langs   *language.Registry
	schemes map[string]*Scheme // keyed by script name
}

// New builds a transliterator with the built-in Brahmic schemes.
func New(langs *language.Registry) *Transliterator {
	t := &Transliterator{
		langs:   langs,
		schemes: make(map[string]*Scheme, len(schemeDefs)),
	}
	for _, def := range schemeDefs {
		t.schemes[def.script] = newScheme(def.script, def.base, def.overrides)
	}
	return t
}

// HasScheme reports whether the language's native script has a registered
// transliteration scheme.
func (t *Transliterator) HasScheme(lang string) bool {
	_, ok := t.schemes[t.langs.Profile(lang).Script]
	return ok
}

// ToNative converts Latin-typed text into the native script of targetLang.
// Digits, punctuation and unmapped letters pass through unchanged. When no
// scheme exists for the language's script the input is returned as is.
func (t *Transliterator) ToNative(latinText, targetLang string) string {
	s, ok := t.schemes[t.langs.Profile(targetLang).Script]
	if !ok {
		return latinText
	}

	runes := []rune(latinText)
	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	var out strings.Builder
	out.Grow(len(latinText) * 3)

	// window returns the lowercased text at position i, capped at the
	// longest romanization (three letters).
	window := func(i int) string {
		end := i + 3
		if end > len(lower) {
			end = len(lower)
		}
		return string(lower[i:end])
	}

	i := 0
	for i < len(runes) {
		if k := s.matchConsonant(window(i)); k != "" {
			out.WriteRune(s.consonants[k])
			i += len(k)

			// Attach the vowel that follows, or decide between virama
			// (consonant cluster) and the inherent vowel (end of syllable).
			if v := s.matchVowel(window(i)); v != "" {
				if m := s.vowels[v].matra; m != 0 {
					out.WriteRune(m)
				}
				i += len(v)
			} else if s.matchConsonant(window(i)) != "" {
				out.WriteRune(s.virama)
			}
			continue
		}

		if v := s.matchVowel(window(i)); v != "" {
			out.WriteRune(s.vowels[v].independent)
			i += len(v)
			continue
		}

		// Digits, punctuation, unmapped letters: pass through unchanged.
		out.WriteRune(runes[i])
		i++
	}

	return norm.NFC.String(out.String())
}

// ToLatin converts native-script text back to Latin spelling. The mapping is
// lossy: the virama is dropped (Latin has no equivalent) and vowel length
// distinctions may collapse. Native runes outside the scheme fall back to a
// unidecode ASCII approximation; Latin runes pass through.
func (t *Transliterator) ToLatin(nativeText, sourceLang string) string {
	s, ok := t.schemes[t.langs.Profile(sourceLang).Script]
	if !ok {
		return nativeText
	}

	runes := []rune(nativeText)
	var out strings.Builder
	out.Grow(len(nativeText))

	for i, r := range runes {
		if r == s.virama {
			continue
		}
		if r == s.anusvara {
			out.WriteByte('n')
			continue
		}

		entry, ok := s.reverse[r]
		if !ok {
			if r < 0x80 || unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsDigit(r) {
				out.WriteRune(r)
			} else {
				out.WriteString(unidecode.Unidecode(string(r)))
			}
			continue
		}

		out.WriteString(entry.roman)
		if entry.consonant && carriesInherentVowel(s, runes, i) {
			out.WriteByte('a')
		}
	}

	return out.String()
}

// carriesInherentVowel reports whether the consonant at index i is
// pronounced with the inherent "a": it is suppressed by a following matra
// or virama, and dropped word-finally (schwa deletion).
func carriesInherentVowel(s *Scheme, runes []rune, i int) bool {
	if i+1 >= len(runes) {
		return false
	}
	next := runes[i+1]
	if next == s.virama {
		return false
	}
	if unicode.IsSpace(next) || unicode.IsPunct(next) || unicode.IsDigit(next) {
		return false
	}
	if e, ok := s.reverse[next]; ok && !e.consonant && isMatra(s, next) {
		return false
	}
	return true
}

// isMatra reports whether the rune is a dependent vowel sign (as opposed to
// an independent vowel letter).
func isMatra(s *Scheme, r rune) bool {
	for _, p := range s.vowels {
		if p.matra == r {
			return true
		}
	}
	return false
}

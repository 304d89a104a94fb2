package translit

import "sort"

// Scheme maps Latin-keyboard syllables to the glyphs of one native script.
type Scheme struct {
	Script string

	consonants map[string]rune // roman cluster -> consonant glyph
	vowels     map[string]vowelPair
	virama     rune
	anusvara   rune

	// romans sorted longest-first for greedy matching
	consonantKeys []string
	vowelKeys     []string

	reverse map[rune]reverseEntry
}

// vowelPair holds the independent (word-initial) glyph and the dependent
// sign (matra) attached to consonants. The inherent vowel "a" has no matra.
type vowelPair struct {
	independent rune
	matra       rune // 0 for the inherent vowel
}

type reverseEntry struct {
	roman     string
	consonant bool
}

// newScheme derives a scheme for a Brahmic script from the shared offset
// table and the script's block base, then applies per-script overrides for
// slots the block lacks.
func newScheme(script string, base rune, overrides map[string]rune) *Scheme {
	s := &Scheme{
		Script:     script,
		consonants: make(map[string]rune, len(brahmicConsonants)),
		vowels:     make(map[string]vowelPair, len(brahmicVowels)),
		virama:     base + offVirama,
		anusvara:   base + offAnusvara,
		reverse:    make(map[rune]reverseEntry),
	}

	for _, c := range brahmicConsonants {
		glyph := base + c.off
		if r, ok := overrides[c.roman]; ok {
			glyph = r
		}
		s.consonants[c.roman] = glyph
		s.consonantKeys = append(s.consonantKeys, c.roman)
		// First roman spelling for a glyph wins in the reverse map, so
		// aliases (f, w, q, z) never shadow the primary letters.
		if _, seen := s.reverse[glyph]; !seen {
			s.reverse[glyph] = reverseEntry{roman: c.roman, consonant: true}
		}
	}

	for _, v := range brahmicVowels {
		p := vowelPair{independent: base + v.independent}
		if v.matra != 0 {
			p.matra = base + v.matra
		}
		s.vowels[v.roman] = p
		s.vowelKeys = append(s.vowelKeys, v.roman)
		if _, seen := s.reverse[p.independent]; !seen {
			s.reverse[p.independent] = reverseEntry{roman: v.roman}
		}
		if p.matra != 0 {
			if _, seen := s.reverse[p.matra]; !seen {
				s.reverse[p.matra] = reverseEntry{roman: v.roman}
			}
		}
	}

	longestFirst(s.consonantKeys)
	longestFirst(s.vowelKeys)
	return s
}

// longestFirst sorts romanizations by length descending so that greedy
// matching consumes "chh" before "ch" before "c".
func longestFirst(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
}

// matchConsonant returns the longest consonant romanization at the start of
// lower, or "" when none matches.
func (s *Scheme) matchConsonant(lower string) string {
	for _, k := range s.consonantKeys {
		if len(k) <= len(lower) && lower[:len(k)] == k {
			return k
		}
	}
	return ""
}

// matchVowel returns the longest vowel romanization at the start of lower.
func (s *Scheme) matchVowel(lower string) string {
	for _, k := range s.vowelKeys {
		if len(k) <= len(lower) && lower[:len(k)] == k {
			return k
		}
	}
	return ""
}

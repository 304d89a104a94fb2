// Package idiom provides lookup and replacement of multi-word idiomatic
// expressions, applied before word-for-word translation so idioms are never
// rendered literally.
//
// Matching is word-boundary-aware: an idiom never matches inside an
// unrelated word. Replacement is longest-phrase-first so a longer idiom is
// substituted before any shorter idiom that happens to be one of its
// substrings.
package idiom

import (
	"sort"
	"strings"
	"unicode"
)

// Category classifies an entry.
type Category string

// Entry categories.
const (
	CategoryIdiom      Category = "idiom"
	CategoryProverb    Category = "proverb"
	CategorySlang      Category = "slang"
	CategoryColloquial Category = "colloquial"
)

// Register is the formality level of an entry.
type Register string

// Registers.
const (
	RegisterFormal   Register = "formal"
	RegisterInformal Register = "informal"
	RegisterNeutral  Register = "neutral"
)

// Entry is a fixed English phrase with per-language translations. The
// translations map may be sparse; a missing language means the caller falls
// through to word-level translation, never an error.
type Entry struct {
	Phrase       string            // source phrase as written
	Key          string            // normalized lookup key
	Meaning      string            // human gloss
	Translations map[string]string // canonical language name -> phrase
	Category     Category
	Register     Register
}

// Match is an occurrence of an entry in a text.
type Match struct {
	Entry *Entry
	Start int // byte offset into the normalized text
	End   int
}

// Replacement records one applied substitution.
type Replacement struct {
	Phrase      string
	Translation string
	Language    string
}

// Dictionary holds idiom entries keyed by normalized phrase.
type Dictionary struct {
	entries map[string]*Entry
	ordered []*Entry // longest phrase first
}

// NewDictionary builds a dictionary preloaded with the built-in entries.
func NewDictionary() *Dictionary {
	d := &Dictionary{entries: make(map[string]*Entry, len(builtinIdioms))}
	for i := range builtinIdioms {
		d.Add(builtinIdioms[i])
	}
	return d
}

// Normalize returns the lookup key for a phrase: lowercased, trimmed,
// interior whitespace collapsed.
func Normalize(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
}

// Add inserts or replaces an entry. The key is derived from the phrase when
// unset.
func (d *Dictionary) Add(e Entry) {
	if e.Key == "" {
		e.Key = Normalize(e.Phrase)
	}
	if e.Register == "" {
		e.Register = RegisterNeutral
	}
	if _, exists := d.entries[e.Key]; !exists {
		d.entries[e.Key] = &e
		d.ordered = append(d.ordered, d.entries[e.Key])
		sort.SliceStable(d.ordered, func(i, j int) bool {
			return len(d.ordered[i].Key) > len(d.ordered[j].Key)
		})
		return
	}
	*d.entries[e.Key] = e
}

// Lookup returns the entry whose phrase matches exactly (after
// normalization), or nil.
func (d *Dictionary) Lookup(phrase string) *Entry {
	return d.entries[Normalize(phrase)]
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// FindAll returns every boundary-checked occurrence of any entry in the
// text, longest entries first, without overlaps.
func (d *Dictionary) FindAll(text string) []Match {
	lower := asciiLower(text)
	var matches []Match
	taken := make([]bool, len(lower))

	for _, e := range d.ordered {
		for start := 0; ; {
			idx := strings.Index(lower[start:], e.Key)
			if idx < 0 {
				break
			}
			from := start + idx
			to := from + len(e.Key)
			start = from + 1
			if !atBoundary(lower, from, to) || overlaps(taken, from, to) {
				continue
			}
			for i := from; i < to; i++ {
				taken[i] = true
			}
			matches = append(matches, Match{Entry: e, Start: from, End: to})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
	return matches
}

// ReplaceAll substitutes every matched idiom that has a translation for the
// target language. Idioms without a translation for the target are left
// untouched so word-level translation can handle the span.
func (d *Dictionary) ReplaceAll(text, targetLang string) (string, []Replacement) {
	matches := d.FindAll(text)
	if len(matches) == 0 {
		return text, nil
	}

	var out strings.Builder
	var applied []Replacement
	last := 0
	for _, m := range matches {
		translated, ok := m.Entry.Translations[targetLang]
		if !ok || translated == "" {
			continue
		}
		out.WriteString(text[last:m.Start])
		out.WriteString(translated)
		last = m.End
		applied = append(applied, Replacement{
			Phrase:      m.Entry.Phrase,
			Translation: translated,
			Language:    targetLang,
		})
	}
	out.WriteString(text[last:])
	return out.String(), applied
}

// atBoundary reports whether [from, to) is delimited by non-letters on both
// sides.
func atBoundary(s string, from, to int) bool {
	if from > 0 {
		if r := lastRune(s[:from]); unicode.IsLetter(r) {
			return false
		}
	}
	if to < len(s) {
		for _, r := range s[to:] {
			return !unicode.IsLetter(r)
		}
	}
	return true
}

func lastRune(s string) rune {
	r := rune(0)
	for _, c := range s {
		r = c
	}
	return r
}

// asciiLower lowercases A-Z only, preserving byte offsets for non-ASCII
// input (entry keys are ASCII English).
func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

func overlaps(taken []bool, from, to int) bool {
	for i := from; i < to; i++ {
		if taken[i] {
			return true
		}
	}
	return false
}

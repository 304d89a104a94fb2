// Package morph provides English morphological analysis for the pivot side
// of the translation pipeline: stemming, lemmatization, pluralization, verb
// conjugation and part-of-speech tagging.
//
// The engine is table-driven: irregular forms are checked before regular
// affix rules, in the manner of a classical lemmatizer. All functions are
// pure and safe for concurrent use.
package morph

import "strings"

// POS is a part-of-speech tag.
type POS string

// Part-of-speech tags.
const (
	Noun         POS = "noun"
	Verb         POS = "verb"
	Adjective    POS = "adjective"
	Adverb       POS = "adverb"
	Pronoun      POS = "pronoun"
	Preposition  POS = "preposition"
	Conjunction  POS = "conjunction"
	Interjection POS = "interjection"
	Determiner   POS = "determiner"
	Unknown      POS = "unknown"
)

// Tense selects a conjugation pattern.
type Tense string

// Supported tenses.
const (
	Present     Tense = "present"
	Past        Tense = "past"
	Perfect     Tense = "perfect"
	Progressive Tense = "progressive"
)

// DetectPOS tags a word. Closed-class lookups run first, then suffix
// heuristics, then local context (the word after a determiner is a noun, the
// word after "to" is a verb). Nothing matching defaults to noun.
func DetectPOS(word string, context ...string) POS {
	w := strings.ToLower(strings.Trim(word, ".,!?;:'\""))
	if w == "" {
		return Unknown
	}

	switch {
	case determiners[w]:
		return Determiner
	case pronouns[w]:
		return Pronoun
	case prepositions[w]:
		return Preposition
	case conjunctions[w]:
		return Conjunction
	case interjections[w]:
		return Interjection
	case commonAdjectives[w]:
		return Adjective
	case commonAdverbs[w]:
		return Adverb
	case isKnownVerbForm(w):
		return Verb
	}

	if pos, ok := bySuffix(w); ok {
		return pos
	}

	// Local context: determiner or "to" immediately before.
	if len(context) > 0 {
		prev := strings.ToLower(strings.Trim(context[len(context)-1], ".,!?;:'\""))
		if prev == "to" {
			return Verb
		}
		if determiners[prev] {
			return Noun
		}
	}

	return Noun
}

// isKnownVerbForm checks the curated verb set against the surface form and
// its lemma.
func isKnownVerbForm(w string) bool {
	if commonVerbs[w] {
		return true
	}
	if _, ok := pastIndex[w]; ok {
		return true
	}
	lemma := Lemmatize(w, Verb)
	return lemma != w && commonVerbs[lemma]
}

// bySuffix applies derivational-suffix heuristics.
func bySuffix(w string) (POS, bool) {
	if len(w) < 4 {
		return Unknown, false
	}
	switch {
	case strings.HasSuffix(w, "ly"):
		return Adverb, true
	case strings.HasSuffix(w, "ful"), strings.HasSuffix(w, "less"),
		strings.HasSuffix(w, "ous"), strings.HasSuffix(w, "ive"),
		strings.HasSuffix(w, "able"), strings.HasSuffix(w, "ible"),
		strings.HasSuffix(w, "al"), strings.HasSuffix(w, "ic"):
		return Adjective, true
	case strings.HasSuffix(w, "ize"), strings.HasSuffix(w, "ise"),
		strings.HasSuffix(w, "ify"), strings.HasSuffix(w, "ate"):
		return Verb, true
	case strings.HasSuffix(w, "tion"), strings.HasSuffix(w, "sion"),
		strings.HasSuffix(w, "ness"), strings.HasSuffix(w, "ment"),
		strings.HasSuffix(w, "ity"), strings.HasSuffix(w, "ance"),
		strings.HasSuffix(w, "ence"), strings.HasSuffix(w, "ship"),
		strings.HasSuffix(w, "hood"), strings.HasSuffix(w, "dom"):
		return Noun, true
	}
	return Unknown, false
}

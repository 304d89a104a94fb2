// Package dict holds the bilingual word and phrase tables used by the
// dictionary translation path. English is the pivot: forward tables map an
// English lemma or phrase to each target language, and reverse indexes map
// foreign words back to English.
//
// Absence of an entry is never an error; callers record the word as
// untranslated and move on.
package dict

import "strings"

// Dictionary is an immutable-after-construction lookup table, safe for
// concurrent readers.
type Dictionary struct {
	words   map[string]map[string]string // english lemma -> lang -> word
	phrases map[string]map[string]string // normalized phrase -> lang -> phrase
	reverse map[string]map[string]string // lang -> foreign form -> english
}

// NewDictionary builds a dictionary preloaded with the built-in vocabulary.
func NewDictionary() *Dictionary {
	d := &Dictionary{
		words:   make(map[string]map[string]string),
		phrases: make(map[string]map[string]string),
		reverse: make(map[string]map[string]string),
	}
	for english, byLang := range builtinWords {
		for lang, word := range byLang {
			d.AddWord(english, lang, word)
		}
	}
	for english, byLang := range builtinPhrases {
		for lang, phrase := range byLang {
			d.AddPhrase(english, lang, phrase)
		}
	}
	return d
}

// normalize lowercases and trims a lookup key.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// AddWord registers a word translation and its reverse mapping.
func (d *Dictionary) AddWord(english, lang, translation string) {
	key := normalize(english)
	if d.words[key] == nil {
		d.words[key] = make(map[string]string)
	}
	d.words[key][lang] = translation

	if d.reverse[lang] == nil {
		d.reverse[lang] = make(map[string]string)
	}
	// First mapping wins so synonyms do not clobber the primary gloss.
	rkey := normalize(translation)
	if _, exists := d.reverse[lang][rkey]; !exists {
		d.reverse[lang][rkey] = key
	}
}

// AddPhrase registers a multi-word phrase translation and its reverse.
func (d *Dictionary) AddPhrase(english, lang, translation string) {
	key := normalize(english)
	if d.phrases[key] == nil {
		d.phrases[key] = make(map[string]string)
	}
	d.phrases[key][lang] = translation

	if d.reverse[lang] == nil {
		d.reverse[lang] = make(map[string]string)
	}
	rkey := normalize(translation)
	if _, exists := d.reverse[lang][rkey]; !exists {
		d.reverse[lang][rkey] = key
	}
}

// Word returns the translation of an English lemma into lang.
func (d *Dictionary) Word(english, lang string) (string, bool) {
	t, ok := d.words[normalize(english)][lang]
	return t, ok
}

// Phrase returns the translation of a whole English phrase into lang.
// Trailing sentence punctuation is ignored for matching.
func (d *Dictionary) Phrase(text, lang string) (string, bool) {
	t, ok := d.phrases[normalize(stripEndPunct(text))][lang]
	return t, ok
}

// ToEnglish maps a foreign word or phrase back to its English pivot form.
func (d *Dictionary) ToEnglish(form, lang string) (string, bool) {
	e, ok := d.reverse[lang][normalize(stripEndPunct(form))]
	return e, ok
}

// HasLanguage reports whether any vocabulary exists for the language.
func (d *Dictionary) HasLanguage(lang string) bool {
	return len(d.reverse[lang]) > 0
}

// stripEndPunct removes trailing sentence punctuation.
func stripEndPunct(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), ".!?¿¡।॥")
}

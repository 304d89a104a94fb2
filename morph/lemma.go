package morph

import "strings"

var vowels = "aeiou"

func isVowel(b byte) bool { return strings.IndexByte(vowels, b) >= 0 }

// Lemmatize reduces an inflected word to its dictionary form. The optional
// POS hint narrows the search; without it, irregular verb forms are checked
// first, then irregular plurals, then regular suffix rules.
func Lemmatize(word string, pos ...POS) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}

	var hint POS
	if len(pos) > 0 {
		hint = pos[0]
	}

	if hint == "" || hint == Verb {
		if inf, ok := pastIndex[w]; ok {
			return inf
		}
	}
	if hint == "" || hint == Noun {
		if sg, ok := singularIndex[w]; ok {
			return sg
		}
	}

	return stripInflection(w)
}

// stripInflection applies the regular -ing/-ed/-s rules with
// doubled-consonant undoing and silent-e restoration.
func stripInflection(w string) string {
	switch {
	case strings.HasSuffix(w, "ing") && len(w) > 4:
		return restoreStem(w[:len(w)-3])
	case strings.HasSuffix(w, "ied") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ed") && len(w) > 3:
		return restoreStem(w[:len(w)-2])
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "sses") && len(w) > 5:
		return w[:len(w)-2]
	case strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "ss"), strings.HasSuffix(w, "us"),
		strings.HasSuffix(w, "is"):
		return w
	case strings.HasSuffix(w, "s") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}

// restoreStem undoes spelling changes made when -ing/-ed was attached:
// doubled final consonants ("running" -> "run") and dropped silent e
// ("taking" -> "take").
func restoreStem(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && !isVowel(stem[n-1]) && stem[n-1] != 'l' && stem[n-1] != 's' {
		return stem[:n-1]
	}
	if commonVerbs[stem] {
		return stem
	}
	if commonVerbs[stem+"e"] {
		return stem + "e"
	}
	// Consonant+e verbs like "taking": restore e after a single consonant
	// preceded by a vowel, unless the bare stem already ends cleanly.
	if n >= 3 && !isVowel(stem[n-1]) && isVowel(stem[n-2]) && !isVowel(stem[n-3]) {
		return stem + "e"
	}
	return stem
}

// Stem returns a crude stem for fuzzy dictionary matching: the lemma with
// common derivational suffixes removed. It is not a display form.
func Stem(word string) string {
	w := Lemmatize(word)
	for _, suf := range []string{"ness", "ment", "tion", "sion", "ally", "ful", "est", "er", "ly"} {
		if strings.HasSuffix(w, suf) && len(w) > len(suf)+2 {
			w = w[:len(w)-len(suf)]
			break
		}
	}
	return w
}

// Pluralize returns the plural of a singular noun.
func Pluralize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if pl, ok := irregularPlurals[w]; ok {
		return pl
	}
	n := len(w)
	switch {
	case strings.HasSuffix(w, "s"), strings.HasSuffix(w, "x"),
		strings.HasSuffix(w, "z"), strings.HasSuffix(w, "ch"),
		strings.HasSuffix(w, "sh"):
		return w + "es"
	case n > 1 && w[n-1] == 'y' && !isVowel(w[n-2]):
		return w[:n-1] + "ies"
	case strings.HasSuffix(w, "o") && n > 2 && !isVowel(w[n-2]):
		return w + "es"
	default:
		return w + "s"
	}
}

// Singularize returns the singular of a plural noun. Words that are not
// recognizably plural are returned unchanged.
func Singularize(word string) string {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return w
	}
	if sg, ok := singularIndex[w]; ok {
		return sg
	}
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "ches"), strings.HasSuffix(w, "shes"),
		strings.HasSuffix(w, "xes"), strings.HasSuffix(w, "zes"),
		strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) > 2:
		return w[:len(w)-1]
	}
	return w
}

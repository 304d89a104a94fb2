package morph

import "strings"

// Conjugate inflects a verb for tense, grammatical person (1-3) and number.
// The verb may be given in any form; it is lemmatized first. "be", "have",
// "do" and "go" carry full irregular handling including was/were and
// third-person-singular agreement.
func Conjugate(verb string, tense Tense, person int, plural bool) string {
	inf := Lemmatize(verb, Verb)
	if inf == "" {
		return verb
	}
	if person < 1 || person > 3 {
		person = 3
	}
	thirdSg := person == 3 && !plural

	if inf == "be" {
		return conjugateBe(tense, person, plural)
	}

	switch tense {
	case Past:
		if f, ok := irregularVerbs[inf]; ok {
			return f.past
		}
		return regularPast(inf)
	case Perfect:
		part := inf
		if f, ok := irregularVerbs[inf]; ok {
			part = f.participle
		} else {
			part = regularPast(inf)
		}
		aux := "have"
		if thirdSg {
			aux = "has"
		}
		return aux + " " + part
	case Progressive:
		aux := "are"
		if thirdSg {
			aux = "is"
		} else if person == 1 && !plural {
			aux = "am"
		}
		return aux + " " + presentParticiple(inf)
	default: // Present
		if !thirdSg {
			return inf
		}
		return thirdPerson(inf)
	}
}

func conjugateBe(tense Tense, person int, plural bool) string {
	switch tense {
	case Past:
		if plural || person == 2 {
			return "were"
		}
		return "was"
	case Perfect:
		if person == 3 && !plural {
			return "has been"
		}
		return "have been"
	case Progressive:
		switch {
		case person == 1 && !plural:
			return "am being"
		case person == 3 && !plural:
			return "is being"
		default:
			return "are being"
		}
	default:
		switch {
		case person == 1 && !plural:
			return "am"
		case person == 3 && !plural:
			return "is"
		default:
			return "are"
		}
	}
}

// thirdPerson forms the third-person-singular present: -s, -es, -ies.
func thirdPerson(inf string) string {
	switch inf {
	case "have":
		return "has"
	case "do":
		return "does"
	case "go":
		return "goes"
	}
	n := len(inf)
	switch {
	case strings.HasSuffix(inf, "s"), strings.HasSuffix(inf, "x"),
		strings.HasSuffix(inf, "z"), strings.HasSuffix(inf, "ch"),
		strings.HasSuffix(inf, "sh"), strings.HasSuffix(inf, "o"):
		return inf + "es"
	case n > 1 && inf[n-1] == 'y' && !isVowel(inf[n-2]):
		return inf[:n-1] + "ies"
	default:
		return inf + "s"
	}
}

// regularPast forms the regular past tense: -ed with e/y/doubling rules.
func regularPast(inf string) string {
	n := len(inf)
	switch {
	case strings.HasSuffix(inf, "e"):
		return inf + "d"
	case n > 1 && inf[n-1] == 'y' && !isVowel(inf[n-2]):
		return inf[:n-1] + "ied"
	case shouldDouble(inf):
		return inf + string(inf[n-1]) + "ed"
	default:
		return inf + "ed"
	}
}

// presentParticiple forms the -ing form with silent-e dropping and
// consonant doubling.
func presentParticiple(inf string) string {
	n := len(inf)
	switch {
	case strings.HasSuffix(inf, "ie"):
		return inf[:n-2] + "ying"
	case strings.HasSuffix(inf, "e") && inf != "be" && !strings.HasSuffix(inf, "ee"):
		return inf[:n-1] + "ing"
	case shouldDouble(inf):
		return inf + string(inf[n-1]) + "ing"
	default:
		return inf + "ing"
	}
}

// shouldDouble reports whether the final consonant doubles before a vowel
// suffix: short stems ending consonant-vowel-consonant, excluding w/x/y.
func shouldDouble(inf string) bool {
	n := len(inf)
	if n < 3 || n > 4 {
		return false
	}
	last := inf[n-1]
	if isVowel(last) || last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return isVowel(inf[n-2]) && !isVowel(inf[n-3])
}

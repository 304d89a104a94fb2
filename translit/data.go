package translit

// The Indic blocks inherited ISCII's layout, so the same character sits at
// the same offset within each script's block: Devanagari क is U+0915
// (base 0x0900 + 0x15), Telugu క is U+0C15, Bengali ক is U+0995. One offset
// table therefore serves every derived script; per-script overrides patch
// the few slots a block leaves unassigned.
const (
	offVirama   = 0x4D
	offAnusvara = 0x02
)

// brahmicConsonants maps keyboard romanizations to consonant offsets.
// Aliases (c, f, w, q, z) share glyphs with their primary spellings.
var brahmicConsonants = []struct {
	roman string
	off   rune
}{
	{"k", 0x15}, {"kh", 0x16}, {"g", 0x17}, {"gh", 0x18}, {"ng", 0x19},
	{"ch", 0x1A}, {"chh", 0x1B}, {"j", 0x1C}, {"jh", 0x1D}, {"ny", 0x1E},
	{"t", 0x24}, {"th", 0x25}, {"d", 0x26}, {"dh", 0x27}, {"n", 0x28},
	{"p", 0x2A}, {"ph", 0x2B}, {"b", 0x2C}, {"bh", 0x2D}, {"m", 0x2E},
	{"y", 0x2F}, {"r", 0x30}, {"l", 0x32}, {"v", 0x35}, {"sh", 0x36},
	{"s", 0x38}, {"h", 0x39},
	// keyboard aliases
	{"c", 0x1A}, {"f", 0x2B}, {"w", 0x35}, {"q", 0x15}, {"z", 0x1C},
	{"x", 0x15},
}

// brahmicVowels maps romanizations to independent-vowel and matra offsets.
// "a" is the inherent vowel: it has no matra and attaches silently.
var brahmicVowels = []struct {
	roman       string
	independent rune
	matra       rune
}{
	{"a", 0x05, 0},
	{"aa", 0x06, 0x3E},
	{"i", 0x07, 0x3F},
	{"ii", 0x08, 0x40},
	{"ee", 0x08, 0x40},
	{"u", 0x09, 0x41},
	{"uu", 0x0A, 0x42},
	{"oo", 0x0A, 0x42},
	{"e", 0x0F, 0x47},
	{"ai", 0x10, 0x48},
	{"o", 0x13, 0x4B},
	{"au", 0x14, 0x4C},
}

// schemeDefs lists the scripts served by the shared offset table.
// Tamil is deliberately absent: its block leaves most aspirate and voiced
// slots unassigned, so offset derivation would emit reserved codepoints;
// Tamil falls back to identity / unidecode.
var schemeDefs = []struct {
	script    string
	base      rune
	overrides map[string]rune
}{
	{"Devanagari", 0x0900, nil},
	// Bengali has no va; ba (ব) is the conventional substitute.
	{"Bengali", 0x0980, map[string]rune{"v": 0x09AC, "w": 0x09AC}},
	{"Gurmukhi", 0x0A00, nil},
	{"Gujarati", 0x0A80, nil},
	{"Oriya", 0x0B00, map[string]rune{"v": 0x0B2C, "w": 0x0B35}},
	{"Telugu", 0x0C00, nil},
	{"Kannada", 0x0C80, nil},
	{"Malayalam", 0x0D00, nil},
}

// Package language resolves language identifiers (names, ISO codes, aliases)
// to canonical profiles and classifies the script of raw text.
//
// Profiles carry the grammar metadata the translation pipeline needs: word
// order, adjective placement, grammatical gender, articles, postpositions,
// subject dropping, case marking and honorifics. The registry is populated
// once at construction and is immutable afterwards, so a single instance may
// be shared by any number of concurrent translation requests.
package language

import "strings"

// WordOrder is the canonical subject/verb/object sequencing of a language's
// declarative sentences.
type WordOrder string

// Supported word orders.
const (
	SVO WordOrder = "SVO"
	SOV WordOrder = "SOV"
	VSO WordOrder = "VSO"
	VOS WordOrder = "VOS"
	OVS WordOrder = "OVS"
	OSV WordOrder = "OSV"
)

// AdjectivePosition indicates where adjectives sit relative to the noun they
// modify.
type AdjectivePosition string

// Adjective placements.
const (
	AdjectiveBefore AdjectivePosition = "before"
	AdjectiveAfter  AdjectivePosition = "after"
)

// Profile describes a single language: identity, script and grammar.
type Profile struct {
	Name          string            // canonical lowercase name, e.g. "hindi"
	Code          string            // ISO 639-1 code, e.g. "hi"
	NativeName    string            // name in the language's own script
	Script        string            // script name: "Latin", "Devanagari", "Arabic", ...
	RTL           bool              // right-to-left writing direction
	Order         WordOrder
	AdjectivePos  AdjectivePosition
	HasGender     bool              // grammatical gender
	HasArticles   bool              // definite/indefinite articles
	Postpositions bool              // postpositions instead of prepositions
	ProDrop       bool              // subject pronouns may be dropped
	HasCases      bool              // morphological case system
	Honorifics    bool              // grammaticalized honorific forms
}

// IsLatin reports whether the language is natively written in Latin script.
func (p *Profile) IsLatin() bool {
	return p.Script == "Latin"
}

// ModelCode returns the script-qualified code used by external model
// backends, e.g. "hi_Deva" for Hindi.
func (p *Profile) ModelCode() string {
	tag, ok := scriptTags[p.Script]
	if !ok {
		tag = "Latn"
	}
	return p.Code + "_" + tag
}

// scriptTags maps script names to ISO 15924 tags.
var scriptTags = map[string]string{
	"Latin":      "Latn",
	"Devanagari": "Deva",
	"Bengali":    "Beng",
	"Gurmukhi":   "Guru",
	"Gujarati":   "Gujr",
	"Oriya":      "Orya",
	"Tamil":      "Taml",
	"Telugu":     "Telu",
	"Kannada":    "Knda",
	"Malayalam":  "Mlym",
	"Sinhala":    "Sinh",
	"Arabic":     "Arab",
	"Hebrew":     "Hebr",
	"Cyrillic":   "Cyrl",
	"Greek":      "Grek",
	"Han":        "Hans",
	"Japanese":   "Jpan",
	"Hangul":     "Hang",
	"Thai":       "Thai",
	"Georgian":   "Geor",
	"Armenian":   "Armn",
	"Ethiopic":   "Ethi",
	"Myanmar":    "Mymr",
	"Khmer":      "Khmr",
	"Lao":        "Laoo",
}

// Registry resolves language identifiers to profiles.
//
// Construct one with NewRegistry and share it; lookups never mutate state.
type Registry struct {
	byName  map[string]*Profile
	byCode  map[string]*Profile
	aliases map[string]string
}

// NewRegistry builds a registry from the built-in language table.
func NewRegistry() *Registry {
	r := &Registry{
		byName:  make(map[string]*Profile, len(profiles)),
		byCode:  make(map[string]*Profile, len(profiles)),
		aliases: make(map[string]string, len(aliases)),
	}
	for i := range profiles {
		p := &profiles[i]
		r.byName[p.Name] = p
		r.byCode[p.Code] = p
	}
	for alias, canonical := range aliases {
		r.aliases[alias] = canonical
	}
	return r
}

// Normalize resolves an identifier (name, ISO code or alias, any case) to the
// canonical language name. Unrecognized input is returned lowercased and
// trimmed rather than rejected; Profile treats it as a default Latin-script
// language.
func (r *Registry) Normalize(input string) string {
	id := strings.ToLower(strings.TrimSpace(input))
	if id == "" {
		return id
	}
	// Strip region qualifiers like "pt-br" or "zh_CN".
	if i := strings.IndexAny(id, "-_"); i > 0 {
		if _, ok := r.byCode[id[:i]]; ok {
			id = id[:i]
		}
	}
	if canonical, ok := r.aliases[id]; ok {
		return canonical
	}
	if _, ok := r.byName[id]; ok {
		return id
	}
	if p, ok := r.byCode[id]; ok {
		return p.Name
	}
	return id
}

// Profile returns the profile for an identifier. Unknown identifiers resolve
// to a default profile (Latin script, SVO, no special grammar) carrying the
// normalized identifier as its name, so callers never need a nil check.
func (r *Registry) Profile(id string) *Profile {
	name := r.Normalize(id)
	if p, ok := r.byName[name]; ok {
		return p
	}
	return &Profile{
		Name:         name,
		Code:         name,
		Script:       "Latin",
		Order:        SVO,
		AdjectivePos: AdjectiveBefore,
	}
}

// Known reports whether the identifier resolves to a registered language.
func (r *Registry) Known(id string) bool {
	_, ok := r.byName[r.Normalize(id)]
	return ok
}

// IsSameLanguage reports whether two identifiers resolve to the same
// canonical language.
func (r *Registry) IsSameLanguage(a, b string) bool {
	return r.Normalize(a) == r.Normalize(b)
}

// IsLatinScript reports whether the language is natively written in Latin
// script. Unknown languages default to Latin.
func (r *Registry) IsLatinScript(id string) bool {
	return r.Profile(id).IsLatin()
}

// IsEnglish reports whether the identifier resolves to English.
func (r *Registry) IsEnglish(id string) bool {
	return r.Normalize(id) == "english"
}

// Languages returns the canonical names of all registered languages in table
// order. The slice is freshly allocated on each call.
func (r *Registry) Languages() []string {
	names := make([]string, len(profiles))
	for i := range profiles {
		names[i] = profiles[i].Name
	}
	return names
}

package bhasha

import "context"

// TranslationMethod identifies which pipeline stage produced a result.
type TranslationMethod string

const (
	// MethodDictionaryLookup is a direct hit on the bilingual tables.
	MethodDictionaryLookup TranslationMethod = "dictionary-lookup"
	// MethodPhraseMatch is a whole-phrase table hit.
	MethodPhraseMatch TranslationMethod = "phrase-match"
	// MethodIdiomReplacement means one or more idioms were substituted.
	MethodIdiomReplacement TranslationMethod = "idiom-replacement"
	// MethodWordByWord is per-word dictionary substitution.
	MethodWordByWord TranslationMethod = "word-by-word"
	// MethodMorphologyAdjusted means lemmatization changed at least one word
	// before lookup.
	MethodMorphologyAdjusted TranslationMethod = "morphology-adjusted"
	// MethodReordered means constituents were moved for the target word order.
	MethodReordered TranslationMethod = "reordered"
	// MethodContextDisambiguated means a word sense was resolved from context.
	MethodContextDisambiguated TranslationMethod = "context-disambiguated"
	// MethodPostProcessed means the final string was transliterated into the
	// target's native script.
	MethodPostProcessed TranslationMethod = "post-processed"
	// MethodModelFallback means the model backend supplied the result.
	MethodModelFallback TranslationMethod = "model-fallback"
	// MethodPassthrough means no translation was needed.
	MethodPassthrough TranslationMethod = "passthrough"
)

// Correction records one adjustment the pipeline made on the way through.
type Correction struct {
	Type      string `json:"type"` // "morphology", "sense", "reorder", "transliteration"
	Original  string `json:"original"`
	Corrected string `json:"corrected"`
	Reason    string `json:"reason,omitempty"`
}

// TranslationResult is the full output of a Translate call.
type TranslationResult struct {
	Text          string            `json:"text"`
	OriginalText  string            `json:"originalText"`
	SourceLang    string            `json:"sourceLang"`
	TargetLang    string            `json:"targetLang"`
	Method        TranslationMethod `json:"method"`
	Confidence    float64           `json:"confidence"`
	Corrections   []Correction      `json:"corrections,omitempty"`
	Pivot         string            `json:"pivot,omitempty"` // English intermediate, when pivoting
	Reordered     bool              `json:"reordered"`
	Disambiguated bool              `json:"disambiguated"`
	IdiomsFound   []string          `json:"idiomsFound,omitempty"`
	UnknownWords  []string          `json:"unknownWords,omitempty"`
	FallbackUsed  bool              `json:"fallbackUsed"`
	IsTranslated  bool              `json:"isTranslated"`
}

// TranslationPath tags a chat message with the sender/receiver script and
// language combination that produced it.
type TranslationPath string

// The nine sender-to-receiver combinations: each side is either English,
// a non-English Latin-script language, or a native-script language.
const (
	PathEnglishToEnglish TranslationPath = "english-to-english"
	PathEnglishToLatin   TranslationPath = "english-to-latin"
	PathEnglishToNative  TranslationPath = "english-to-native"
	PathLatinToEnglish   TranslationPath = "latin-to-english"
	PathLatinToLatin     TranslationPath = "latin-to-latin"
	PathLatinToNative    TranslationPath = "latin-to-native"
	PathNativeToEnglish  TranslationPath = "native-to-english"
	PathNativeToLatin    TranslationPath = "native-to-latin"
	PathNativeToNative   TranslationPath = "native-to-native"
)

// ChatMessageViews is the per-message output of TranslateForChat: what the
// sender sees, what the receiver sees, and the English core both views were
// derived from.
type ChatMessageViews struct {
	SenderView     string          `json:"senderView"`
	ReceiverView   string          `json:"receiverView"`
	EnglishCore    string          `json:"englishCore"`
	Path           TranslationPath `json:"path"`
	Transliterated bool            `json:"transliterated"`
	Translated     bool            `json:"translated"`
}

// ModelRequest is a batch translation request for a model backend. Languages
// carry both their canonical names and script-qualified codes (e.g. hi_Deva).
type ModelRequest struct {
	Texts      []string
	SourceLang string
	TargetLang string
	SourceCode string
	TargetCode string
}

// ModelProvider is the interface for model translation backends.
type ModelProvider interface {
	Translate(ctx context.Context, req ModelRequest) ([]string, error)
}

// TranslationCache is the interface for translation result caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// TextNode represents a translatable unit extracted from structured content.
type TextNode struct {
	ID       string            // unique identifier
	Text     string            // original text content (trimmed)
	Hash     string            // SHA-256 hash of Text
	NodeType string            // content type: "html_text", etc.
	Metadata map[string]string // additional info (parent tag, line number, ...)
}

// ContentProcessor extracts translatable text from structured content and
// reapplies translations to it.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}

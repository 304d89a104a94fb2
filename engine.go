package bhasha

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/openlexica/bhasha/dict"
	"github.com/openlexica/bhasha/idiom"
	"github.com/openlexica/bhasha/language"
	"github.com/openlexica/bhasha/reorder"
	"github.com/openlexica/bhasha/sense"
	"github.com/openlexica/bhasha/translit"
)

// Engine is the translation router. It owns the pipeline stages, the cache
// and the optional model backend, and is safe for concurrent use.
type Engine struct {
	registry *language.Registry
	translit *translit.Transliterator
	idioms   *idiom.Dictionary
	senses   *sense.Disambiguator
	words    *dict.Dictionary

	cache    TranslationCache
	provider ModelProvider
	loader   *modelLoader

	threshold       float64
	modelTimeout    time.Duration
	normalizeScript bool
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithCache sets the translation result cache.
func WithCache(c TranslationCache) EngineOption {
	return func(e *Engine) { e.cache = c }
}

// WithModelProvider sets an already-constructed model backend, used as a
// fallback when dictionary confidence falls below the threshold.
func WithModelProvider(p ModelProvider) EngineOption {
	return func(e *Engine) { e.provider = p }
}

// WithModelLoader sets a lazy model loader. The first translation that
// needs the model triggers the load; concurrent requests share the same
// in-flight load. Requests queued longer than expiry are rejected as stale.
func WithModelLoader(load ModelLoadFunc, expiry time.Duration) EngineOption {
	return func(e *Engine) { e.loader = newModelLoader(load, expiry) }
}

// WithModelTimeout bounds each model call. On timeout the dictionary
// result stands.
func WithModelTimeout(d time.Duration) EngineOption {
	return func(e *Engine) { e.modelTimeout = d }
}

// WithConfidenceThreshold sets the dictionary confidence below which the
// model fallback is consulted.
func WithConfidenceThreshold(t float64) EngineOption {
	return func(e *Engine) { e.threshold = t }
}

// WithScriptNormalization makes same-language passthrough transliterate
// Latin-typed input into the language's native script. Off by default:
// passthrough returns the input byte-for-byte.
func WithScriptNormalization() EngineOption {
	return func(e *Engine) { e.normalizeScript = true }
}

// WithDictionary replaces the built-in bilingual dictionary.
func WithDictionary(d *dict.Dictionary) EngineOption {
	return func(e *Engine) { e.words = d }
}

// WithIdioms replaces the built-in idiom dictionary.
func WithIdioms(d *idiom.Dictionary) EngineOption {
	return func(e *Engine) { e.idioms = d }
}

// NewEngine creates an engine with the built-in language, idiom, sense and
// dictionary tables.
func NewEngine(opts ...EngineOption) *Engine {
	registry := language.NewRegistry()
	e := &Engine{
		registry:     registry,
		translit:     translit.New(registry),
		idioms:       idiom.NewDictionary(),
		senses:       sense.NewDisambiguator(),
		words:        dict.NewDictionary(),
		threshold:    0.6,
		modelTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the language registry.
func (e *Engine) Registry() *language.Registry { return e.registry }

// Dictionary returns the bilingual dictionary.
func (e *Engine) Dictionary() *dict.Dictionary { return e.words }

// Idioms returns the idiom dictionary.
func (e *Engine) Idioms() *idiom.Dictionary { return e.idioms }

// Transliterator returns the script transliterator.
func (e *Engine) Transliterator() *translit.Transliterator { return e.translit }

// Translate converts text from the source language to the target language.
// Degraded results are still results: missing data lowers confidence and
// records unknown words, it never produces an error. The returned error is
// reserved for programmer mistakes (none today) and future I/O surfaces.
func (e *Engine) Translate(ctx context.Context, text, sourceLang, targetLang string) (*TranslationResult, error) {
	queuedAt := time.Now()

	src := e.registry.Normalize(sourceLang)
	tgt := e.registry.Normalize(targetLang)

	if strings.TrimSpace(text) == "" {
		return &TranslationResult{
			Text: text, OriginalText: text,
			SourceLang: src, TargetLang: tgt,
			Method: MethodPassthrough, Confidence: 1.0,
		}, nil
	}

	// Same language: nothing to translate. Never cached.
	if e.registry.IsSameLanguage(src, tgt) {
		out := text
		transliterated := false
		if e.normalizeScript && !e.registry.IsLatinScript(tgt) &&
			language.IsLatinText(text) && e.translit.HasScheme(tgt) {
			out = e.translit.ToNative(text, tgt)
			transliterated = out != text
		}
		r := &TranslationResult{
			Text: out, OriginalText: text,
			SourceLang: src, TargetLang: tgt,
			Method: MethodPassthrough, Confidence: 1.0,
		}
		if transliterated {
			r.Corrections = []Correction{{
				Type: "transliteration", Original: text, Corrected: out,
				Reason: "script normalization",
			}}
		}
		return r, nil
	}

	key := CacheKey(src, tgt, HashText(text))
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			if r := decodeResult(cached); r != nil {
				return r, nil
			}
		}
	}

	result := e.translateUncached(text, src, tgt)

	// Model fallback when the dictionary result is weak.
	if result.Confidence < e.threshold {
		if out, ok := e.modelTranslate(ctx, text, src, tgt, queuedAt); ok {
			result.Text = out
			result.Method = MethodModelFallback
			result.Confidence = 0.8
			result.FallbackUsed = true
			result.UnknownWords = nil
		}
	}

	result.IsTranslated = result.Text != result.OriginalText

	if e.cache != nil && result.IsTranslated {
		if data, err := json.Marshal(result); err == nil {
			_ = e.cache.Set(key, string(data))
		}
	}
	return result, nil
}

// translateUncached runs the dictionary-mode pipeline for a pair of
// distinct canonical languages.
func (e *Engine) translateUncached(text, src, tgt string) *TranslationResult {
	result := &TranslationResult{
		OriginalText: text,
		SourceLang:   src,
		TargetLang:   tgt,
	}

	var r render
	switch {
	case e.registry.IsEnglish(src):
		r = e.renderFromEnglish(text, tgt)
	case e.registry.IsEnglish(tgt):
		r = e.renderToEnglish(text, src)
	default:
		// Pivot through English. Both-Latin, both-native and mixed pairs
		// all go this way; only the transliteration steps differ, and
		// those key off the profiles inside each render.
		toEn := e.renderToEnglish(text, src)
		fromEn := e.renderFromEnglish(toEn.text, tgt)
		result.Pivot = toEn.text
		r = fromEn
		r.corrections = append(toEn.corrections, fromEn.corrections...)
		r.unknown = append(toEn.unknown, fromEn.unknown...)
		r.words += toEn.words
		r.hits += toEn.hits
		r.pivoted = true
	}

	result.Text = r.text
	result.Method = r.method
	result.Corrections = r.corrections
	result.Reordered = r.reordered
	result.Disambiguated = r.disambiguated
	result.IdiomsFound = r.idioms
	result.UnknownWords = r.unknown
	result.Confidence = r.confidence()
	return result
}

// render is the intermediate outcome of one direction of the pipeline.
type render struct {
	text          string
	method        TranslationMethod
	corrections   []Correction
	reordered     bool
	disambiguated bool
	idioms        []string
	unknown       []string
	hits, words   int
	wholePhrase   bool
	pivoted       bool
}

func (r render) confidence() float64 {
	switch {
	case r.wholePhrase:
		c := 0.95
		if r.pivoted {
			c -= 0.1
		}
		return c
	case r.words == 0 || r.hits == 0:
		return 0.1
	default:
		c := 0.5 + 0.45*float64(r.hits)/float64(r.words)
		if r.pivoted {
			c *= 0.85
		}
		return c
	}
}

// renderFromEnglish translates English text into the target language.
func (e *Engine) renderFromEnglish(text, target string) render {
	tgtProfile := e.registry.Profile(target)

	// Whole-phrase hit bypasses the word pipeline.
	if phrase, ok := e.words.Phrase(text, target); ok {
		return render{
			text:        phrase + trailingPunct(text),
			method:      MethodPhraseMatch,
			hits:        1,
			words:       1,
			wholePhrase: true,
		}
	}

	r := render{}

	work, reps := e.idioms.ReplaceAll(text, target)
	idiomWords := make(map[string]bool)
	for _, rep := range reps {
		r.idioms = append(r.idioms, rep.Phrase)
		// A replaced idiom is a direct hit on the whole span it covered.
		r.hits++
		r.words++
		for _, w := range strings.Fields(strings.ToLower(rep.Translation)) {
			idiomWords[strings.Trim(w, ".,!?;:'\"¿¡")] = true
		}
	}

	tokens := reorder.Tokenize(work)

	// Constituent order. Skipped when idioms were substituted: the text is
	// no longer pure English and the POS tags would be noise.
	if len(reps) == 0 {
		enProfile := e.registry.Profile("english")
		moved := reorder.Reorder(tokens, enProfile, tgtProfile)
		if tgtProfile.AdjectivePos == language.AdjectiveAfter {
			moved = reorder.MoveAdjectivesAfterNouns(moved)
		}
		if wordSequence(moved) != wordSequence(tokens) {
			r.reordered = true
			r.corrections = append(r.corrections, Correction{
				Type:      "reorder",
				Original:  reorder.Join(tokens),
				Corrected: reorder.Join(moved),
				Reason:    "target word order " + string(tgtProfile.Order),
			})
		}
		tokens = moved
	}

	morphAdjusted := false
	postProcessed := false
	for i := range tokens {
		if !tokens[i].IsWord {
			continue
		}
		w := tokens[i].Normalized
		if idiomWords[w] {
			continue
		}
		r.words++

		if e.senses.IsAmbiguous(w) {
			if s, ok := e.senses.Disambiguate(w, contextWords(tokens, i)); ok {
				if t := sense.TranslateSense(s, target); t != w {
					r.corrections = append(r.corrections, Correction{
						Type: "sense", Original: w, Corrected: t,
						Reason: s.ID,
					})
					tokens[i].Text = t
					r.disambiguated = true
					r.hits++
					continue
				}
			}
		}

		if t, ok := e.words.Word(w, target); ok {
			tokens[i].Text = t
			r.hits++
			continue
		}
		if lemma := tokens[i].Lemma; lemma != w {
			if t, ok := e.words.Word(lemma, target); ok {
				r.corrections = append(r.corrections, Correction{
					Type: "morphology", Original: w, Corrected: lemma,
					Reason: "lemmatized before lookup",
				})
				tokens[i].Text = t
				morphAdjusted = true
				r.hits++
				continue
			}
		}

		r.unknown = append(r.unknown, tokens[i].Text)
		// Untranslatable words still get the target script when one exists.
		if !tgtProfile.IsLatin() && e.translit.HasScheme(target) {
			if native := e.translit.ToNative(tokens[i].Text, target); native != tokens[i].Text {
				tokens[i].Text = native
				postProcessed = true
			}
		}
	}

	r.text = reorder.Join(tokens)

	switch {
	case len(r.idioms) > 0:
		r.method = MethodIdiomReplacement
	case r.disambiguated:
		r.method = MethodContextDisambiguated
	case r.reordered:
		r.method = MethodReordered
	case morphAdjusted:
		r.method = MethodMorphologyAdjusted
	case postProcessed && r.hits == 0:
		// Nothing translated, everything transliterated.
		r.method = MethodPostProcessed
	default:
		r.method = MethodWordByWord
	}
	return r
}

// renderToEnglish translates text in the source language back to English
// via the reverse dictionary indexes.
func (e *Engine) renderToEnglish(text, source string) render {
	srcProfile := e.registry.Profile(source)

	lookup := text
	if !srcProfile.IsLatin() && language.IsLatinText(text) && e.translit.HasScheme(source) {
		// Latin-typed input for a native-script language: convert first so
		// the reverse index, which holds native-script forms, can hit.
		lookup = e.translit.ToNative(text, source)
	}

	if en, ok := e.words.ToEnglish(lookup, source); ok {
		return render{
			text:        en + trailingPunct(text),
			method:      MethodDictionaryLookup,
			hits:        1,
			words:       1,
			wholePhrase: true,
		}
	}

	r := render{}
	tokens := reorder.Tokenize(lookup)
	for i := range tokens {
		if !tokens[i].IsWord {
			continue
		}
		r.words++
		if en, ok := e.words.ToEnglish(tokens[i].Text, source); ok {
			tokens[i].Text = en
			r.hits++
			continue
		}
		r.unknown = append(r.unknown, tokens[i].Text)
		if !language.IsLatinText(tokens[i].Text) {
			// Best-effort romanization so the English side stays readable.
			tokens[i].Text = e.translit.ToLatin(tokens[i].Text, source)
		}
	}
	out := reorder.Join(tokens)

	// The substituted words are English now, so English POS tagging can
	// drive the order change from the source's constituent order.
	retok := reorder.Tokenize(out)
	enProfile := e.registry.Profile("english")
	moved := reorder.Reorder(retok, srcProfile, enProfile)
	if wordSequence(moved) != wordSequence(retok) {
		r.reordered = true
		r.corrections = append(r.corrections, Correction{
			Type:      "reorder",
			Original:  out,
			Corrected: reorder.Join(moved),
			Reason:    "source word order " + string(srcProfile.Order),
		})
	}

	r.text = reorder.Join(moved)
	if r.reordered {
		r.method = MethodReordered
	} else {
		r.method = MethodWordByWord
	}
	return r
}

// modelTranslate runs the configured model backend, lazily loading it when
// a loader is set. All failures degrade silently to the dictionary result.
func (e *Engine) modelTranslate(ctx context.Context, text, src, tgt string, queuedAt time.Time) (string, bool) {
	provider := e.provider
	if e.loader != nil {
		p, err := e.loader.get(ctx, queuedAt)
		if err != nil {
			return "", false
		}
		provider = p
	}
	if provider == nil {
		return "", false
	}

	if e.modelTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.modelTimeout)
		defer cancel()
	}

	results, err := provider.Translate(ctx, ModelRequest{
		Texts:      []string{text},
		SourceLang: src,
		TargetLang: tgt,
		SourceCode: e.registry.Profile(src).ModelCode(),
		TargetCode: e.registry.Profile(tgt).ModelCode(),
	})
	if err != nil || len(results) != 1 || strings.TrimSpace(results[0]) == "" {
		return "", false
	}
	return results[0], true
}

func decodeResult(data string) *TranslationResult {
	var r TranslationResult
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil
	}
	return &r
}

// contextWords returns the normalized words around position i, for sense
// scoring.
func contextWords(tokens []reorder.Token, i int) []string {
	var out []string
	for j, t := range tokens {
		if j != i && t.IsWord {
			out = append(out, t.Normalized)
		}
	}
	return out
}

// wordSequence flattens the word tokens for order comparison.
func wordSequence(tokens []reorder.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.IsWord {
			b.WriteString(t.Normalized)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// trailingPunct returns the run of sentence punctuation at the end of text.
func trailingPunct(text string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(text), ".!?¿¡।॥")
	return strings.TrimSpace(text)[len(trimmed):]
}

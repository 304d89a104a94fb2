package bhasha

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/openlexica/bhasha/language"
)

// spyCache is a map-backed cache recording get/set traffic.
type spyCache struct {
	data map[string]string
	gets int
	sets int
}

func newSpyCache() *spyCache {
	return &spyCache{data: make(map[string]string)}
}

func (c *spyCache) Get(key string) (string, bool) {
	c.gets++
	v, ok := c.data[key]
	return v, ok
}

func (c *spyCache) Set(key, value string) error {
	c.sets++
	c.data[key] = value
	return nil
}

// spyProvider is a canned model backend with call counting.
type spyProvider struct {
	translations map[string]string
	calls        int
	err          error
}

func (p *spyProvider) Translate(ctx context.Context, req ModelRequest) ([]string, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	out := make([]string, len(req.Texts))
	for i, t := range req.Texts {
		if v, ok := p.translations[t]; ok {
			out[i] = v
		} else {
			out[i] = "[" + t + "]"
		}
	}
	return out, nil
}

func TestTranslatePassthroughIdentity(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		text string
		lang string
	}{
		{"Hello there", "english"},
		{"Bagunnav?", "telugu"},
		{"नमस्ते", "hindi"},
		{"¿cómo estás?", "spanish"},
		{"anything at all", "klingon"}, // unknown language
	}

	for _, tt := range tests {
		r, err := e.Translate(context.Background(), tt.text, tt.lang, tt.lang)
		if err != nil {
			t.Fatalf("Translate(%q, %s, %s): %v", tt.text, tt.lang, tt.lang, err)
		}
		if r.Text != tt.text {
			t.Errorf("passthrough changed text: %q -> %q", tt.text, r.Text)
		}
		if r.IsTranslated {
			t.Errorf("passthrough must not report isTranslated for %q", tt.text)
		}
		if r.Method != MethodPassthrough || r.Confidence != 1.0 {
			t.Errorf("passthrough method/confidence = %s/%v", r.Method, r.Confidence)
		}
	}
}

func TestTranslateAliasesAreSameLanguage(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "kemon acho", "Bangla", "bengali")
	if err != nil {
		t.Fatal(err)
	}
	if r.Method != MethodPassthrough {
		t.Errorf("bangla/bengali should be the same language, got method %s", r.Method)
	}
}

func TestTranslateEmptyText(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "   ", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if r.IsTranslated || r.Method != MethodPassthrough {
		t.Errorf("empty input should short-circuit, got %+v", r)
	}
}

func TestTranslateEnglishToHindi(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "How are you?", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text == "" {
		t.Fatal("empty translation")
	}
	if got := language.DetectScript(r.Text); got != "Devanagari" {
		t.Errorf("script = %s, want Devanagari (text %q)", got, r.Text)
	}
	if !r.IsTranslated {
		t.Error("isTranslated = false")
	}
	if r.Confidence <= 0.5 {
		t.Errorf("confidence = %v, want > 0.5", r.Confidence)
	}
}

func TestTranslatePassthroughKeepsLatinTypedInput(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "Bagunnav?", "telugu", "telugu")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "Bagunnav?" || r.IsTranslated {
		t.Errorf("got %q (translated=%v), want identical passthrough", r.Text, r.IsTranslated)
	}
}

func TestTranslateScriptNormalization(t *testing.T) {
	e := NewEngine(WithScriptNormalization())

	r, err := e.Translate(context.Background(), "namaste", "hindi", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if language.DetectScript(r.Text) != "Devanagari" {
		t.Errorf("expected native script output, got %q", r.Text)
	}
	if r.IsTranslated {
		t.Error("script normalization is still a passthrough")
	}
}

func TestTranslateWordByWord(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "I love cats", "english", "spanish")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"yo", "amar", "gato"} {
		if !strings.Contains(strings.ToLower(r.Text), want) {
			t.Errorf("output %q missing %q", r.Text, want)
		}
	}
	if !r.IsTranslated {
		t.Error("isTranslated = false")
	}
}

func TestTranslateRecordsUnknownWords(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "I love xylophones", "english", "spanish")
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, w := range r.UnknownWords {
		if strings.Contains(strings.ToLower(w), "xylophone") {
			found = true
		}
	}
	if !found {
		t.Errorf("unknownWords = %v, expected xylophones recorded", r.UnknownWords)
	}
}

func TestIdiomHitScoresHighConfidence(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "kick the bucket", "english", "spanish")
	if err != nil {
		t.Fatal(err)
	}
	if r.Method != MethodIdiomReplacement {
		t.Errorf("method = %s", r.Method)
	}
	if r.Confidence < 0.9 {
		t.Errorf("confidence = %v, idiom replacement is a direct hit", r.Confidence)
	}
}

func TestIdiomResultNotOverriddenByModel(t *testing.T) {
	p := &spyProvider{}
	e := NewEngine(WithModelProvider(p))

	r, err := e.Translate(context.Background(), "kick the bucket", "english", "spanish")
	if err != nil {
		t.Fatal(err)
	}
	if r.Text != "estirar la pata" {
		t.Errorf("text = %q, want the idiomatic rendering", r.Text)
	}
	if r.FallbackUsed || p.calls != 0 {
		t.Errorf("model consulted (fallback=%v calls=%d) despite an idiom hit", r.FallbackUsed, p.calls)
	}
}

func TestTranslateUnknownOnlyIsPostProcessed(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "namaste", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if r.Method != MethodPostProcessed {
		t.Errorf("method = %s, want post-processed", r.Method)
	}
	if language.DetectScript(r.Text) != "Devanagari" {
		t.Errorf("unknown word should be rendered in the target script, got %q", r.Text)
	}
	if len(r.UnknownWords) != 1 {
		t.Errorf("unknownWords = %v", r.UnknownWords)
	}
}

func TestTranslateSenseDisambiguation(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "we sat on the bank of the river", "english", "spanish")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(r.Text, "orilla") {
		t.Errorf("river bank should translate as orilla, got %q", r.Text)
	}
	if strings.Contains(r.Text, "banco") {
		t.Errorf("money sense leaked into %q", r.Text)
	}
	if !r.Disambiguated {
		t.Error("disambiguated flag not set")
	}
}

func TestTranslatePivot(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "पानी", "hindi", "telugu")
	if err != nil {
		t.Fatal(err)
	}
	if r.Pivot != "water" {
		t.Errorf("pivot = %q, want water", r.Pivot)
	}
	if r.Text != "నీరు" {
		t.Errorf("text = %q, want నీరు", r.Text)
	}
}

func TestTranslateReorders(t *testing.T) {
	e := NewEngine()

	r, err := e.Translate(context.Background(), "I love cats", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if !r.Reordered {
		t.Errorf("SVO to SOV should reorder, result %+v", r)
	}
}

func TestCacheSecondCallSkipsComputation(t *testing.T) {
	c := newSpyCache()
	p := &spyProvider{translations: map[string]string{}}
	e := NewEngine(
		WithCache(c),
		WithModelProvider(p),
		WithConfidenceThreshold(0.99), // force the model on every fresh call
	)

	first, err := e.Translate(context.Background(), "How are you?", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Fatalf("model calls after first translate = %d, want 1", p.calls)
	}

	second, err := e.Translate(context.Background(), "How are you?", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if p.calls != 1 {
		t.Errorf("cached call re-invoked the model (%d calls)", p.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached result differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestPassthroughNeverCached(t *testing.T) {
	c := newSpyCache()
	e := NewEngine(WithCache(c))

	if _, err := e.Translate(context.Background(), "hello", "english", "english"); err != nil {
		t.Fatal(err)
	}
	if c.sets != 0 {
		t.Errorf("passthrough wrote %d cache entries", c.sets)
	}
}

func TestModelFallbackOnLowConfidence(t *testing.T) {
	p := &spyProvider{translations: map[string]string{
		"qwop zzkt": "मॉडल अनुवाद",
	}}
	e := NewEngine(WithModelProvider(p))

	r, err := e.Translate(context.Background(), "qwop zzkt", "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if r.Method != MethodModelFallback || !r.FallbackUsed {
		t.Errorf("expected model fallback, got method %s", r.Method)
	}
	if r.Text != "मॉडल अनुवाद" {
		t.Errorf("text = %q", r.Text)
	}
}

func TestModelFailureDegradesSilently(t *testing.T) {
	p := &spyProvider{err: &ProviderError{Message: "backend down", Retryable: true}}
	e := NewEngine(WithModelProvider(p))

	r, err := e.Translate(context.Background(), "qwop zzkt", "english", "spanish")
	if err != nil {
		t.Fatalf("model failure must not escape Translate: %v", err)
	}
	if r.FallbackUsed {
		t.Error("failed fallback must not be reported as used")
	}
	if p.calls != 1 {
		t.Errorf("model calls = %d", p.calls)
	}
}

func TestHighConfidenceSkipsModel(t *testing.T) {
	p := &spyProvider{}
	e := NewEngine(WithModelProvider(p))

	if _, err := e.Translate(context.Background(), "How are you?", "english", "hindi"); err != nil {
		t.Fatal(err)
	}
	if p.calls != 0 {
		t.Errorf("phrase hit should not consult the model, calls = %d", p.calls)
	}
}

func TestTranslateBatch(t *testing.T) {
	c := newSpyCache()
	e := NewEngine(WithCache(c))

	texts := []string{"hello", "thank you", "good morning", "water", "cat", "dog"}
	results, err := e.TranslateBatch(context.Background(), texts, "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(texts) {
		t.Fatalf("got %d results", len(results))
	}
	for i, r := range results {
		if r == nil || r.Text == "" {
			t.Errorf("result %d empty", i)
		}
	}

	// Second run should be served from cache. Translated entries were
	// written once each.
	setsAfterFirst := c.sets
	again, err := e.TranslateBatch(context.Background(), texts, "english", "hindi")
	if err != nil {
		t.Fatal(err)
	}
	if c.sets != setsAfterFirst {
		t.Errorf("second batch wrote %d new entries", c.sets-setsAfterFirst)
	}
	for i := range results {
		if again[i].Text != results[i].Text {
			t.Errorf("batch result %d changed between runs", i)
		}
	}
}

func TestIdiomReplacementIdempotent(t *testing.T) {
	e := NewEngine()

	once, _ := e.Idioms().ReplaceAll("he will kick the bucket", "spanish")
	twice, _ := e.Idioms().ReplaceAll(once, "spanish")
	if once != twice {
		t.Errorf("idiom replacement not idempotent: %q vs %q", once, twice)
	}
}

func ExampleEngine_Translate() {
	e := NewEngine()
	r, _ := e.Translate(context.Background(), "thank you", "english", "spanish")
	fmt.Println(r.Text)
	// Output: gracias
}

package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestBuildSystemPrompt(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	req := ModelRequest{
		SourceLang: "english",
		TargetLang: "hindi",
		SourceCode: "en_Latn",
		TargetCode: "hi_Deva",
	}

	prompt := p.buildSystemPrompt(req)

	if !strings.Contains(prompt, "hindi") {
		t.Error("prompt should name the target language")
	}
	if !strings.Contains(prompt, "hi_Deva") {
		t.Error("prompt should carry the script-qualified target code")
	}
	if !strings.Contains(prompt, `"translations"`) {
		t.Error("prompt should pin the JSON response format")
	}
}

func TestBuildSystemPrompt_DefaultSource(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	prompt := p.buildSystemPrompt(ModelRequest{TargetLang: "telugu"})
	if !strings.Contains(prompt, "from english to telugu") {
		t.Errorf("empty source should default to english:\n%s", prompt)
	}
}

func TestBuildUserMessage(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	msg := p.buildUserMessage(ModelRequest{Texts: []string{"Hello", "World"}})
	if msg != `["Hello","World"]` {
		t.Errorf("expected JSON array, got: %s", msg)
	}
}

func TestParseResponse_TranslationsKey(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	result, err := p.parseResponse(`{"translations": ["नमस्ते", "धन्यवाद"]}`, 2)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if result[0] != "नमस्ते" || result[1] != "धन्यवाद" {
		t.Errorf("unexpected translations: %v", result)
	}
}

func TestParseResponse_DirectArray(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	result, err := p.parseResponse(`["Hola", "Mundo"]`, 2)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if result[0] != "Hola" || result[1] != "Mundo" {
		t.Errorf("unexpected translations: %v", result)
	}
}

func TestParseResponse_FallbackArrayKey(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	// Some models answer under a different key.
	result, err := p.parseResponse(`{"results": ["Hola", "Mundo"]}`, 2)
	if err != nil {
		t.Fatalf("parseResponse failed: %v", err)
	}
	if result[0] != "Hola" || result[1] != "Mundo" {
		t.Errorf("unexpected translations: %v", result)
	}
}

func TestParseResponse_CountMismatch(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "test"})

	if _, err := p.parseResponse(`{"translations": ["Hola"]}`, 2); err == nil {
		t.Error("expected error for count mismatch")
	}
}

func TestIsRetryableError(t *testing.T) {
	if !isRetryableError(errors.New("429 Too Many Requests")) {
		t.Error("429 should be retryable")
	}
	if isRetryableError(errors.New("invalid api key")) {
		t.Error("auth errors are not retryable")
	}
}

func TestMockProvider(t *testing.T) {
	m := NewMockProvider()

	req := ModelRequest{
		Texts:      []string{"Hello", "Unknown text"},
		TargetLang: "hindi",
	}

	result, err := m.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("MockProvider.Translate failed: %v", err)
	}

	if result[0] != "नमस्ते" {
		t.Errorf("expected canned hit, got %q", result[0])
	}
	if result[1] != "[Unknown text]" {
		t.Errorf("expected bracketed fallback, got %q", result[1])
	}
	if m.CallCount != 1 {
		t.Errorf("CallCount = %d, want 1", m.CallCount)
	}
	if m.LastRequest == nil || m.LastRequest.TargetLang != "hindi" {
		t.Error("LastRequest not recorded")
	}

	m.Reset()
	if m.CallCount != 0 || m.LastRequest != nil {
		t.Error("Reset should clear state")
	}
}

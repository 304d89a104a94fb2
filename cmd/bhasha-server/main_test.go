package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/openlexica/bhasha"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := newServer(bhasha.NewEngine())
	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleTranslate(t *testing.T) {
	ts := newTestServer(t)

	body := `{"text":"Hello","source_lang":"english","target_lang":"spanish"}`
	resp, err := http.Post(ts.URL+"/api/translate", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Text != "hola" {
		t.Errorf("text = %q, want hola", got.Text)
	}
	if len(got.SupportedLanguages) == 0 {
		t.Error("response should carry supported languages")
	}
}

func TestHandleTranslateMissingFields(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"no text", `{"source_lang":"english","target_lang":"hindi"}`},
		{"no source", `{"text":"hi","target_lang":"hindi"}`},
		{"no target", `{"text":"hi","source_lang":"english"}`},
		{"bad json", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/api/translate", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			var got errorResponse
			if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Error == "" {
				t.Error("error body should carry a message")
			}
			if len(got.SupportedLanguages) == 0 {
				t.Error("error body should carry supported languages")
			}
		})
	}
}

func TestHandleTranslateMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/translate")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHandleChat(t *testing.T) {
	ts := newTestServer(t)

	body := `{"text":"Hello","sender_lang":"english","receiver_lang":"hindi"}`
	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.SenderView != "Hello" {
		t.Errorf("sender view = %q", got.SenderView)
	}
	if got.ReceiverView == "" || got.ReceiverView == "Hello" {
		t.Errorf("receiver view = %q, want translated text", got.ReceiverView)
	}
	if got.Path != bhasha.PathEnglishToNative {
		t.Errorf("path = %q", got.Path)
	}
}

func TestHandleChatMissingLangs(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/chat", "application/json", strings.NewReader(`{"text":"hi"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestHandleLanguages(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/languages")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got languagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.Languages) < 50 {
		t.Errorf("languages = %d, want the full registry", len(got.Languages))
	}

	var hindi *languageJSON
	for i := range got.Languages {
		if got.Languages[i].Name == "hindi" {
			hindi = &got.Languages[i]
			break
		}
	}
	if hindi == nil {
		t.Fatal("hindi missing from language list")
	}
	if hindi.Code != "hi" || hindi.Script != "Devanagari" || hindi.WordOrder != "SOV" {
		t.Errorf("hindi profile = %+v", hindi)
	}
}

func TestBuildEngineDefaults(t *testing.T) {
	e, err := buildEngine(Config{CacheTTL: 60, CacheMaxSize: 100})
	if err != nil {
		t.Fatal(err)
	}
	if e == nil {
		t.Fatal("engine should not be nil")
	}
}

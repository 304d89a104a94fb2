// Command bhasha-server exposes the translation pipeline as a JSON REST API.
//
// Endpoints:
//
//	POST /api/translate   body: {"text":"...","source_lang":"...","target_lang":"..."}
//	POST /api/chat        body: {"text":"...","sender_lang":"...","receiver_lang":"..."}
//	GET  /api/languages
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/cors"

	"github.com/openlexica/bhasha"
	"github.com/openlexica/bhasha/cache"
	"github.com/openlexica/bhasha/provider"
)

// Config holds the server configuration loaded from environment variables.
type Config struct {
	Host         string   `env:"BHASHA_HOST" envDefault:"localhost"`
	Port         int      `env:"BHASHA_PORT" envDefault:"8080"`
	RedisURL     string   `env:"BHASHA_REDIS_URL"`                             // optional Redis URL for a shared cache
	CacheTTL     int      `env:"BHASHA_CACHE_TTL" envDefault:"3600"`           // cache TTL in seconds
	CacheMaxSize int      `env:"BHASHA_CACHE_MAX_SIZE" envDefault:"10000"`
	OpenAIKey    string   `env:"OPENAI_API_KEY"`                               // enables model fallback when set
	OpenAIModel  string   `env:"BHASHA_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	CORSOrigins  []string `env:"BHASHA_CORS_ORIGINS" envSeparator:","`         // empty allows all
}

// ---- JSON request/response types ----------------------------------------

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	*bhasha.TranslationResult
	SupportedLanguages []string `json:"supported_languages"`
}

type chatRequest struct {
	Text         string `json:"text"`
	SenderLang   string `json:"sender_lang"`
	ReceiverLang string `json:"receiver_lang"`
}

type chatResponse struct {
	*bhasha.ChatMessageViews
	SupportedLanguages []string `json:"supported_languages"`
}

type languageJSON struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	NativeName string `json:"native_name,omitempty"`
	Script     string `json:"script"`
	RTL        bool   `json:"rtl,omitempty"`
	WordOrder  string `json:"word_order"`
}

type languagesResponse struct {
	Languages []languageJSON `json:"languages"`
}

type errorResponse struct {
	Error              string   `json:"error"`
	SupportedLanguages []string `json:"supported_languages,omitempty"`
}

// ---- server ---------------------------------------------------------------

type server struct {
	engine    *bhasha.Engine
	languages []string
}

func newServer(e *bhasha.Engine) *server {
	names := e.Registry().Languages()
	sort.Strings(names)
	return &server{engine: e, languages: names}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg, SupportedLanguages: s.languages})
}

func (s *server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "body must be JSON")
		return
	}
	if req.Text == "" || req.SourceLang == "" || req.TargetLang == "" {
		s.writeError(w, http.StatusBadRequest, "text, source_lang and target_lang are required")
		return
	}

	result, err := s.engine.Translate(r.Context(), req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, translateResponse{
		TranslationResult:  result,
		SupportedLanguages: s.languages,
	})
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "body must be JSON")
		return
	}
	if req.SenderLang == "" || req.ReceiverLang == "" {
		s.writeError(w, http.StatusBadRequest, "sender_lang and receiver_lang are required")
		return
	}

	views, err := s.engine.TranslateForChat(r.Context(), req.Text, req.SenderLang, req.ReceiverLang)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, chatResponse{
		ChatMessageViews:   views,
		SupportedLanguages: s.languages,
	})
}

func (s *server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	registry := s.engine.Registry()
	langs := make([]languageJSON, 0, len(s.languages))
	for _, name := range s.languages {
		p := registry.Profile(name)
		langs = append(langs, languageJSON{
			Name:       p.Name,
			Code:       p.Code,
			NativeName: p.NativeName,
			Script:     p.Script,
			RTL:        p.RTL,
			WordOrder:  string(p.Order),
		})
	}
	s.writeJSON(w, http.StatusOK, languagesResponse{Languages: langs})
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/translate", s.handleTranslate)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/languages", s.handleLanguages)
	return mux
}

// buildEngine assembles the engine from the configuration.
func buildEngine(cfg Config) (*bhasha.Engine, error) {
	opts := []bhasha.EngineOption{}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: cfg.RedisURL, TTL: cfg.CacheTTL})
		if err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		opts = append(opts, bhasha.WithCache(rc))
	} else if cfg.CacheTTL > 0 {
		opts = append(opts, bhasha.WithCache(cache.NewMemoryCache(cfg.CacheTTL, cfg.CacheMaxSize)))
	}

	if cfg.OpenAIKey != "" {
		p := provider.NewOpenAIProvider(provider.OpenAIConfig{
			APIKey: cfg.OpenAIKey,
			Model:  cfg.OpenAIModel,
		})
		retryable := bhasha.NewRetryableProvider(p, bhasha.DefaultRetryConfig())
		opts = append(opts, bhasha.WithModelProvider(retryable))
	}

	return bhasha.NewEngine(opts...), nil
}

func main() {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parsing config: %v", err)
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		log.Fatalf("building engine: %v", err)
	}

	s := newServer(engine)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      c.Handler(s.routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("%s %s listening on %s", bhasha.Name, bhasha.Version, addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

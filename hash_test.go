package bhasha

import (
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	h1 := HashText("Hello World")
	h2 := HashText("Hello World")
	if h1 != h2 {
		t.Error("hash must be deterministic")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}
	if HashText("  Hello World  ") != h1 {
		t.Error("surrounding whitespace must not change the hash")
	}
	if HashText("hello world") == h1 {
		t.Error("case must change the hash")
	}
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("english", "hindi", "abc123")
	if key != "english:hindi:abc123" {
		t.Errorf("key = %q", key)
	}
	if !strings.HasPrefix(key, "english:hindi:") {
		t.Error("key must start with the language pair")
	}
	if CacheKey("hindi", "english", "abc123") == key {
		t.Error("direction must be part of the key")
	}
}

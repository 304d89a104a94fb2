package bhasha_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/openlexica/bhasha"
	"github.com/openlexica/bhasha/cache"
	"github.com/openlexica/bhasha/language"
	"github.com/openlexica/bhasha/reorder"
	"github.com/openlexica/bhasha/translit"
)

// Benchmarks for performance validation

func BenchmarkHashText(b *testing.B) {
	text := "Hello World, this is a sample text for hashing"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhasha.HashText(text)
	}
}

func BenchmarkCacheKey(b *testing.B) {
	hash := "a591a6d40bf420404a011733cfb7b190d62c65bf0bcda32b57b277d9ad9f146e"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bhasha.CacheKey("english", "hindi", hash)
	}
}

func BenchmarkMemoryCache_Get(b *testing.B) {
	c := cache.NewMemoryCache(3600, 10000)
	c.Set("test-key", "test-value")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("test-key")
	}
}

func BenchmarkMemoryCache_Set(b *testing.B) {
	c := cache.NewMemoryCache(3600, 10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("key-%d", i%1000), "test-value")
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := "The quick brown fox jumps over the lazy dog near the river bank."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reorder.Tokenize(text)
	}
}

func BenchmarkTransliterate(b *testing.B) {
	tr := translit.New(language.NewRegistry())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ToNative("namaste", "hindi")
	}
}

func BenchmarkTranslate_Phrase(b *testing.B) {
	e := bhasha.NewEngine()
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Translate(ctx, "How are you?", "english", "hindi")
	}
}

func BenchmarkTranslate_WordByWord(b *testing.B) {
	e := bhasha.NewEngine()
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Translate(ctx, "I love my cat and my dog", "english", "spanish")
	}
}

func BenchmarkTranslate_Cached(b *testing.B) {
	e := bhasha.NewEngine(bhasha.WithCache(cache.NewMemoryCache(3600, 10000)))
	ctx := context.Background()

	// Prime the cache
	e.Translate(ctx, "How are you?", "english", "hindi")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Translate(ctx, "How are you?", "english", "hindi")
	}
}

func BenchmarkTranslate_Pivot(b *testing.B) {
	e := bhasha.NewEngine()
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Translate(ctx, "पानी", "hindi", "telugu")
	}
}

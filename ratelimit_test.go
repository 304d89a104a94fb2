package bhasha

import (
	"context"
	"testing"
)

func TestRateLimiterBurst(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 3})

	for i := 0; i < 3; i++ {
		if !r.TryAcquire() {
			t.Fatalf("acquire %d should succeed within burst", i)
		}
	}
	if r.TryAcquire() {
		t.Error("burst exhausted, acquire should fail")
	}
}

func TestRateLimiterAvailable(t *testing.T) {
	r := NewRateLimiter(RateLimitConfig{RequestsPerMinute: 60, BurstSize: 5})

	if a := r.Available(); a < 4.9 {
		t.Errorf("fresh limiter available = %v", a)
	}
	r.TryAcquire()
	if a := r.Available(); a > 4.5 {
		t.Errorf("available after acquire = %v", a)
	}
}

func TestRateLimitedProviderPassesThrough(t *testing.T) {
	p := &spyProvider{translations: map[string]string{"hi": "नमस्ते"}}
	lp := NewRateLimitedProvider(p, RateLimitConfig{RequestsPerMinute: 600})

	out, err := lp.Translate(context.Background(), ModelRequest{Texts: []string{"hi"}})
	if err != nil {
		t.Fatal(err)
	}
	if out[0] != "नमस्ते" {
		t.Errorf("out = %v", out)
	}
	if lp.Limiter().Available() <= 0 {
		t.Error("limiter should still have tokens")
	}
}

func TestRateLimitedProviderCancelledContext(t *testing.T) {
	p := &spyProvider{}
	lp := NewRateLimitedProvider(p, RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})

	// Drain the single token.
	if _, err := lp.Translate(context.Background(), ModelRequest{Texts: []string{"a"}}); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lp.Translate(ctx, ModelRequest{Texts: []string{"b"}}); err == nil {
		t.Error("cancelled wait should surface an error")
	}
	if p.calls != 1 {
		t.Errorf("provider called %d times", p.calls)
	}
}

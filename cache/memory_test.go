package cache

import (
	"sync"
	"testing"
	"time"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache(3600, 0)

	if err := c.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok || val != "value1" {
		t.Errorf("Get = %q, %v; want value1, true", val, ok)
	}

	if val, ok := c.Get("nonexistent"); ok || val != "" {
		t.Errorf("missing key should miss, got %q, %v", val, ok)
	}
}

func TestMemoryCache_TTL(t *testing.T) {
	c := NewMemoryCache(1, 0)

	c.Set("key1", "value1")
	if _, ok := c.Get("key1"); !ok {
		t.Error("value should be available immediately after set")
	}

	time.Sleep(1100 * time.Millisecond)

	if val, ok := c.Get("key1"); ok || val != "" {
		t.Errorf("value should be expired, got %q, %v", val, ok)
	}
}

func TestMemoryCache_NoTTL(t *testing.T) {
	c := NewMemoryCache(0, 0)

	c.Set("key1", "value1")
	if val, ok := c.Get("key1"); !ok || val != "value1" {
		t.Error("value should never expire with TTL disabled")
	}
}

func TestMemoryCache_Eviction(t *testing.T) {
	c := NewMemoryCache(0, 3)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("c", "3")
	c.Set("d", "4") // evicts a

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	for _, key := range []string{"b", "c", "d"} {
		if _, ok := c.Get(key); !ok {
			t.Errorf("entry %q should survive eviction", key)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}
}

func TestMemoryCache_OverwriteDoesNotEvict(t *testing.T) {
	c := NewMemoryCache(0, 2)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Set("a", "updated")

	if val, _ := c.Get("a"); val != "updated" {
		t.Errorf("overwrite lost: got %q", val)
	}
	if _, ok := c.Get("b"); !ok {
		t.Error("overwrite must not evict other entries")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(3600, 0)

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("cleared cache Len = %d", c.Len())
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("cleared cache should not contain any keys")
	}
}

func TestMemoryCache_Concurrent(t *testing.T) {
	c := NewMemoryCache(3600, 50)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Set(key, "value")
		}(i)
	}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := string(rune('a' + i%26))
			c.Get(key)
		}(i)
	}
	wg.Wait()
}

package cache

import (
	"testing"
	"time"
)

func TestCacheSetGet(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("payload"), time.Minute)

	data, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected payload %q", data)
	}
}

func TestCacheExpiry(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("payload"), time.Nanosecond)
	time.Sleep(time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected expired entry to miss")
	}

	c.evict()
	stats := c.Stats()
	if stats["total_keys"].(int) != 0 {
		t.Fatalf("expected evict to remove expired entry, got %v", stats)
	}
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(false)
	c.Set("k", []byte("payload"), time.Minute)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected disabled cache to miss")
	}
}

func TestNonPositiveTTLIgnored(t *testing.T) {
	c := New(true)
	c.Set("k", []byte("payload"), 0)

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected zero TTL set to be ignored")
	}
}

package cache

import (
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestCache_SetGetExpire(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	c := New[string](nil)
	c.now = clk.now

	c.Set("a", "one", time.Minute)
	if v, ok := c.Get("a"); !ok || v != "one" {
		t.Fatalf("Get(a) = %q,%v", v, ok)
	}

	clk.t = clk.t.Add(2 * time.Minute)
	if _, ok := c.Get("a"); ok {
		t.Error("expired entry returned")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry not removed, Len = %d", c.Len())
	}
}

func TestCache_Clone(t *testing.T) {
	c := New(func(v []int) []int { return append([]int(nil), v...) })
	src := []int{1, 2}
	c.Set("k", src, time.Minute)
	src[0] = 99

	got, _ := c.Get("k")
	if got[0] != 1 {
		t.Errorf("Set did not clone: %v", got)
	}
	got[1] = 42
	again, _ := c.Get("k")
	if again[1] != 2 {
		t.Errorf("Get did not clone: %v", again)
	}
}

func TestCache_SlidingTouch(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	c := NewSliding[int](nil)
	c.now = clk.now

	c.Set("s", 1, time.Minute)
	clk.t = clk.t.Add(50 * time.Second)
	if _, ok := c.Touch("s", time.Minute); !ok {
		t.Fatal("Touch before expiry failed")
	}
	clk.t = clk.t.Add(50 * time.Second)
	if _, ok := c.Get("s"); !ok {
		t.Error("Touch did not renew the entry")
	}
	clk.t = clk.t.Add(2 * time.Minute)
	if _, ok := c.Get("s"); ok {
		t.Error("entry should expire after idle ttl")
	}
}

func TestCache_DeleteAndSweep(t *testing.T) {
	clk := &clock{t: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)}
	c := New[int](nil)
	c.now = clk.now

	c.Set("short", 1, time.Second)
	c.Set("long", 2, time.Hour)
	c.Set("gone", 3, time.Hour)
	c.Delete("gone")

	clk.t = clk.t.Add(time.Minute)
	if left := c.Sweep(); left != 1 {
		t.Errorf("Sweep() = %d, want 1", left)
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("live entry swept")
	}
}

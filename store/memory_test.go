package store

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemory_GetSet(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	// Miss returns false.
	_, ok, err := s.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}

	// Set then Get.
	if err := s.Set(ctx, "k1", []byte("v1"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	val, ok, err := s.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit")
	}
	if string(val) != "v1" {
		t.Fatalf("got %q, want %q", val, "v1")
	}
}

func TestMemory_OverwriteLastWins(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	if err := s.Set(ctx, "k", []byte("first"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Set(ctx, "k", []byte("second"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	val, ok, _ := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(val) != "second" {
		t.Fatalf("got %q, want %q", val, "second")
	}
}

func TestMemory_DeleteIdempotent(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	if err := s.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("expected miss after delete")
	}

	// Deleting an absent key is a no-op, not an error.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete of absent key: %v", err)
	}
	if err := s.Delete(ctx, "never-existed"); err != nil {
		t.Fatalf("Delete of unknown key: %v", err)
	}
}

func TestMemory_IgnoresTTL(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	if err := s.Set(ctx, "ttl", []byte("temp"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	// The fallback store keeps entries until deleted; the TTL is ignored.
	_, ok, _ := s.Get(ctx, "ttl")
	if !ok {
		t.Fatal("expected entry to survive past its TTL")
	}
}

func TestMemory_CopiesValues(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	in := []byte("original")
	if err := s.Set(ctx, "k", in, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	in[0] = 'X'

	out, ok, _ := s.Get(ctx, "k")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(out) != "original" {
		t.Fatalf("stored value aliased caller slice: got %q", out)
	}

	out[0] = 'Y'
	out2, _, _ := s.Get(ctx, "k")
	if string(out2) != "original" {
		t.Fatalf("returned value aliased stored slice: got %q", out2)
	}
}

func TestMemory_Len(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	if n := s.Len(); n != 0 {
		t.Fatalf("Len = %d, want 0", n)
	}
	for i := range 3 {
		if err := s.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0); err != nil {
			t.Fatalf("Set error: %v", err)
		}
	}
	if n := s.Len(); n != 3 {
		t.Fatalf("Len = %d, want 3", n)
	}

	_ = s.Delete(ctx, "k0")
	if n := s.Len(); n != 2 {
		t.Fatalf("Len = %d, want 2", n)
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	s := NewMemory()
	ctx := t.Context()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%4)
			for range 100 {
				_ = s.Set(ctx, key, []byte("v"), 0)
				_, _, _ = s.Get(ctx, key)
				_ = s.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}

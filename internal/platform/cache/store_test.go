package cache

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreGetSet(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("missing key must not resolve")
	}

	store.Set(ctx, "k", 42)
	v, ok := store.Get(ctx, "k")
	if !ok || v != 42 {
		t.Fatalf("unexpected value: %v ok=%t", v, ok)
	}

	store.Delete(ctx, "k")
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("deleted key must not resolve")
	}
}

func TestStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)

	store.Set(ctx, "k", "v")
	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expired entry must not resolve")
	}
}

func TestGetOrLoadDeduplicates(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	var loads atomic.Int32
	loader := func(context.Context) (any, error) {
		loads.Add(1)
		time.Sleep(5 * time.Millisecond)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := store.GetOrLoad(ctx, "k", loader)
			if err != nil || v != "loaded" {
				t.Errorf("unexpected result: %v %v", v, err)
			}
		}()
	}
	wg.Wait()

	if got := loads.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
}

func TestGetOrLoadErrorNotCached(t *testing.T) {
	ctx := context.Background()
	store := NewStore(0)

	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("boom")
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(ctx, "k", loader); err == nil {
		t.Fatal("expected first load to fail")
	}
	v, err := store.GetOrLoad(ctx, "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("second load should succeed: %v %v", v, err)
	}
}

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStoreSetGet(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatalf("Get on empty store returned a hit")
	}

	store.Set(ctx, "events", []string{"swimming-100m-free"})
	value, ok := store.Get(ctx, "events")
	if !ok {
		t.Fatalf("Get after Set missed")
	}
	events, ok := value.([]string)
	if !ok || len(events) != 1 {
		t.Fatalf("Get returned %#v, want one event key", value)
	}
}

func TestStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("Get returned a hit past the TTL")
	}
}

func TestStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	store.Delete(ctx, "k")

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("Get returned a hit after Delete")
	}
}

func TestStoreGetOrLoadSharesLoader(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "loaded", nil
	}

	const workers = 8
	var wg sync.WaitGroup
	results := make([]any, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.GetOrLoad(ctx, "k", loader)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader ran %d times, want 1", got)
	}
	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d returned error: %v", i, errs[i])
		}
		if results[i] != "loaded" {
			t.Fatalf("worker %d got %#v, want loaded", i, results[i])
		}
	}
}

func TestStoreGetOrLoadPropagatesError(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	wantErr := errors.New("catalog unavailable")
	_, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("GetOrLoad error = %v, want %v", err, wantErr)
	}

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("failed load left a cached value")
	}
}

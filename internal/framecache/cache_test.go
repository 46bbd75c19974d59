package framecache_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"cutline/internal/framecache"
)

type frame struct {
	id       string
	releases int
	fail     bool
}

func (f *frame) Release() error {
	f.releases++
	if f.fail {
		return errors.New("native buffer already freed")
	}
	return nil
}

func newCache(t *testing.T, capacity int) *framecache.Cache[string, *frame] {
	t.Helper()
	cache, err := framecache.New[string, *frame](capacity, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return cache
}

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		if _, err := framecache.New[string, *frame](capacity, nil); !errors.Is(err, framecache.ErrInvalidCapacity) {
			t.Fatalf("capacity %d: expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

func TestGetMiss(t *testing.T) {
	cache := newCache(t, 2)
	if _, ok := cache.Get("absent"); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	cache := newCache(t, 2)
	a1 := &frame{id: "a1"}
	a2 := &frame{id: "a2"}
	a3 := &frame{id: "a3"}

	cache.Put("k1", a1)
	cache.Put("k2", a2)
	if _, ok := cache.Get("k1"); !ok {
		t.Fatal("k1 should be present")
	}
	cache.Put("k3", a3)

	// k2 was least recently used after k1 was touched.
	if _, ok := cache.Get("k2"); ok {
		t.Fatal("k2 should have been evicted")
	}
	if a2.releases != 1 {
		t.Fatalf("evicted artifact released %d times, want exactly once", a2.releases)
	}
	if _, ok := cache.Get("k1"); !ok {
		t.Fatal("k1 missing after eviction")
	}
	if _, ok := cache.Get("k3"); !ok {
		t.Fatal("k3 missing after insert")
	}
	if a1.releases != 0 || a3.releases != 0 {
		t.Fatalf("surviving artifacts were released: k1=%d k3=%d", a1.releases, a3.releases)
	}
	if cache.Len() != 2 {
		t.Fatalf("len = %d, want 2", cache.Len())
	}
}

func TestOverwriteReleasesOldArtifact(t *testing.T) {
	cache := newCache(t, 2)
	old := &frame{id: "old"}
	replacement := &frame{id: "new"}

	cache.Put("k", old)
	cache.Put("k", replacement)

	if old.releases != 1 {
		t.Fatalf("overwritten artifact released %d times, want exactly once", old.releases)
	}
	got, ok := cache.Get("k")
	if !ok || got != replacement {
		t.Fatalf("expected replacement artifact, got %v (ok=%v)", got, ok)
	}
	if cache.Len() != 1 {
		t.Fatalf("len = %d, want 1", cache.Len())
	}
}

func TestOverwritePromotesToMostRecentlyUsed(t *testing.T) {
	cache := newCache(t, 2)
	cache.Put("k1", &frame{})
	cache.Put("k2", &frame{})
	cache.Put("k1", &frame{}) // overwrite promotes k1
	cache.Put("k3", &frame{})

	if _, ok := cache.Get("k2"); ok {
		t.Fatal("k2 should have been evicted after k1 was overwritten")
	}
	if _, ok := cache.Get("k1"); !ok {
		t.Fatal("k1 should have survived")
	}
}

func TestNeverExceedsCapacity(t *testing.T) {
	const capacity = 4
	cache := newCache(t, capacity)
	for i := 0; i < 32; i++ {
		cache.Put(fmt.Sprintf("k%d", i), &frame{})
		if got := cache.Len(); got > capacity {
			t.Fatalf("len = %d exceeds capacity %d", got, capacity)
		}
	}
}

func TestClearReleasesEverything(t *testing.T) {
	cache := newCache(t, 3)
	frames := []*frame{{id: "a"}, {id: "b"}, {id: "c"}}
	for i, f := range frames {
		cache.Put(fmt.Sprintf("k%d", i), f)
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Fatalf("len after clear = %d", cache.Len())
	}
	for _, f := range frames {
		if f.releases != 1 {
			t.Fatalf("artifact %s released %d times, want exactly once", f.id, f.releases)
		}
	}
	if _, ok := cache.Get("k0"); ok {
		t.Fatal("cleared entry still retrievable")
	}
}

func TestReleaseFailureIsNonFatal(t *testing.T) {
	cache := newCache(t, 1)
	failing := &frame{id: "bad", fail: true}
	cache.Put("k1", failing)
	cache.Put("k2", &frame{})

	// The failing artifact is still considered evicted.
	if _, ok := cache.Get("k1"); ok {
		t.Fatal("entry with failing release must still be evicted")
	}
	if failing.releases != 1 {
		t.Fatalf("failing artifact released %d times, want exactly once", failing.releases)
	}
	if _, ok := cache.Get("k2"); !ok {
		t.Fatal("subsequent insert lost")
	}
}

func TestConcurrentAccess(t *testing.T) {
	cache := newCache(t, 8)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("k%d", (worker+i)%16)
				if _, ok := cache.Get(key); !ok {
					cache.Put(key, &frame{id: key})
				}
			}
		}(w)
	}
	wg.Wait()
	if got := cache.Len(); got > 8 {
		t.Fatalf("len = %d exceeds capacity", got)
	}
}

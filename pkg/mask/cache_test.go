package mask_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/goliatone/go-inputmask/pkg/mask"
)

func TestCache_ReusesCompiledMasks(t *testing.T) {
	cache := mask.NewCache()

	first, err := cache.Get(dateFormat)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := cache.Get(dateFormat)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first != second {
		t.Fatalf("expected the cached mask to be reused")
	}

	custom, err := cache.Get(dateFormat, mask.Notation{Symbol: '9', Characters: "12"})
	if err != nil {
		t.Fatalf("get with notations: %v", err)
	}
	if custom == first {
		t.Fatalf("expected notations to key the cache")
	}
	if cache.Len() != 2 {
		t.Fatalf("expected 2 cached masks, got %d", cache.Len())
	}
}

func TestCache_DoesNotStoreFailures(t *testing.T) {
	var cache mask.Cache

	if _, err := cache.Get("[00"); !errors.Is(err, mask.ErrMalformedPattern) {
		t.Fatalf("expected ErrMalformedPattern, got %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", cache.Len())
	}
}

func TestCache_ConcurrentGet(t *testing.T) {
	cache := mask.NewCache()

	var wg sync.WaitGroup
	results := make([]*mask.Mask, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = cache.Get(phoneFormat)
		}(i)
	}
	wg.Wait()

	for _, m := range results {
		if m != results[0] {
			t.Fatalf("expected a single shared mask")
		}
	}
}

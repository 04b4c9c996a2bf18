package repository

import (
	"fmt"
	"sync"
	"testing"

	"compound-interest/domain"
)

func TestMemoryCache_GetMissing(t *testing.T) {
	cache := NewMemoryCache()

	if _, ok := cache.Get(domain.ThemeKey); ok {
		t.Errorf("expected missing key")
	}
}

func TestMemoryCache_SetOverwrites(t *testing.T) {
	cache := NewMemoryCache()

	if err := cache.Set(domain.ThemeKey, "dark"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.Set(domain.ThemeKey, "light"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	val, ok := cache.Get(domain.ThemeKey)
	if !ok || val != "light" {
		t.Errorf("expected light, got %q (ok=%v)", val, ok)
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = cache.Set(key, "v")
			cache.Get(key)
		}(i)
	}
	wg.Wait()

	if _, ok := cache.Get("k7"); !ok {
		t.Errorf("expected k7 to be stored")
	}
}

func TestCalculationRepositoryMemory_Limit(t *testing.T) {
	repo := NewCalculationRepositoryMemory(2)

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Save(domain.CalculationReport{ID: id}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got := repo.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}
	if got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("expected [b c], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestCalculationRepositoryMemory_ListIsCopy(t *testing.T) {
	repo := NewCalculationRepositoryMemory(0)
	_ = repo.Save(domain.CalculationReport{ID: "a"})

	got := repo.List()
	got[0].ID = "mutated"

	if repo.List()[0].ID != "a" {
		t.Errorf("List must not expose internal storage")
	}
}

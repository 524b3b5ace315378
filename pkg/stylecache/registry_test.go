package stylecache

import (
	"testing"
)

func newNamedCache(t *testing.T, name string, capacity int) *Cache {
	t.Helper()
	cache, err := New(NewDefaultConfig().WithName(name).WithMaxEntries(capacity))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}
	return cache
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	cache := newNamedCache(t, "buttons", 10)

	if err := registry.Register(cache); err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}

	got, ok := registry.Get("buttons")
	if !ok {
		t.Fatal("Expected registered cache to be found")
	}
	if got != cache {
		t.Fatal("Expected Get to return the registered cache")
	}

	if _, ok := registry.Get("missing"); ok {
		t.Fatal("Expected lookup of unknown name to fail")
	}
}

func TestRegistryRejectsUnnamedCache(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(newTestCache(t, 10)); err == nil {
		t.Fatal("Expected error for cache without a name")
	}
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	registry := NewRegistry()
	if err := registry.Register(newNamedCache(t, "buttons", 10)); err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}
	if err := registry.Register(newNamedCache(t, "buttons", 10)); err == nil {
		t.Fatal("Expected error for duplicate cache name")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := registry.Register(newNamedCache(t, name, 10)); err != nil {
			t.Fatalf("Failed to register %q: %v", name, err)
		}
	}

	names := registry.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Expected %d names, got %d", len(want), len(names))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("Expected names[%d] = %q, got %q", i, name, names[i])
		}
	}
}

func TestRegistrySnapshotIsPureRead(t *testing.T) {
	registry := NewRegistry()
	cache := newNamedCache(t, "buttons", 5)
	if err := registry.Register(cache); err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}

	cache.Set("a", "btn-a")
	cache.Set("b", "btn-b")

	before := cache.Stats().Total()
	snapshot := registry.Snapshot()
	after := cache.Stats().Total()

	info, ok := snapshot["buttons"]
	if !ok {
		t.Fatal("Expected snapshot to contain registered cache")
	}
	if info.Size != 2 || info.MaxSize != 5 {
		t.Fatalf("Unexpected snapshot %+v", info)
	}
	if before != after {
		t.Fatal("Expected snapshot not to touch lookup stats")
	}
	if cache.Len() != 2 {
		t.Fatal("Expected snapshot not to mutate cache contents")
	}
}

func TestRegistryResetAll(t *testing.T) {
	registry := NewRegistry()
	first := newNamedCache(t, "first", 5)
	second := newNamedCache(t, "second", 5)
	if err := registry.Register(first); err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}
	if err := registry.Register(second); err != nil {
		t.Fatalf("Failed to register cache: %v", err)
	}

	first.Set("a", "1")
	second.Set("b", "2")

	registry.ResetAll()

	if first.Len() != 0 || second.Len() != 0 {
		t.Fatalf("Expected all caches empty after ResetAll, got %d and %d",
			first.Len(), second.Len())
	}
	if first.Stats().Resets() != 1 || second.Stats().Resets() != 1 {
		t.Fatal("Expected each cache to record one reset")
	}
}

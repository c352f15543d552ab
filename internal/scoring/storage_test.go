package scoring

import (
	"sync"
	"testing"
)

func TestMemoryStorage_SaveAndLoad(t *testing.T) {
	storage := NewMemoryStorage()

	// 1. Load on an empty store
	entries, err := storage.LoadAll()
	if err != nil {
		t.Errorf("LoadAll on empty store returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected 0 entries, got %d", len(entries))
	}

	// 2. Save
	testEntries := []ScoreHistoryEntry{
		{Difficulty: "easy", Moves: 10, Timestamp: "2024-01-01T00:00:00Z"},
		{Difficulty: "hard", Moves: 30, Timestamp: "2024-01-02T00:00:00Z"},
	}
	if err := storage.SaveAll(testEntries); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}

	// 3. Load again
	loadedEntries, err := storage.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll returned error: %v", err)
	}
	if len(loadedEntries) != len(testEntries) {
		t.Fatalf("Expected %d entries, got %d", len(testEntries), len(loadedEntries))
	}
	if loadedEntries[0].Difficulty != "easy" || loadedEntries[1].Moves != 30 {
		t.Errorf("Loaded content mismatch. Got: %+v", loadedEntries)
	}
}

func TestMemoryStorage_Copies(t *testing.T) {
	storage := NewMemoryStorage()
	in := []ScoreHistoryEntry{{Difficulty: "easy", Moves: 10}}
	storage.SaveAll(in)

	in[0].Moves = 99
	out, _ := storage.LoadAll()
	if out[0].Moves != 10 {
		t.Errorf("SaveAll should copy its input, got %d", out[0].Moves)
	}

	out[0].Moves = 77
	again, _ := storage.LoadAll()
	if again[0].Moves != 10 {
		t.Errorf("LoadAll should return a copy, got %d", again[0].Moves)
	}
}

func TestMemoryStorage_ConcurrentAccess(t *testing.T) {
	storage := NewMemoryStorage()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			storage.SaveAll([]ScoreHistoryEntry{{Moves: n}})
			storage.LoadAll()
		}(i)
	}
	wg.Wait()

	entries, _ := storage.LoadAll()
	if len(entries) != 1 {
		t.Errorf("Expected a single entry, got %d", len(entries))
	}
}

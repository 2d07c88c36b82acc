package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Three rounds at the default configuration
	for _, moves := range []int{7, 3, 5} {
		if _, err := store.SaveResult(5, 1, moves); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	// A round at another configuration
	if _, err := store.SaveResult(8, 2, 11); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	results, err := store.BestResults(5, 1, 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Sorted by fewest moves
	if results[0].Moves != 3 || results[1].Moves != 5 || results[2].Moves != 7 {
		t.Errorf("Results not ordered by moves: %v", results)
	}

	other, err := store.BestResults(8, 2, 10)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 result for 8 boxes speed 2, got %d", len(other))
	}
}

func TestStoreBestResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveResult(5, 1, 10-i)
	}

	results, err := store.BestResults(5, 1, 3)
	if err != nil {
		t.Fatalf("BestResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	if results[0].Moves != 6 || results[1].Moves != 7 || results[2].Moves != 8 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreFewestMoves(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	best, err := store.FewestMoves(5, 1)
	if err != nil {
		t.Fatalf("FewestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unplayed configuration, got %d", best)
	}

	store.SaveResult(5, 1, 9)
	store.SaveResult(5, 1, 4)
	store.SaveResult(5, 1, 6)

	best, err = store.FewestMoves(5, 1)
	if err != nil {
		t.Fatalf("FewestMoves() failed: %v", err)
	}
	if best != 4 {
		t.Errorf("Expected best of 4, got %d", best)
	}

	// Other configurations don't bleed in
	store.SaveResult(3, 1, 1)
	best, _ = store.FewestMoves(5, 1)
	if best != 4 {
		t.Errorf("FewestMoves mixed configurations: got %d", best)
	}
}

func TestStoreRecentResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 25; i++ {
		store.SaveResult(5, 1, i+1)
	}

	results, err := store.RecentResults(20)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 recent results, got %d", len(results))
	}

	// Most recent first (insertion order is the tiebreaker within a second)
	if results[0].Moves != 25 {
		t.Errorf("Expected newest result first, got moves=%d", results[0].Moves)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(5, 1, 3)
	store.SaveResult(6, 2, 4)

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	results, _ := store.RecentResults(10)
	if len(results) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(results))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

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
	store := openTestStore(t)

	runs := []RunEntry{
		{Score: 42, Ticks: 420, Duration: 7 * time.Second, Milestone: false},
		{Score: 117, Ticks: 1170, Duration: 19 * time.Second, Milestone: true},
		{Score: 8, Ticks: 80, Duration: 1300 * time.Millisecond, Milestone: false},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Newest first: the last saved run comes back first.
	if entries[0].Score != 8 {
		t.Errorf("Expected newest run first (score 8), got %d", entries[0].Score)
	}
	if entries[1].Score != 117 || !entries[1].Milestone {
		t.Errorf("Milestone run not preserved: %+v", entries[1])
	}
	if entries[2].Score != 42 || entries[2].Ticks != 420 {
		t.Errorf("Oldest run not preserved: %+v", entries[2])
	}
	if entries[2].Duration != 7*time.Second {
		t.Errorf("Duration not preserved: %v", entries[2].Duration)
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{Score: (i + 1) * 10, Ticks: (i + 1) * 100})
	}

	entries, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}

	// Newest 3: 50, 40, 30.
	if entries[0].Score != 50 || entries[1].Score != 40 || entries[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
}

func TestStoreRunCount(t *testing.T) {
	store := openTestStore(t)

	count, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 runs in fresh store, got %d", count)
	}

	store.SaveRun(RunEntry{Score: 1, Ticks: 10})
	store.SaveRun(RunEntry{Score: 2, Ticks: 20})

	count, err = store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 runs, got %d", count)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{Score: 10, Ticks: 100})
	store.SaveRun(RunEntry{Score: 20, Ticks: 200})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, _ := store.RecentRuns(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(entries))
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

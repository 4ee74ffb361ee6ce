package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("bestScore"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v", ok, err)
	}

	if err := store.Set("bestScore", "7"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("bestScore", "12"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get("bestScore")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "12" {
		t.Errorf("Expected value 12, got %q", v)
	}
}

func TestStoreKeyValuePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Set("bestScore", "42")
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	v, ok, _ := store.Get("bestScore")
	if !ok || v != "42" {
		t.Errorf("Expected persisted value 42, got %q (ok=%v)", v, ok)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore(RunRecord{GameID: "flappy", Score: score, Tier: "easy"}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore(RunRecord{GameID: "other", Score: 500}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 20 || scores[1].Score != 10 || scores[2].Score != 5 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Tier != "easy" {
		t.Errorf("Expected tier easy, got %q", scores[0].Tier)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreSaveAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	a, err := store.SaveScore(RunRecord{GameID: "flappy", Score: 1})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	b, _ := store.SaveScore(RunRecord{GameID: "flappy", Score: 2})

	if a.RunID == "" || a.RunID == b.RunID {
		t.Errorf("Expected distinct run IDs, got %q and %q", a.RunID, b.RunID)
	}
	if a.ID == 0 || b.ID <= a.ID {
		t.Errorf("Expected increasing row IDs, got %d and %d", a.ID, b.ID)
	}

	if _, err := store.SaveScore(RunRecord{RunID: a.RunID, GameID: "flappy"}); err == nil {
		t.Error("Duplicate run ID should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore(RunRecord{GameID: "flappy", Score: (i + 1) * 10})
	}

	scores, err := store.TopScores("flappy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 50 || scores[1].Score != 40 || scores[2].Score != 30 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore(RunRecord{GameID: "flappy", Score: 10})
	store.SaveScore(RunRecord{GameID: "flappy", Score: 30})
	store.SaveScore(RunRecord{GameID: "flappy", Score: 20})

	high, err = store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 30 {
		t.Errorf("Expected high score of 30, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore(RunRecord{GameID: "flappy", Score: 10})
	store.SaveScore(RunRecord{GameID: "other", Score: 30})
	store.Set("bestScore", "10")

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	flappyScores, _ := store.TopScores("flappy", 10)
	if len(flappyScores) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(flappyScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other game scores should not be affected")
	}

	if v, ok, _ := store.Get("bestScore"); !ok || v != "10" {
		t.Error("ClearScores should not touch the key/value table")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveScore(RunRecord{GameID: "flappy", Score: 4, DurationTicks: 600})
	store.SaveScore(RunRecord{GameID: "flappy", Score: 8, DurationTicks: 900})

	stats, err := store.Stats("flappy")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("Expected high score 8, got %d", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("Expected average 6, got %v", stats.AvgScore)
	}
	if stats.TotalTicks != 1500 {
		t.Errorf("Expected 1500 ticks, got %d", stats.TotalTicks)
	}
	if time.Since(stats.LastPlayed) > 24*time.Hour {
		t.Errorf("LastPlayed looks wrong: %v", stats.LastPlayed)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.flappy/test.db")
	if err != nil {
		t.Fatalf("Open() with ~ failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".flappy", "test.db")); err != nil {
		t.Errorf("Expected database under HOME: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.Get("bestScore"); ok {
		t.Error("empty store should report absent")
	}

	m.Set("bestScore", "3")
	v, ok, err := m.Get("bestScore")
	if err != nil || !ok || v != "3" {
		t.Errorf("Get() = %q, %v, %v", v, ok, err)
	}
}

func TestSetIfGreater(t *testing.T) {
	stores := map[string]func(t *testing.T) core.MaxStore{
		"sqlite": func(t *testing.T) core.MaxStore { return openTestStore(t) },
		"memory": func(t *testing.T) core.MaxStore { return NewMemory() },
	}

	tests := []struct {
		name    string
		prior   string // "" = absent
		value   int
		written bool
		want    string
	}{
		{"absent", "", 0, true, "0"},
		{"greater", "10", 15, true, "15"},
		{"equal", "10", 10, false, "10"},
		{"lower", "10", 4, false, "10"},
		{"multi-digit compare is numeric", "9", 10, true, "10"},
		{"malformed prior", "abc", 2, true, "2"},
		{"negative prior", "-5", 0, true, "0"},
	}

	for storeName, open := range stores {
		for _, tc := range tests {
			t.Run(storeName+"/"+tc.name, func(t *testing.T) {
				store := open(t)
				if tc.prior != "" {
					if err := store.Set("bestScore", tc.prior); err != nil {
						t.Fatalf("Set() failed: %v", err)
					}
				}

				written, err := store.SetIfGreater("bestScore", tc.value)
				if err != nil {
					t.Fatalf("SetIfGreater() failed: %v", err)
				}
				if written != tc.written {
					t.Errorf("written = %v, expected %v", written, tc.written)
				}
				if v, _, _ := store.Get("bestScore"); v != tc.want {
					t.Errorf("stored %q, expected %q", v, tc.want)
				}
			})
		}
	}
}

func TestSetIfGreaterConcurrent(t *testing.T) {
	stores := map[string]core.MaxStore{
		"sqlite": openTestStore(t),
		"memory": NewMemory(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(1)
				go func(score int) {
					defer wg.Done()
					if _, err := store.SetIfGreater("bestScore", score); err != nil {
						t.Errorf("SetIfGreater(%d) failed: %v", score, err)
					}
				}((i * 7) % 20)
			}
			wg.Wait()

			if v, _, _ := store.Get("bestScore"); v != "19" {
				t.Errorf("stored %q after concurrent writes, expected the maximum 19", v)
			}
		})
	}
}

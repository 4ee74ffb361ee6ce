package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func TestBestScore(t *testing.T) {
	tests := []struct {
		name   string
		stored string // "" = no stored best
		runs   []int
		want   int
	}{
		{"empty database", "", nil, 0},
		{"stored best wins", "40", []int{12, 7}, 40},
		{"history when nothing stored", "", []int{12, 7}, 12},
		{"history when stored best is malformed", "abc", []int{9}, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatalf("Open() failed: %v", err)
			}
			defer store.Close()

			if tc.stored != "" {
				if err := store.Set(flappy.BestScoreKey, tc.stored); err != nil {
					t.Fatalf("Set() failed: %v", err)
				}
			}
			for _, score := range tc.runs {
				if _, err := store.SaveScore(storage.RunRecord{GameID: flappy.GameID, Score: score, Tier: "easy"}); err != nil {
					t.Fatalf("SaveScore() failed: %v", err)
				}
			}

			got, err := bestScore(store)
			if err != nil {
				t.Fatalf("bestScore() failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("bestScore() = %d, expected %d", got, tc.want)
			}
		})
	}
}

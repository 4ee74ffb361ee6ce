package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeHistory struct {
	runs []storage.RunRecord
	err  error
}

func (f fakeHistory) TopScores(string, int) ([]storage.RunRecord, error) {
	return f.runs, f.err
}

func TestScoreRow(t *testing.T) {
	now := time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC)
	run := storage.RunRecord{
		Score:         14,
		Tier:          "normal",
		DurationTicks: 900,
		CreatedAt:     now.Add(-3 * time.Hour),
	}

	row := ScoreRow(2, run, 60, now)

	want := []string{"#2", "14", "normal", "15s", "3 hours ago"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d = %q, expected %q", i, row[i], want[i])
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeHistory{}, "flappy", "Flappy Bird", 60, 80, 24)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}

	broken := NewScoreboardModel(fakeHistory{err: errors.New("locked")}, "flappy", "Flappy Bird", 60, 80, 24)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("load errors should be shown")
	}
}

func TestScoreboardListsRuns(t *testing.T) {
	history := fakeHistory{runs: []storage.RunRecord{
		{Score: 20, Tier: "normal", DurationTicks: 1200},
		{Score: 5, Tier: "easy", DurationTicks: 300},
	}}

	m := NewScoreboardModel(history, "flappy", "Flappy Bird", 60, 100, 30)
	view := m.View()

	if !strings.Contains(view, "HIGH SCORES - Flappy Bird") {
		t.Error("title missing")
	}
	if !strings.Contains(view, "20") || !strings.Contains(view, "normal") {
		t.Error("runs missing from the table")
	}
}

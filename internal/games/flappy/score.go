package flappy

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// BestScoreKey is the storage key holding the best score as a decimal string.
const BestScoreKey = "bestScore"

// ScoreTracker counts cleared pairs and keeps the persisted best score.
type ScoreTracker struct {
	store core.KeyValueStore
	log   *log.Logger
	score int
	best  int
}

// NewScoreTracker creates a tracker and reads the stored best score.
// A nil store keeps the best score in memory only.
func NewScoreTracker(store core.KeyValueStore, logger *log.Logger) *ScoreTracker {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &ScoreTracker{store: store, log: logger}
	best, ok, err := s.readBest()
	if err != nil {
		logger.Warn("cannot read best score", "err", err)
	}
	if ok {
		s.best = best
	}
	return s
}

// Increment adds one point and returns the new score.
func (s *ScoreTracker) Increment() int {
	s.score++
	return s.score
}

// Score returns the score of the current run.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Best returns the best score known to the tracker.
func (s *ScoreTracker) Best() int {
	return s.best
}

// Reset starts a new run at zero.
func (s *ScoreTracker) Reset() {
	s.score = 0
}

// Text is the live score line.
func (s *ScoreTracker) Text() string {
	return fmt.Sprintf("Score: %d", s.score)
}

// BestText is the best score line.
func (s *ScoreTracker) BestText() string {
	return fmt.Sprintf("Best Score: %d", s.best)
}

// PersistBest writes the current score as the new best when there is no
// stored best yet or the score beats it. It reports whether a write
// happened. A stored best is never lowered: stores shared between
// sessions compare and write in one step, and nothing is written when the
// stored value cannot be read.
func (s *ScoreTracker) PersistBest() bool {
	if ms, ok := s.store.(core.MaxStore); ok {
		return s.raiseBest(ms)
	}

	prior, ok, err := s.readBest()
	if err != nil {
		s.log.Warn("cannot read best score", "err", err)
		return false
	}
	if ok && s.score <= prior {
		s.best = prior
		return false
	}

	if s.store != nil {
		if err := s.store.Set(BestScoreKey, strconv.Itoa(s.score)); err != nil {
			s.log.Warn("cannot save best score", "score", s.score, "err", err)
			return false
		}
	}
	s.best = s.score
	return true
}

// raiseBest persists through an atomic compare-and-write. When another
// session holds a higher best, the tracker picks it up for the HUD.
func (s *ScoreTracker) raiseBest(store core.MaxStore) bool {
	written, err := store.SetIfGreater(BestScoreKey, s.score)
	if err != nil {
		s.log.Warn("cannot save best score", "score", s.score, "err", err)
		return false
	}
	if written {
		s.best = s.score
		return true
	}

	prior, ok, err := s.readBest()
	if err != nil {
		s.log.Warn("cannot read best score", "err", err)
		return false
	}
	if ok {
		s.best = prior
	}
	return false
}

// readBest returns the stored best score. Absent or non-numeric values
// mean there is no prior best. Without a store the in-memory best is used.
func (s *ScoreTracker) readBest() (int, bool, error) {
	if s.store == nil {
		return s.best, s.best > 0, nil
	}

	raw, ok, err := s.store.Get(BestScoreKey)
	if err != nil || !ok {
		return 0, false, err
	}

	best, err := strconv.Atoi(raw)
	if err != nil || best < 0 {
		s.log.Debug("ignoring malformed best score", "value", raw)
		return 0, false, nil
	}
	return best, true, nil
}

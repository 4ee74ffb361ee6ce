// Package config provides YAML/TOML game configuration loading and
// difficulty tier management for the flappy game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the game.
type FlappyConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Timers     TimerConfig      `yaml:"timers" toml:"timers"`
}

// PlayfieldConfig is the size of the simulated world in playfield units.
type PlayfieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player entity. A zero start position means
// (width/10, height/2).
type PlayerConfig struct {
	StartX       float64 `yaml:"start_x" toml:"start_x"`
	StartY       float64 `yaml:"start_y" toml:"start_y"`
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Gravity      float64 `yaml:"gravity" toml:"gravity"`             // units/s²
	FlapVelocity float64 `yaml:"flap_velocity" toml:"flap_velocity"` // upward speed set by a flap, units/s
}

// ObstacleConfig defines the obstacle pool.
type ObstacleConfig struct {
	Pairs  int     `yaml:"pairs" toml:"pairs"`
	Width  float64 `yaml:"width" toml:"width"`
	Length float64 `yaml:"length" toml:"length"` // Segment height
	Speed  float64 `yaml:"speed" toml:"speed"`   // Leftward speed, units/s
	Margin float64 `yaml:"margin" toml:"margin"` // Minimum distance between a gap and the playfield edges
}

// Range is a closed integer interval.
type Range struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// TierConfig is one named difficulty tier. A tier applies while the score
// is at most MaxScore; the last tier also covers every higher score.
type TierConfig struct {
	Name              string `yaml:"name" toml:"name"`
	MaxScore          int    `yaml:"max_score" toml:"max_score"`
	HorizontalSpacing Range  `yaml:"horizontal_spacing" toml:"horizontal_spacing"`
	VerticalGap       Range  `yaml:"vertical_gap" toml:"vertical_gap"`
}

// DifficultyConfig defines the tier ladder.
type DifficultyConfig struct {
	Initial     string       `yaml:"initial" toml:"initial"`         // Tier a run starts in (and never drops below)
	Progression string       `yaml:"progression" toml:"progression"` // "score" (default) or "none"
	Tiers       []TierConfig `yaml:"tiers" toml:"tiers"`
}

// TimerConfig defines the pause countdown and the restart delay.
type TimerConfig struct {
	Countdown           int `yaml:"countdown" toml:"countdown"`
	CountdownIntervalMS int `yaml:"countdown_interval_ms" toml:"countdown_interval_ms"`
	RestartDelayMS      int `yaml:"restart_delay_ms" toml:"restart_delay_ms"`
}

// CountdownInterval returns the time between countdown decrements.
func (t TimerConfig) CountdownInterval() time.Duration {
	return time.Duration(t.CountdownIntervalMS) * time.Millisecond
}

// RestartDelay returns the time between game over and the next run.
func (t TimerConfig) RestartDelay() time.Duration {
	return time.Duration(t.RestartDelayMS) * time.Millisecond
}

// SpawnPosition returns the player's spawn point.
func (c FlappyConfig) SpawnPosition() (x, y float64) {
	x, y = c.Player.StartX, c.Player.StartY
	if x == 0 {
		x = float64(c.Playfield.Width) / 10
	}
	if y == 0 {
		y = float64(c.Playfield.Height) / 2
	}
	return x, y
}

// Validate checks that the configuration describes a playable game.
func (c FlappyConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("config: player size must be positive")
	}
	if c.Obstacles.Pairs <= 0 {
		return fmt.Errorf("config: obstacle pairs must be positive, got %d", c.Obstacles.Pairs)
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Length <= 0 {
		return errors.New("config: obstacle size must be positive")
	}
	if c.Obstacles.Margin < 0 || 2*c.Obstacles.Margin >= float64(c.Playfield.Height) {
		return fmt.Errorf("config: obstacle margin %v does not fit playfield height %d", c.Obstacles.Margin, c.Playfield.Height)
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	if err := c.validateTierFit(); err != nil {
		return err
	}
	if c.Timers.Countdown <= 0 || c.Timers.CountdownIntervalMS <= 0 || c.Timers.RestartDelayMS <= 0 {
		return errors.New("config: timers must be positive")
	}
	return nil
}

// validateTierFit checks every tier against the playfield: the smallest
// gap must fit between the margins and pairs must not overlap.
func (c FlappyConfig) validateTierFit() error {
	room := c.Playfield.Height - 2*int(c.Obstacles.Margin)
	for _, t := range c.Difficulty.Tiers {
		if t.VerticalGap.Min > room {
			return fmt.Errorf("config: tier %q vertical_gap min %d exceeds the %d units between margins", t.Name, t.VerticalGap.Min, room)
		}
		if float64(t.HorizontalSpacing.Min) < c.Obstacles.Width {
			return fmt.Errorf("config: tier %q horizontal_spacing min %d is narrower than obstacle width %v", t.Name, t.HorizontalSpacing.Min, c.Obstacles.Width)
		}
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if len(d.Tiers) == 0 {
		return errors.New("config: at least one difficulty tier is required")
	}
	switch d.Progression {
	case "", ProgressionScore, ProgressionNone:
	default:
		return fmt.Errorf("config: unknown progression %q", d.Progression)
	}

	for i, t := range d.Tiers {
		if t.Name == "" {
			return fmt.Errorf("config: tier %d has no name", i)
		}
		if t.HorizontalSpacing.Min <= 0 || t.HorizontalSpacing.Min > t.HorizontalSpacing.Max {
			return fmt.Errorf("config: tier %q has invalid horizontal_spacing %v", t.Name, t.HorizontalSpacing)
		}
		if t.VerticalGap.Min <= 0 || t.VerticalGap.Min > t.VerticalGap.Max {
			return fmt.Errorf("config: tier %q has invalid vertical_gap %v", t.Name, t.VerticalGap)
		}
		if i > 0 && t.MaxScore <= d.Tiers[i-1].MaxScore {
			return fmt.Errorf("config: tier %q threshold %d must exceed %d", t.Name, t.MaxScore, d.Tiers[i-1].MaxScore)
		}
	}

	if d.Initial != "" {
		if _, ok := d.tierIndex(d.Initial); !ok {
			return fmt.Errorf("config: initial tier %q is not defined", d.Initial)
		}
	}
	return nil
}

func (d DifficultyConfig) tierIndex(name string) (int, bool) {
	for i, t := range d.Tiers {
		if t.Name == name {
			return i, true
		}
	}
	return 0, false
}

// Progression modes.
const (
	ProgressionScore = "score"
	ProgressionNone  = "none"
)

// DifficultyPreset represents a named difficulty selection from the CLI.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Empty and unknown
// values return "" (use the config as-is).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyFlappyPreset modifies the config based on a difficulty preset:
// easy/normal/hard pick the starting tier, fixed disables progression.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Progression = ProgressionNone
	default:
		if _, ok := cfg.Difficulty.tierIndex(string(preset)); ok {
			cfg.Difficulty.Initial = string(preset)
		}
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        34,
			Height:       24,
			Gravity:      400,
			FlapVelocity: 300,
		},
		Obstacles: ObstacleConfig{
			Pairs:  4,
			Width:  52,
			Length: 600,
			Speed:  150,
			Margin: 20,
		},
		Difficulty: DifficultyConfig{
			Initial:     "easy",
			Progression: ProgressionScore,
			Tiers: []TierConfig{
				{
					Name:              "easy",
					MaxScore:          10,
					HorizontalSpacing: Range{Min: 300, Max: 350},
					VerticalGap:       Range{Min: 450, Max: 600},
				},
				{
					Name:              "normal",
					MaxScore:          20,
					HorizontalSpacing: Range{Min: 280, Max: 330},
					VerticalGap:       Range{Min: 350, Max: 500},
				},
				{
					Name:              "hard",
					MaxScore:          30,
					HorizontalSpacing: Range{Min: 250, Max: 310},
					VerticalGap:       Range{Min: 250, Max: 400},
				},
			},
		},
		Timers: TimerConfig{
			Countdown:           3,
			CountdownIntervalMS: 1000,
			RestartDelayMS:      1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

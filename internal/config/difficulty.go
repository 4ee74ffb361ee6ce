package config

// DifficultyManager maps the score to a difficulty tier.
type DifficultyManager struct {
	tiers   []TierConfig
	initial int
	enabled bool
}

// NewDifficultyManager creates a new difficulty manager.
// The config is expected to have passed Validate.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	initial := 0
	if cfg.Initial != "" {
		initial, _ = cfg.tierIndex(cfg.Initial)
	}
	return &DifficultyManager{
		tiers:   cfg.Tiers,
		initial: initial,
		enabled: cfg.Progression != ProgressionNone,
	}
}

// IsEnabled returns whether the tier follows the score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.enabled
}

// Initial returns the tier a run starts in.
func (d *DifficultyManager) Initial() TierConfig {
	return d.tiers[d.initial]
}

// TierFor returns the tier name for a score.
//
// Thresholds are checked in order from the hardest tier to the easiest and
// every match overwrites the previous one, so the tightest matching
// threshold wins. A score above every threshold stays in the last tier.
// With the defaults: 0..10 easy, 11..20 normal, 21 and up hard.
func (d *DifficultyManager) TierFor(score int) string {
	return d.tiers[d.levelFor(score)].Name
}

func (d *DifficultyManager) levelFor(score int) int {
	if !d.enabled {
		return d.initial
	}

	level := len(d.tiers) - 1
	for i := len(d.tiers) - 1; i >= 0; i-- {
		if score <= d.tiers[i].MaxScore {
			level = i
		}
	}

	if level < d.initial {
		level = d.initial
	}
	return level
}

// Profile returns the tier with the given name.
func (d *DifficultyManager) Profile(name string) (TierConfig, bool) {
	for _, t := range d.tiers {
		if t.Name == name {
			return t, true
		}
	}
	return TierConfig{}, false
}

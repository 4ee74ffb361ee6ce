package flappy

// PairSnapshot is the position of one obstacle pair.
type PairSnapshot struct {
	X      float64
	GapTop float64
	GapBot float64
}

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick            uint64
	Phase           Phase
	Score           int
	Best            int
	Tier            string
	PlayerY         float64
	PlayerVY        float64
	Countdown       int  // Remaining units while counting down
	Flaps           int  // Flap inputs received, applied or not
	SuppressedFlaps int  // Flap inputs ignored outside PhaseRunning
	Hit             bool // Player tinted after a game over
	Timers          int  // Scheduled timer events
	Pairs           []PairSnapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	pairs := make([]PairSnapshot, 0, len(g.pool.Pairs()))
	for _, p := range g.pool.Pairs() {
		pairs = append(pairs, PairSnapshot{
			X:      p.Upper.Body.X,
			GapTop: p.Upper.Body.Bounds().Bottom,
			GapBot: p.Lower.Body.Bounds().Top,
		})
	}

	body := g.player.Body()
	return Snapshot{
		Tick:            g.tick,
		Phase:           g.phase,
		Score:           g.score.Score(),
		Best:            g.score.Best(),
		Tier:            g.tier.Name,
		PlayerY:         body.Y,
		PlayerVY:        body.VY,
		Countdown:       g.countdown,
		Flaps:           g.flaps,
		SuppressedFlaps: g.suppressedFlaps,
		Hit:             g.player.Hit(),
		Timers:          g.sched.Pending(),
		Pairs:           pairs,
	}
}

package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseRunning   Phase = iota // Simulation advancing, flaps accepted
	PhasePaused                 // Physics frozen, pause overlay shown
	PhaseCountdown              // Physics frozen, counting down to resume
	PhaseGameOver               // Physics frozen, restart scheduled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseCountdown:
		return "countdown"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Countdown returns the remaining countdown units, 0 outside PhaseCountdown.
func (g *Game) Countdown() int {
	return g.countdown
}

// requestPause moves Running to Paused. Requests in any other phase are
// ignored.
func (g *Game) requestPause() {
	if g.phase != PhaseRunning {
		return
	}
	g.world.Pause()
	g.setPhase(PhasePaused)
	g.emit(core.EventPaused)
}

// resume starts the countdown back to Running. Only valid while Paused.
func (g *Game) resume() {
	if g.phase != PhasePaused {
		return
	}
	g.countdown = g.cfg.Timers.Countdown
	g.setPhase(PhaseCountdown)
	g.countdownTimer = g.sched.Every(g.cfg.Timers.CountdownInterval(), g.countdownTick)
}

func (g *Game) countdownTick() {
	g.countdown--
	if g.countdown > 0 {
		return
	}

	g.countdown = 0
	g.countdownTimer.Remove()
	g.countdownTimer = nil
	g.world.Resume()
	g.setPhase(PhaseRunning)
	g.emit(core.EventResumed)
}

// gameOver ends the run: physics stops, the player is marked, the best
// score is saved and a restart is scheduled. Only valid while Running.
func (g *Game) gameOver(reason string) {
	if g.phase != PhaseRunning {
		return
	}
	g.world.Pause()
	g.player.MarkHit()
	g.score.PersistBest()
	g.setPhase(PhaseGameOver)
	g.log.Debug("run ended", "reason", reason, "score", g.score.Score(), "tier", g.tier.Name, "ticks", g.runTicks)
	g.emit(core.EventGameOver)
	g.restartTimer = g.sched.After(g.cfg.Timers.RestartDelay(), g.restart)
}

// restart begins a new run in place: score 0, initial tier, pool laid out
// again and the player back at spawn.
func (g *Game) restart() {
	g.sched.Clear()
	g.restartTimer = nil
	g.countdownTimer = nil
	g.score.Reset()
	g.tier = g.difficulty.Initial()
	g.player.Respawn()
	g.pool.Initialize(g.cfg.Obstacles.Pairs, g.tier)
	g.runTicks = 0
	g.world.Resume()
	g.setPhase(PhaseRunning)
	g.emit(core.EventRestarted)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.log.Debug("phase changed", "from", g.phase, "to", p)
	g.phase = p
}

// Package flappy implements a Flappy Bird-style side scroller.
// The player flaps through gaps between pairs of pipes; every pair cleared
// scores a point and the gaps tighten as the score grows.
package flappy

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/physics"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/timer"
)

// GameID is the registry and storage identifier of the game.
const GameID = "flappy"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Flappy Bird game logic.
type Game struct {
	// Collaborators
	store core.KeyValueStore
	log   *log.Logger

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	cfgFixed   bool
	difficulty *config.DifficultyManager

	// Simulation
	rng    *rand.Rand
	world  *physics.World
	sched  *timer.Scheduler
	dt     float64
	player *Player
	pool   *Pool
	score  *ScoreTracker
	tier   config.TierConfig

	// Run state
	phase           Phase
	countdown       int
	countdownTimer  *timer.Event
	restartTimer    *timer.Event
	tick            uint64 // Ticks since Reset
	runTicks        int    // Ticks since the current run started
	flaps           int
	suppressedFlaps int

	events []core.Event
}

// New creates a game that loads its configuration on Reset.
func New(deps registry.Deps) *Game {
	return &Game{
		store: deps.Store,
		log:   deps.LoggerOrDiscard().WithPrefix(GameID),
	}
}

// NewWithConfig creates a game with an explicit configuration, bypassing
// the config search path.
func NewWithConfig(deps registry.Deps, cfg config.FlappyConfig) *Game {
	g := New(deps)
	g.cfg = cfg
	g.cfgFixed = true
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset builds a new session: world, player, obstacle pool and score
// tracker. The best score is read from the store.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgFixed {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			cfg = config.DefaultFlappyConfig()
		}
		if difficultyPreset != "" {
			config.ApplyFlappyPreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tier = g.difficulty.Initial()

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = physics.NewWorld()
	g.sched = timer.NewScheduler(runtime.TickRateOrDefault())
	g.dt = 1 / float64(runtime.TickRateOrDefault())

	spawnX, spawnY := g.cfg.SpawnPosition()
	g.player = NewPlayer(g.world, g.cfg.Player, spawnX, spawnY)

	g.pool = NewPool(g.world, g.cfg.Obstacles, float64(g.cfg.Playfield.Height), g.rng)
	g.pool.Initialize(g.cfg.Obstacles.Pairs, g.tier)

	g.world.Collide(g.player.Body(), g.pool.Group(), func(_, _ *physics.Body) {
		g.gameOver("collision")
	})

	g.score = NewScoreTracker(g.store, g.log)

	g.phase = PhaseRunning
	g.countdown = 0
	g.countdownTimer = nil
	g.restartTimer = nil
	g.tick = 0
	g.runTicks = 0
	g.flaps = 0
	g.suppressedFlaps = 0
	g.events = nil

	g.log.Debug("game reset", "seed", runtime.Seed, "tier", g.tier.Name, "best", g.score.Best())
}

// Step advances the game by one tick.
//
// Order within a tick: due timers, input, physics (which may end the run
// on a collision), then the bounds check and obstacle recycling while
// running. Timers do not advance while paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	if g.phase != PhasePaused {
		g.sched.Advance()
	}

	g.handleInput(in)

	g.world.Step(g.dt)

	if g.phase == PhaseRunning {
		g.runTicks++
		if g.player.CheckBounds(float64(g.cfg.Playfield.Height)) {
			g.gameOver("bounds")
		} else if g.pool.RecycleExited(g.tier) > 0 {
			g.pairCleared()
		}
	}

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhaseRunning:
			g.requestPause()
		case PhasePaused:
			g.resume()
		}
	}

	if in.Has(core.ActionJump) {
		g.flaps++
		if !g.player.Flap(g.phase != PhaseRunning) {
			g.suppressedFlaps++
		}
	}
}

// pairCleared scores a recycled pair, saves the best score and moves to
// the tier for the new score. The tier applies from the next placement.
func (g *Game) pairCleared() {
	g.score.Increment()
	g.score.PersistBest()
	g.emit(core.EventScored)

	name := g.difficulty.TierFor(g.score.Score())
	if name == g.tier.Name {
		return
	}
	if tier, ok := g.difficulty.Profile(name); ok {
		g.log.Debug("tier changed", "from", g.tier.Name, "to", name, "score", g.score.Score())
		g.tier = tier
		g.emit(core.EventTierChanged)
	}
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Score: g.score.Score(),
		Tier:  g.tier.Name,
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.score == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score.Score(),
		Best:     g.score.Best(),
		Tier:     g.tier.Name,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.phase == PhaseCountdown,
	}
}

// RunTicks returns the number of running ticks in the current run.
func (g *Game) RunTicks() int {
	return g.runTicks
}

// Config returns the configuration in use.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func(deps registry.Deps) registry.Game {
		return New(deps)
	})
}

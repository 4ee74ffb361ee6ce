package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	SaveScore(rec storage.RunRecord) (storage.RunRecord, error)
}

// Model is the Bubble Tea model that drives a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	history    RunRecorder
	log        *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// history may be nil, in which case runs are not recorded.
func NewModel(game registry.Game, history RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// The bottom row is reserved for the help line
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldRows(cfg.ScreenH)),
		history:    history,
		log:        logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

func playfieldRows(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action, quit := m.keys.MapKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		if action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.MouseMsg:
		if action := m.keys.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleResize resizes the screen buffer. The run keeps going; the game
// scales its playfield to whatever size the screen has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		if e.Kind == core.EventGameOver {
			m.recordRun(e)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run. Failures are logged and the game goes on.
func (m Model) recordRun(e core.Event) {
	if m.history == nil {
		return
	}

	rec := storage.RunRecord{
		GameID: m.game.ID(),
		Score:  e.Score,
		Tier:   e.Tier,
	}
	if rt, ok := m.game.(interface{ RunTicks() int }); ok {
		rec.DurationTicks = rt.RunTicks()
	}

	saved, err := m.history.SaveScore(rec)
	if err != nil {
		m.log.Warn("cannot record run", "score", e.Score, "err", err)
		return
	}
	m.log.Debug("run recorded", "run", saved.RunID, "score", saved.Score, "tier", saved.Tier)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	helpLine := ""
	if m.gameState.Paused {
		helpLine = m.help.View(m.keys)
	}
	return RenderScreen(m.screen) + "\n" + helpLine
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, history RunRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, history, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err := p.Run()
	return err
}

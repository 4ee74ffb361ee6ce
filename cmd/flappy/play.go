package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a local game.

Controls:
  Space/Up/W, left click  - Flap
  P/Esc                   - Pause, or resume with a 3 second countdown
  Q/Ctrl+C                - Quit

A run ends when the bird touches a pipe, the ground or the ceiling; a new
run starts one second later.

Difficulty options:
  easy   - Start at the easy tier, progress with the score
  normal - Start at the normal tier, progress with the score
  hard   - Start at the hard tier
  fixed  - No progression, stay at the config's initial tier

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --difficulty fixed
  flappy play --config ./my-flappy.yaml
  flappy play --config ./my-flappy.toml --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (stderr is hidden by the game screen)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	logOut := cmd.ErrOrStderr()
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetDifficultyPreset(flagDifficulty)

	// Continue without the database; the best score then lives in memory
	var kv core.KeyValueStore
	var history tui.RunRecorder
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		kv = storage.NewMemory()
	} else {
		defer store.Close()
		kv = store
		history = store
	}

	game, err := registry.Create(flappy.GameID, registry.Deps{Store: kv, Logger: logger})
	if err != nil {
		return err
	}

	if err := tui.Run(game, history, logger, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

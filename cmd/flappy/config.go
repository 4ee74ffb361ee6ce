package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the search
path and the difficulty preset have been applied. The output is valid
YAML and can be edited and passed back with --config.

Search path:
  --config <path>  (YAML, or TOML when the name ends in .toml)
  ~/.flappy/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config > my-flappy.yaml
  flappy config --difficulty fixed`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyFlappyPreset(&cfg, config.ParsePreset(flagDifficulty))

	out, err := config.MarshalYAML(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

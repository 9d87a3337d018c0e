package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhoma/snakepit/internal/games/railshot"
	"github.com/okhoma/snakepit/internal/games/serpent"
	"github.com/okhoma/snakepit/internal/platform/audio"
	"github.com/okhoma/snakepit/internal/platform/tui"
	"github.com/okhoma/snakepit/internal/registry"
	"github.com/okhoma/snakepit/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows - Steer
  Space       - Fire (railshot)
  Enter       - Start from the title screen
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Examples:
  snakepit play serpent
  snakepit play serpent_wrap
  snakepit play serpent_relative --seed 42
  snakepit play railshot
  snakepit play serpent --config ./my-serpent.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snakepit list' to see available games.")
		os.Exit(1)
	}

	serpent.SetConfigPath(flagConfig)
	railshot.SetConfigPath(flagConfig)

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	var cues tui.CuePlayer
	var player *audio.Player
	if !flagMute {
		player = audio.NewPlayer()
		cues = player
	}

	runErr := tui.Run(game, store, cues, cfg)

	if player != nil {
		player.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

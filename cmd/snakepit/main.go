// snakepit is a terminal arcade built around one shared snake
// simulation core, playable locally or over SSH.
//
// Usage:
//
//	snakepit list            - List available games
//	snakepit play <game>     - Play a game
//	snakepit menu            - Start menu to pick games interactively
//	snakepit serve           - Start SSH server for remote play
//	snakepit scores <game>   - Show high scores for a game
//	snakepit config <family> - Print default config YAML for customizing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okhoma/snakepit/internal/core"

	// Import games to register them
	_ "github.com/okhoma/snakepit/internal/games/railshot"
	_ "github.com/okhoma/snakepit/internal/games/serpent"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagMute   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runtimeConfig builds a RuntimeConfig from the terminal size and the
// global flags. Falls back to the defaults when stdout is not a terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

var rootCmd = &cobra.Command{
	Use:   "snakepit",
	Short: "Snakepit - a snake arcade in your terminal",
	Long: `Snakepit is a terminal arcade: several snake variants and a rail
shooter running on one fixed-rate simulation core.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print default config YAML

Examples:
  snakepit list
  snakepit play serpent
  snakepit play serpent_wrap --seed 42
  snakepit menu
  snakepit serve --ssh :2222
  snakepit scores serpent`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (render callbacks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakepit/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio cues")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

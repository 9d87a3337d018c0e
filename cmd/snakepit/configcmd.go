package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okhoma/snakepit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <family>",
	Short: "Print the default config for a game family",
	Long: `Print the built-in default configuration YAML for a game family
(serpent or railshot). Redirect it to a file to start customizing:

  snakepit config serpent > ~/.snakepit/configs/serpent.yaml
  snakepit config railshot > ./configs/railshot.yaml

Edited copies in those locations are picked up automatically; a one-off
file can be passed with 'play --config'.`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game family %q (want serpent or railshot)\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

// dragon is a terminal rendition of Flappy Dragon: flap through the gaps
// in oncoming walls for as long as you can.
//
// Usage:
//
//	dragon                   - Play with the default driver
//	dragon play              - Same as above
//	dragon drivers           - List available render/input drivers
//	dragon config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>    - Custom config YAML (default: ~/.dragon/configs/dragon.yaml)
//	--driver <name>    - Render/input driver (default: tui)
//	--fps <rate>       - Frames per second (default: from config)
//	--seed <value>     - RNG seed for reproducible obstacles
//	--fit              - Size the playfield to the terminal
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import drivers to register them
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/term"
	_ "github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagDriver  string
	flagFPS     int
	flagSeed    int64
	flagFit     bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the walls in your terminal",
	Long: `Flappy Dragon is a terminal side-scroller. Your dragon falls under
gravity; flap to rise, shift lanes to line up with the gaps, and score a
point for every wall you pass.

Available commands:
  play     - Start the game (default)
  drivers  - Show all available drivers
  config   - Print the effective configuration

Examples:
  dragon
  dragon play --driver tcell
  dragon play --seed 42 --fps 30
  dragon config > ~/.dragon/configs/dragon.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDriver, "driver", "tui", "Render/input driver (see 'dragon drivers')")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagFit, "fit", false, "Size the playfield to the terminal")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(driversCmd)
	rootCmd.AddCommand(configCmd)
}

// balloon is a small arcade shooter: hold the right edge and pop the balloon
// drifting along the left edge.
//
// Usage:
//
//	balloon                   - Play balloon (same as 'balloon play')
//	balloon list              - List available games
//	balloon play [game]       - Play a game (default: balloon)
//	balloon config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--frontend <name>     - tui (default) or window
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/balloon-shooter/internal/games/balloon"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagFrontend string
	flagLogFile  string
	flagLogLevel string
	flagScale    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "balloon",
	Short: "Balloon Shooter - pop the balloon before it drifts away",
	Long: `Balloon Shooter puts you on the right edge of the arena with a gun.
A balloon drifts up and down the left edge, bouncing off the top and bottom
and turning around at random. One shot in flight at a time; one hit wins.

Available commands:
  list     - Show all available games
  play     - Play a game (balloon by default)
  config   - Print the effective configuration

Examples:
  balloon play
  balloon play --frontend window
  balloon play --seed 42 --log-file balloon.log --log-level debug
  balloon config --config ./my-balloon.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", frontendTUI, "Frontend: tui or window")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagScale, "scale", 1, "Window scale factor (window frontend)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

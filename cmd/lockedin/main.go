// lockedin is a reactive timer game for the terminal: press before the
// hidden countdown runs out to stay locked in.
//
// Usage:
//
//	lockedin                 - Play a local game
//	lockedin play            - Play a local game
//	lockedin serve           - Start SSH server for remote play
//	lockedin scores          - Show the best streaks
//	lockedin config          - Print the effective configuration
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible round durations
//	--db <path>     - Set database path (default: ~/.lockedin/scores.db)
//	--config <path> - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/locked-in/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lockedin",
	Short: "LOCKED IN - stay locked in before the timer runs out",
	Long: `LOCKED IN is a reactive timer game. Every round draws a random
countdown between 5 and 30 minutes. Press before it expires to score a
point; let it run out and you get silly and lose your streak.

Available commands:
  play     - Play a local game (default)
  serve    - Start SSH server for remote play
  scores   - View the best streaks
  config   - Print the effective configuration

Examples:
  lockedin
  lockedin --seed 42
  lockedin serve --ssh :2222
  lockedin scores --limit 20`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lockedin/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration or exits with an error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

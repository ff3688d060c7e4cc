package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/locked-in/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best streaks",
	Long: `Display the best recorded streaks and overall stats.

A streak is the number of rounds a player stayed locked in before
getting silly.

Examples:
  lockedin scores
  lockedin scores --limit 25
  lockedin scores --db ./scores.db
  lockedin scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of streaks to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded streaks")
}

func runScores(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		err = store.ClearScores()
		if err == nil {
			fmt.Println("All streaks deleted.")
		}
	} else {
		err = printScores(os.Stdout, store, flagLimit)
	}

	// Close store before potential exit
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the leaderboard and stats to w.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	scores, err := store.TopScores(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - LOCKED IN")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No streaks recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'lockedin' to set the first one!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "Rank", "Player", "Streak", "Date")
	fmt.Fprintf(w, "  %-4s  %-16s  %-6s  %s\n", "----", "------", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-16s  %-6d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	// Show high score
	fmt.Fprintln(w)
	highScore, err := store.HighScore()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Best: %d\n", highScore)

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Streaks: %d by %d players, average %.1f\n", stats.Streaks, stats.Players, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

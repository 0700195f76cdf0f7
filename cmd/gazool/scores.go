package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/horsecatdog/gazool/internal/platform/tui"
	"github.com/horsecatdog/gazool/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display recorded game results.

By default an interactive scoreboard opens; --plain prints the top 10
to stdout instead.

Examples:
  gazool scores
  gazool scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores to stdout instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top 10 results as plain text.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'gazool play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %-6s  %s\n", "Rank", "Score", "Target", "Best Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-10s  %-6s  %s\n", "----", "-----", "------", "---------", "---", "----")

	// Print scores
	for i, entry := range scores {
		won := "no"
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-10d  %-6s  %s\n", i+1, entry.Score, entry.Target, entry.MaxTile, won, dateStr)
	}

	// Show aggregate stats
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("%d games played, %d won, best tile %d\n", stats.GamesCount, stats.WinsCount, stats.BestTile)
	}
}

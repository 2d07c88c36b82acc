package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/ferretbox/internal/config"
	"github.com/arcadelab/ferretbox/internal/core"
	"github.com/arcadelab/ferretbox/internal/platform/tui"
	"github.com/arcadelab/ferretbox/internal/storage"
)

var (
	flagScoresPlain bool
	flagScoresBoxes int
	flagScoresSpeed int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse recorded rounds",
	Long: `Browse cleared rounds: the best (fewest smashes) for a board
configuration and the most recent across all configurations.

Without flags this opens an interactive browser; --plain prints to stdout.

Examples:
  ferretbox scores
  ferretbox scores --boxes 8 --speed 2
  ferretbox scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print results instead of opening the browser")
	scoresCmd.Flags().IntVar(&flagScoresBoxes, "boxes", 0, "Board size to rank (default: configured start size)")
	scoresCmd.Flags().IntVar(&flagScoresSpeed, "speed", 0, "Speed to rank (default: configured start speed)")
}

func runScores(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load("")
	if err != nil {
		gameCfg = config.DefaultGameConfig()
	}

	boxes := gameCfg.Game.Boxes
	speed := gameCfg.Game.Speed
	if flagScoresBoxes > 0 {
		boxes = flagScoresBoxes
	}
	if flagScoresSpeed > 0 {
		speed = flagScoresSpeed
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store, boxes, speed)
		return
	}

	rtCfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rtCfg.ScreenW = w
		rtCfg.ScreenH = h
	}

	if err := tui.RunScoreboard(store, boxes, speed, rtCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top rounds for one configuration to stdout.
func printScores(store *storage.Store, boxes, speed int) {
	results, err := store.BestResults(boxes, speed, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best rounds - %d boxes, speed %d\n", boxes, speed)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ferretbox play' to clear the first board!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %s\n", "Rank", "Moves", "Date")
	fmt.Printf("  %-4s  %-6s  %s\n", "----", "-----", "----")

	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %s\n", i+1, entry.Moves, dateStr)
	}

	fmt.Println()
	if best, err := store.FewestMoves(boxes, speed); err == nil && best > 0 {
		fmt.Printf("Best: %d smashes\n", best)
	}
}

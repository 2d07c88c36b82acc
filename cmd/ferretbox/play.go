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
	flagConfig string
	flagBoxes  int
	flagSpeed  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Whack-a-Ferret",
	Long: `Start the game in the current terminal.

Controls:
  Left/Right  - Select a box (or click one)
  Space/Enter - Smash the selected box
  U           - Undo the last smash
  R           - Reset the board
  +/-         - More/fewer boxes
  ]/[         - Faster/slower ferrets
  Q/Ctrl+C    - Quit

Examples:
  ferretbox play
  ferretbox play --boxes 8 --speed 2
  ferretbox play --config ./my-ferretbox.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagBoxes, "boxes", 0, "Starting box count (overrides config)")
	playCmd.Flags().IntVar(&flagSpeed, "speed", 0, "Starting ferret speed (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if flagBoxes > 0 {
		gameCfg.Game.Boxes = flagBoxes
	}
	if flagSpeed > 0 {
		gameCfg.Game.Speed = flagSpeed
	}
	gameCfg.Normalize()

	// Get terminal size
	rtCfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rtCfg.ScreenW = w
		rtCfg.ScreenH = h
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, rtCfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

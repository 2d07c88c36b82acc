// ferretbox is a terminal puzzle game: whack the ferrets out of a row of
// boxes before they mirror away from your hammer.
//
// Usage:
//
//	ferretbox play           - Play in the current terminal
//	ferretbox scores         - Browse recorded rounds
//	ferretbox serve          - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.ferretbox/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ferretbox",
	Short: "Whack-a-Ferret - a box-smashing puzzle in your terminal",
	Long: `ferretbox is a terminal puzzle game. A row of boxes holds ferrets;
smashing a box empties it and every box is then recomputed from its
mirror boxes at the current speed. Clear the row in as few smashes
as you can.

Available commands:
  play     - Play in the current terminal
  scores   - Browse recorded rounds
  serve    - Start SSH server for remote play

Examples:
  ferretbox play
  ferretbox play --boxes 8 --speed 2
  ferretbox scores --plain
  ferretbox serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ferretbox/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

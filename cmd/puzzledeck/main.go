// puzzledeck is a TUI platform for playing puzzle and quiz games in the terminal.
//
// Usage:
//
//	puzzledeck list              - List available games
//	puzzledeck play <game>       - Play a game
//	puzzledeck menu              - Start menu to pick games interactively
//	puzzledeck serve             - Start SSH server for remote play
//	puzzledeck scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.puzzledeck/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/puzzle-deck/internal/games/match3"
	_ "github.com/vovakirdan/puzzle-deck/internal/games/millionaire"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzledeck",
	Short: "Puzzle Deck - Play puzzle and quiz games in your terminal",
	Long: `Puzzle Deck is a terminal-based gaming platform hosting a gem-matching
board game and a quiz show, playable locally or over SSH.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  puzzledeck list
  puzzledeck play gems
  puzzledeck play gems --mode blitz
  puzzledeck play millionaire
  puzzledeck menu
  puzzledeck serve --ssh :2222
  puzzledeck scores gems`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.puzzledeck/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/puzzle-deck/internal/config"
	"github.com/vovakirdan/puzzle-deck/internal/core"
	"github.com/vovakirdan/puzzle-deck/internal/games/match3"
	"github.com/vovakirdan/puzzle-deck/internal/games/millionaire"
	"github.com/vovakirdan/puzzle-deck/internal/platform/tui"
	"github.com/vovakirdan/puzzle-deck/internal/plugin"
	"github.com/vovakirdan/puzzle-deck/internal/storage"
)

var (
	flagConfig    string
	flagMode      string
	flagQuestions string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select / lock in
  Esc          - Cancel / back out
  P            - Pause
  R            - Restart (after game over)
  H            - Hint (gems)
  W            - Walk away (millionaire)
  1-8          - Lifelines / surge lines
  Q/Ctrl+C     - Quit

Gems modes:
  classic - Untimed, endless; stuck boards reshuffle
  blitz   - 60 second clock, doubled scores
  twist   - Rotate 2x2 blocks instead of swapping
  rush    - 30 seconds, capture zones, cascades add time
  surge   - 45 seconds, waves with a featured color

Examples:
  puzzledeck play gems
  puzzledeck play gems --mode rush
  puzzledeck play millionaire
  puzzledeck play millionaire --questions ./trivia.json
  puzzledeck play gems --config ./my-gems.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Gems mode: classic, blitz, twist, rush, surge")
	playCmd.Flags().StringVar(&flagQuestions, "questions", "", "Path to a question JSON file (millionaire)")
}

// gemsPluginID maps a mode name to the plugin registered for it.
// Unknown names fall back to classic.
func gemsPluginID(mode string) string {
	switch match3.ParseMode(mode) {
	case match3.ModeBlitz:
		return "gems_blitz"
	case match3.ModeTwist:
		return "gems_twist"
	case match3.ModeCascadeRush:
		return "gems_rush"
	case match3.ModeGemSurge:
		return "gems_surge"
	default:
		return "gems"
	}
}

// applyPluginConfig loads the YAML config for the chosen game and resolves the
// final plugin ID (the gems mode variants are separate plugins).
func applyPluginConfig(gameID string) (string, error) {
	switch {
	case strings.HasPrefix(gameID, "gems"):
		cfg, err := config.LoadGems(flagConfig)
		if err != nil {
			return "", err
		}
		match3.SetHintFlash(cfg.Gameplay.HintFlashSeconds)

		// An explicit --mode wins over the configured default, but only
		// applies to the base "gems" ID; gems_blitz etc. already pick a mode.
		if gameID == "gems" {
			mode := flagMode
			if mode == "" {
				mode = cfg.Gameplay.DefaultMode
			}
			if mode != "" {
				return gemsPluginID(mode), nil
			}
		}
		return gameID, nil

	case gameID == "millionaire":
		cfg, err := config.LoadQuiz(flagConfig)
		if err != nil {
			return "", err
		}
		path := flagQuestions
		if path == "" {
			path = cfg.Questions.File
		}
		millionaire.SetQuestionsPath(path)
		return gameID, nil
	}

	return gameID, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !plugin.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzledeck list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 100, 30 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.HostConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Apply per-game config before creation
	gameID, err := applyPluginConfig(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create plugin instance
	p, err := plugin.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(p, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-skyroads/internal/core"
	"github.com/vovakirdan/tui-skyroads/internal/games/skyroads"
	"github.com/vovakirdan/tui-skyroads/internal/platform/tui"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run right away, skipping the menu.

Controls:
  A/D, Left/Right  - Steer
  W/S, Up/Down     - Speed up / slow down
  Space            - Jump
  C                - Toggle first/third person camera (recenters the view)
  I/J/K/L          - Look up/left/down/right
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, 5 lives, slower fuel drain
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, 2 lives, faster fuel drain
  fixed  - No progression, stays at config's initial level

Examples:
  skyroads play
  skyroads play --difficulty easy
  skyroads play --seed 1234
  skyroads play --config ./my-skyroads.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Runs still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		appLogger.Warn("scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(skyroads.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

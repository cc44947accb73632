package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyroads/internal/games/skyroads"
	"github.com/vovakirdan/tui-skyroads/internal/platform/tui"
	"github.com/vovakirdan/tui-skyroads/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, start a run or browse the high scores.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q               - Quit

Examples:
  skyroads menu
  skyroads menu --fps 30
  skyroads menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	preset := flagDifficulty

	for {
		menuResult, err := tui.RunMenu(store, cfg, skyroads.GameID, preset)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		preset = string(menuResult.Preset)

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, skyroads.GameID, "Skyroads", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(skyroads.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if ps, ok := game.(tui.PresetSetter); ok {
			ps.SetPreset(preset)
		}

		// A fixed --seed replays the same road every time
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}

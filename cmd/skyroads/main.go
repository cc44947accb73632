// skyroads is a Skyroads-style 3D runner played in the terminal.
//
// Usage:
//
//	skyroads                 - Start the menu (same as "skyroads menu")
//	skyroads play            - Start a run right away
//	skyroads menu            - Menu with difficulty picker and high scores
//	skyroads serve           - Start SSH server for remote play
//	skyroads scores          - Show high scores
//	skyroads config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a custom skyroads.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyroads/internal/config"
	"github.com/vovakirdan/tui-skyroads/internal/games/skyroads"
	"github.com/vovakirdan/tui-skyroads/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyroads",
	Short: "Skyroads - roll a ball down a road in space",
	Long: `Skyroads is a terminal 3D runner. Steer a ball along a road of
colored platforms, jump the gaps and keep an eye on your fuel.

Platforms:
  blue    - plain road
  red     - ends the run
  yellow  - drains fuel
  orange  - boosts to top speed for a few seconds
  green   - refuels
  white   - extra life

Available commands:
  play     - Start a run right away
  menu     - Interactive menu (default)
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  skyroads
  skyroads play --difficulty hard
  skyroads play --seed 42 --config ./skyroads.yaml
  skyroads serve --ssh :2222
  skyroads scores --difficulty easy`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom skyroads.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup validates global flags and hands them to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 || flagFPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	// serve logs to stderr when no file is given; the TUI commands own the terminal
	stderrFallback := cmd.Name() == serveCmd.Name()
	logger, err := newLogger(flagLogFile, flagLogLevel, stderrFallback)
	if err != nil {
		return err
	}
	appLogger = logger

	skyroads.SetLogger(logger)
	tui.SetLogger(logger)
	skyroads.SetConfigPath(flagConfig)
	skyroads.SetDifficultyPreset(flagDifficulty)
	return nil
}

package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-skyroads/internal/games/skyroads"
	"github.com/vovakirdan/tui-skyroads/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs together with overall statistics.

With --difficulty only runs played on that preset are listed.

Examples:
  skyroads scores
  skyroads scores --difficulty hard
  skyroads scores --limit 25
  skyroads scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultLimit, "Number of runs to show (0 for all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		n, err := store.ClearScores(skyroads.GameID)
		if err != nil {
			return err
		}
		appLogger.Info("scores cleared", "runs", n)
		fmt.Fprintf(out, "Deleted %d runs.\n", n)
		return nil
	}

	return printScores(out, store, storage.Query{
		GameID:     skyroads.GameID,
		Difficulty: flagDifficulty,
		Limit:      flagScoresLimit,
	})
}

func printScores(out io.Writer, store *storage.Store, q storage.Query) error {
	scores, err := store.Scores(q)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := "High Scores - Skyroads"
	if q.Difficulty != "" {
		title += " (" + q.Difficulty + ")"
	}
	fmt.Fprintln(out, headingStyle.Render(title))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out, "Play 'skyroads play' to set the first high score!")
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Rank", "Score", "Level", "Cause", "Date")
	for i, e := range scores {
		level := e.Difficulty
		if level == "" {
			level = "-"
		}
		t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), level, e.Cause, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(out, t.Render())

	stats, err := store.GetGameStats(q.GameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRuns: %d  Best: %d  Average: %.0f  Distance: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalScore)

	causes, err := store.CauseCounts(q.GameID)
	if err != nil {
		return err
	}
	if len(causes) == 0 {
		return nil
	}
	fmt.Fprintln(out, "\nRuns ended by:")
	for _, c := range slices.Sorted(maps.Keys(causes)) {
		fmt.Fprintf(out, "  %-20s  %d\n", c, causes[c])
	}
	return nil
}

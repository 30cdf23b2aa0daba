package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresAll    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [scenario]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a scenario. Without a scenario,
show a summary of every scenario played so far.

Examples:
  arcade scores
  arcade scores tanks
  arcade scores tanks --all
  arcade scores --player alice
  arcade scores paint --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the most recent runs of one player")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score instead of the top 10")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the scenario")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			return fmt.Errorf("unknown scenario %q, run 'arcade list' to see available scenarios", gameID)
		}
	}
	if flagScoresClear && gameID == "" {
		return errors.New("--clear needs a scenario")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all scores for %s.\n", gameID)
		return nil
	case flagScoresPlayer != "":
		return printPlayerScores(out, store, flagScoresPlayer, gameID)
	case gameID == "":
		return printSummary(out, store)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create scenario: %w", err)
	}
	return printScenarioScores(out, store, gameID, game.Title(), flagScoresAll)
}

// printScenarioScores prints the ranking table of one scenario.
func printScenarioScores(out io.Writer, store *storage.Store, gameID, title string, all bool) error {
	var scores []storage.ScoreEntry
	var err error
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-12s  %-10s  %s\n", "----", "------", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-12s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintf(out, "Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printPlayerScores prints the latest runs of player, optionally limited to
// one scenario.
func printPlayerScores(out io.Writer, store *storage.Store, player, gameID string) error {
	scores, err := store.PlayerScores(player, 20)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}
	if gameID != "" {
		scores = slices.DeleteFunc(scores, func(e storage.ScoreEntry) bool { return e.GameID != gameID })
	}

	fmt.Fprintf(out, "Recent runs - %s\n\n", player)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-10s  %-10s  %s\n", "Scenario", "Score", "Date")
	fmt.Fprintf(out, "  %-10s  %-10s  %s\n", "--------", "-----", "----")
	for _, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-10s  %-10d  %s\n", entry.GameID, entry.Score, dateStr)
	}
	return nil
}

// printSummary prints one line per played scenario, registered scenarios
// first in menu order.
func printSummary(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	var ids []string
	for _, g := range registry.List() {
		if _, ok := stats[g.ID]; ok {
			ids = append(ids, g.ID)
		}
	}
	var unknown []string
	for id := range stats {
		if !slices.Contains(ids, id) {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(unknown)
	ids = append(ids, unknown...)

	fmt.Fprintf(out, "  %-10s  %-6s  %-8s  %-8s  %s\n", "Scenario", "Runs", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-10s  %-6s  %-8s  %-8s  %s\n", "--------", "----", "----", "-------", "-----------")
	for _, id := range ids {
		st := stats[id]
		fmt.Fprintf(out, "  %-10s  %-6d  %-8d  %-8.1f  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// arcade runs the retro-arcade scenarios in the terminal, a desktop window
// or over SSH.
//
// Usage:
//
//	arcade list              - List available scenarios
//	arcade play <scenario>   - Play a scenario
//	arcade menu              - Start menu to pick scenarios interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <scenario> - Show high scores for a scenario
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
//	--log <path>    - Write scenario events to a log file
//	--bboxes        - Outline collision boxes in tanks
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/games/tanks"

	// Import scenarios to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/hello"
	_ "github.com/vovakirdan/retro-arcade/internal/games/paint"
	_ "github.com/vovakirdan/retro-arcade/internal/games/palette"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogPath    string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
	flagBBoxes     bool
)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - palette framebuffer scenarios in your terminal",
	Long: `Retro Arcade emulates a 256-colour palette display and runs small
scenarios on it: a tank battle, a paint canvas, a palette viewer and a
primitive drawing demo.

Available commands:
  list     - Show all available scenarios
  play     - Play a specific scenario directly
  menu     - Interactive scenario picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play tanks
  arcade play tanks --window
  arcade menu
  arcade serve --ssh :2222
  arcade scores tanks`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write scenario events to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tanks config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagBBoxes, "bboxes", false, "Outline collision boxes (tanks)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging hands a file logger to the scenarios when --log is set.
// The terminal belongs to the scenario, so events never go to stderr.
func setupLogging(_ *cobra.Command, _ []string) error {
	tanks.SetConfigPath(flagConfig)
	tanks.SetDifficultyPreset(flagDifficulty)
	tanks.SetDrawBBoxes(flagBBoxes)

	if flagLogPath == "" {
		return nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tanks",
		Level:           level,
	})
	tanks.SetLogger(logger)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/platform/window"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagWindow bool
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play <scenario>",
	Short: "Play a scenario",
	Long: `Start the specified scenario.

Controls:
  Arrows/WASD - Move (tanks, paint), scroll (palette)
  Space       - Fire (tanks), paint (paint)
  C/Tab       - Cycle paint color
  P           - Pause
  R           - Restart after game over, clear the paint canvas
  B/Esc       - Back (after game over or while paused)
  Q/Ctrl+C    - Quit

Difficulty options (tanks):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tanks
  arcade play tanks --difficulty hard
  arcade play tanks --config ./my-tanks.yaml --log tanks.log
  arcade play paint --window --scale 12
  arcade play palette`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagWindow, "window", false, "Run framebuffer scenarios in a desktop window")
		c.Flags().IntVar(&flagScale, "scale", window.DefaultOptions().Scale, "Window pixels per framebuffer pixel")
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
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

// openStore opens the score database. Scenarios still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runScenario runs game in a window when requested and possible, otherwise
// in the terminal.
func runScenario(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	if flagWindow {
		if _, ok := registry.Pixels(game); ok {
			return window.Run(game, store, cfg, window.Options{Scale: flagScale})
		}
		fmt.Fprintf(os.Stderr, "Warning: %s has no framebuffer, using the terminal\n", game.ID())
	}
	return tui.Run(game, store, cfg)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown scenario %q, run 'arcade list' to see available scenarios", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create scenario: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := runScenario(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running %s: %w", gameID, err)
	}
	return nil
}

// Package window runs framebuffer scenarios in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// hudHeight is the status strip above the framebuffer, in window pixels.
const hudHeight = 16

// Options configures the window.
type Options struct {
	Scale int // window pixels per framebuffer pixel
}

// DefaultOptions returns the default window options.
func DefaultOptions() Options {
	return Options{Scale: 10}
}

// Runner adapts a framebuffer scenario to ebiten.Game.
type Runner struct {
	game       registry.FramebufferGame
	store      *storage.Store
	config     core.RuntimeConfig
	scale      int
	keys       keyboard
	image      *ebiten.Image
	rgba       []byte
	state      core.GameState
	scoreSaved bool
	best       int
}

// NewRunner resets the scenario and prepares it for the window. Scenarios
// without a framebuffer are rejected.
func NewRunner(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (*Runner, error) {
	fg, ok := registry.Pixels(game)
	if !ok {
		return nil, fmt.Errorf("window: scenario %q has no framebuffer", game.ID())
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	fg.Reset(cfg)
	r := &Runner{
		game:   fg,
		store:  store,
		config: cfg,
		scale:  opts.Scale,
		keys:   ebitenKeyboard{},
		state:  fg.State(),
	}
	r.loadBest()
	return r, nil
}

// loadBest reads the stored high score for the status line.
func (r *Runner) loadBest() {
	if r.store == nil {
		return
	}
	if best, err := r.store.HighScore(r.game.ID()); err == nil {
		r.best = best
	}
}

// Update advances the scenario by one tick.
func (r *Runner) Update() error {
	in := readInput(r.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	if r.state.GameOver {
		switch {
		case in.Has(core.ActionRestart):
			r.config.Seed = time.Now().UnixNano()
			r.game.Reset(r.config)
			r.state = r.game.State()
			r.scoreSaved = false
			return nil
		case in.Has(core.ActionBack):
			return ebiten.Termination
		}
	}

	r.state = r.game.Step(in).State
	if r.state.GameOver && !r.scoreSaved && r.state.Score > 0 {
		if r.store != nil {
			//nolint:errcheck // Best-effort save
			r.store.SaveScore(r.game.ID(), storage.LocalPlayer, r.state.Score)
		}
		r.scoreSaved = true
		r.loadBest()
	}
	return nil
}

// Draw converts the framebuffer through the palette and scales it up.
func (r *Runner) Draw(screen *ebiten.Image) {
	fb := r.game.Framebuffer()
	if r.image == nil || r.image.Bounds().Dx() != fb.Width() || r.image.Bounds().Dy() != fb.Height() {
		r.image = ebiten.NewImage(fb.Width(), fb.Height())
		r.rgba = make([]byte, 4*fb.Width()*fb.Height())
	}
	fillRGBA(r.rgba, fb)
	r.image.WritePixels(r.rgba)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.scale), float64(r.scale))
	op.GeoM.Translate(0, hudHeight)
	screen.DrawImage(r.image, op)

	r.drawLabels(screen)
	ebitenutil.DebugPrint(screen, r.status())
}

// Layout keeps a fixed logical size; ebiten scales it to the window.
func (r *Runner) Layout(_, _ int) (int, int) {
	fb := r.game.Framebuffer()
	return fb.Width() * r.scale, fb.Height()*r.scale + hudHeight
}

// status is the HUD line.
func (r *Runner) status() string {
	line := fmt.Sprintf("%s  score %d  best %d", r.game.Title(), r.state.Score, max(r.best, r.state.Score))
	switch {
	case r.state.GameOver:
		line += "  GAME OVER  R restart, Esc exit"
	case r.state.Paused:
		line += "  PAUSED"
	}
	return line
}

// fillRGBA writes fb into dst as RGBA bytes.
func fillRGBA(dst []byte, fb *core.Framebuffer) {
	for i, p := range fb.Pix() {
		c := paletteRGBA(core.Color(p))
		dst[4*i] = c.R
		dst[4*i+1] = c.G
		dst[4*i+2] = c.B
		dst[4*i+3] = 0xff
	}
}

// Run opens a window and blocks until the scenario exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	r, err := NewRunner(game, store, cfg, opts)
	if err != nil {
		return err
	}

	w, h := r.Layout(0, 0)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if r.config.TickRate > 0 {
		ebiten.SetTPS(r.config.TickRate)
	}

	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Package palette implements a viewer for the 256-colour display palette.
package palette

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Layout of the swatch grid inside the framebuffer.
const (
	ScreenW   = 64
	ScreenH   = 40
	Swatch    = 4  // swatch edge in pixels
	PerRow    = ScreenW / Swatch
	TotalRows = 256 / PerRow
	Visible   = ScreenH / Swatch
	MaxOffset = TotalRows - Visible
)

// Game implements the palette viewer.
type Game struct {
	fb      *core.Framebuffer
	rowOffs int
	paused  bool
}

// New creates a new palette viewer.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scenario.
func (g *Game) ID() string {
	return "palette"
}

// Title returns the display name for this scenario.
func (g *Game) Title() string {
	return "Palette Viewer"
}

// Reset scrolls back to the first row.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.fb = core.NewFramebuffer(ScreenW, ScreenH)
	g.rowOffs = 0
	g.paused = false
}

// Step scrolls the swatch grid by one row per Up/Down press.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionUp) {
		g.rowOffs--
	}
	if in.Has(core.ActionDown) {
		g.rowOffs++
	}
	g.rowOffs = core.Clamp(g.rowOffs, 0, MaxOffset)
	return core.StepResult{State: g.State()}
}

// RowOffset returns the number of swatch rows scrolled off the top.
func (g *Game) RowOffset() int {
	return g.rowOffs
}

// Framebuffer paints the visible swatches.
func (g *Game) Framebuffer() *core.Framebuffer {
	g.fb.Clear(core.ColorBlack)
	for i := 0; i < 256; i++ {
		row := i/PerRow - g.rowOffs
		col := i % PerRow
		x, y := float64(col*Swatch), float64(row*Swatch)
		g.fb.DrawBar(x, y, x+Swatch-1, y+Swatch-1, core.Color(i))
	}
	return g.fb
}

// Render blits the swatches and labels each visible row with its first index.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fb := g.Framebuffer()
	x := max((dst.Width()-fb.Width())/2, 4)
	dst.Blit(fb, x, 1)

	first := g.rowOffs * PerRow
	last := min(first+Visible*PerRow, 256) - 1
	dst.DrawTextColored(x, 0, fmt.Sprintf(" PALETTE  %d-%d  Up/Down to scroll ", first, last), core.ColorWhite)

	for r := 0; r < Visible; r++ {
		label := fmt.Sprintf("%3d", (g.rowOffs+r)*PerRow)
		dst.DrawTextColored(x-4, 1+r*Swatch/2, label, core.ColorLightGray)
	}
}

// Labels marks each visible row with its first palette index.
func (g *Game) Labels() []core.Label {
	labels := make([]core.Label, 0, Visible)
	for r := 0; r < Visible; r++ {
		labels = append(labels, core.Label{
			X:     1,
			Y:     r * Swatch,
			Text:  fmt.Sprintf("%d", (g.rowOffs+r)*PerRow),
			Color: core.ColorWhite,
		})
	}
	return labels
}

// State returns the current scenario state.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Register the scenario on package initialization
func init() {
	registry.Register("palette", func() registry.Game {
		return New()
	})
}

// Package paint implements a pixel canvas driven by a keyboard cursor.
package paint

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Canvas dimensions in pixels.
const (
	ScreenW = 64
	ScreenH = 40
)

// Game implements the paint scenario. The cursor paints while Fire is held.
type Game struct {
	canvas  *core.Framebuffer
	fb      *core.Framebuffer
	x, y    int
	color   core.Color
	paused  bool
	strokes int
}

// New creates a new paint scenario.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scenario.
func (g *Game) ID() string {
	return "paint"
}

// Title returns the display name for this scenario.
func (g *Game) Title() string {
	return "Paint"
}

// Reset clears the canvas and centers the cursor.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.canvas = core.NewFramebuffer(ScreenW, ScreenH)
	g.fb = core.NewFramebuffer(ScreenW, ScreenH)
	g.x, g.y = ScreenW/2, ScreenH/2
	g.color = core.ColorBlue
	g.paused = false
	g.strokes = 0
}

// Step moves the cursor one pixel per direction and paints under it on Fire.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.canvas.Clear(core.ColorBlack)
		g.strokes = 0
	}
	if in.Has(core.ActionCycle) {
		g.color = (g.color + 1) % 256
	}

	if in.Has(core.ActionLeft) {
		g.x--
	}
	if in.Has(core.ActionRight) {
		g.x++
	}
	if in.Has(core.ActionUp) {
		g.y--
	}
	if in.Has(core.ActionDown) {
		g.y++
	}
	g.x = core.Clamp(g.x, 0, ScreenW-1)
	g.y = core.Clamp(g.y, 0, ScreenH-1)

	if in.Has(core.ActionFire) {
		g.canvas.SetPixel(float64(g.x), float64(g.y), g.color)
		g.strokes++
	}

	return core.StepResult{State: g.State()}
}

// Cursor returns the cursor position in canvas pixels.
func (g *Game) Cursor() (x, y int) {
	return g.x, g.y
}

// Color returns the active paint color.
func (g *Game) Color() core.Color {
	return g.color
}

// Canvas returns the painted pixels without the cursor overlay.
func (g *Game) Canvas() *core.Framebuffer {
	return g.canvas
}

// Framebuffer returns the canvas with the cursor drawn as a white cross.
func (g *Game) Framebuffer() *core.Framebuffer {
	g.fb.Copy(g.canvas)
	x, y := float64(g.x), float64(g.y)
	for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		g.fb.SetPixel(x+d[0], y+d[1], core.ColorWhite)
	}
	return g.fb
}

// Render blits the canvas and a status line with the active color.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fb := g.Framebuffer()
	x := max((dst.Width()-fb.Width())/2, 0)
	dst.Blit(fb, x, 1)

	status := fmt.Sprintf(" PAINT  color %3d ", g.color)
	dst.DrawTextColored(x, 0, status, core.ColorLightGreen)
	dst.SetCell(x+len(status), 0, core.Cell{Rune: '█', Fg: g.color, Bg: core.ColorDefault})
	dst.DrawTextColored(x, 1+fb.Height()/2, "Arrows move, Space paints, C cycles color, R clears", core.ColorLightGreen)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

// Labels shows the active color and the pause banner.
func (g *Game) Labels() []core.Label {
	labels := []core.Label{{X: 1, Y: 1, Text: fmt.Sprintf("color %d", g.color), Color: core.ColorLightGreen}}
	if g.paused {
		labels = append(labels, core.Label{
			X: g.canvas.Width() / 2, Y: g.canvas.Height() / 2, Text: "PAUSED", Color: core.ColorWhite, Centered: true,
		})
	}
	return labels
}

// State returns the current scenario state. Score counts painted pixels.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.strokes, Paused: g.paused}
}

// Register the scenario on package initialization
func init() {
	registry.Register("paint", func() registry.Game {
		return New()
	})
}

// Package hello draws a static demo of the framebuffer primitives.
package hello

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Framebuffer dimensions in pixels.
const (
	ScreenW = 64
	ScreenH = 40
)

// Message is the greeting printed below the shapes.
const Message = "Hello World!"

// Game implements the hello scenario.
type Game struct {
	fb *core.Framebuffer
}

// New creates a new hello scenario.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scenario.
func (g *Game) ID() string {
	return "hello"
}

// Title returns the display name for this scenario.
func (g *Game) Title() string {
	return "Hello World"
}

// Reset draws the scene once; it never changes afterwards.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.fb = core.NewFramebuffer(ScreenW, ScreenH)
	g.fb.DrawRectangle(6, 10, 20, 30, core.ColorLightRed)
	g.fb.DrawLine(58, 10, 26, 36, core.ColorWhite)
	g.fb.DrawCircle(32, 20, 16, core.ColorYellow)
}

// Step is a no-op.
func (g *Game) Step(_ core.InputFrame) core.StepResult {
	return core.StepResult{State: g.State()}
}

// Framebuffer returns the drawn scene.
func (g *Game) Framebuffer() *core.Framebuffer {
	return g.fb
}

// Render blits the scene with the greeting underneath.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	x := max((dst.Width()-ScreenW)/2, 0)
	dst.Blit(g.fb, x, 0)
	msgX := x + (ScreenW-len(Message))/2
	dst.DrawTextColored(msgX, ScreenH/2, Message, core.ColorLightGreen)
}

// Labels places the greeting under the circle.
func (g *Game) Labels() []core.Label {
	return []core.Label{{X: ScreenW / 2, Y: ScreenH - 3, Text: Message, Color: core.ColorLightGreen, Centered: true}}
}

// State returns the current scenario state.
func (g *Game) State() core.GameState {
	return core.GameState{}
}

func init() {
	registry.Register("hello", func() registry.Game {
		return New()
	})
}

package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// labelFace is the bitmap font scenario labels are drawn with.
var labelFace = text.NewGoXFace(basicfont.Face7x13)

// shadowColor outlines labels so they stay readable over any pixel.
var shadowColor = color.RGBA{A: 0xff}

// placedLabel is a label resolved to window coordinates.
type placedLabel struct {
	x, y  float64
	text  string
	color color.RGBA
}

// placeLabels scales the scenario's labels into window space. advance
// measures a string's width in window pixels.
func (r *Runner) placeLabels(advance func(string) float64) []placedLabel {
	labels := registry.Labels(r.game)
	out := make([]placedLabel, 0, len(labels))
	for _, l := range labels {
		x := float64(l.X * r.scale)
		if l.Centered {
			x -= advance(l.Text) / 2
		}
		out = append(out, placedLabel{
			x:     x,
			y:     float64(l.Y*r.scale + hudHeight),
			text:  l.Text,
			color: paletteRGBA(l.Color),
		})
	}
	return out
}

// drawLabels renders the scenario's text over the scaled framebuffer.
func (r *Runner) drawLabels(screen *ebiten.Image) {
	advance := func(s string) float64 { return text.Advance(s, labelFace) }
	for _, l := range r.placeLabels(advance) {
		drawText(screen, l.text, l.x+1, l.y+1, shadowColor)
		drawText(screen, l.text, l.x, l.y, l.color)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, labelFace, op)
}

// paletteRGBA converts a palette entry to an opaque color.
func paletteRGBA(c core.Color) color.RGBA {
	p := core.Palette(c)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

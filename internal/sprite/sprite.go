// Package sprite provides palette sprites: pixel matrices with an origin, a
// transparency-trimmed local bounding box and clockwise rotation.
package sprite

import (
	"fmt"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Transparent is the palette value used for see-through pixels.
const Transparent = core.ColorDefault

// Sprite is an immutable-by-convention pixel image. Build it once, compute its
// bounding box, then share it between entities.
type Sprite struct {
	Width  int
	Height int

	// OriginX and OriginY locate the sprite's anchor pixel. Drawing at (x, y)
	// places the anchor there; the bounding box is relative to it.
	OriginX int
	OriginY int

	Transparent core.Color
	Pixels      [][]core.Color // [row][col]

	// Non-zero overrides replace the trimmed pixel extent on that side.
	BBoxTop    int
	BBoxBottom int
	BBoxLeft   int
	BBoxRight  int

	// BBox is valid after ComputeBBox or Rotate.
	BBox core.BBox
}

// Parse builds a sprite from text rows. '.' and ' ' are transparent; every
// other rune must be present in the legend.
func Parse(rows []string, legend map[rune]core.Color) (*Sprite, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("sprite: no rows")
	}

	width := len([]rune(rows[0]))
	s := &Sprite{
		Width:       width,
		Height:      len(rows),
		Transparent: Transparent,
		Pixels:      make([][]core.Color, len(rows)),
	}
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("sprite: row %d has width %d, expected %d", i, len(runes), width)
		}
		s.Pixels[i] = make([]core.Color, width)
		for j, r := range runes {
			if r == '.' || r == ' ' {
				s.Pixels[i][j] = Transparent
				continue
			}
			c, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("sprite: row %d col %d: rune %q not in legend", i, j, r)
			}
			s.Pixels[i][j] = c
		}
	}
	return s, nil
}

// MustParse is like Parse but panics on malformed data. It is meant for
// sprite tables compiled into the binary.
func MustParse(rows []string, legend map[rune]core.Color) *Sprite {
	s, err := Parse(rows, legend)
	if err != nil {
		panic(err)
	}
	return s
}

// ComputeBBox stores the bounding box around all opaque pixels, relative to
// the origin, honoring any non-zero side overrides. A sprite with no opaque
// pixel gets a zero box.
func (s *Sprite) ComputeBBox() {
	minX, minY := s.Width, s.Height
	maxX, maxY := 0, 0
	opaque := false
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			if s.Pixels[i][j] == s.Transparent {
				continue
			}
			opaque = true
			if j < minX {
				minX = j
			}
			if j > maxX {
				maxX = j
			}
			if i < minY {
				minY = i
			}
			if i > maxY {
				maxY = i
			}
		}
	}

	if !opaque {
		s.BBox = core.BBox{}
		return
	}
	s.BBox = core.BBox{
		Left:  float64(override(s.BBoxLeft, minX) - s.OriginX),
		Right: float64(override(s.BBoxRight, maxX) - s.OriginX),
		Up:    float64(override(s.BBoxTop, minY) - s.OriginY),
		Down:  float64(override(s.BBoxBottom, maxY) - s.OriginY),
	}
}

func override(custom, computed int) int {
	if custom != 0 {
		return custom
	}
	return computed
}

// Rotate returns a new sprite turned clockwise by times quarter turns around
// its origin. The bounding box is rotated along with the pixels.
func (s *Sprite) Rotate(times int) *Sprite {
	times = ((times % 4) + 4) % 4
	out := s.clone()
	for ; times > 0; times-- {
		out = out.rotateOnce()
	}
	return out
}

func (s *Sprite) rotateOnce() *Sprite {
	r := &Sprite{
		Width:       s.Height,
		Height:      s.Width,
		OriginX:     s.Height - 1 - s.OriginY,
		OriginY:     s.OriginX,
		Transparent: s.Transparent,
		Pixels:      make([][]core.Color, s.Width),
		BBox:        s.BBox.RotateCW(),
	}
	for i := 0; i < s.Width; i++ {
		r.Pixels[i] = make([]core.Color, s.Height)
		for j := 0; j < s.Height; j++ {
			r.Pixels[i][j] = s.Pixels[s.Height-1-j][i]
		}
	}
	return r
}

func (s *Sprite) clone() *Sprite {
	c := *s
	c.Pixels = make([][]core.Color, len(s.Pixels))
	for i, row := range s.Pixels {
		c.Pixels[i] = append([]core.Color(nil), row...)
	}
	return &c
}

// Draw plots the sprite with its origin at (x, y). A ghost sprite draws only
// every other pixel in a checkerboard.
func (s *Sprite) Draw(fb *core.Framebuffer, x, y float64, ghost bool) {
	x -= float64(s.OriginX)
	y -= float64(s.OriginY)
	for i := 0; i < s.Height; i++ {
		for j := 0; j < s.Width; j++ {
			c := s.Pixels[i][j]
			if c == s.Transparent || (ghost && (i+j)%2 != 0) {
				continue
			}
			fb.SetPixel(float64(j)+x, float64(i)+y, c)
		}
	}
}

// Scale returns a copy enlarged by an integer factor. Each pixel becomes an
// n x n block and the origin and bounding box scale with it.
func (s *Sprite) Scale(n int) *Sprite {
	if n <= 1 {
		c := s.clone()
		c.ComputeBBox()
		return c
	}
	out := &Sprite{
		Width:       s.Width * n,
		Height:      s.Height * n,
		OriginX:     s.OriginX * n,
		OriginY:     s.OriginY * n,
		Transparent: s.Transparent,
		Pixels:      make([][]core.Color, s.Height*n),
		BBoxTop:     s.BBoxTop * n,
		BBoxBottom:  s.BBoxBottom * n,
		BBoxLeft:    s.BBoxLeft * n,
		BBoxRight:   s.BBoxRight * n,
	}
	for i := range out.Pixels {
		out.Pixels[i] = make([]core.Color, out.Width)
		for j := range out.Pixels[i] {
			out.Pixels[i][j] = s.Pixels[i/n][j/n]
		}
	}
	out.ComputeBBox()
	return out
}

package core

import "math"

// Framebuffer is a palette-indexed pixel buffer emulating a retro display.
// Scenarios draw into it; platforms convert it to terminal cells or images.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFramebuffer creates a framebuffer cleared to black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pix returns the underlying row-major pixel slice. Callers must not retain it
// across frames.
func (f *Framebuffer) Pix() []uint8 {
	return f.pix
}

// Clear fills every pixel with the given color.
func (f *Framebuffer) Clear(c Color) {
	if !c.Valid() {
		c = ColorInvalid
	}
	for i := range f.pix {
		f.pix[i] = uint8(c)
	}
}

// SetPixel plots one pixel. Fractional coordinates are floored and
// out-of-bounds pixels are silently dropped.
func (f *Framebuffer) SetPixel(x, y float64, c Color) {
	px, py := int(math.Floor(x)), int(math.Floor(y))
	if px < 0 || px >= f.width || py < 0 || py >= f.height {
		return
	}
	if !c.Valid() {
		c = ColorInvalid
	}
	f.pix[py*f.width+px] = uint8(c)
}

// Pixel returns the color at (x, y), or ColorDefault when out of bounds.
func (f *Framebuffer) Pixel(x, y int) Color {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return ColorDefault
	}
	return Color(f.pix[y*f.width+x])
}

// DrawBar fills the rectangle between the two corners, inclusive.
func (f *Framebuffer) DrawBar(x1, y1, x2, y2 float64, c Color) {
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			f.SetPixel(x, y, c)
		}
	}
}

// DrawRectangle outlines the rectangle between the two corners.
func (f *Framebuffer) DrawRectangle(x1, y1, x2, y2 float64, c Color) {
	f.DrawBar(x1, y1, x2, y1, c)
	f.DrawBar(x1, y1, x1, y2, c)
	f.DrawBar(x2, y1, x2, y2, c)
	f.DrawBar(x1, y2, x2, y2, c)
}

// DrawBBox outlines a world-space bounding box.
func (f *Framebuffer) DrawBBox(b BBox, c Color) {
	f.DrawRectangle(b.Left, b.Up, b.Right, b.Down, c)
}

// DrawLine draws a straight line between two points. Axis-aligned lines take
// a direct path; others step along the longer axis.
func (f *Framebuffer) DrawLine(x1, y1, x2, y2 float64, c Color) {
	if x1 == x2 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			f.SetPixel(x1, y, c)
		}
		return
	}
	if y1 == y2 {
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			f.SetPixel(x, y1, c)
		}
		return
	}

	slope := (y1 - y2) / (x1 - x2)
	difX := math.Abs(x1 - x2)
	difY := math.Abs(y1 - y2)
	if difX <= difY {
		if y1 > y2 {
			x1, y1 = x2, y2
		}
		for i := 0.0; i <= difY; i++ {
			f.SetPixel(i/slope+x1, i+y1, c)
		}
		return
	}
	if x1 > x2 {
		x1, y1 = x2, y2
	}
	for i := 0.0; i <= difX; i++ {
		f.SetPixel(i+x1, slope*i+y1, c)
	}
}

// DrawCircle draws a circle outline with the midpoint algorithm.
func (f *Framebuffer) DrawCircle(cx, cy, r int, c Color) {
	d := 3 - 2*r
	i, j := 0, r
	for i <= j {
		for _, p := range [8][2]int{
			{cx + i, cy + j}, {cx + i, cy - j}, {cx - i, cy + j}, {cx - i, cy - j},
			{cx + j, cy + i}, {cx + j, cy - i}, {cx - j, cy + i}, {cx - j, cy - i},
		} {
			f.SetPixel(float64(p[0]), float64(p[1]), c)
		}
		i++
		if d < 0 {
			d += 4*i + 6
		} else {
			d += 4*(i-j) + 10
			j--
		}
	}
}

// Copy overwrites f with the overlapping region of src.
func (f *Framebuffer) Copy(src *Framebuffer) {
	if src.width == f.width && src.height == f.height {
		copy(f.pix, src.pix)
		return
	}
	w, h := Min(f.width, src.width), Min(f.height, src.height)
	for y := 0; y < h; y++ {
		copy(f.pix[y*f.width:y*f.width+w], src.pix[y*src.width:y*src.width+w])
	}
}

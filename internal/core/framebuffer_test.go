package core

import "testing"

// countPixels returns how many pixels hold the given color.
func countPixels(fb *Framebuffer, c Color) int {
	n := 0
	for _, p := range fb.Pix() {
		if Color(p) == c {
			n++
		}
	}
	return n
}

func TestFramebufferSetPixel(t *testing.T) {
	fb := NewFramebuffer(8, 4)

	fb.SetPixel(2.7, 1.2, ColorRed)
	if got := fb.Pixel(2, 1); got != ColorRed {
		t.Errorf("Pixel(2, 1) = %d, expected red", got)
	}

	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(8, 0, ColorRed)
	fb.SetPixel(0, 4, ColorRed)
	if n := countPixels(fb, ColorRed); n != 1 {
		t.Errorf("out-of-bounds writes landed: %d red pixels", n)
	}

	fb.SetPixel(0, 0, Color(900))
	if got := fb.Pixel(0, 0); got != ColorInvalid {
		t.Errorf("invalid color stored as %d, expected %d", got, ColorInvalid)
	}

	if got := fb.Pixel(100, 100); got != ColorDefault {
		t.Errorf("out-of-bounds Pixel = %d, expected ColorDefault", got)
	}
}

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(ColorBlue)

	if n := countPixels(fb, ColorBlue); n != 16 {
		t.Errorf("Clear painted %d pixels, expected 16", n)
	}
}

func TestFramebufferDrawBar(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawBar(1, 1, 3, 4, ColorGreen)

	if n := countPixels(fb, ColorGreen); n != 12 {
		t.Errorf("DrawBar painted %d pixels, expected 12", n)
	}
	if fb.Pixel(3, 4) != ColorGreen {
		t.Error("DrawBar should include the far corner")
	}
}

func TestFramebufferDrawRectangle(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.DrawRectangle(0, 0, 4, 4, ColorYellow)

	if n := countPixels(fb, ColorYellow); n != 16 {
		t.Errorf("DrawRectangle painted %d pixels, expected 16", n)
	}
	if fb.Pixel(2, 2) == ColorYellow {
		t.Error("DrawRectangle should leave the interior untouched")
	}
}

func TestFramebufferDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       int
	}{
		{"horizontal reversed", 5, 2, 1, 2, 5},
		{"vertical", 3, 0, 3, 6, 7},
		{"diagonal", 0, 0, 3, 3, 4},
		{"shallow", 0, 0, 6, 3, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fb := NewFramebuffer(10, 10)
			fb.DrawLine(tc.x1, tc.y1, tc.x2, tc.y2, ColorWhite)
			if n := countPixels(fb, ColorWhite); n != tc.expected {
				t.Errorf("DrawLine painted %d pixels, expected %d", n, tc.expected)
			}
			if fb.Pixel(int(tc.x1), int(tc.y1)) != ColorWhite || fb.Pixel(int(tc.x2), int(tc.y2)) != ColorWhite {
				t.Error("DrawLine should cover both endpoints")
			}
		})
	}
}

func TestFramebufferDrawCircle(t *testing.T) {
	fb := NewFramebuffer(21, 21)
	fb.DrawCircle(10, 10, 8, ColorLightCyan)

	for _, p := range [][2]int{{10, 2}, {10, 18}, {2, 10}, {18, 10}} {
		if fb.Pixel(p[0], p[1]) != ColorLightCyan {
			t.Errorf("circle missing extreme point (%d, %d)", p[0], p[1])
		}
	}
	if fb.Pixel(10, 10) == ColorLightCyan {
		t.Error("circle outline should not paint the center")
	}
}

func TestFramebufferCopy(t *testing.T) {
	src := NewFramebuffer(4, 4)
	src.SetPixel(3, 3, ColorRed)
	src.SetPixel(1, 1, ColorGreen)

	same := NewFramebuffer(4, 4)
	same.Copy(src)
	if same.Pixel(3, 3) != ColorRed || same.Pixel(1, 1) != ColorGreen {
		t.Error("same-size copy lost pixels")
	}

	small := NewFramebuffer(2, 2)
	small.Copy(src)
	if small.Pixel(1, 1) != ColorGreen {
		t.Error("smaller copy should keep the overlapping region")
	}
}

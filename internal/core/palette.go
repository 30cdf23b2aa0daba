package core

import "fmt"

// RGB is a 24-bit palette entry.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// vgaPalette is the default mode 13h palette, built once at init.
var vgaPalette = buildVGAPalette()

// Palette returns the RGB value for a palette index.
// Invalid indices resolve to ColorInvalid.
func Palette(c Color) RGB {
	if !c.Valid() {
		c = ColorInvalid
	}
	return vgaPalette[c]
}

// six converts a 6-bit DAC value to 8 bits.
func six(v int) uint8 {
	return uint8(v * 255 / 63)
}

func buildVGAPalette() [256]RGB {
	var p [256]RGB

	ega := [16][3]int{
		{0, 0, 0}, {0, 0, 42}, {0, 42, 0}, {0, 42, 42},
		{42, 0, 0}, {42, 0, 42}, {42, 21, 0}, {42, 42, 42},
		{21, 21, 21}, {21, 21, 63}, {21, 63, 21}, {21, 63, 63},
		{63, 21, 21}, {63, 21, 63}, {63, 63, 21}, {63, 63, 63},
	}
	for i, c := range ega {
		p[i] = RGB{six(c[0]), six(c[1]), six(c[2])}
	}

	grays := [16]int{0, 5, 8, 11, 14, 17, 20, 24, 28, 32, 36, 40, 45, 50, 56, 63}
	for i, g := range grays {
		p[16+i] = RGB{six(g), six(g), six(g)}
	}

	// Three intensities, each with three saturations, each a 24-step hue wheel.
	type level struct{ hi, lo int }
	levels := []level{
		{63, 0}, {63, 31}, {63, 45},
		{28, 0}, {28, 14}, {28, 20},
		{16, 0}, {16, 8}, {16, 11},
	}
	idx := 32
	for _, l := range levels {
		for _, c := range hueWheel(l.hi, l.lo) {
			p[idx] = RGB{six(c[0]), six(c[1]), six(c[2])}
			idx++
		}
	}
	// Entries 248..255 stay black.
	return p
}

// hueWheel walks blue -> magenta -> red -> yellow -> green -> cyan -> blue
// in 24 steps between the lo and hi component values.
func hueWheel(hi, lo int) [24][3]int {
	step := func(n int) int { return lo + (hi-lo)*n/4 }
	var w [24][3]int
	for i := 0; i < 24; i++ {
		seg, n := i/4, i%4
		up, down := step(n), step(4-n)
		switch seg {
		case 0: // blue, red rising
			w[i] = [3]int{up, lo, hi}
		case 1: // magenta, blue falling
			w[i] = [3]int{hi, lo, down}
		case 2: // red, green rising
			w[i] = [3]int{hi, up, lo}
		case 3: // yellow, red falling
			w[i] = [3]int{down, hi, lo}
		case 4: // green, blue rising
			w[i] = [3]int{lo, hi, up}
		case 5: // cyan, green falling
			w[i] = [3]int{lo, down, hi}
		}
	}
	return w
}

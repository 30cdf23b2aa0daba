package core

import "math"

// BBox is an axis-aligned bounding box. Extents are relative to an entity's
// origin in local space, or absolute once translated into world space.
// Up <= Down and Left <= Right.
type BBox struct {
	Up    float64
	Down  float64
	Left  float64
	Right float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	return b.Down - b.Up
}

// Translate returns the box moved by (dx, dy).
func (b BBox) Translate(dx, dy float64) BBox {
	return BBox{
		Up:    b.Up + dy,
		Down:  b.Down + dy,
		Left:  b.Left + dx,
		Right: b.Right + dx,
	}
}

// RotateCW returns the box rotated 90 degrees clockwise around the origin.
func (b BBox) RotateCW() BBox {
	return BBox{
		Up:    b.Left,
		Down:  b.Right,
		Left:  -b.Down,
		Right: -b.Up,
	}
}

// Overlap describes how a second box intersects a reference box.
type Overlap struct {
	// XRelative and YRelative locate the other box's top-left corner
	// relative to the reference box's top-left corner.
	XRelative float64
	YRelative float64

	// XOverlap is positive when the other box covers the reference's right
	// side by that amount, negative when it covers the left side.
	XOverlap float64
	// YOverlap is positive when the other box covers the reference's bottom
	// side by that amount, negative when it covers the top side.
	YOverlap float64
}

// Dot projects the overlap onto a direction vector.
func (o Overlap) Dot(dirX, dirY float64) float64 {
	return o.XOverlap*dirX + o.YOverlap*dirY
}

// Intersect computes the overlap of b relative to a.
// Boxes that merely touch overlap with zero depth.
// Returns false if the boxes are disjoint.
func Intersect(a, b BBox) (Overlap, bool) {
	if a.Down < b.Up || b.Down < a.Up {
		return Overlap{}, false
	}
	if a.Right < b.Left || b.Right < a.Left {
		return Overlap{}, false
	}

	right := math.Min(a.Width(), a.Right-b.Left)
	left := math.Min(a.Width(), b.Right-a.Left)
	down := math.Min(a.Height(), a.Down-b.Up)
	up := math.Min(a.Height(), b.Down-a.Up)

	o := Overlap{
		XRelative: b.Left - a.Left,
		YRelative: b.Up - a.Up,
		XOverlap:  right,
		YOverlap:  down,
	}
	if right > left {
		o.XOverlap = -left
	}
	if down > up {
		o.YOverlap = -up
	}
	return o, true
}

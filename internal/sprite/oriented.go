package sprite

// Orientation is one of the four cardinal facings.
type Orientation uint8

// Orientations are ordered clockwise so that Right is Up rotated once.
const (
	Up Orientation = iota
	Right
	Down
	Left
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Set holds one sprite per orientation.
type Set [4]*Sprite

// Oriented builds a Set from an upward-facing sprite. The bounding box of up
// is computed first, so every orientation carries its own rotated box.
func Oriented(up *Sprite) Set {
	up.ComputeBBox()
	return Set{
		Up:    up,
		Right: up.Rotate(1),
		Down:  up.Rotate(2),
		Left:  up.Rotate(3),
	}
}

// Get returns the sprite for an orientation.
func (s Set) Get(o Orientation) *Sprite {
	return s[o%4]
}

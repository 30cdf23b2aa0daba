package tanks

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/physics"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

// BrickBreakable is the only brick type bullets destroy.
const BrickBreakable = 1

// Brick is a static obstacle occupying one grid cell.
type Brick struct {
	physics.Base

	kind     int
	shape    *sprite.Sprite
	row, col int
	dead     bool
}

// NewBrick creates a brick of the given type in a cell. Types outside 1..4
// fall back to type 1.
func NewBrick(w *World, kind, row, col int) *Brick {
	if kind < CellBrickFirst || kind > CellBrickLast {
		kind = BrickBreakable
	}
	return &Brick{
		Base:  physics.NewBase(float64(col)*w.BrickSize, float64(row)*w.BrickSize, TypeBullet),
		kind:  kind,
		shape: w.Shapes.Bricks[kind-1],
		row:   row,
		col:   col,
	}
}

// Type implements physics.Entity.
func (b *Brick) Type() physics.Type { return TypeBrick }

// BoundingBox implements physics.Entity.
func (b *Brick) BoundingBox() core.BBox {
	return b.shape.BBox.Translate(b.X, b.Y)
}

// HandleCollision breaks breakable bricks when shot.
func (b *Brick) HandleCollision(other physics.Entity) {
	if _, ok := other.(*Bullet); ok && b.kind == BrickBreakable {
		b.dead = true
	}
}

// Dead reports whether the brick has been broken.
func (b *Brick) Dead() bool { return b.dead }

// Kind returns the brick type code.
func (b *Brick) Kind() int { return b.kind }

// Cell returns the brick's grid position.
func (b *Brick) Cell() (row, col int) { return b.row, b.col }

// Draw renders the brick.
func (b *Brick) Draw(fb *core.Framebuffer) {
	b.shape.Draw(fb, b.X, b.Y, false)
}

package tanks

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/physics"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

// Bullet flies straight until it hits a brick, a tank of the other side or
// leaves the playfield.
type Bullet struct {
	physics.Base

	world       *World
	orientation sprite.Orientation
	faction     Faction
	speed       float64
	damage      float64
	dead        bool
}

// NewBullet creates a bullet fired by a tank of the given faction.
func NewBullet(w *World, x, y float64, faction Faction, o sprite.Orientation) *Bullet {
	return &Bullet{
		Base:        physics.NewBase(x, y, TypeBrick, TypeTank),
		world:       w,
		orientation: o,
		faction:     faction,
		speed:       w.Tuning.BulletSpeed,
		damage:      w.Tuning.BulletDamage,
	}
}

// Type implements physics.Entity.
func (b *Bullet) Type() physics.Type { return TypeBullet }

// BoundingBox implements physics.Entity.
func (b *Bullet) BoundingBox() core.BBox {
	return b.world.Shapes.Bullet.Get(b.orientation).BBox.Translate(b.X, b.Y)
}

// FilterCollision ignores tanks on the bullet's own side.
func (b *Bullet) FilterCollision(other physics.Entity) bool {
	if t, ok := other.(*Tank); ok && t.faction == b.faction {
		return false
	}
	return true
}

// HandleCollision destroys the bullet on any hit.
func (b *Bullet) HandleCollision(other physics.Entity) {
	switch other.(type) {
	case *Brick, *Tank:
		b.dead = true
	}
}

// Dead reports whether the bullet should be removed.
func (b *Bullet) Dead() bool { return b.dead }

// Faction returns the side that fired the bullet.
func (b *Bullet) Faction() Faction { return b.faction }

// Damage returns the health a hit removes.
func (b *Bullet) Damage() float64 { return b.damage }

// Update moves the bullet along its heading.
func (b *Bullet) Update(dt float64) {
	var dx, dy float64
	switch b.orientation {
	case sprite.Up:
		dy = -b.speed * dt
	case sprite.Down:
		dy = b.speed * dt
	case sprite.Left:
		dx = -b.speed * dt
	case sprite.Right:
		dx = b.speed * dt
	}
	physics.Move(b.world, b, dx, dy)
	if !b.world.InPlayfield(b.X, b.Y) {
		b.dead = true
	}
}

// Draw renders the bullet.
func (b *Bullet) Draw(fb *core.Framebuffer) {
	b.world.Shapes.Bullet.Get(b.orientation).Draw(fb, b.X, b.Y, false)
}

package tanks

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/physics"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

// Faction separates the player's side from the enemy side.
type Faction uint8

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "player"
	}
	return "enemy"
}

// Controller drives a tank each tick.
type Controller interface {
	Update(dt float64)
	HandleBrickCollision(b *Brick)
}

// healthColors run from critical to full.
var healthColors = []core.Color{1, 172, 11, 154, 10}

// Tank is a player or enemy tank.
type Tank struct {
	physics.Base

	world       *World
	sprites     sprite.Set
	orientation sprite.Orientation
	faction     Faction
	controller  Controller

	health    float64
	sinceFire float64
}

// NewTank creates a tank facing up at (x, y).
func NewTank(w *World, sprites sprite.Set, x, y float64, faction Faction) *Tank {
	return &Tank{
		Base:        physics.NewBase(x, y, TypeBullet, TypeBrick, TypeTank),
		world:       w,
		sprites:     sprites,
		orientation: sprite.Up,
		faction:     faction,
		health:      w.Tuning.TankHealth,
		sinceFire:   100,
	}
}

// Type implements physics.Entity.
func (t *Tank) Type() physics.Type { return TypeTank }

// BoundingBox implements physics.Entity.
func (t *Tank) BoundingBox() core.BBox {
	return t.sprites.Get(t.orientation).BBox.Translate(t.X, t.Y)
}

// HandleCollision takes damage from enemy bullets and forwards brick
// contacts to the controller.
func (t *Tank) HandleCollision(other physics.Entity) {
	switch o := other.(type) {
	case *Bullet:
		if o.faction != t.faction {
			t.health -= o.damage
		}
	case *Brick:
		if t.controller != nil {
			t.controller.HandleBrickCollision(o)
		}
	}
}

// Dead reports whether the tank has no health left.
func (t *Tank) Dead() bool { return t.health <= 0 }

// Faction returns the tank's side.
func (t *Tank) Faction() Faction { return t.faction }

// Health returns the remaining health.
func (t *Tank) Health() float64 { return t.health }

// Orientation returns the current facing.
func (t *Tank) Orientation() sprite.Orientation { return t.orientation }

// SetOrientation turns the tank in place.
func (t *Tank) SetOrientation(o sprite.Orientation) { t.orientation = o }

// SetController attaches the tank's driver.
func (t *Tank) SetController(c Controller) { t.controller = c }

// Update advances the fire cooldown and runs the controller.
func (t *Tank) Update(dt float64) {
	t.sinceFire += dt
	if t.controller != nil {
		t.controller.Update(dt)
	}
}

// Move turns the tank towards the requested direction, horizontal first,
// then moves it as far as collisions allow.
func (t *Tank) Move(dx, dy float64) physics.Result {
	switch {
	case dx < 0:
		t.orientation = sprite.Left
	case dx > 0:
		t.orientation = sprite.Right
	case dy < 0:
		t.orientation = sprite.Up
	case dy > 0:
		t.orientation = sprite.Down
	}
	return physics.Move(t.world, t, dx, dy)
}

// Fire spawns a bullet at the muzzle if the cooldown has elapsed.
func (t *Tank) Fire() bool {
	if t.sinceFire < t.world.Tuning.FireInterval {
		return false
	}
	x, y := t.Muzzle()
	t.world.SpawnBullet(NewBullet(t.world, x, y, t.faction, t.orientation))
	t.sinceFire = 0
	return true
}

// Reload shortens the remaining cooldown to at most half the interval.
func (t *Tank) Reload() {
	t.sinceFire = math.Max(t.sinceFire, t.world.Tuning.FireInterval/2)
}

// Muzzle returns the bullet spawn point in front of the tank.
func (t *Tank) Muzzle() (float64, float64) {
	offs := float64(t.sprites.Get(sprite.Up).Height) / 2
	switch t.orientation {
	case sprite.Down:
		return t.X, t.Y + offs
	case sprite.Left:
		return t.X - offs, t.Y
	case sprite.Right:
		return t.X + offs, t.Y
	default:
		return t.X, t.Y - offs
	}
}

// Draw renders the tank sprite.
func (t *Tank) Draw(fb *core.Framebuffer) {
	t.sprites.Get(t.orientation).Draw(fb, t.X, t.Y, false)
}

// DrawHealthBar renders a bar under the tank, shrinking and reddening with
// damage.
func (t *Tank) DrawHealthBar(fb *core.Framebuffer) {
	full := t.world.Tuning.TankHealth
	if t.health < 0 || full <= 0 {
		return
	}
	ratio := math.Min(t.health/full, 1)
	color := healthColors[int(ratio*float64(len(healthColors)-1))]

	up := t.sprites.Get(sprite.Up)
	width := math.Floor(t.world.BrickSize * 0.9)
	height := math.Floor(t.world.BrickSize / 10)
	barY := t.Y + float64(up.Height-up.OriginY) + t.world.BrickSize*0.15
	length := math.Floor(width * ratio)
	fb.DrawBar(t.X-length/2, barY, t.X+length/2-1, barY+height, color)
}

package tanks

import (
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/physics"
)

// Entity categories.
const (
	TypeTank physics.Type = iota
	TypeBullet
	TypeBrick
)

// Tuning holds the movement and AI parameters the world hands to entities
// and controllers. The scenario refreshes the difficulty-scaled fields every
// tick.
type Tuning struct {
	PlayerSpeed     float64
	EnemySpeed      float64
	EnemyFireChance float64

	AwarenessRadius float64
	ApproachChance  float64
	AimChance       float64
	TurnChance      float64
	WanderChance    float64
	FireTime        float64
	MoveTime        float64

	TankHealth   float64
	FireInterval float64
	BulletSpeed  float64
	BulletDamage float64
}

// World owns every entity: a grid of bricks mirrored by a flat brick list,
// the player and the enemy and bullet lists.
type World struct {
	BrickSize float64
	Shapes    *Shapes
	Tuning    Tuning

	Player  *Tank
	Enemies []*Tank
	Bullets []*Bullet
	Bricks  []*Brick

	grid *physics.Grid
}

// NewWorld creates an empty world sized rows x cols cells.
func NewWorld(rows, cols int, brickSize float64, shapes *Shapes, tuning Tuning) *World {
	return &World{
		BrickSize: brickSize,
		Shapes:    shapes,
		Tuning:    tuning,
		grid:      physics.NewGrid(rows, cols, brickSize),
	}
}

// Width returns the playfield width in pixels.
func (w *World) Width() float64 {
	return float64(w.grid.Cols()) * w.BrickSize
}

// Height returns the playfield height in pixels.
func (w *World) Height() float64 {
	return float64(w.grid.Rows()) * w.BrickSize
}

// Grid exposes the brick index.
func (w *World) Grid() *physics.Grid {
	return w.grid
}

// Query implements physics.Space. Tanks come from the player and enemy
// lists, bricks from the grid cells spanned by box. Bullets are never
// collision candidates; they find what they hit themselves.
func (w *World) Query(t physics.Type, box core.BBox, visit func(physics.Entity)) {
	switch t {
	case TypeTank:
		if w.Player != nil {
			visit(w.Player)
		}
		for _, e := range w.Enemies {
			visit(e)
		}
	case TypeBrick:
		w.grid.Visit(box, visit)
	}
}

// AddBrick places a brick in its cell and the brick list. It returns false
// if the cell is outside the grid or already taken.
func (w *World) AddBrick(b *Brick) bool {
	if w.grid.At(b.row, b.col) != nil {
		return false
	}
	if !w.grid.Set(b.row, b.col, b) {
		return false
	}
	w.Bricks = append(w.Bricks, b)
	return true
}

// SpawnBullet adds a bullet to the world.
func (w *World) SpawnBullet(b *Bullet) {
	w.Bullets = append(w.Bullets, b)
}

// InPlayfield reports whether a point is within the playfield, allowing a
// margin of half a cell.
func (w *World) InPlayfield(x, y float64) bool {
	m := w.BrickSize / 2
	return x >= -m && y >= -m && x <= w.Width()+m && y <= w.Height()+m
}

// PruneReport counts what a prune pass removed.
type PruneReport struct {
	Enemies    int
	Bullets    int
	Bricks     int
	PlayerDown bool
}

// Prune removes dead bullets, tanks and bricks from every container that
// holds them. Bricks leave the grid and the list together.
func (w *World) Prune() PruneReport {
	var r PruneReport

	before := len(w.Bullets)
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *Bullet) bool { return b.Dead() })
	r.Bullets = before - len(w.Bullets)

	before = len(w.Enemies)
	w.Enemies = slices.DeleteFunc(w.Enemies, func(t *Tank) bool { return t.Dead() })
	r.Enemies = before - len(w.Enemies)

	before = len(w.Bricks)
	w.Bricks = slices.DeleteFunc(w.Bricks, func(b *Brick) bool {
		if !b.Dead() {
			return false
		}
		if w.grid.At(b.row, b.col) == physics.Entity(b) {
			w.grid.Clear(b.row, b.col)
		}
		return true
	})
	r.Bricks = before - len(w.Bricks)

	if w.Player != nil && w.Player.Dead() {
		r.PlayerDown = true
	}
	return r
}

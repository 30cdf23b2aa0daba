package physics

import (
	"cmp"
	"math"
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Collision is an overlap against a specific entity.
type Collision struct {
	core.Overlap
	Entity Entity
}

// Result is the outcome of resolving a desired displacement.
type Result struct {
	// Blocker is the nearest colliding entity, or nil.
	Blocker Entity
	// DX and DY are the allowed travel.
	DX, DY float64
}

// Nearest returns the collision that occurs earliest along the direction
// (dirX, dirY) for box, considering every category e has enabled.
func Nearest(sp Space, e Entity, box core.BBox, dirX, dirY float64) (Collision, bool) {
	return nearest(collisions(sp, e, box), dirX, dirY)
}

// collisions gathers every live, accepted candidate overlapping box.
func collisions(sp Space, e Entity, box core.BBox) []Collision {
	var found []Collision
	for t := Type(0); t < maxTypes; t++ {
		if !e.CollisionEnabled(t) {
			continue
		}
		sp.Query(t, box, func(other Entity) {
			if other == e || isDead(other) {
				return
			}
			o, ok := core.Intersect(box, other.BoundingBox())
			if !ok || !e.FilterCollision(other) {
				return
			}
			found = append(found, Collision{Overlap: o, Entity: other})
		})
	}
	return found
}

func nearest(found []Collision, dirX, dirY float64) (Collision, bool) {
	if len(found) == 0 {
		return Collision{}, false
	}
	slices.SortStableFunc(found, func(a, b Collision) int {
		return cmp.Compare(b.Dot(dirX, dirY), a.Dot(dirX, dirY))
	})
	return found[0], true
}

// tangential reports whether c only touches the mover on an axis it is not
// moving along. Such a contact can never cut travel.
func (c Collision) tangential(dx, dy float64) bool {
	return (dx == 0 && c.XOverlap == 0) || (dy == 0 && c.YOverlap == 0)
}

// blocking drops the tangential contacts from found.
func blocking(found []Collision, dx, dy float64) []Collision {
	return slices.DeleteFunc(slices.Clone(found), func(c Collision) bool {
		return c.tangential(dx, dy)
	})
}

// Resolve computes how far e, occupying box, may travel towards (dx, dy).
// A collision that deepens along the path cuts travel to the point of
// contact; one that stays level or shrinks (backing out of an overlap)
// leaves travel unchanged. Contacts that only touch the side of the path
// (sliding along a wall of bricks) still report a blocker but never cut
// travel.
func Resolve(sp Space, e Entity, box core.BBox, dx, dy float64) Result {
	dirX, dirY := core.Sign(dx), core.Sign(dy)
	length := math.Hypot(dx, dy)

	if length == 0 {
		c, ok := Nearest(sp, e, box, dirX, dirY)
		if !ok {
			return Result{}
		}
		return Result{Blocker: c.Entity}
	}

	found := collisions(sp, e, box.Translate(dx, dy))
	projected, ok := nearest(found, dirX, dirY)
	if !ok {
		return Result{DX: dx, DY: dy}
	}

	after := 0.0
	if c, ok := nearest(blocking(found, dx, dy), dirX, dirY); ok {
		after = pathFraction(c.Overlap, dx, dy, length)
	}
	before := 0.0
	if c, ok := nearest(blocking(collisions(sp, e, box), dx, dy), dirX, dirY); ok {
		before = pathFraction(c.Overlap, dx, dy, length)
	}

	factor := 1.0
	if after > before {
		factor = 1 - after
	}
	return Result{
		Blocker: projected.Entity,
		DX:      dx * factor,
		DY:      dy * factor,
	}
}

// pathFraction is the penetration depth measured along the path, as a
// fraction of the path length.
func pathFraction(o core.Overlap, dx, dy, length float64) float64 {
	depth := (math.Abs(o.XOverlap*dx) + math.Abs(o.YOverlap*dy)) / length
	return core.ClampF(depth/length, 0, 1)
}

// Move resolves e's desired displacement, dispatches collision handlers and
// applies the allowed travel. The blocker is only notified when it has e's
// category enabled.
func Move(sp Space, e Entity, dx, dy float64) Result {
	res := Resolve(sp, e, e.BoundingBox(), dx, dy)
	if res.Blocker != nil {
		e.HandleCollision(res.Blocker)
		if res.Blocker.CollisionEnabled(e.Type()) {
			res.Blocker.HandleCollision(e)
		}
	}
	e.Translate(res.DX, res.DY)
	return res
}

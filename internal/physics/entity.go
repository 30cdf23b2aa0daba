// Package physics implements collision-aware movement for axis-aligned
// entities: type tags, an embeddable entity base, candidate lookup through a
// Space and a sweep resolver that allows partial travel up to contact.
package physics

import "github.com/vovakirdan/retro-arcade/internal/core"

// Type tags an entity category. Scenarios declare their own constants.
type Type uint8

// maxTypes bounds the number of distinct categories a TypeSet can hold.
const maxTypes = 32

// TypeSet is a set of entity categories.
type TypeSet uint32

// Add inserts t into the set.
func (s *TypeSet) Add(t Type) {
	*s |= 1 << (t % maxTypes)
}

// Has reports whether t is in the set.
func (s TypeSet) Has(t Type) bool {
	return s&(1<<(t%maxTypes)) != 0
}

// Entity is anything the resolver can move or collide against.
type Entity interface {
	// Type returns the entity's category.
	Type() Type

	// BoundingBox returns the box in world space.
	BoundingBox() core.BBox

	// CollisionEnabled reports whether this entity collides with category t.
	CollisionEnabled(t Type) bool

	// FilterCollision may veto a specific candidate of an enabled category.
	FilterCollision(other Entity) bool

	// HandleCollision reacts to being blocked by, or hit by, other.
	HandleCollision(other Entity)

	// Translate moves the entity origin.
	Translate(dx, dy float64)
}

// mortal is implemented by entities that can be flagged for removal.
// Dead entities are never reported as collision candidates.
type mortal interface {
	Dead() bool
}

func isDead(e Entity) bool {
	m, ok := e.(mortal)
	return ok && m.Dead()
}

// Base carries the state common to all entities. Variants embed it and
// override Type and BoundingBox; the defaults panic.
type Base struct {
	X, Y    float64
	enabled TypeSet
}

// NewBase creates a base at the given origin with the given enabled types.
func NewBase(x, y float64, enabled ...Type) Base {
	b := Base{X: x, Y: y}
	b.EnableCollision(enabled...)
	return b
}

// Position returns the entity origin.
func (b *Base) Position() (float64, float64) {
	return b.X, b.Y
}

// Translate moves the origin by (dx, dy).
func (b *Base) Translate(dx, dy float64) {
	b.X += dx
	b.Y += dy
}

// EnableCollision adds categories this entity collides with.
func (b *Base) EnableCollision(types ...Type) {
	for _, t := range types {
		b.enabled.Add(t)
	}
}

// CollisionEnabled reports whether category t is enabled.
func (b *Base) CollisionEnabled(t Type) bool {
	return b.enabled.Has(t)
}

// FilterCollision accepts every candidate.
func (b *Base) FilterCollision(Entity) bool {
	return true
}

// HandleCollision ignores the collision.
func (b *Base) HandleCollision(Entity) {}

// Type must be overridden by the embedding variant.
func (b *Base) Type() Type {
	panic("physics: Type not implemented by entity variant")
}

// BoundingBox must be overridden by the embedding variant.
func (b *Base) BoundingBox() core.BBox {
	panic("physics: BoundingBox not implemented by entity variant")
}

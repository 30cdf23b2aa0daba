package tanks

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

// HumanController drives the player tank from input frames. Terminals only
// report key presses, so a direction stays held for a number of ticks after
// its last press.
type HumanController struct {
	tank      *Tank
	world     *World
	holdTicks int

	held [4]int // remaining hold ticks per orientation
	fire bool
}

// NewHumanController creates a controller for the player tank.
func NewHumanController(t *Tank, w *World, holdTicks int) *HumanController {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HumanController{tank: t, world: w, holdTicks: holdTicks}
}

// SetInput records the actions pressed this tick.
func (c *HumanController) SetInput(in core.InputFrame) {
	press := func(a core.Action, o, opposite sprite.Orientation) {
		if in.Has(a) {
			c.held[o] = c.holdTicks
			c.held[opposite] = 0
		}
	}
	press(core.ActionUp, sprite.Up, sprite.Down)
	press(core.ActionDown, sprite.Down, sprite.Up)
	press(core.ActionLeft, sprite.Left, sprite.Right)
	press(core.ActionRight, sprite.Right, sprite.Left)
	c.fire = in.Has(core.ActionFire)
}

// Update applies the held directions and the fire button.
func (c *HumanController) Update(dt float64) {
	step := c.world.Tuning.PlayerSpeed * dt
	var dx, dy float64
	if c.held[sprite.Left] > 0 {
		dx = -step
	}
	if c.held[sprite.Right] > 0 {
		dx = step
	}
	if c.held[sprite.Up] > 0 {
		dy = -step
	}
	if c.held[sprite.Down] > 0 {
		dy = step
	}
	for i := range c.held {
		if c.held[i] > 0 {
			c.held[i]--
		}
	}

	if dx != 0 || dy != 0 {
		c.tank.Move(dx, dy)
	}
	if c.fire {
		c.tank.Fire()
	} else {
		c.tank.Reload()
	}
	c.fire = false
}

// HandleBrickCollision is a no-op for the player.
func (c *HumanController) HandleBrickCollision(*Brick) {}

// planKind is what an AI tank is currently committed to.
type planKind uint8

const (
	planIdle planKind = iota
	planMove
	planFire
)

type plan struct {
	kind      planKind
	heading   sprite.Orientation
	remaining float64
}

// AIController drives an enemy tank with short timed plans: wander, close
// in on a nearby player, or hold and fire when lined up.
type AIController struct {
	tank    *Tank
	world   *World
	rng     *rand.Rand
	planned *plan
}

// NewAIController creates a controller for an enemy tank. The RNG is shared
// between all AI controllers of a world so a seed reproduces a whole match.
func NewAIController(t *Tank, w *World, rng *rand.Rand) *AIController {
	return &AIController{tank: t, world: w, rng: rng}
}

// Update executes the current plan or decides on a new one.
func (c *AIController) Update(dt float64) {
	if c.planned != nil {
		c.execute(dt)
		// The plan may have been dropped by a collision during execute
		if c.planned != nil {
			c.planned.remaining -= dt
			if c.planned.remaining <= 0 {
				c.planned = nil
			}
		}
		return
	}

	tun := c.world.Tuning
	if c.rng.Float64() < tun.EnemyFireChance {
		c.tank.Fire()
	}

	player := c.world.Player
	if player != nil && !player.Dead() && c.distanceTo(player) <= tun.AwarenessRadius && c.rng.Float64() < tun.ApproachChance {
		toward := c.headingToward(player)
		if c.inlineWith(player) && c.tank.Orientation() == toward && c.rng.Float64() < tun.AimChance {
			c.planned = &plan{kind: planFire, heading: toward, remaining: tun.FireTime}
		} else {
			c.planned = &plan{kind: planMove, heading: toward, remaining: tun.MoveTime}
		}
		return
	}

	c.wander()
}

func (c *AIController) execute(dt float64) {
	step := c.world.Tuning.EnemySpeed * dt
	switch c.planned.kind {
	case planFire:
		c.tank.Fire()
	case planMove:
		switch c.planned.heading {
		case sprite.Up:
			c.tank.Move(0, -step)
		case sprite.Down:
			c.tank.Move(0, step)
		case sprite.Left:
			c.tank.Move(-step, 0)
		case sprite.Right:
			c.tank.Move(step, 0)
		}
	}
}

func (c *AIController) wander() {
	tun := c.world.Tuning
	if c.rng.Float64() < tun.TurnChance {
		c.tank.SetOrientation(sprite.Orientation(c.rng.Intn(4)))
	}
	if c.rng.Float64() < tun.WanderChance {
		c.planned = &plan{kind: planMove, heading: c.tank.Orientation(), remaining: tun.MoveTime}
	} else {
		c.planned = &plan{kind: planIdle, remaining: tun.MoveTime}
	}
}

// HandleBrickCollision abandons a move plan that ran into a wall so the
// next tick picks a new one.
func (c *AIController) HandleBrickCollision(*Brick) {
	if c.planned != nil && c.planned.kind == planMove {
		c.planned = nil
	}
}

func (c *AIController) distanceTo(t *Tank) float64 {
	return math.Hypot(t.X-c.tank.X, t.Y-c.tank.Y)
}

// inlineWith reports whether the two tanks share a row or column band.
func (c *AIController) inlineWith(t *Tank) bool {
	return math.Abs(t.X-c.tank.X) < c.world.BrickSize || math.Abs(t.Y-c.tank.Y) < c.world.BrickSize
}

// headingToward returns the cardinal direction of the dominant axis.
func (c *AIController) headingToward(t *Tank) sprite.Orientation {
	dx := t.X - c.tank.X
	dy := t.Y - c.tank.Y
	if math.Abs(dx) >= math.Abs(dy) {
		if dx > 0 {
			return sprite.Right
		}
		return sprite.Left
	}
	if dy > 0 {
		return sprite.Down
	}
	return sprite.Up
}

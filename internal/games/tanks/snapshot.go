package tanks

import "math"

// fixedScale converts positions to integers for stable hashing.
const fixedScale = 1000

// Snapshot contains the deterministic scenario state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Score    int
	GameOver bool
	Won      bool

	PlayerX      int // fixed-point, x1000
	PlayerY      int
	PlayerHealth int
	PlayerFacing int

	EnemyCount  int
	BulletCount int
	BrickCount  int

	// Each enemy is 4 ints: X, Y, Health, Facing
	EnemyData []int
	// Each bullet is 3 ints: X, Y, Faction
	BulletData []int
}

func fixed(v float64) int {
	return int(math.Round(v * fixedScale))
}

// Snapshot returns the current scenario state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world

	enemyData := make([]int, 0, len(w.Enemies)*4)
	for _, e := range w.Enemies {
		enemyData = append(enemyData, fixed(e.X), fixed(e.Y), int(e.Health()), int(e.Orientation()))
	}

	bulletData := make([]int, 0, len(w.Bullets)*3)
	for _, b := range w.Bullets {
		bulletData = append(bulletData, fixed(b.X), fixed(b.Y), int(b.Faction()))
	}

	return Snapshot{
		Tick:     uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,

		PlayerX:      fixed(w.Player.X),
		PlayerY:      fixed(w.Player.Y),
		PlayerHealth: int(w.Player.Health()),
		PlayerFacing: int(w.Player.Orientation()),

		EnemyCount:  len(w.Enemies),
		BulletCount: len(w.Bullets),
		BrickCount:  len(w.Bricks),

		EnemyData:  enemyData,
		BulletData: bulletData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerHealth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerFacing) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BulletCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BrickCount)   //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.Won {
		h = h*31 + 2
	}

	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BulletData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}

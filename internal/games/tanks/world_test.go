package tanks

import (
	"math"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/physics"
	"github.com/vovakirdan/retro-arcade/internal/sprite"
)

const testDT = 1.0 / 60

// testWorld creates an empty world with default tuning and 4px cells.
func testWorld(rows, cols int) *World {
	cfg := config.DefaultTanksConfig()
	g := &Game{cfg: cfg, difficulty: config.NewDifficultyManager(cfg.Difficulty)}
	return NewWorld(rows, cols, 4, NewShapes(4), g.tuning())
}

// fireAt spawns a bullet heading down the column of target, starting above it.
func fireAt(w *World, target *Tank, faction Faction) *Bullet {
	b := NewBullet(w, target.X, target.Y-5, faction, sprite.Down)
	w.SpawnBullet(b)
	return b
}

// flyUntilDead updates a bullet until it dies or the step budget runs out.
func flyUntilDead(b *Bullet, steps int) {
	for i := 0; i < steps && !b.Dead(); i++ {
		b.Update(testDT)
	}
}

func TestBulletFactionImmunity(t *testing.T) {
	w := testWorld(3, 5)
	player := NewTank(w, w.Shapes.Player, 6, 6, FactionPlayer)
	w.Player = player

	own := fireAt(w, player, FactionPlayer)
	for i := 0; i < 14; i++ {
		own.Update(testDT)
	}
	if own.Dead() {
		t.Error("own bullet should pass through its tank")
	}
	if player.Health() != w.Tuning.TankHealth {
		t.Errorf("health = %f, own bullet must not damage", player.Health())
	}

	hostile := fireAt(w, player, FactionEnemy)
	flyUntilDead(hostile, 60)
	if !hostile.Dead() {
		t.Fatal("enemy bullet should die on impact")
	}
	if want := w.Tuning.TankHealth - w.Tuning.BulletDamage; player.Health() != want {
		t.Errorf("health = %f, expected %f", player.Health(), want)
	}
}

func TestTankHealthDepletionAndPrune(t *testing.T) {
	w := testWorld(3, 5)
	w.Tuning.TankHealth = 30
	enemy := NewTank(w, w.Shapes.Enemies[0], 6, 6, FactionEnemy)
	w.Enemies = append(w.Enemies, enemy)

	expected := []float64{15, 0}
	for i, want := range expected {
		b := fireAt(w, enemy, FactionPlayer)
		flyUntilDead(b, 60)
		if enemy.Health() != want {
			t.Fatalf("after hit %d health = %f, expected %f", i+1, enemy.Health(), want)
		}
	}
	if !enemy.Dead() {
		t.Fatal("tank with no health should be dead")
	}

	report := w.Prune()
	if report.Enemies != 1 || len(w.Enemies) != 0 {
		t.Errorf("prune removed %d enemies, %d left", report.Enemies, len(w.Enemies))
	}
	if report.Bullets != 2 || len(w.Bullets) != 0 {
		t.Errorf("prune removed %d bullets, %d left", report.Bullets, len(w.Bullets))
	}
}

func TestDeadTankIsNotACandidate(t *testing.T) {
	w := testWorld(3, 5)
	enemy := NewTank(w, w.Shapes.Enemies[0], 6, 6, FactionEnemy)
	enemy.health = 0
	w.Enemies = append(w.Enemies, enemy)

	b := fireAt(w, enemy, FactionPlayer)
	for i := 0; i < 14; i++ {
		b.Update(testDT)
	}
	if b.Dead() {
		t.Error("bullet should fly through a dead tank awaiting prune")
	}
}

func TestBrickResponses(t *testing.T) {
	tests := []struct {
		name      string
		kind      int
		breaks    bool
		remaining int
	}{
		{"breakable", 1, true, 0},
		{"solid", 2, false, 1},
		{"steel", 4, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := testWorld(3, 5)
			brick := NewBrick(w, tc.kind, 2, 1)
			if !w.AddBrick(brick) {
				t.Fatal("AddBrick failed")
			}

			b := NewBullet(w, 6, 1, FactionPlayer, sprite.Down)
			w.SpawnBullet(b)
			flyUntilDead(b, 60)
			if !b.Dead() {
				t.Fatal("bullet should die on a brick")
			}
			if brick.Dead() != tc.breaks {
				t.Errorf("brick dead = %v, expected %v", brick.Dead(), tc.breaks)
			}

			report := w.Prune()
			if len(w.Bricks) != tc.remaining {
				t.Errorf("bricks left = %d, expected %d", len(w.Bricks), tc.remaining)
			}
			if tc.breaks {
				if report.Bricks != 1 {
					t.Errorf("report.Bricks = %d, expected 1", report.Bricks)
				}
				if w.Grid().At(2, 1) != nil {
					t.Error("broken brick must leave the grid with the list")
				}
			} else if w.Grid().At(2, 1) != physics.Entity(brick) {
				t.Error("surviving brick must stay in the grid")
			}
		})
	}
}

func TestTankBlockedByBrick(t *testing.T) {
	w := testWorld(3, 5)
	w.AddBrick(NewBrick(w, 2, 1, 2))
	tank := NewTank(w, w.Shapes.Player, 6, 6, FactionPlayer)
	w.Player = tank

	for i := 0; i < 10; i++ {
		tank.Move(0.5, 0)
	}
	if tank.X > 7+1e-9 || tank.X < 6.9 {
		t.Errorf("tank x = %f, expected to stop at the brick face 7", tank.X)
	}
	if tank.Orientation() != sprite.Right {
		t.Errorf("orientation = %v, expected right", tank.Orientation())
	}

	// Sliding along the brick face is unobstructed
	tank.Move(0, 0.5)
	if tank.Y != 6.5 {
		t.Errorf("tank y = %f, expected slide to 6.5", tank.Y)
	}
}

func TestTankSlidesAlongBrickColumn(t *testing.T) {
	w := testWorld(8, 3)
	for row := 0; row < 8; row++ {
		w.AddBrick(NewBrick(w, 2, row, 0))
	}
	tank := NewTank(w, w.Shapes.Player, 4, 6, FactionPlayer)
	w.Player = tank

	if box := tank.BoundingBox(); box.Left != 3 {
		t.Fatalf("tank box left = %f, expected to touch the column at 3", box.Left)
	}

	tests := []struct {
		name  string
		dy    float64
		steps int
		want  float64
	}{
		{"down past every seam", 0.1, 150, 21},
		{"back up", -0.1, 100, 11},
	}
	for _, tc := range tests {
		for i := 0; i < tc.steps; i++ {
			tank.Move(0, tc.dy)
		}
		if math.Abs(tank.Y-tc.want) > 1e-6 {
			t.Errorf("%s: tank y = %f, expected %f", tc.name, tank.Y, tc.want)
		}
		if tank.X != 4 {
			t.Errorf("%s: tank x = %f, expected to stay at 4", tc.name, tank.X)
		}
	}
}

func TestTankOrientationFromMove(t *testing.T) {
	tests := []struct {
		dx, dy   float64
		expected sprite.Orientation
	}{
		{-0.1, 0.1, sprite.Left},
		{0.1, -0.1, sprite.Right},
		{0, -0.1, sprite.Up},
		{0, 0.1, sprite.Down},
	}

	for _, tc := range tests {
		w := testWorld(5, 5)
		tank := NewTank(w, w.Shapes.Player, 10, 10, FactionPlayer)
		tank.Move(tc.dx, tc.dy)
		if tank.Orientation() != tc.expected {
			t.Errorf("Move(%f, %f) orientation = %v, expected %v", tc.dx, tc.dy, tank.Orientation(), tc.expected)
		}
	}
}

func TestTankFireCooldown(t *testing.T) {
	w := testWorld(5, 5)
	tank := NewTank(w, w.Shapes.Player, 10, 10, FactionPlayer)

	if !tank.Fire() {
		t.Fatal("fresh tank should fire")
	}
	if tank.Fire() {
		t.Error("second shot should wait for the cooldown")
	}
	if len(w.Bullets) != 1 {
		t.Fatalf("bullets = %d, expected 1", len(w.Bullets))
	}
	if x, y := w.Bullets[0].X, w.Bullets[0].Y; x != 10 || y != 8.5 {
		t.Errorf("bullet spawned at (%f, %f), expected muzzle (10, 8.5)", x, y)
	}

	tank.Reload()
	if tank.sinceFire != w.Tuning.FireInterval/2 {
		t.Errorf("reload cooldown = %f, expected half interval", tank.sinceFire)
	}
	tank.Update(w.Tuning.FireInterval / 2)
	if !tank.Fire() {
		t.Error("tank should fire once the interval has elapsed")
	}
}

func TestWorldQuery(t *testing.T) {
	w := testWorld(3, 3)
	w.Player = NewTank(w, w.Shapes.Player, 2, 2, FactionPlayer)
	w.Enemies = append(w.Enemies, NewTank(w, w.Shapes.Enemies[1], 6, 6, FactionEnemy))
	w.AddBrick(NewBrick(w, 1, 2, 2))
	w.SpawnBullet(NewBullet(w, 1, 1, FactionEnemy, sprite.Up))

	everything := core.BBox{Up: -100, Down: 100, Left: -100, Right: 100}
	corner := core.BBox{Up: 0, Down: 1, Left: 0, Right: 1}

	tests := []struct {
		name     string
		typ      physics.Type
		box      core.BBox
		expected int
	}{
		{"tanks ignore the box", TypeTank, corner, 2},
		{"bricks in range", TypeBrick, everything, 1},
		{"bricks out of range", TypeBrick, corner, 0},
		{"bullets are never candidates", TypeBullet, everything, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := 0
			w.Query(tc.typ, tc.box, func(physics.Entity) { n++ })
			if n != tc.expected {
				t.Errorf("visited %d, expected %d", n, tc.expected)
			}
		})
	}
}

func TestWorldAddBrick(t *testing.T) {
	w := testWorld(2, 2)

	if !w.AddBrick(NewBrick(w, 1, 0, 0)) {
		t.Fatal("first brick should be placed")
	}
	if w.AddBrick(NewBrick(w, 2, 0, 0)) {
		t.Error("occupied cell should be rejected")
	}
	if w.AddBrick(NewBrick(w, 1, 5, 5)) {
		t.Error("cell outside the grid should be rejected")
	}
	if len(w.Bricks) != 1 {
		t.Errorf("bricks = %d, expected 1", len(w.Bricks))
	}
}

func TestInPlayfield(t *testing.T) {
	w := testWorld(10, 16)

	tests := []struct {
		x, y     float64
		expected bool
	}{
		{32, 20, true},
		{-2, 0, true},
		{-2.1, 0, false},
		{66, 42, true},
		{66.5, 0, false},
		{0, 42.5, false},
	}

	for _, tc := range tests {
		if got := w.InPlayfield(tc.x, tc.y); got != tc.expected {
			t.Errorf("InPlayfield(%f, %f) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel(config.DefaultTanksMap)
	if err != nil {
		t.Fatalf("default map should parse: %v", err)
	}
	if lvl.Rows != 10 || lvl.Cols != 16 {
		t.Errorf("size = %dx%d, expected 10x16", lvl.Rows, lvl.Cols)
	}
	if n := lvl.CountEnemies(); n != 5 {
		t.Errorf("enemies = %d, expected 5", n)
	}

	bad := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"ragged", []string{"191", "11"}},
		{"not a digit", []string{"19x"}},
		{"no player", []string{"111"}},
		{"two players", []string{"199"}},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseLevel(tc.rows); err == nil {
				t.Error("expected error")
			}
		})
	}
}

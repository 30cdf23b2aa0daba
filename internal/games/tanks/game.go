// Package tanks implements a top-down tank battle. The player's tank and a
// handful of AI tanks move through a brick maze, blocked by collisions and
// destroyed by each other's fire.
package tanks

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// hudRows is the number of text rows above the playfield.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// drawBBoxes outlines every entity's collision box when set via CLI
var drawBBoxes bool

// logger receives scenario events. Silent unless the CLI installs one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetDrawBBoxes toggles the collision box overlay.
func SetDrawBBoxes(on bool) {
	drawBBoxes = on
}

// SetLogger sets the event logger. A nil logger silences events.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements the Tanks scenario.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.TanksConfig
	difficulty *config.DifficultyManager

	shapes *Shapes
	world  *World
	human  *HumanController
	rng    *rand.Rand
	fb     *core.Framebuffer

	score        int
	tickCount    int
	enemiesTotal int
	gameOver     bool
	won          bool
	paused       bool
}

// New creates a new Tanks instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this scenario.
func (g *Game) ID() string {
	return "tanks"
}

// Title returns the display name for this scenario.
func (g *Game) Title() string {
	return "Tanks"
}

// Reset loads configuration and builds a fresh world from the level map.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadTanks(configPath)
	if err != nil {
		logger.Warn("tanks config not loaded, using defaults", "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyTanksPreset(&cfg, difficultyPreset)
	}
	if cfg.World.BrickSize <= 0 {
		cfg.World.BrickSize = config.DefaultTanksConfig().World.BrickSize
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	level, err := ParseLevel(cfg.World.Map)
	if err != nil {
		logger.Error("invalid tanks level, using built-in map", "err", err)
		level, _ = ParseLevel(config.DefaultTanksMap)
	}

	// Shapes only depend on the brick size
	if g.shapes == nil || g.world == nil || g.world.BrickSize != cfg.World.BrickSize {
		g.shapes = NewShapes(cfg.World.BrickSize)
	}

	g.score = 0
	g.tickCount = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.world = NewWorld(level.Rows, level.Cols, cfg.World.BrickSize, g.shapes, g.tuning())
	g.populate(level)
	g.fb = core.NewFramebuffer(int(g.world.Width()), int(g.world.Height()))
	g.enemiesTotal = level.CountEnemies()

	logger.Debug("tanks reset", "enemies", g.enemiesTotal, "bricks", len(g.world.Bricks), "seed", runtime.Seed)
}

// tuning derives world parameters from the config at the current difficulty.
func (g *Game) tuning() Tuning {
	c := g.cfg
	return Tuning{
		PlayerSpeed:     c.Player.MoveSpeed,
		EnemySpeed:      g.difficulty.Speed(c.Enemy.MoveSpeed, g.score, g.tickCount),
		EnemyFireChance: g.difficulty.FireChance(c.Enemy.FireChance, g.score, g.tickCount),
		AwarenessRadius: c.Enemy.AwarenessRadius,
		ApproachChance:  c.Enemy.ApproachChance,
		AimChance:       c.Enemy.AimChance,
		TurnChance:      c.Enemy.TurnChance,
		WanderChance:    c.Enemy.WanderChance,
		FireTime:        c.Enemy.FireTime,
		MoveTime:        c.Enemy.MoveTime,
		TankHealth:      c.Tank.Health,
		FireInterval:    c.Tank.FireInterval,
		BulletSpeed:     c.Tank.BulletSpeed,
		BulletDamage:    c.Bullet.Damage,
	}
}

// populate places bricks, enemies and the player from the level map.
func (g *Game) populate(level *Level) {
	w := g.world
	half := w.BrickSize / 2
	for i, row := range level.Cells {
		for j, code := range row {
			x := float64(j)*w.BrickSize + half
			y := float64(i)*w.BrickSize + half
			switch {
			case code >= CellBrickFirst && code <= CellBrickLast:
				w.AddBrick(NewBrick(w, code, i, j))
			case code >= CellEnemyFirst && code <= CellEnemyLast:
				enemy := NewTank(w, g.shapes.Enemies[code-CellEnemyFirst], x, y, FactionEnemy)
				enemy.SetController(NewAIController(enemy, w, g.rng))
				w.Enemies = append(w.Enemies, enemy)
			case code == CellPlayer:
				w.Player = NewTank(w, g.shapes.Player, x, y, FactionPlayer)
				g.human = NewHumanController(w.Player, w, g.cfg.Player.HoldTicks)
				w.Player.SetController(g.human)
			}
		}
	}
}

// Step advances the battle by one tick: player input, enemy AI, bullets,
// then removal of everything that died this tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.world.Tuning = g.tuning()
	dt := g.runtime.DT()

	g.human.SetInput(in)
	g.world.Player.Update(dt)
	for _, e := range g.world.Enemies {
		if !e.Dead() {
			e.Update(dt)
		}
	}
	for _, b := range g.world.Bullets {
		if !b.Dead() {
			b.Update(dt)
		}
	}

	report := g.world.Prune()
	g.score += report.Enemies * g.cfg.Enemy.Score
	if report.Enemies > 0 {
		logger.Info("enemy destroyed", "remaining", len(g.world.Enemies), "score", g.score)
	}
	if report.Bricks > 0 {
		logger.Debug("brick broken", "count", report.Bricks, "left", len(g.world.Bricks))
	}

	switch {
	case report.PlayerDown:
		g.gameOver = true
		logger.Info("player destroyed", "score", g.score, "tick", g.tickCount)
	case g.enemiesTotal > 0 && len(g.world.Enemies) == 0:
		g.gameOver = true
		g.won = true
		logger.Info("all enemies destroyed", "score", g.score, "tick", g.tickCount)
	}

	return core.StepResult{State: g.State()}
}

// Framebuffer draws the world into the scenario's pixel buffer and returns it.
func (g *Game) Framebuffer() *core.Framebuffer {
	fb := g.fb
	fb.Clear(core.ColorBlack)
	w := g.world

	if !w.Player.Dead() {
		w.Player.Draw(fb)
	}
	for _, e := range w.Enemies {
		e.Draw(fb)
	}
	for _, b := range w.Bricks {
		b.Draw(fb)
	}
	for _, b := range w.Bullets {
		b.Draw(fb)
	}

	// Health bars go on top of everything else
	if !w.Player.Dead() {
		w.Player.DrawHealthBar(fb)
	}
	for _, e := range w.Enemies {
		e.DrawHealthBar(fb)
	}

	if drawBBoxes {
		g.drawCollisionBoxes(fb)
	}
	return fb
}

// drawCollisionBoxes outlines bricks in dark gray, tanks in light magenta
// and bullets in light cyan.
func (g *Game) drawCollisionBoxes(fb *core.Framebuffer) {
	w := g.world
	for _, b := range w.Bricks {
		fb.DrawBBox(b.BoundingBox(), core.ColorDarkGray)
	}
	if !w.Player.Dead() {
		fb.DrawBBox(w.Player.BoundingBox(), core.ColorLightMagenta)
	}
	for _, e := range w.Enemies {
		fb.DrawBBox(e.BoundingBox(), core.ColorLightMagenta)
	}
	for _, b := range w.Bullets {
		fb.DrawBBox(b.BoundingBox(), core.ColorLightCyan)
	}
}

// Render draws the HUD and the playfield blitted as half-block cells.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fb := g.Framebuffer()
	x := max((dst.Width()-fb.Width())/2, 0)
	dst.Blit(fb, x, hudRows)

	hp := int(g.world.Player.Health())
	hud := fmt.Sprintf(" TANKS  Score: %d  HP: %d  Enemies: %d/%d ", g.score, max(hp, 0), len(g.world.Enemies), g.enemiesTotal)
	dst.DrawTextColored(x, 0, hud, core.ColorYellow)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		title := "GAME OVER"
		if g.won {
			title = "VICTORY"
		}
		g.drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Labels carries the HUD and the pause and game over banners.
func (g *Game) Labels() []core.Label {
	hp := max(int(g.world.Player.Health()), 0)
	labels := []core.Label{{
		X:     1,
		Y:     1,
		Text:  fmt.Sprintf("HP %d  Enemies %d/%d", hp, len(g.world.Enemies), g.enemiesTotal),
		Color: core.ColorYellow,
	}}

	cx, cy := g.fb.Width()/2, g.fb.Height()/2
	banner := func(title, subtitle string) {
		labels = append(labels,
			core.Label{X: cx, Y: cy - 3, Text: title, Color: core.ColorWhite, Centered: true},
			core.Label{X: cx, Y: cy + 1, Text: subtitle, Color: core.ColorLightGray, Centered: true},
		)
	}
	switch {
	case g.gameOver && g.won:
		banner("VICTORY", "R restart, Esc exit")
	case g.gameOver:
		banner("GAME OVER", "R restart, Esc exit")
	case g.paused:
		banner("PAUSED", "P to resume")
	}
	return labels
}

// State returns the current scenario state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World exposes the entity world.
func (g *Game) World() *World {
	return g.world
}

// Won reports whether the player destroyed every enemy.
func (g *Game) Won() bool {
	return g.won
}

// Register the scenario on package initialization
func init() {
	registry.Register("tanks", func() registry.Game {
		return New()
	})
}

// Package config provides YAML-based scenario configuration loading and
// difficulty management for the arcade platform.
package config

// TanksConfig contains all configuration for the Tanks scenario.
type TanksConfig struct {
	World      TanksWorld       `yaml:"world"`
	Player     TanksPlayer      `yaml:"player"`
	Enemy      TanksEnemy       `yaml:"enemy"`
	Tank       TanksTank        `yaml:"tank"`
	Bullet     TanksBullet      `yaml:"bullet"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TanksWorld defines the playfield layout.
type TanksWorld struct {
	BrickSize float64 `yaml:"brick_size"` // Edge of a map cell in pixels
	// Map rows use one digit per cell: 0 empty, 1-4 brick type,
	// 5-8 enemy type, 9 player start.
	Map []string `yaml:"map"`
}

// TanksPlayer defines the human-controlled tank.
type TanksPlayer struct {
	MoveSpeed float64 `yaml:"move_speed"` // Pixels per second
	HoldTicks int     `yaml:"hold_ticks"` // Ticks a direction key stays held in terminals
}

// TanksEnemy defines AI behaviour parameters.
type TanksEnemy struct {
	MoveSpeed       float64 `yaml:"move_speed"`       // Pixels per second
	FireChance      float64 `yaml:"fire_chance"`      // Chance per decision to fire at random
	AwarenessRadius float64 `yaml:"awareness_radius"` // Distance at which the player is noticed
	ApproachChance  float64 `yaml:"approach_chance"`  // Chance to react when the player is near
	AimChance       float64 `yaml:"aim_chance"`       // Chance to open fire when lined up
	TurnChance      float64 `yaml:"turn_chance"`      // Chance to pick a new heading while wandering
	WanderChance    float64 `yaml:"wander_chance"`    // Chance to move rather than idle while wandering
	FireTime        float64 `yaml:"fire_time"`        // Seconds a fire plan lasts
	MoveTime        float64 `yaml:"move_time"`        // Seconds a move plan lasts
	Score           int     `yaml:"score"`            // Points per destroyed enemy
}

// TanksTank defines parameters shared by every tank.
type TanksTank struct {
	Health       float64 `yaml:"health"`
	FireInterval float64 `yaml:"fire_interval"` // Seconds between shots
	BulletSpeed  float64 `yaml:"bullet_speed"`  // Pixels per second
}

// TanksBullet defines projectile parameters.
type TanksBullet struct {
	Damage float64 `yaml:"damage"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"`  // Multiplier added to AI speed at max difficulty
	FireChanceBonus float64 `yaml:"fire_chance_bonus"` // Added to AI fire chance at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown names yield "".
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

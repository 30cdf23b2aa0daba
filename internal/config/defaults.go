package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksMap is the built-in level layout.
var DefaultTanksMap = []string{
	"1111111111111111",
	"1000000700000001",
	"1010000000001101",
	"1000222222200001",
	"1050100000100501",
	"1000100900101111",
	"1000110001100001",
	"1010000000001001",
	"1800000000001061",
	"1111111111111111",
}

// DefaultTanksConfig returns the default Tanks configuration.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		World: TanksWorld{
			BrickSize: 4,
			Map:       append([]string(nil), DefaultTanksMap...),
		},
		Player: TanksPlayer{
			MoveSpeed: 6,
			HoldTicks: 8,
		},
		Enemy: TanksEnemy{
			MoveSpeed:       2,
			FireChance:      0.05,
			AwarenessRadius: 20,
			ApproachChance:  0.5,
			AimChance:       0.8,
			TurnChance:      0.5,
			WanderChance:    0.8,
			FireTime:        3.0,
			MoveTime:        1.0,
			Score:           100,
		},
		Tank: TanksTank{
			Health:       100,
			FireInterval: 0.6,
			BulletSpeed:  30,
		},
		Bullet: TanksBullet{
			Damage: 15,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				FireChanceBonus: 0.05,
			},
		},
	}
}

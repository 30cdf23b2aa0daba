package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg TanksConfig
	if err := yaml.Unmarshal(defaultTanksYAML, &cfg); err != nil {
		t.Fatalf("embedded tanks.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultTanksConfig()) {
		t.Errorf("embedded defaults drifted from DefaultTanksConfig:\n got %+v\nwant %+v", cfg, DefaultTanksConfig())
	}
}

func TestLoadTanksCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tanks.yaml")
	data := []byte("player:\n  move_speed: 12\nbullet:\n  damage: 40\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadTanks(path)
	if err != nil {
		t.Fatalf("LoadTanks failed: %v", err)
	}
	if cfg.Player.MoveSpeed != 12 {
		t.Errorf("move_speed = %f, expected 12", cfg.Player.MoveSpeed)
	}
	if cfg.Bullet.Damage != 40 {
		t.Errorf("damage = %f, expected 40", cfg.Bullet.Damage)
	}
	// Unset keys keep their defaults
	if cfg.Tank.Health != 100 {
		t.Errorf("health = %f, expected default 100", cfg.Tank.Health)
	}
	if len(cfg.World.Map) != len(DefaultTanksMap) {
		t.Errorf("map rows = %d, expected default %d", len(cfg.World.Map), len(DefaultTanksMap))
	}
}

func TestLoadTanksErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"malformed yaml", bad},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadTanks(tc.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if cfg.Tank.Health != DefaultTanksConfig().Tank.Health {
				t.Error("failed load should still return usable defaults")
			}
		})
	}
}

func TestApplyTanksPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		enabled    bool
		initial    float64
		fireChance float64
	}{
		{DifficultyEasy, true, 0.0, 0.02},
		{DifficultyNormal, true, 0.3, 0.05},
		{DifficultyHard, true, 0.7, 0.08},
		{DifficultyFixed, false, 0.0, 0.05},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTanksConfig()
			ApplyTanksPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Enemy.FireChance != tc.fireChance {
				t.Errorf("fire chance = %f, expected %f", cfg.Enemy.FireChance, tc.fireChance)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultTanksConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %f, expected 0", got)
	}
	if got := dm.Level(250, 0); got != 0.5 {
		t.Errorf("Level at half score = %f, expected 0.5", got)
	}
	if got := dm.Level(10000, 0); got != 1 {
		t.Errorf("Level past max = %f, expected 1", got)
	}
	if got := dm.Speed(2, 500, 0); got != 4 {
		t.Errorf("Speed at max = %f, expected 4", got)
	}
	if got := dm.FireChance(0.05, 500, 0); got != 0.1 {
		t.Errorf("FireChance at max = %f, expected 0.1", got)
	}
	if got := dm.FireChance(0.99, 500, 0); got != 1 {
		t.Errorf("FireChance should clamp to 1, got %f", got)
	}

	dm.SetEnabled(false)
	dm.SetInitialLevel(0.4)
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(500, 0); got != 0.4 {
		t.Errorf("disabled Level = %f, expected initial 0.4", got)
	}
}

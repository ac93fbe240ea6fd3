package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decodeShooter(GetDefaultYAML())
	if err != nil {
		t.Fatalf("decodeShooter(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded defaults differ from DefaultShooterConfig():\n%+v\n%+v", cfg, DefaultShooterConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadShooterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.yaml")
	data := "player:\n  hit_points: 3\nweapons:\n  primary: straight\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error: %v", err)
	}
	if cfg.Player.HitPoints != 3 {
		t.Errorf("HitPoints = %d, expected 3", cfg.Player.HitPoints)
	}
	if cfg.Weapons.Primary != PrimaryStraight {
		t.Errorf("Primary = %q, expected %q", cfg.Weapons.Primary, PrimaryStraight)
	}
	// Keys absent from the file keep their defaults
	if cfg.Player.Speed != 10 {
		t.Errorf("Speed = %v, expected default 10", cfg.Player.Speed)
	}
	if len(cfg.Rounds.Thresholds) != 5 {
		t.Errorf("Thresholds = %v, expected defaults", cfg.Rounds.Thresholds)
	}
}

func TestLoadShooterErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "player: [", "failed to parse"},
		{"bad primary", "weapons:\n  primary: laser\n", "invalid config"},
		{"descending thresholds", "rounds:\n  thresholds: [0, 50, 40]\n", "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadShooter(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("LoadShooter() error = %v, expected to contain %q", err, tc.want)
			}
		})
	}

	if _, err := LoadShooter(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadShooter() with missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero playfield", func(c *ShooterConfig) { c.Playfield.Width = 0 }},
		{"zero hit points", func(c *ShooterConfig) { c.Player.HitPoints = 0 }},
		{"empty rounds", func(c *ShooterConfig) { c.Rounds.Thresholds = nil }},
		{"no tiers", func(c *ShooterConfig) { c.Rounds.Tiers = nil }},
		{"unknown item", func(c *ShooterConfig) { c.Rounds.Items = []ItemDrop{{Round: 1, Effect: "nuke"}} }},
		{"item round overflow", func(c *ShooterConfig) { c.Rounds.Items = []ItemDrop{{Round: 9, Effect: EffectSlash}} }},
		{"two boss phases", func(c *ShooterConfig) { c.Boss.DropIntervals = []int{30, 15} }},
		{"bad interval range", func(c *ShooterConfig) { c.Enemy.MaxInterval = 10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		hp     int
		fixed  bool
	}{
		{DifficultyEasy, 5, false},
		{DifficultyNormal, 1, false},
		{DifficultyHard, 1, false},
		{DifficultyFixed, 1, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultShooterConfig()
			ApplyShooterPreset(&cfg, tc.preset)
			if cfg.Player.HitPoints != tc.hp {
				t.Errorf("HitPoints = %d, expected %d", cfg.Player.HitPoints, tc.hp)
			}
			if cfg.Rounds.FixedTier != tc.fixed {
				t.Errorf("FixedTier = %v, expected %v", cfg.Rounds.FixedTier, tc.fixed)
			}
		})
	}
}

func TestPresetKeepsConfiguredFixedTier(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shooter.yaml")
	if err := os.WriteFile(path, []byte("rounds:\n  fixed_tier: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter() error: %v", err)
	}
	preset, err := ParsePreset("")
	if err != nil {
		t.Fatalf("ParsePreset() error: %v", err)
	}
	ApplyShooterPreset(&cfg, preset)
	if !cfg.Rounds.FixedTier {
		t.Error("FixedTier = false after the normal preset, expected the file's true to survive")
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v, expected normal", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

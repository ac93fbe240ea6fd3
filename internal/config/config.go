// Package config provides YAML-based shooter configuration loading and
// difficulty management.
package config

// ShooterConfig contains all tunable parameters of the shooter simulation.
type ShooterConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Boss      BossConfig      `yaml:"boss"`
	Bomb      BombConfig      `yaml:"bomb"`
	Weapons   WeaponsConfig   `yaml:"weapons"`
	Abilities AbilitiesConfig `yaml:"abilities"`
	Rounds    RoundsConfig    `yaml:"rounds"`
	Score     ScoreConfig     `yaml:"score"`
	Timing    TimingConfig    `yaml:"timing"`
	Features  FeaturesConfig  `yaml:"features"`
}

// PlayfieldConfig defines the logical playfield extent in units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's body, movement and health.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartOffset float64 `yaml:"start_offset"` // Distance of the start centre from the bottom edge
	Speed       float64 `yaml:"speed"`
	BoostSpeed  float64 `yaml:"boost_speed"`
	HitPoints   int     `yaml:"hit_points"` // 1 = single-hit loss
	GraceTicks  int     `yaml:"grace_ticks"`
}

// EnemyConfig defines regular enemy parameters.
// Speed and spawn cadence come from the round tier.
type EnemyConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MinBound       float64 `yaml:"min_bound"`
	MaxBound       float64 `yaml:"max_bound"`
	MinInterval    int     `yaml:"min_interval"`
	MaxInterval    int     `yaml:"max_interval"`
	ExplosionTicks int     `yaml:"explosion_ticks"`
}

// BossConfig defines the boss encounter.
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HP            int     `yaml:"hp"`
	DescentSpeed  float64 `yaml:"descent_speed"`
	StopAltitude  float64 `yaml:"stop_altitude"`
	DropIntervals []int   `yaml:"drop_intervals"` // One per phase
	BoneInterval  int     `yaml:"bone_interval"`
	Accel         float64 `yaml:"accel"`
	EdgeSpeed     float64 `yaml:"edge_speed"`
	SpeedCap      float64 `yaml:"speed_cap"`
	PatrolBand    float64 `yaml:"patrol_band"` // Fraction of the playfield height
}

// BombConfig defines hostile projectile parameters.
type BombConfig struct {
	MaxTicks       int     `yaml:"max_ticks"`
	MinRadius      int     `yaml:"min_radius"`
	MaxRadius      int     `yaml:"max_radius"`
	BeamSize       float64 `yaml:"beam_size"`
	BoneSize       float64 `yaml:"bone_size"`
	ExplosionTicks int     `yaml:"explosion_ticks"`
}

// WeaponsConfig defines the player's arsenal.
type WeaponsConfig struct {
	Primary         string          `yaml:"primary"` // off, beam, straight, penetrating
	PrimaryCooldown int             `yaml:"primary_cooldown"`
	BeamSpeed       float64         `yaml:"beam_speed"`
	BeamSize        float64         `yaml:"beam_size"`
	ShotSpeed       float64         `yaml:"shot_speed"`
	ShotOffset      float64         `yaml:"shot_offset"`
	ShotWidth       float64         `yaml:"shot_width"`
	ShotHeight      float64         `yaml:"shot_height"`
	BossHitInterval int             `yaml:"boss_hit_interval"`
	CooldownFactor  float64         `yaml:"cooldown_factor"`
	Satellite       SatelliteConfig `yaml:"satellite"`
	Slash           SlashConfig     `yaml:"slash"`
	Boomerang       BoomerangConfig `yaml:"boomerang"`
}

// SatelliteConfig defines orbiting satellites and their sub-shots.
type SatelliteConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Shooter         bool    `yaml:"shooter"`
	Count           int     `yaml:"count"`
	Radius          float64 `yaml:"radius"`
	AngularSpeed    float64 `yaml:"angular_speed"`
	Size            float64 `yaml:"size"`
	Cooldown        int     `yaml:"cooldown"`
	SubShotCooldown int     `yaml:"sub_shot_cooldown"`
	SubShotSpeed    float64 `yaml:"sub_shot_speed"`
}

// SlashConfig defines the melee slash.
type SlashConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Cooldown int     `yaml:"cooldown"`
	Ticks    int     `yaml:"ticks"`
	Size     float64 `yaml:"size"`
}

// BoomerangConfig defines the returning boomerang.
type BoomerangConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Cooldown int     `yaml:"cooldown"`
	Speed    float64 `yaml:"speed"`
	Range    float64 `yaml:"range"`
	MaxTicks int     `yaml:"max_ticks"`
	Spin     float64 `yaml:"spin"`
	Size     float64 `yaml:"size"`
}

// AbilitiesConfig defines the score-priced abilities.
type AbilitiesConfig struct {
	EMPCost      int     `yaml:"emp_cost"`
	ShieldCost   int     `yaml:"shield_cost"`
	ShieldTicks  int     `yaml:"shield_ticks"`
	ShieldWidth  float64 `yaml:"shield_width"`
	GravityCost  int     `yaml:"gravity_cost"` // Score must exceed this
	GravityTicks int     `yaml:"gravity_ticks"`
	HyperCost    int     `yaml:"hyper_cost"`
	HyperTicks   int     `yaml:"hyper_ticks"`
}

// RoundsConfig defines the round progression table.
type RoundsConfig struct {
	Thresholds []int        `yaml:"thresholds"`
	TitleTicks int          `yaml:"title_ticks"`
	SlideTicks int          `yaml:"slide_ticks"`
	Tiers      []TierConfig `yaml:"tiers"`
	Items      []ItemDrop   `yaml:"items"`
	FixedTier  bool         `yaml:"fixed_tier"` // Stay on the first tier in every round
}

// TierConfig is one discrete difficulty tier.
type TierConfig struct {
	EnemySpeed    float64 `yaml:"enemy_speed"`
	SpawnEvery    int     `yaml:"spawn_every"`
	BombSpeed     float64 `yaml:"bomb_speed"`
	IntervalScale float64 `yaml:"interval_scale"`
}

// ItemDrop places an item when a round begins.
type ItemDrop struct {
	Round  int     `yaml:"round"`
	Effect string  `yaml:"effect"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// ScoreConfig defines the score bank and kill rewards.
type ScoreConfig struct {
	Start     int `yaml:"start"`
	EnemyKill int `yaml:"enemy_kill"`
	BombKill  int `yaml:"bomb_kill"`
}

// TimingConfig defines the foreground freezes in milliseconds.
type TimingConfig struct {
	EMPFreezeMs     int `yaml:"emp_freeze_ms"`
	DefeatFreezeMs  int `yaml:"defeat_freeze_ms"`
	VictoryFreezeMs int `yaml:"victory_freeze_ms"`
}

// FeaturesConfig switches optional subsystems on and off.
type FeaturesConfig struct {
	Rounds       bool `yaml:"rounds"`
	Items        bool `yaml:"items"`
	Boss         bool `yaml:"boss"` // Final round spawns the boss
	ManualSummon bool `yaml:"manual_summon"`
	Abilities    bool `yaml:"abilities"`
}

// Primary fire modes.
const (
	PrimaryOff         = "off"
	PrimaryBeam        = "beam"
	PrimaryStraight    = "straight"
	PrimaryPenetrating = "penetrating"
)

// Item effects.
const (
	EffectStraight         = "straight"
	EffectPenetrating      = "penetrating"
	EffectSatellite        = "satellite"
	EffectSatelliteShooter = "satellite-shooter"
	EffectSlash            = "slash"
	EffectBoomerang        = "boomerang"
	EffectCooldown         = "cooldown"
)

// IsPrimaryMode reports whether s names a primary fire mode.
func IsPrimaryMode(s string) bool {
	switch s {
	case PrimaryOff, PrimaryBeam, PrimaryStraight, PrimaryPenetrating:
		return true
	}
	return false
}

// IsItemEffect reports whether s names an item effect.
func IsItemEffect(s string) bool {
	switch s {
	case EffectStraight, EffectPenetrating, EffectSatellite, EffectSatelliteShooter,
		EffectSlash, EffectBoomerang, EffectCooldown:
		return true
	}
	return false
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset pins the difficulty tier.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

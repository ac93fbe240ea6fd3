package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in configuration.
// It matches defaults/shooter.yaml and is used when the embedded file
// cannot be decoded.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Playfield: PlayfieldConfig{Width: 480, Height: 720},
		Player: PlayerConfig{
			Width:       48,
			Height:      48,
			StartOffset: 100,
			Speed:       10,
			BoostSpeed:  20,
			HitPoints:   1,
			GraceTicks:  60,
		},
		Enemy: EnemyConfig{
			Width:          64,
			Height:         48,
			MinBound:       50,
			MaxBound:       360,
			MinInterval:    50,
			MaxInterval:    300,
			ExplosionTicks: 100,
		},
		Boss: BossConfig{
			Width:         160,
			Height:        128,
			HP:            10,
			DescentSpeed:  6,
			StopAltitude:  100,
			DropIntervals: []int{30, 15, 1},
			BoneInterval:  50,
			Accel:         5,
			EdgeSpeed:     10,
			SpeedCap:      30,
			PatrolBand:    0.25,
		},
		Bomb: BombConfig{
			MaxTicks:       300,
			MinRadius:      10,
			MaxRadius:      50,
			BeamSize:       24,
			BoneSize:       28,
			ExplosionTicks: 50,
		},
		Weapons: WeaponsConfig{
			Primary:         PrimaryBeam,
			PrimaryCooldown: 8,
			BeamSpeed:       10,
			BeamSize:        20,
			ShotSpeed:       12,
			ShotOffset:      16,
			ShotWidth:       8,
			ShotHeight:      24,
			BossHitInterval: 10,
			CooldownFactor:  0.75,
			Satellite: SatelliteConfig{
				Count:           3,
				Radius:          80,
				AngularSpeed:    0.08,
				Size:            20,
				Cooldown:        100,
				SubShotCooldown: 40,
				SubShotSpeed:    5,
			},
			Slash: SlashConfig{
				Cooldown: 30,
				Ticks:    12,
				Size:     60,
			},
			Boomerang: BoomerangConfig{
				Cooldown: 120,
				Speed:    8,
				Range:    200,
				MaxTicks: 600,
				Spin:     0.3,
				Size:     28,
			},
		},
		Abilities: AbilitiesConfig{
			EMPCost:      20,
			ShieldCost:   50,
			ShieldTicks:  400,
			ShieldWidth:  20,
			GravityCost:  200,
			GravityTicks: 400,
			HyperCost:    100,
			HyperTicks:   500,
		},
		Rounds: RoundsConfig{
			Thresholds: []int{0, 50, 70, 80, 100},
			TitleTicks: 100,
			SlideTicks: 50,
			Tiers: []TierConfig{
				{EnemySpeed: 6, SpawnEvery: 200, BombSpeed: 6, IntervalScale: 1.0},
				{EnemySpeed: 7, SpawnEvery: 150, BombSpeed: 7, IntervalScale: 0.85},
				{EnemySpeed: 8, SpawnEvery: 110, BombSpeed: 8, IntervalScale: 0.7},
				{EnemySpeed: 9, SpawnEvery: 80, BombSpeed: 9, IntervalScale: 0.55},
			},
			Items: []ItemDrop{
				{Round: 1, Effect: EffectStraight, X: 240, Y: 400},
				{Round: 2, Effect: EffectSatellite, X: 240, Y: 400},
				{Round: 3, Effect: EffectPenetrating, X: 160, Y: 400},
				{Round: 3, Effect: EffectSlash, X: 320, Y: 400},
				{Round: 4, Effect: EffectBoomerang, X: 120, Y: 400},
				{Round: 4, Effect: EffectCooldown, X: 240, Y: 400},
				{Round: 4, Effect: EffectSatelliteShooter, X: 360, Y: 400},
			},
		},
		Score: ScoreConfig{Start: 0, EnemyKill: 10, BombKill: 1},
		Timing: TimingConfig{
			EMPFreezeMs:     60,
			DefeatFreezeMs:  2000,
			VictoryFreezeMs: 5000,
		},
		Features: FeaturesConfig{
			Rounds:    true,
			Items:     true,
			Boss:      true,
			Abilities: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}

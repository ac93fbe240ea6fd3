package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/registry"
)

// Variant is one playable flavour of the shooter. Apply switches the
// features it needs on top of the loaded configuration.
type Variant struct {
	ID          string
	Title       string
	Description string
	Apply       func(cfg *config.ShooterConfig)
}

// classicBank is the starting score of the score-banked variants.
const classicBank = 10000

func applyBasic(cfg *config.ShooterConfig) {
	cfg.Features = config.FeaturesConfig{}
	cfg.Weapons.Primary = config.PrimaryBeam
	cfg.Weapons.Satellite.Enabled = false
	cfg.Weapons.Satellite.Shooter = false
	cfg.Weapons.Slash.Enabled = false
	cfg.Weapons.Boomerang.Enabled = false
	cfg.Player.HitPoints = 1
	cfg.Score.Start = 0
}

func applyClassic(cfg *config.ShooterConfig) {
	applyBasic(cfg)
	cfg.Features.Abilities = true
	cfg.Features.ManualSummon = true
	cfg.Score.Start = classicBank
}

func applyArsenal(cfg *config.ShooterConfig) {
	applyClassic(cfg)
	cfg.Weapons.Primary = config.PrimaryStraight
	cfg.Weapons.Satellite.Enabled = true
	cfg.Weapons.Satellite.Shooter = true
	cfg.Weapons.Slash.Enabled = true
	cfg.Weapons.Boomerang.Enabled = true
}

func applyRounds(cfg *config.ShooterConfig) {
	applyBasic(cfg)
	cfg.Features.Rounds = true
	cfg.Weapons.Primary = config.PrimaryStraight
	cfg.Player.HitPoints = 3
}

func applyItems(cfg *config.ShooterConfig) {
	applyRounds(cfg)
	cfg.Features.Items = true
}

func applyFull(cfg *config.ShooterConfig) {
	applyItems(cfg)
	cfg.Features.Boss = true
	cfg.Features.Abilities = true
}

// Variants lists every playable variant in menu order.
var Variants = []Variant{
	{ID: "basic", Title: "Skyraid Basic", Description: "Beam cannon against endless raiders, one hit ends it", Apply: applyBasic},
	{ID: "classic", Title: "Skyraid Classic", Description: "Score bank, abilities and a boss on demand", Apply: applyClassic},
	{ID: "arsenal", Title: "Skyraid Arsenal", Description: "Classic with every weapon online", Apply: applyArsenal},
	{ID: "rounds", Title: "Skyraid Rounds", Description: "Escalating rounds with three hit points", Apply: applyRounds},
	{ID: "items", Title: "Skyraid Items", Description: "Rounds that drop weapon upgrades", Apply: applyItems},
	{ID: "full", Title: "Skyraid", Description: "Rounds, upgrades, abilities and the final boss", Apply: applyFull},
}

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

package config

// DifficultyManager maps round indices and scores onto the discrete tier
// table. The round index is always clamped to the table.
type DifficultyManager struct {
	cfg   RoundsConfig
	fixed bool
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg RoundsConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:   cfg,
		fixed: cfg.FixedTier,
	}
}

// RoundCount returns the number of rounds in the table.
func (d *DifficultyManager) RoundCount() int {
	return len(d.cfg.Thresholds)
}

// LastRound returns the index of the final round.
func (d *DifficultyManager) LastRound() int {
	return d.RoundCount() - 1
}

// ClampRound restricts a round index to the table.
func (d *DifficultyManager) ClampRound(round int) int {
	if round < 0 {
		return 0
	}
	if round > d.LastRound() {
		return d.LastRound()
	}
	return round
}

// ShouldAdvance reports whether score qualifies the current round for advancing.
// At most one round is gained per call.
func (d *DifficultyManager) ShouldAdvance(round, score int) bool {
	next := d.ClampRound(round) + 1
	if next >= d.RoundCount() {
		return false
	}
	return score >= d.cfg.Thresholds[next]
}

// TierIndex returns the tier used by a round: min(round, tiers-1).
func (d *DifficultyManager) TierIndex(round int) int {
	if d.fixed || len(d.cfg.Tiers) == 0 {
		return 0
	}
	idx := d.ClampRound(round)
	if idx >= len(d.cfg.Tiers) {
		idx = len(d.cfg.Tiers) - 1
	}
	return idx
}

// Tier returns the difficulty tier for a round.
func (d *DifficultyManager) Tier(round int) TierConfig {
	if len(d.cfg.Tiers) == 0 {
		return TierConfig{EnemySpeed: 6, SpawnEvery: 200, BombSpeed: 6, IntervalScale: 1}
	}
	return d.cfg.Tiers[d.TierIndex(round)]
}

// ItemsFor returns the item drops scheduled for a round.
func (d *DifficultyManager) ItemsFor(round int) []ItemDrop {
	var out []ItemDrop
	for _, item := range d.cfg.Items {
		if item.Round == round {
			out = append(out, item)
		}
	}
	return out
}

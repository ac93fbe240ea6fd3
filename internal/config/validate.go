package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for values the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return errors.New("player size must be positive")
	}
	if c.Player.HitPoints < 1 {
		return fmt.Errorf("player hit_points must be at least 1, got %d", c.Player.HitPoints)
	}
	if c.Enemy.MinInterval < 1 || c.Enemy.MaxInterval < c.Enemy.MinInterval {
		return fmt.Errorf("enemy interval range [%d, %d] is invalid", c.Enemy.MinInterval, c.Enemy.MaxInterval)
	}
	if c.Enemy.MaxBound < c.Enemy.MinBound {
		return fmt.Errorf("enemy bound range [%v, %v] is invalid", c.Enemy.MinBound, c.Enemy.MaxBound)
	}
	if c.Boss.HP < 1 {
		return fmt.Errorf("boss hp must be at least 1, got %d", c.Boss.HP)
	}
	if len(c.Boss.DropIntervals) != 3 {
		return fmt.Errorf("boss drop_intervals needs one entry per phase, got %d", len(c.Boss.DropIntervals))
	}
	for i, n := range c.Boss.DropIntervals {
		if n < 1 {
			return fmt.Errorf("boss drop_intervals[%d] must be at least 1, got %d", i, n)
		}
	}
	if c.Bomb.MaxRadius < c.Bomb.MinRadius || c.Bomb.MinRadius < 1 {
		return fmt.Errorf("bomb radius range [%d, %d] is invalid", c.Bomb.MinRadius, c.Bomb.MaxRadius)
	}
	if !IsPrimaryMode(c.Weapons.Primary) {
		return fmt.Errorf("unknown primary weapon mode %q", c.Weapons.Primary)
	}
	if c.Weapons.Satellite.Count < 1 {
		return errors.New("satellite count must be at least 1")
	}
	return c.Rounds.validate()
}

func (r RoundsConfig) validate() error {
	if len(r.Thresholds) == 0 {
		return errors.New("rounds need at least one threshold")
	}
	for i := 1; i < len(r.Thresholds); i++ {
		if r.Thresholds[i] <= r.Thresholds[i-1] {
			return fmt.Errorf("round thresholds must ascend: %d after %d", r.Thresholds[i], r.Thresholds[i-1])
		}
	}
	if len(r.Tiers) == 0 {
		return errors.New("rounds need at least one difficulty tier")
	}
	for i, t := range r.Tiers {
		if t.SpawnEvery < 1 {
			return fmt.Errorf("tier %d spawn_every must be at least 1", i)
		}
		if t.IntervalScale <= 0 {
			return fmt.Errorf("tier %d interval_scale must be positive", i)
		}
	}
	for _, item := range r.Items {
		if !IsItemEffect(item.Effect) {
			return fmt.Errorf("unknown item effect %q", item.Effect)
		}
		if item.Round < 0 || item.Round >= len(r.Thresholds) {
			return fmt.Errorf("item %q round %d out of range", item.Effect, item.Round)
		}
	}
	return nil
}

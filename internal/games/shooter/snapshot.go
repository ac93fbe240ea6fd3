package shooter

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick   int    `msgpack:"tick"`
	State  string `msgpack:"state"`
	Score  int    `msgpack:"score"`
	Freeze int    `msgpack:"freeze"`

	Round      int  `msgpack:"round"`
	RoundPhase int  `msgpack:"round_phase"`
	RoundTimer int  `msgpack:"round_timer"`
	BossSpawn  bool `msgpack:"boss_spawned"`

	// Player: X, Y, FacingX, FacingY
	Player      []float64 `msgpack:"player"`
	PlayerState int       `msgpack:"player_state"`
	PlayerHP    int       `msgpack:"player_hp"`
	Hyper       int       `msgpack:"hyper"`
	Grace       int       `msgpack:"grace"`

	// Arsenal toggles and timers
	Primary   string `msgpack:"primary"`
	Toggles   []bool `msgpack:"toggles"`
	Cooldowns []int  `msgpack:"cooldowns"` // Every, Elapsed pairs

	// Each entity group is flattened: see the group helpers for the layout
	Enemies    []float64 `msgpack:"enemies"`
	Bosses     []float64 `msgpack:"bosses"`
	Bombs      []float64 `msgpack:"bombs"`
	Bones      []float64 `msgpack:"bones"`
	Weapons    []float64 `msgpack:"weapons"`
	Explosions []float64 `msgpack:"explosions"`
	Fields     []float64 `msgpack:"fields"`
	Items      []string  `msgpack:"items"`

	// RNG state
	RNGState uint64 `msgpack:"rng"`
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		State:     g.state,
		Score:     g.score,
		Freeze:    g.freeze,
		Round:     g.progress.Round,
		BossSpawn: g.bossSpawned,
		RNGState:  g.rng.state,
	}
	snap.RoundPhase = int(g.progress.Phase)
	snap.RoundTimer = g.progress.TimerLeft()

	p := g.player
	snap.Player = []float64{p.Box.C.X, p.Box.C.Y, p.Facing.X, p.Facing.Y}
	snap.PlayerState = int(p.State)
	snap.PlayerHP = p.HP
	snap.Hyper = p.Hyper.Left
	snap.Grace = p.Grace

	a := g.arsenal
	snap.Primary = a.Primary
	snap.Toggles = []bool{a.Satellite, a.Shooter, a.Slash, a.Boomerang}
	for _, cd := range []Cooldown{a.primaryCD, a.satelliteCD, a.slashCD, a.boomerangCD, a.subShotCD} {
		snap.Cooldowns = append(snap.Cooldowns, cd.Every, cd.Elapsed)
	}

	// Enemy: X, Y, State, Interval, Disabled, Bound
	for _, e := range g.enemies {
		snap.Enemies = append(snap.Enemies, e.Box.C.X, e.Box.C.Y, float64(e.State), float64(e.Interval), boolf(e.Disabled), e.Bound)
	}
	// Boss: X, Y, VX, VY, HP, Phase, State
	for _, b := range g.bosses {
		snap.Bosses = append(snap.Bosses, b.Box.C.X, b.Box.C.Y, b.Vel.X, b.Vel.Y, float64(b.HP), float64(b.Phase), float64(b.State))
	}
	// Bomb: X, Y, DirX, DirY, Speed, Mode, Inactive, Life
	for _, group := range []struct {
		dst *[]float64
		src []*Bomb
	}{{&snap.Bombs, g.bombs}, {&snap.Bones, g.bones}} {
		for _, b := range group.src {
			*group.dst = append(*group.dst, b.Box.C.X, b.Box.C.Y, b.Dir.X, b.Dir.Y, b.Speed, float64(b.Mode), boolf(b.Inactive), float64(b.Life.Left))
		}
	}
	// Weapon: Kind, X, Y, VX, VY, Angle, Travelled, Returning, Timer, BossCD, Life
	for _, w := range g.weapons {
		snap.Weapons = append(snap.Weapons, float64(w.Kind), w.Box.C.X, w.Box.C.Y, w.Vel.X, w.Vel.Y, w.Angle,
			w.Travelled, boolf(w.Returning), float64(w.Timer), float64(w.BossCD), float64(w.Life.Left))
	}
	// Explosion: X, Y, Life
	for _, x := range g.explosions {
		snap.Explosions = append(snap.Explosions, x.Box.C.X, x.Box.C.Y, float64(x.Life.Left))
	}
	// Field: Kind, X, Y, W, H, Life
	for _, group := range [][]*Field{g.shields, g.gravities} {
		for _, f := range group {
			snap.Fields = append(snap.Fields, float64(f.Kind), f.Box.C.X, f.Box.C.Y, f.Box.W, f.Box.H, float64(f.Life.Left))
		}
	}
	for _, it := range g.items {
		snap.Items = append(snap.Items, it.Effect)
	}

	return snap
}

// Encode serializes the snapshot with MessagePack.
func (snap *Snapshot) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a snapshot produced by Encode.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := msgpack.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Hash returns an FNV-1a hash of the encoded snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	data, err := snap.Encode()
	if err != nil {
		return 0
	}
	_, _ = h.Write(data)
	return h.Sum64()
}

// StateHash returns the hash of the current snapshot.
func (g *Game) StateHash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}

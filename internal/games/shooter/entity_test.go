package shooter

import (
	"math"
	"testing"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

const (
	fieldW = 480.0
	fieldH = 720.0
)

func TestLifetime(t *testing.T) {
	l := NewLifetime(3)
	for i := 1; i <= 3; i++ {
		expired := l.Tick()
		if expired != (i == 3) {
			t.Errorf("Tick() #%d = %v, expected %v", i, expired, i == 3)
		}
	}
	if l.Left >= 0 {
		t.Errorf("Left = %d after three ticks, expected a negative counter", l.Left)
	}

	f := Forever()
	for i := 0; i < 1000; i++ {
		if f.Tick() {
			t.Fatal("Forever lifetime expired")
		}
	}
}

func TestCompactKeepsOrder(t *testing.T) {
	a := &Enemy{}
	b := &Enemy{}
	c := &Enemy{}
	b.Kill()

	got := compact([]*Enemy{a, b, c})
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("compact() = %v, expected [a c]", got)
	}
}

func newTestPlayer(hp int) *Player {
	cfg := config.DefaultShooterConfig().Player
	cfg.HitPoints = hp
	return NewPlayer(cfg, fieldW, fieldH)
}

func TestPlayerMove(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		startX  float64
		wantX   float64
		wantY   float64
	}{
		{"right", []core.Action{core.ActionRight}, 240, 250, 620},
		{"boost", []core.Action{core.ActionRight, core.ActionBoost}, 240, 260, 620},
		{"up-left", []core.Action{core.ActionUp, core.ActionLeft}, 240, 230, 610},
		{"left wall reverts x only", []core.Action{core.ActionUp, core.ActionLeft}, 24, 24, 610},
		{"right wall", []core.Action{core.ActionRight}, 456, 456, 620},
		{"opposite keys cancel", []core.Action{core.ActionLeft, core.ActionRight}, 240, 240, 620},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer(1)
			p.Box.C.X = tt.startX
			p.Move(core.FrameOf(tt.actions...), fieldW, fieldH)
			if p.Box.C.X != tt.wantX || p.Box.C.Y != tt.wantY {
				t.Errorf("Move() center = (%v, %v), expected (%v, %v)", p.Box.C.X, p.Box.C.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPlayerOctant(t *testing.T) {
	tests := []struct {
		facing core.Vec2
		want   int
	}{
		{core.Vec2{X: 1, Y: 0}, 0},
		{core.Vec2{X: 1, Y: -1}, 1},
		{core.Vec2{X: 0, Y: -1}, 2},
		{core.Vec2{X: -1, Y: -1}, 3},
		{core.Vec2{X: -1, Y: 0}, 4},
		{core.Vec2{X: -1, Y: 1}, 5},
		{core.Vec2{X: 0, Y: 1}, 6},
		{core.Vec2{X: 1, Y: 1}, 7},
	}

	p := newTestPlayer(1)
	for _, tt := range tests {
		p.Facing = tt.facing
		if got := p.Octant(); got != tt.want {
			t.Errorf("Octant() for %v = %d, expected %d", tt.facing, got, tt.want)
		}
		aim := p.Aim()
		if math.Abs(aim.Len()-1) > 1e-9 {
			t.Errorf("Aim() for %v has length %v, expected 1", tt.facing, aim.Len())
		}
	}
}

func TestPlayerHyper(t *testing.T) {
	p := newTestPlayer(1)
	if !p.EnterHyper(3) {
		t.Fatal("EnterHyper() = false from normal, expected true")
	}
	if p.EnterHyper(3) {
		t.Error("EnterHyper() = true while in hyper, expected false")
	}
	for i := 0; i < 2; i++ {
		p.Update()
		if p.State != PlayerHyper {
			t.Fatalf("State after %d updates = %d, expected hyper", i+1, p.State)
		}
	}
	p.Update()
	if p.State != PlayerNormal {
		t.Errorf("State after 3 updates = %d, expected normal", p.State)
	}
}

func TestPlayerHit(t *testing.T) {
	p := newTestPlayer(3)

	taken, fatal := p.Hit()
	if !taken || fatal || p.HP != 2 {
		t.Fatalf("Hit() = (%v, %v) HP %d, expected (true, false) HP 2", taken, fatal, p.HP)
	}
	if taken, _ := p.Hit(); taken {
		t.Error("Hit() during grace was taken")
	}

	p.Grace = 0
	p.Hit()
	p.Grace = 0
	taken, fatal = p.Hit()
	if !taken || !fatal || p.HP != 0 {
		t.Errorf("Hit() = (%v, %v) HP %d, expected (true, true) HP 0", taken, fatal, p.HP)
	}
}

func TestEnemyStopsOnce(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	rng := NewSimpleRNG(7)
	e := NewEnemy(cfg.Enemy, cfg.Rounds.Tiers[0], fieldW, rng)
	e.Bound = 100

	for i := 1; i <= 16; i++ {
		e.Update()
		if e.State != Descending {
			t.Fatalf("State after %d updates = stopped, expected descending", i)
		}
	}
	e.Update()
	if e.State != Stopped || e.Box.C.Y != 102 {
		t.Fatalf("after 17 updates: state %d y %v, expected stopped at 102", e.State, e.Box.C.Y)
	}
	e.Update()
	if e.Box.C.Y != 102 || e.State != Stopped {
		t.Errorf("stopped enemy moved to %v", e.Box.C.Y)
	}
}

func TestNewEnemyRanges(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	rng := NewSimpleRNG(99)
	for i := 0; i < 200; i++ {
		e := NewEnemy(cfg.Enemy, cfg.Rounds.Tiers[0], fieldW, rng)
		if e.Bound < 50 || e.Bound > 360 {
			t.Errorf("Bound = %v, expected [50, 360]", e.Bound)
		}
		if e.Interval < 50 || e.Interval > 300 {
			t.Errorf("Interval = %d, expected [50, 300]", e.Interval)
		}
		if e.Box.C.X < 0 || e.Box.C.X > fieldW || e.Box.C.Y != 0 {
			t.Errorf("spawn = %v, expected top edge", e.Box.C)
		}
	}
}

func TestEnemyDrops(t *testing.T) {
	e := &Enemy{Entity: Entity{Life: Forever()}, Interval: 50}
	if e.ShouldDrop(100) {
		t.Error("descending enemy dropped a bomb")
	}
	e.State = Stopped
	if !e.ShouldDrop(100) || e.ShouldDrop(101) {
		t.Error("stopped enemy should drop on multiples of its interval only")
	}
	e.Disable()
	for tick := 0; tick < 500; tick++ {
		if e.ShouldDrop(tick) {
			t.Fatalf("disabled enemy dropped at tick %d", tick)
		}
	}
	if e.Interval != IntervalNever {
		t.Errorf("Interval = %d, expected IntervalNever", e.Interval)
	}
}

func newTestBoss() *Boss {
	return NewBoss(config.DefaultShooterConfig().Boss, fieldW)
}

func TestBossPhases(t *testing.T) {
	b := newTestBoss()
	changes := map[int]BossPhase{}
	for b.Alive() {
		if b.Damage(1) {
			changes[b.HP] = b.Phase
		}
	}

	if len(changes) != 2 || changes[5] != Phase2 || changes[2] != Phase3 {
		t.Errorf("phase changes = %v, expected phase2 at 5 HP and phase3 at 2 HP", changes)
	}
	if b.HP != 0 || b.Phase != Phase3 {
		t.Errorf("dead boss: HP %d phase %v", b.HP, b.Phase)
	}
}

func TestBossDamageSkipsPhase(t *testing.T) {
	b := newTestBoss()
	if !b.Damage(9) {
		t.Fatal("Damage(9) reported no phase change")
	}
	if b.Phase != Phase3 || b.Dead {
		t.Errorf("after Damage(9): phase %v dead %v, expected phase3 alive", b.Phase, b.Dead)
	}
}

func TestBossDrops(t *testing.T) {
	b := newTestBoss()
	tests := []struct {
		phase    BossPhase
		interval int
		mode     BombMode
	}{
		{Phase1, 30, BombBeam},
		{Phase2, 15, BombBeam},
		{Phase3, 1, BombScatter},
	}
	for _, tt := range tests {
		b.Phase = tt.phase
		if got := b.DropInterval(); got != tt.interval {
			t.Errorf("DropInterval() in %v = %d, expected %d", tt.phase, got, tt.interval)
		}
		if got := b.DropMode(); got != tt.mode {
			t.Errorf("DropMode() in %v = %d, expected %d", tt.phase, got, tt.mode)
		}
	}

	b.Phase = Phase1
	if b.ShouldDropBone(50) {
		t.Error("phase1 boss dropped a bone")
	}
	b.Phase = Phase2
	if !b.ShouldDropBone(50) || b.ShouldDropBone(49) {
		t.Error("phase2 boss should drop bones every 50 ticks")
	}
}

func TestBossMovement(t *testing.T) {
	b := newTestBoss()
	rng := NewSimpleRNG(3)

	for i := 0; i < 17; i++ {
		b.Update(fieldW, fieldH, rng)
	}
	if b.State != Stopped || b.Vel.Y != 0 {
		t.Fatalf("phase1 boss: state %d vy %v, expected stopped", b.State, b.Vel.Y)
	}

	b.Damage(5)
	band := fieldH * 0.25
	for i := 0; i < 2000; i++ {
		b.Update(fieldW, fieldH, rng)
		if b.Box.Left() < 0 || b.Box.Right() > fieldW {
			t.Fatalf("tick %d: boss left the field horizontally: %v", i, b.Box)
		}
		if b.Box.Top() < 0 || b.Box.Bottom() > band {
			t.Fatalf("tick %d: boss left the patrol band: %v", i, b.Box)
		}
		if math.Abs(b.Vel.X) > 30 || math.Abs(b.Vel.Y) > 30 {
			t.Fatalf("tick %d: speed %v over the cap", i, b.Vel)
		}
	}
}

func newTestBomb(mode BombMode, x, y float64) *Bomb {
	return &Bomb{
		Entity: Entity{
			Box:  core.NewBox(x, y, 24, 24),
			Life: NewLifetime(300),
		},
		Mode: mode,
		Hit:  mode != BombBone,
	}
}

func TestNewBombAimed(t *testing.T) {
	cfg := config.DefaultShooterConfig().Bomb
	dropper := core.NewBox(240, 100, 160, 128)
	target := core.NewBox(240, 620, 48, 48)

	b := NewBomb(BombBeam, dropper, target, 6, cfg, NewSimpleRNG(1))
	if b.Box.C != (core.Vec2{X: 240, Y: 164}) {
		t.Errorf("spawn = %v, expected dropper bottom centre (240, 164)", b.Box.C)
	}
	if b.Vel != (core.Vec2{X: 0, Y: 6}) {
		t.Errorf("Vel = %v, expected (0, 6)", b.Vel)
	}

	bone := NewBomb(BombBone, dropper, target, 6, cfg, NewSimpleRNG(1))
	if bone.Hit {
		t.Error("bone should not be destructible by weapons")
	}
}

func TestBombBounce(t *testing.T) {
	b := newTestBomb(BombBeam, 475, 300)
	b.Dir = core.Vec2{X: 1}
	b.Speed = 10
	b.Vel = core.Vec2{X: 10}

	b.Update(fieldW, fieldH)
	if b.Box.C.X != fieldW || b.Dir.X != -1 || b.Vel.X != -10 {
		t.Fatalf("after bounce: x %v dir %v vel %v", b.Box.C.X, b.Dir, b.Vel)
	}
	b.Update(fieldW, fieldH)
	if b.Box.C.X != 470 {
		t.Errorf("x after reflection = %v, expected 470", b.Box.C.X)
	}

	aimed := newTestBomb(BombAimed, 475, 300)
	aimed.Vel = core.Vec2{X: 10}
	aimed.Update(fieldW, fieldH)
	if aimed.Box.C.X != 485 || aimed.Dead {
		t.Errorf("aimed bomb x = %v dead %v, expected 485 alive", aimed.Box.C.X, aimed.Dead)
	}
}

func TestBombRetire(t *testing.T) {
	b := newTestBomb(BombAimed, 240, 715)
	b.Vel = core.Vec2{Y: 6}
	b.Update(fieldW, fieldH)
	if !b.Dead {
		t.Error("bomb below the field should be dead")
	}

	still := newTestBomb(BombAimed, 240, 300)
	for i := 1; i < 300; i++ {
		still.Update(fieldW, fieldH)
	}
	if still.Dead {
		t.Fatal("bomb died before its tick budget")
	}
	still.Update(fieldW, fieldH)
	if !still.Dead {
		t.Error("bomb alive after 300 ticks")
	}
}

func TestBombSlow(t *testing.T) {
	b := newTestBomb(BombAimed, 240, 300)
	b.Dir = core.Vec2{Y: 1}
	b.Speed = 6
	b.Slow()
	if b.Speed != 3 || b.Vel != (core.Vec2{Y: 3}) || !b.Inactive {
		t.Errorf("Slow(): speed %v vel %v inactive %v", b.Speed, b.Vel, b.Inactive)
	}
}

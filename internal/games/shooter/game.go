// Package shooter implements the top-down arcade shooter simulation:
// entities, weapons, round progression, collision passes and the frame
// orchestrator. It is pure logic; rendering goes into a core.Screen.
package shooter

import (
	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Game states
const (
	StateTitle   = "title"   // Waiting for the player to start
	StatePlaying = "playing" // Simulation running
	StatePaused  = "paused"  // Game paused
	StateDefeat  = "defeat"  // Player destroyed
	StateVictory = "victory" // Boss destroyed
)

// Event names reported in StepResult.Events.
const (
	EventRound      = "round"
	EventBossSpawn  = "boss_spawn"
	EventBossPhase  = "boss_phase"
	EventBossDown   = "boss_down"
	EventItem       = "item"
	EventEMP        = "emp"
	EventShield     = "shield"
	EventGravity    = "gravity"
	EventHyper      = "hyper"
	EventPlayerHit  = "player_hit"
	EventVictory    = "victory"
	EventDefeat     = "defeat"
	EventEnemyKill  = "enemy_kill"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game is the frame orchestrator. It owns every entity group exclusively
// for the duration of a tick.
type Game struct {
	variant Variant
	preset  config.DifficultyPreset // Overrides difficultyPreset when set

	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
	rng     *SimpleRNG

	fieldW, fieldH float64

	player     *Player
	enemies    []*Enemy
	bosses     []*Boss
	bombs      []*Bomb // Destructible: modes 0, 1 and 3
	bones      []*Bomb // Mode 2
	weapons    []*Weapon
	explosions []*Explosion
	shields    []*Field
	gravities  []*Field
	items      []*Item

	arsenal  *Arsenal
	progress *Progression

	state       string
	score       int
	tick        int
	freeze      int // Foreground freeze; no input is processed while > 0
	bossSpawned bool
	events      []core.Event
	configErr   error // Why the last reset fell back to defaults
}

// New creates a game for a variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the variant summary.
func (g *Game) Description() string {
	return g.variant.Description
}

// SetPreset sets a difficulty preset for this instance only.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// Reset initializes or restarts the game.
// A config that fails to load is replaced by the defaults; ConfigError
// reports why.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg := g.reloadConfig()
	g.ResetWith(runtime, cfg)
}

// ResetWith restarts the game with an explicit configuration.
// The variant and difficulty preset are applied on top of cfg.
func (g *Game) ResetWith(runtime core.RuntimeConfig, cfg config.ShooterConfig) {
	if g.variant.Apply != nil {
		g.variant.Apply(&cfg)
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyShooterPreset(&cfg, preset)
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultTickRate
	}

	g.runtime = runtime
	g.cfg = cfg
	g.rng = NewSimpleRNG(runtime.Seed)
	g.fieldW = cfg.Playfield.Width
	g.fieldH = cfg.Playfield.Height

	g.player = NewPlayer(cfg.Player, g.fieldW, g.fieldH)
	g.enemies = nil
	g.bosses = nil
	g.bombs = nil
	g.bones = nil
	g.weapons = nil
	g.explosions = nil
	g.shields = nil
	g.gravities = nil
	g.items = nil

	g.arsenal = NewArsenal(cfg.Weapons)
	g.progress = NewProgression(cfg.Rounds, cfg.Features.Rounds)

	g.state = StateTitle
	g.score = cfg.Score.Start
	g.tick = 0
	g.freeze = 0
	g.bossSpawned = false
	g.events = nil
}

// Config returns the effective configuration.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateDefeat || g.state == StateVictory,
		Victory:  g.state == StateVictory,
		Paused:   g.state == StatePaused,
		Frozen:   g.freeze > 0,
	}
}

func (g *Game) emit(name string, value int) {
	g.events = append(g.events, core.Event{Name: name, Value: value})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	switch g.state {
	case StateDefeat, StateVictory:
		// Terminal screens hold for a fixed time before restart is accepted
		if g.freeze > 0 {
			g.freeze--
			return g.result()
		}
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.ResetWith(g.runtime, g.reloadConfig())
		}
		return g.result()

	case StateTitle:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.start()
		}
		return g.result()
	}

	// A foreground freeze swallows the tick, input included
	if g.freeze > 0 {
		g.freeze--
		return g.result()
	}

	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else {
			g.state = StatePaused
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	g.tick++

	g.handleInput(in)
	g.updateProgression()
	g.dropBombs()
	g.arsenal.Tick()
	g.weapons = g.arsenal.AutoFire(g.player, g.weapons)
	g.updateEntities()
	g.resolveCollisions()
	g.compactGroups()
	g.checkTerminal()

	return g.result()
}

// reloadConfig returns the base configuration for a reset or restart.
func (g *Game) reloadConfig() config.ShooterConfig {
	cfg, err := config.LoadShooter(configPath)
	g.configErr = err
	if err != nil {
		return config.DefaultShooterConfig()
	}
	return cfg
}

// ConfigError returns the load error behind the last fallback to the
// default configuration, or nil.
func (g *Game) ConfigError() error {
	return g.configErr
}

func (g *Game) start() {
	g.state = StatePlaying
	g.progress.Start()
	if g.progress.Enabled() {
		g.emit(EventRound, g.progress.Round)
	}
}

// handleInput applies movement, primary fire and abilities.
func (g *Game) handleInput(in core.InputFrame) {
	g.player.Move(in, g.fieldW, g.fieldH)

	if in.Has(core.ActionFire) {
		if shots := g.arsenal.FirePrimary(g.player); len(shots) > 0 {
			g.weapons = append(g.weapons, shots...)
		}
	}

	g.useAbilities(in)
}

// updateProgression checks for a round advance, counts down transitions
// and spawns enemies and the boss.
func (g *Game) updateProgression() {
	if g.progress.Advance(g.score) {
		g.emit(EventRound, g.progress.Round)
		g.clearHostiles()
		if g.cfg.Features.Items {
			for _, drop := range g.progress.Items() {
				g.items = append(g.items, NewItem(drop))
			}
		}
	}

	if g.progress.Tick() && g.progress.IsFinal() && g.cfg.Features.Boss {
		g.spawnBoss()
	}

	if g.progress.Transitioning() {
		return
	}
	if g.progress.IsFinal() && g.cfg.Features.Boss {
		return
	}

	tier := g.progress.Tier()
	if g.tick%tier.SpawnEvery == 0 {
		g.enemies = append(g.enemies, NewEnemy(g.cfg.Enemy, tier, g.fieldW, g.rng))
	}
}

// clearHostiles removes enemies and bombs when a transition begins.
func (g *Game) clearHostiles() {
	for _, e := range g.enemies {
		e.Kill()
	}
	for _, b := range g.bombs {
		b.Kill()
	}
	for _, b := range g.bones {
		b.Kill()
	}
}

func (g *Game) spawnBoss() {
	if g.bossSpawned {
		return
	}
	g.bossSpawned = true
	g.bosses = append(g.bosses, NewBoss(g.cfg.Boss, g.fieldW))
	g.emit(EventBossSpawn, g.cfg.Boss.HP)
}

// dropBombs runs every dropper's timer against the tick counter.
func (g *Game) dropBombs() {
	speed := g.progress.Tier().BombSpeed
	target := g.player.Box

	for _, e := range g.enemies {
		if e.ShouldDrop(g.tick) {
			g.bombs = append(g.bombs, NewBomb(BombAimed, e.Box, target, speed, g.cfg.Bomb, g.rng))
		}
	}
	for _, b := range g.bosses {
		if b.ShouldDrop(g.tick) {
			g.bombs = append(g.bombs, NewBomb(b.DropMode(), b.Box, target, speed, g.cfg.Bomb, g.rng))
		}
		if b.ShouldDropBone(g.tick) {
			g.bones = append(g.bones, NewBomb(BombBone, b.Box, target, speed, g.cfg.Bomb, g.rng))
		}
	}
}

// updateEntities lets every group move and age.
func (g *Game) updateEntities() {
	g.player.Update()

	ctx := moveContext{player: g.player, fieldW: g.fieldW, fieldH: g.fieldH, cfg: &g.cfg.Weapons}
	for _, w := range g.weapons {
		if w.Alive() {
			w.Update(ctx)
		}
	}
	for _, e := range g.enemies {
		e.Update()
	}
	for _, b := range g.bosses {
		b.Update(g.fieldW, g.fieldH, g.rng)
	}
	for _, b := range g.bombs {
		b.Update(g.fieldW, g.fieldH)
	}
	for _, b := range g.bones {
		b.Update(g.fieldW, g.fieldH)
	}
	for _, x := range g.explosions {
		x.Update()
	}
	for _, f := range g.shields {
		f.Update()
	}
	for _, f := range g.gravities {
		f.Update()
	}
}

// compactGroups drops every dead entity before the next tick.
func (g *Game) compactGroups() {
	g.enemies = compact(g.enemies)
	g.bosses = compact(g.bosses)
	g.bombs = compact(g.bombs)
	g.bones = compact(g.bones)
	g.weapons = compact(g.weapons)
	g.explosions = compact(g.explosions)
	g.shields = compact(g.shields)
	g.gravities = compact(g.gravities)
	g.items = compact(g.items)
}

// checkTerminal enters victory once a spawned boss is gone.
func (g *Game) checkTerminal() {
	if g.state != StatePlaying {
		return
	}
	if g.bossSpawned && len(g.bosses) == 0 {
		g.state = StateVictory
		g.freeze = g.runtime.TicksFor(g.cfg.Timing.VictoryFreezeMs)
		g.emit(EventVictory, g.score)
	}
}

// defeat ends the game; the score keeps its value.
func (g *Game) defeat() {
	g.state = StateDefeat
	g.freeze = g.runtime.TicksFor(g.cfg.Timing.DefeatFreezeMs)
	g.emit(EventDefeat, g.score)
}

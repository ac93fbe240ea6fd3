package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/skyraid/internal/config"
	"github.com/vovakirdan/skyraid/internal/core"
)

// Minimum terminal size for drawing the playfield.
const (
	MinScreenW = 30
	MinScreenH = 16
)

// Visual characters for rendering
var (
	playerArrows = []rune("→↗↑↖←↙↓↘")
	enemyGlyphs  = []rune("▼▽◆")
	enemyColors  = []core.Color{core.ColorGreen, core.ColorCyan, core.ColorYellow}
	spinGlyphs   = []rune("─╲│╱")
)

var weaponGlyphs = [weaponKindCount]rune{
	WeaponBeam:             '•',
	WeaponStraight:         '│',
	WeaponPenetrating:      '┃',
	WeaponSatellite:        '◎',
	WeaponSatelliteShooter: '◉',
	WeaponSubShot:          '╵',
	WeaponSlash:            '╳',
	WeaponBoomerang:        '─',
}

var weaponColors = [weaponKindCount]core.Color{
	WeaponBeam:             core.ColorBrightCyan,
	WeaponStraight:         core.ColorBrightYellow,
	WeaponPenetrating:      core.ColorBrightMagenta,
	WeaponSatellite:        core.ColorCyan,
	WeaponSatelliteShooter: core.ColorBrightCyan,
	WeaponSubShot:          core.ColorCyan,
	WeaponSlash:            core.ColorBrightWhite,
	WeaponBoomerang:        core.ColorOrange,
}

var itemLetters = map[string]rune{
	config.EffectStraight:         'S',
	config.EffectPenetrating:      'P',
	config.EffectSatellite:        'O',
	config.EffectSatelliteShooter: 'Q',
	config.EffectSlash:            'X',
	config.EffectBoomerang:        'B',
	config.EffectCooldown:         'C',
}

// viewport maps playfield units onto screen cells.
type viewport struct {
	x0, y0 int
	w, h   int
	sx, sy float64
}

func (g *Game) viewport(dst *core.Screen) viewport {
	top := 2 // HUD row and top border
	h := dst.Height() - top - 1
	avail := dst.Width() - 2
	// Terminal cells are roughly twice as tall as wide
	w := int(float64(h) * g.fieldW / g.fieldH * 2)
	if w > avail {
		w = avail
	}
	return viewport{
		x0: (dst.Width() - w) / 2,
		y0: top,
		w:  w,
		h:  h,
		sx: float64(w) / g.fieldW,
		sy: float64(h) / g.fieldH,
	}
}

// cell converts a playfield point to a screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	return v.x0 + int(math.Floor(p.X*v.sx)), v.y0 + int(math.Floor(p.Y*v.sy))
}

// span converts a box to the cells it covers, at least one, clipped to the field.
func (v viewport) span(b core.Box) core.Rect {
	x1 := v.x0 + int(math.Floor(b.Left()*v.sx))
	y1 := v.y0 + int(math.Floor(b.Top()*v.sy))
	x2 := v.x0 + int(math.Ceil(b.Right()*v.sx))
	y2 := v.y0 + int(math.Ceil(b.Bottom()*v.sy))
	x1 = core.Max(x1, v.x0)
	y1 = core.Max(y1, v.y0)
	x2 = core.Min(x2, v.x0+v.w)
	y2 = core.Min(y2, v.y0+v.h)
	r := core.NewRect(x1, y1, x2-x1, y2-y1)
	if r.W < 1 {
		r.W = 1
	}
	if r.H < 1 {
		r.H = 1
	}
	return r
}

func (v viewport) inside(x, y int) bool {
	return x >= v.x0 && x < v.x0+v.w && y >= v.y0 && y < v.y0+v.h
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	v := g.viewport(dst)
	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(v.x0-1, v.y0-1, v.w+2, v.h+2), core.ColorGray)

	if g.state == StateTitle {
		g.renderTitle(dst, v)
		return
	}

	g.renderStars(dst, v)
	for _, s := range g.Sprites() {
		g.renderSprite(dst, v, s)
	}
	g.renderOverlay(dst, v)
}

// renderHUD draws score, hit points, round and the active arsenal.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)

	hp := "HP " + strings.Repeat("♥", g.player.HP) + strings.Repeat("·", g.player.MaxHP-g.player.HP)
	x := 16
	dst.DrawTextColored(x, 0, hp, core.ColorBrightRed)
	x += len([]rune(hp)) + 2

	if g.progress.Enabled() {
		round := fmt.Sprintf("Round %d/%d", g.progress.Round+1, g.progress.dm.RoundCount())
		dst.DrawTextColored(x, 0, round, core.ColorBrightYellow)
		x += len(round) + 2
	}

	right := strings.Join(g.arsenal.Active(), " ")
	if g.player.State == PlayerHyper {
		right = fmt.Sprintf("HYPER %d  %s", g.player.Hyper.Left/g.runtime.TickRate, right)
	}
	if rx := dst.Width() - len([]rune(right)) - 1; rx > x {
		dst.DrawTextColored(rx, 0, right, core.ColorCyan)
	}
}

// renderStars draws a fixed starfield shifted by the round slide offset.
func (g *Game) renderStars(dst *core.Screen, v viewport) {
	offset := g.progress.BackgroundOffset(g.fieldH)
	for i := 0; i < 48; i++ {
		p := core.Vec2{
			X: float64((i * 97) % int(g.fieldW)),
			Y: float64((i*193)%int(g.fieldH)) + offset,
		}
		if p.Y < 0 {
			continue
		}
		cx, cy := v.cell(p)
		if v.inside(cx, cy) {
			dst.SetColored(cx, cy, '.', core.ColorGray)
		}
	}
}

func fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	dst.DrawRect(r, ch, c)
}

func (g *Game) renderSprite(dst *core.Screen, v viewport, s Sprite) {
	r := v.span(s.Box)
	cx, cy := v.cell(s.Box.C)

	switch s.Kind {
	case SpriteGravity:
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X + y%2; x < r.Right(); x += 2 {
				dst.SetColored(x, y, '·', core.ColorBlue)
			}
		}

	case SpriteItem:
		label := fmt.Sprintf("[%c]", itemLetters[s.Effect])
		dst.DrawTextColored(cx-1, cy, label, core.ColorBrightYellow)

	case SpriteEnemy:
		color := enemyColors[s.Frame%len(enemyColors)]
		if s.Has(FlagDisabled) {
			color = core.ColorGray
		}
		fill(dst, r, enemyGlyphs[s.Frame%len(enemyGlyphs)], color)

	case SpriteBoss:
		color := core.ColorRed
		switch {
		case s.Has(FlagPhase3):
			color = core.ColorBrightMagenta
		case s.Frame == int(Phase2):
			color = core.ColorOrange
		}
		fill(dst, r, '█', color)
		dst.DrawBox(r, core.ColorBrightWhite)

	case SpriteBomb:
		color := s.Color
		if s.Has(FlagDisabled) {
			color = core.ColorGray
		}
		switch s.Bomb {
		case BombAimed:
			fill(dst, r, '●', color)
		case BombBone:
			dst.SetColored(cx, cy, '¤', color)
		case BombScatter:
			dst.SetColored(cx, cy, '◆', core.ColorOrange)
		default:
			dst.SetColored(cx, cy, '¦', color)
		}

	case SpriteWeapon:
		ch := weaponGlyphs[s.Weapon]
		switch s.Weapon {
		case WeaponBoomerang:
			idx := int(math.Abs(s.Angle)/(math.Pi/4)) % len(spinGlyphs)
			color := weaponColors[s.Weapon]
			if s.Has(FlagReturning) {
				color = core.ColorYellow
			}
			dst.SetColored(cx, cy, spinGlyphs[idx], color)
		case WeaponSlash:
			fill(dst, r, ch, weaponColors[s.Weapon])
		default:
			dst.SetColored(cx, cy, ch, weaponColors[s.Weapon])
		}

	case SpriteShield:
		fill(dst, r, '▒', core.ColorBrightBlue)

	case SpriteExplosion:
		ch, color := '*', core.ColorBrightYellow
		if s.Frame == 1 {
			ch, color = '+', core.ColorOrange
		}
		fill(dst, r, ch, color)

	case SpritePlayer:
		color := core.ColorBrightGreen
		if s.Has(FlagHyper) {
			color = core.ColorBrightMagenta
		}
		if s.Has(FlagGrace) && g.tick%4 < 2 {
			color = core.ColorGray
		}
		fill(dst, r, '▓', color)
		dst.SetColored(cx, cy, playerArrows[s.Octant], core.ColorBrightWhite)
	}
}

// renderTitle draws the start screen.
func (g *Game) renderTitle(dst *core.Screen, v viewport) {
	mid := v.y0 + v.h/2
	dst.DrawTextCenteredColored(mid-3, "S K Y R A I D", core.ColorBrightCyan)
	dst.DrawTextCenteredColored(mid-1, g.variant.Title, core.ColorBrightYellow)
	dst.DrawTextCenteredColored(mid, g.variant.Description, core.ColorGray)
	dst.DrawTextCenteredColored(mid+2, "Press ENTER to start", core.ColorBrightWhite)
}

// renderOverlay draws banners and terminal messages.
func (g *Game) renderOverlay(dst *core.Screen, v viewport) {
	mid := v.y0 + v.h/2

	if g.progress.Phase == RoundTitle {
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("ROUND %d", g.progress.Round+1), core.ColorBrightYellow)
		if g.progress.IsFinal() && g.cfg.Features.Boss {
			dst.DrawTextCenteredColored(mid+1, "WARNING: BOSS APPROACHING", core.ColorBrightRed)
		}
	}

	switch g.state {
	case StatePaused:
		dst.DrawTextCenteredColored(mid, "PAUSED", core.ColorBrightWhite)
		dst.DrawTextCenteredColored(mid+1, "Press P to resume", core.ColorGray)
	case StateDefeat:
		dst.DrawTextCenteredColored(mid-1, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
		if g.freeze == 0 {
			dst.DrawTextCenteredColored(mid+2, "Press R to restart", core.ColorGray)
		}
	case StateVictory:
		dst.DrawTextCenteredColored(mid-1, "STAGE CLEAR", core.ColorBrightGreen)
		dst.DrawTextCenteredColored(mid, fmt.Sprintf("Score: %d", g.score), core.ColorBrightWhite)
		if g.freeze == 0 {
			dst.DrawTextCenteredColored(mid+2, "Press R to play again", core.ColorGray)
		}
	}

	if g.freeze > 0 && g.state == StatePlaying {
		// EMP flash
		for y := v.y0; y < v.y0+v.h; y += 2 {
			dst.DrawHLine(v.x0, y, v.w, '░', core.ColorYellow)
		}
	}
}

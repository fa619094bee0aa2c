package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
)

// BackgroundLayer paints the playfield, tinted while the team is on its last life
type BackgroundLayer struct{}

func (BackgroundLayer) Render(f *Frame, c *Canvas) {
	style := baseStyle()
	if f.State != nil && f.State.LivesRemaining() == 1 {
		style = tcell.StyleDefault.Background(RgbLastLifeTint)
	}
	cols, rows := c.Size()
	c.Box(0, 0, cols, rows, style)
	if f.Field != nil {
		c.HLine(f.Field.HUDLine, fg(RgbHUDLine))
	}
}

var enemyGlyphs = [component.EnemyKindCount]struct {
	r     rune
	color tcell.Color
}{
	component.EnemyLight:   {'v', RgbEnemyLight},
	component.EnemyMedium:  {'W', RgbEnemyMedium},
	component.EnemyHeavy:   {'M', RgbEnemyHeavy},
	component.EnemyMinion:  {'o', RgbEnemyMinion},
	component.EnemySpecial: {'@', RgbEnemySpecial},
}

// EntityLayer draws ships, enemies, the boss, bullets and items
type EntityLayer struct{}

func (EntityLayer) Render(f *Frame, c *Canvas) {
	field := f.Field
	if field == nil {
		return
	}

	for _, it := range field.Items.Items() {
		prof := component.ItemProfiles[it.Kind]
		color := RgbItemDuration
		switch it.Kind {
		case component.ItemCoin:
			color = RgbItemCoin
		case component.ItemLife:
			color = RgbItemLife
		}
		c.FillRect(it.Rect, prof.Rune, fg(color))
	}

	if field.Formation != nil {
		for _, e := range field.Formation.Ships() {
			drawEnemy(c, e)
		}
	}
	if s := field.Special; s != nil {
		if s.Destroyed {
			c.FillRect(s.Rect, '*', fg(RgbExplosionEnemy))
		} else {
			drawEnemy(c, s)
		}
	}

	if b := field.Boss; b != nil && b.Alive() {
		color := RgbBoss
		if b.Invulnerable() {
			color = RgbBossShielded
		}
		c.FillRect(b.Rect, '█', fg(color))
	}

	for _, s := range field.ActiveShips() {
		style := fg(RgbPlayer1)
		if s.Player == 1 {
			style = fg(RgbPlayer2)
		}
		r := '▲'
		if s.Destroyed {
			r, style = '*', fg(RgbShipHit)
		}
		c.FillRect(s.Rect, r, style)
	}

	for _, b := range field.Bullets.Items() {
		if b.IsEnemy() {
			c.FillRect(b.Rect, '!', fg(RgbEnemyBullet))
		} else {
			c.FillRect(b.Rect, '|', fg(RgbPlayerBullet))
		}
	}
}

func drawEnemy(c *Canvas, e *component.EnemyShip) {
	g := enemyGlyphs[e.Kind]
	style := fg(g.color)
	// Damaged heavies dim to show the missing hit point
	if e.HP < component.EnemyProfiles[e.Kind].HP {
		style = style.Dim(true)
	}
	c.FillRect(e.Rect, g.r, style)
}

// effectRune is the HUD label of an inventory slot
func effectRune(t engine.EffectType) rune {
	switch t {
	case engine.EffectTripleShot:
		return 'T'
	case engine.EffectScoreBoost:
		return 'S'
	case engine.EffectBulletSpeedUp:
		return 'B'
	default:
		return ' '
	}
}

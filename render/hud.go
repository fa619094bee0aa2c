package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/void-siege/parameter"
)

// HUDLayer draws scores, lives, coins, level, inventories and the boss HP bar
type HUDLayer struct{}

func (HUDLayer) Render(f *Frame, c *Canvas) {
	gs := f.State
	if gs == nil {
		return
	}
	cols, _ := c.Size()
	label := fg(RgbHUDDim)
	value := fg(RgbHUDText)

	// Row 0: scores and level
	x := c.Text(0, 0, "P1 ", fg(RgbPlayer1))
	c.Text(x, 0, fmt.Sprintf("%05d", gs.Score(0)), value)
	if gs.Players > 1 {
		s := fmt.Sprintf("%05d", gs.Score(1))
		x = c.Text(cols-len(s)-3, 0, "P2 ", fg(RgbPlayer2))
		c.Text(x, 0, s, value)
	}
	level := fmt.Sprintf("LEVEL %d", gs.Level)
	if f.BossLevel {
		level = "BOSS"
	}
	c.TextCentered(0, level, value)

	// Row 1: lives, coins, enemies left or clear time
	x = c.Text(0, 1, "LIVES ", label)
	if gs.SharedLives {
		x = c.Text(x, 1, fmt.Sprintf("%d", gs.TeamLives()), value)
	} else {
		x = c.Text(x, 1, fmt.Sprintf("%d", gs.PlayerLives(0)), value)
	}
	x = c.Text(x+2, 1, "COINS ", label)
	coins := fmt.Sprintf("%d", gs.Coins(0))
	if gs.Players > 1 {
		coins += fmt.Sprintf("/%d", gs.Coins(1))
	}
	x = c.Text(x, 1, coins, value)

	switch {
	case f.BossLevel:
		c.Text(x+2, 1, fmt.Sprintf("TIME %.1fs", f.BossElapsed.Seconds()), value)
	case f.Field != nil && f.Field.Formation != nil:
		x = c.Text(x+2, 1, "SHIPS ", label)
		c.Text(x, 1, fmt.Sprintf("%d", f.Field.Formation.Count()), value)
	}
	if f.Muted {
		c.Text(cols-5, 1, "MUTE", label)
	}

	// Row 2: inventories
	x = 0
	for p := 0; p < gs.Players && p < parameter.NumPlayers; p++ {
		inv := f.Inventories[p]
		if inv == nil {
			continue
		}
		x = c.Text(x, 2, fmt.Sprintf("P%d ", p+1), label)
		for i := range parameter.InventorySlots {
			t := inv.Slot(i)
			slot := "[   ]"
			if r := effectRune(t); r != ' ' {
				slot = fmt.Sprintf("[%c%2d]", r, int(inv.RemainingDuration(i).Seconds()))
			}
			x = c.Text(x, 2, slot, value)
		}
		x += 2
	}

	if f.Field != nil && f.Field.Boss != nil {
		drawBossBar(f, c)
	}
}

const bossBarWidth = 20

func drawBossBar(f *Frame, c *Canvas) {
	b := f.Field.Boss
	row := c.Row(f.Field.HUDLine) + 1
	filled := 0
	if b.MaxHP() > 0 {
		filled = bossBarWidth * b.HP() / b.MaxHP()
	}

	x := c.Text(0, row, "BOSS ", fg(RgbHUDDim))
	x = c.Text(x, row, strings.Repeat("█", filled), fg(RgbBossHPFill))
	x = c.Text(x, row, strings.Repeat("░", bossBarWidth-filled), fg(RgbBossHPEmpty))
	x = c.Text(x+1, row, fmt.Sprintf("%d/%d %s", b.HP(), b.MaxHP(), b.Phase()), fg(RgbHUDText))
	if b.Invulnerable() {
		c.Text(x+1, row, "SHIELD", fg(RgbBossShielded))
	}
}

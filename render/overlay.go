package render

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/status"
	"github.com/lixenwraith/void-siege/system"
)

// OverlayLayer draws messages, countdown, pause panel, revive prompt, toasts and notices
type OverlayLayer struct{}

func (OverlayLayer) Render(f *Frame, c *Canvas) {
	cols, rows := c.Size()
	mid := rows / 2

	if f.HighScoreNotice && f.Field != nil {
		c.TextCentered(c.Row(f.Field.HUDLine)+2, "NEW HIGH SCORE!", fg(RgbMessage))
	}

	for i, msg := range f.Messages {
		c.TextCentered(mid+2+i, msg, fg(RgbMessage))
	}

	if f.Countdown >= 0 {
		title := "LEVEL"
		if f.State != nil {
			title = fmt.Sprintf("LEVEL %d", f.State.Level)
		}
		if f.BossLevel {
			title = "BOSS"
		}
		c.TextCentered(mid-2, title, fg(RgbHUDText))
		if f.Countdown > 0 {
			c.TextCentered(mid, fmt.Sprintf("%d", f.Countdown), fg(RgbMessage))
		} else {
			c.TextCentered(mid, "GO!", fg(RgbMessage))
		}
		if f.BonusLife {
			c.TextCentered(mid+1, "+1 LIFE", fg(RgbItemLife))
		}
	}

	switch f.Revive.Phase {
	case system.RevivePrompt:
		drawPanel(c, cols, mid, 5)
		coins := 0
		if f.State != nil {
			coins = f.State.TotalCoins()
		}
		c.TextCentered(mid-2, fmt.Sprintf("REVIVE FOR %d COINS? (%d)", parameter.ReviveCost, coins), fg(RgbHUDText))
		yes, no := fg(RgbHUDDim), fg(RgbHUDDim)
		if f.Revive.Selection == system.ReviveSelectYes {
			yes = fg(RgbSelected)
		} else {
			no = fg(RgbSelected)
		}
		c.TextCentered(mid, "YES", yes)
		c.TextCentered(mid+1, "NO", no)
	case system.ReviveResult:
		drawPanel(c, cols, mid, 4)
		c.TextCentered(mid-1, f.Revive.Message, fg(RgbMessage))
		c.TextCentered(mid+1, "press ENTER", fg(RgbHUDDim))
	}

	if f.Paused {
		drawPanel(c, cols, mid, 4)
		c.TextCentered(mid-1, "PAUSED", fg(RgbHUDText))
		c.TextCentered(mid+1, "ESC resume  B menu", fg(RgbHUDDim))
	}

	for i, t := range f.Toasts {
		s := " Achievement: " + t.Name + " "
		style := baseStyle().Foreground(RgbToast).Background(RgbToastBg)
		c.Text(max(0, cols-len(s)), rows-1-i, s, style)
	}
}

func drawPanel(c *Canvas, cols, mid, h int) {
	w := min(cols, 36)
	c.Box((cols-w)/2, mid-h/2-1, w, h+1, baseStyle().Background(RgbOverlayBg))
}

// DebugLayer lists the metric registry in the playfield
type DebugLayer struct {
	reg     *status.Registry
	visible atomic.Bool
}

// NewDebugLayer creates a hidden debug layer
func NewDebugLayer(reg *status.Registry) *DebugLayer {
	return &DebugLayer{reg: reg}
}

func (d *DebugLayer) IsVisible() bool { return d.visible.Load() }

// Toggle flips visibility and returns the new state
func (d *DebugLayer) Toggle() bool {
	v := !d.visible.Load()
	d.visible.Store(v)
	return v
}

func (d *DebugLayer) Render(f *Frame, c *Canvas) {
	if d.reg == nil {
		return
	}
	row := 4
	if f.Field != nil {
		row = c.Row(f.Field.HUDLine) + 2
	}
	for _, line := range d.reg.Lines() {
		c.Text(0, row, line, fg(RgbDebug))
		row++
	}
}

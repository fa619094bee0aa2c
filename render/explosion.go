package render

import (
	"slices"
	"time"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
)

const (
	explosionDuration      = 300 * time.Millisecond
	largeExplosionDuration = 800 * time.Millisecond
)

type flash struct {
	x, y    int
	enemy   bool
	large   bool
	expires time.Time
}

// ExplosionLayer keeps explosion flashes alive for a short time after the event
type ExplosionLayer struct {
	clock   engine.TimeProvider
	flashes []flash
}

// NewExplosionLayer creates a layer timing flashes on clock
func NewExplosionLayer(clock engine.TimeProvider) *ExplosionLayer {
	return &ExplosionLayer{clock: clock}
}

// HandleEvents copies explosion payloads and returns them to the pool
func (l *ExplosionLayer) HandleEvents(events []event.GameEvent) {
	now := l.clock.Now()
	for _, ev := range events {
		if ev.Type != event.EventExplosion {
			continue
		}
		p, ok := ev.Payload.(*event.ExplosionPayload)
		if !ok {
			continue
		}
		d := explosionDuration
		if p.Large {
			d = largeExplosionDuration
		}
		l.flashes = append(l.flashes, flash{x: p.X, y: p.Y, enemy: p.Enemy, large: p.Large, expires: now.Add(d)})
		event.ReleaseExplosion(p)
	}
}

// Active returns the number of live flashes
func (l *ExplosionLayer) Active() int {
	return len(l.flashes)
}

// Clear drops every flash, used between encounters
func (l *ExplosionLayer) Clear() {
	l.flashes = l.flashes[:0]
}

func (l *ExplosionLayer) Render(_ *Frame, c *Canvas) {
	now := l.clock.Now()
	l.flashes = slices.DeleteFunc(l.flashes, func(fl flash) bool {
		return !fl.expires.After(now)
	})

	for _, fl := range l.flashes {
		style := fg(RgbExplosion)
		if fl.enemy {
			style = fg(RgbExplosionEnemy)
		}
		col, row := c.Cell(fl.x, fl.y)
		c.Set(col, row, '*', style)
		if fl.large {
			c.Set(col-1, row, '*', style)
			c.Set(col+1, row, '*', style)
			c.Set(col, row-1, '*', style)
			c.Set(col, row+1, '*', style)
		}
	}
}

package system

import (
	"testing"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
)

type fieldFixture struct {
	clock *engine.MockTimeProvider
	state *engine.GameState
	queue *event.EventQueue
	field *Field
}

func newFieldFixture(t *testing.T, coop bool, lives int) *fieldFixture {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	state := engine.NewGameState(clock, coop, lives)
	q := event.NewEventQueue()
	field := NewField(state, &event.Emitter{Queue: q}, nil)
	return &fieldFixture{clock: clock, state: state, queue: q, field: field}
}

// placeShip puts a ship for player p with its center at x, y
func (f *fieldFixture) placeShip(p, x, y int) *component.Ship {
	s := component.NewShip(f.clock, p, x, y)
	s.Y = y - s.H/2
	f.field.Ships[p] = s
	return s
}

// bulletAt fires a bullet whose hitbox is centered on x, y
func (f *fieldFixture) bulletAt(x, y, speedY, owner int) *component.Bullet {
	if owner == 0 {
		f.field.Fire(x, y, 0, speedY)
	} else {
		f.field.FirePlayer(x, y, 0, speedY, owner)
	}
	items := f.field.Bullets.Items()
	b := items[len(items)-1]
	b.Y = y - b.H/2
	return b
}

func (f *fieldFixture) eventTypes() []event.EventType {
	var out []event.EventType
	for _, ev := range f.queue.Consume() {
		out = append(out, ev.Type)
	}
	return out
}

// fixedDrop always yields the same item
type fixedDrop struct {
	kind  component.ItemKind
	calls int
}

func (d *fixedDrop) Drop(*component.EnemyShip) (component.ItemKind, bool) {
	d.calls++
	return d.kind, d.kind != component.ItemNone
}

func centerOf(r core.Rect) (int, int) {
	return r.CenterX(), r.CenterY()
}

package system

import (
	"sync/atomic"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/status"
)

// Field is the transient playfield of one encounter
// Ships, bullets, items and enemies live here and are discarded with the encounter
type Field struct {
	State  *engine.GameState
	Events *event.Emitter

	Ships   [parameter.NumPlayers]*component.Ship // nil for inactive slots
	Bullets *engine.LiveSet[component.Bullet]
	Items   *engine.LiveSet[component.Item]

	Formation *Formation           // Wave formation or boss minions
	Special   *component.EnemyShip // Bonus ship, nil when absent
	Boss      *Boss

	Width, Height, HUDLine int

	bulletPool *engine.Pool[component.Bullet]
	itemPool   *engine.Pool[component.Item]

	statBullets *atomic.Int64
	statItems   *atomic.Int64
}

// NewField creates an empty playfield with fresh pools
func NewField(state *engine.GameState, events *event.Emitter, reg *status.Registry) *Field {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Field{
		State:       state,
		Events:      events,
		Bullets:     engine.NewLiveSet[component.Bullet](64),
		Items:       engine.NewLiveSet[component.Item](8),
		Width:       parameter.ScreenWidth,
		Height:      parameter.ScreenHeight,
		HUDLine:     parameter.SeparationLineHeight,
		bulletPool:  engine.NewPool(component.NewBullet, component.ResetBullet),
		itemPool:    engine.NewPool(component.NewItem, component.ResetItem),
		statBullets: reg.Ints.Get("combat.bullets"),
		statItems:   reg.Ints.Get("combat.items"),
	}
}

// Fire spawns an enemy bullet, satisfying BulletEmitter for the boss and formations
func (f *Field) Fire(x, y, vx, vy int) {
	b := f.bulletPool.Get()
	b.Arm(x, y, vx, vy, 0)
	f.Bullets.Add(b)
}

// FirePlayer spawns a player bullet owned by the one-based owner id
func (f *Field) FirePlayer(x, y, vx, vy, owner int) {
	b := f.bulletPool.Get()
	b.Arm(x, y, vx, vy, owner)
	f.Bullets.Add(b)
}

// SpawnItem drops an item centered on x, y
func (f *Field) SpawnItem(kind component.ItemKind, x, y int) *component.Item {
	it := f.itemPool.Get()
	it.Place(kind, x, y)
	f.Items.Add(it)
	return it
}

// RecycleBullets removes marked bullets and returns them to the pool in one batch
func (f *Field) RecycleBullets(marked map[*component.Bullet]struct{}) {
	f.bulletPool.Put(f.Bullets.Sweep(marked)...)
}

// RecycleItems removes marked items and returns them to the pool in one batch
func (f *Field) RecycleItems(marked map[*component.Item]struct{}) {
	f.itemPool.Put(f.Items.Sweep(marked)...)
}

// Advance moves bullets and items one tick
func (f *Field) Advance() {
	for _, b := range f.Bullets.Items() {
		b.Update()
	}
	for _, it := range f.Items.Items() {
		it.Update()
	}
}

// CleanBullets recycles bullets that crossed the HUD line or left the bottom edge
func (f *Field) CleanBullets() {
	var marked map[*component.Bullet]struct{}
	for _, b := range f.Bullets.Items() {
		if b.OutOfBounds(f.HUDLine, f.Height) {
			if marked == nil {
				marked = make(map[*component.Bullet]struct{})
			}
			marked[b] = struct{}{}
		}
	}
	f.RecycleBullets(marked)
	f.statBullets.Store(int64(f.Bullets.Len()))
}

// CleanItems recycles items that fell below the bottom edge
func (f *Field) CleanItems() {
	var marked map[*component.Item]struct{}
	for _, it := range f.Items.Items() {
		if it.Y > f.Height {
			if marked == nil {
				marked = make(map[*component.Item]struct{})
			}
			marked[it] = struct{}{}
		}
	}
	f.RecycleItems(marked)
	f.statItems.Store(int64(f.Items.Len()))
}

// Clear recycles every bullet and item, used on defeat cleanup and encounter end
func (f *Field) Clear() {
	f.bulletPool.Put(f.Bullets.Drain()...)
	f.itemPool.Put(f.Items.Drain()...)
	f.statBullets.Store(0)
	f.statItems.Store(0)
}

// ActiveShips returns ships of players still in play, in player order
func (f *Field) ActiveShips() []*component.Ship {
	out := make([]*component.Ship, 0, parameter.NumPlayers)
	for p, s := range f.Ships {
		if s != nil && f.State.PlayerAlive(p) {
			out = append(out, s)
		}
	}
	return out
}

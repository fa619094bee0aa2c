package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/status"
)

// Pickups resolves ship-item overlaps and keeps inventories in sync with GameState
type Pickups struct {
	field       *Field
	Inventories [parameter.NumPlayers]*Inventory

	statCollects *atomic.Int64
	statRejected *atomic.Int64
}

// NewPickups creates one inventory per player slot
func NewPickups(field *Field, reg *status.Registry) *Pickups {
	if reg == nil {
		reg = status.NewRegistry()
	}
	p := &Pickups{
		field:        field,
		statCollects: reg.Ints.Get("loot.collects"),
		statRejected: reg.Ints.Get("loot.rejected"),
	}
	for i := range p.Inventories {
		p.Inventories[i] = NewInventory(field.State, i)
	}
	return p
}

// Update consumes each overlapped item at most once and recycles collected items in one batch
func (p *Pickups) Update() {
	var collected map[*component.Item]struct{}
	ships := p.field.ActiveShips()

	for _, it := range p.field.Items.Items() {
		for _, ship := range ships {
			if ship.Destroyed || !it.Overlaps(&ship.Entity) {
				continue
			}
			if collected == nil {
				collected = make(map[*component.Item]struct{})
			}
			// First overlapping ship takes it, the rest never see it
			collected[it] = struct{}{}
			p.apply(ship.Player, it)
			break
		}
	}

	p.field.RecycleItems(collected)
}

func (p *Pickups) apply(player int, it *component.Item) {
	gs := p.field.State
	prof := component.ItemProfiles[it.Kind]

	switch {
	case it.Kind.IsDuration():
		if ApplyDurationEffect(gs, player, prof.Effect, prof.Magnitude, prof.Duration) {
			p.Inventories[player].Add(prof.Effect)
		} else {
			p.statRejected.Add(1)
		}
	case prof.Coins > 0:
		gs.AddCoins(player, prof.Coins)
	case prof.Lives > 0:
		gs.GrantLife(player)
	}

	p.statCollects.Add(1)
	p.field.Events.Sound(core.SoundPickup)
	p.field.Events.Emit(event.EventItemCollected, &event.ItemPayload{Kind: int(it.Kind), Player: player, X: it.X, Y: it.Y})
}

// Expire drops lapsed effects then frees their inventory slots
func (p *Pickups) Expire() {
	p.field.State.UpdateEffects()
	for _, inv := range p.Inventories {
		inv.Update()
	}
}

// Use consumes the player's held duration effect
func (p *Pickups) Use(player int) bool {
	if player < 0 || player >= len(p.Inventories) {
		return false
	}
	if !UseItem(p.field.State, player) {
		return false
	}
	p.Inventories[player].Update()
	return true
}

// Remaining returns time left in a player's inventory slot, for the HUD
func (p *Pickups) Remaining(player, slot int) time.Duration {
	if player < 0 || player >= len(p.Inventories) {
		return 0
	}
	return p.Inventories[player].RemainingDuration(slot)
}

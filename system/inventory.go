package system

import (
	"time"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// EffectReader reports effect liveness for inventory upkeep
type EffectReader interface {
	HasEffect(p int, t engine.EffectType) bool
	RemainingDuration(p int, t engine.EffectType) time.Duration
}

// Inventory mirrors a player's active effects in fixed display slots
type Inventory struct {
	effects EffectReader
	player  int
	slots   [parameter.InventorySlots]engine.EffectType
}

// NewInventory creates an empty inventory for the player index
func NewInventory(effects EffectReader, player int) *Inventory {
	return &Inventory{effects: effects, player: player}
}

// Add places t in the first empty slot
// A type already held counts as success without a new slot; a full inventory rejects
func (inv *Inventory) Add(t engine.EffectType) bool {
	if t == engine.EffectNone {
		return false
	}
	for _, s := range inv.slots {
		if s == t {
			return true
		}
	}
	for i, s := range inv.slots {
		if s == engine.EffectNone {
			inv.slots[i] = t
			return true
		}
	}
	return false
}

// Update frees slots whose effect is no longer active
func (inv *Inventory) Update() {
	for i, s := range inv.slots {
		if s != engine.EffectNone && !inv.effects.HasEffect(inv.player, s) {
			inv.slots[i] = engine.EffectNone
		}
	}
}

// IsFull reports whether every slot is occupied
func (inv *Inventory) IsFull() bool {
	for _, s := range inv.slots {
		if s == engine.EffectNone {
			return false
		}
	}
	return true
}

// Slot returns the effect in slot i, EffectNone when empty or out of range
func (inv *Inventory) Slot(i int) engine.EffectType {
	if i < 0 || i >= len(inv.slots) {
		return engine.EffectNone
	}
	return inv.slots[i]
}

// RemainingDuration returns time left on the effect in slot i
func (inv *Inventory) RemainingDuration(i int) time.Duration {
	t := inv.Slot(i)
	if t == engine.EffectNone {
		return 0
	}
	return inv.effects.RemainingDuration(inv.player, t)
}

// Clear empties every slot
func (inv *Inventory) Clear() {
	inv.slots = [parameter.InventorySlots]engine.EffectType{}
}

// Player returns the owning player index
func (inv *Inventory) Player() int {
	return inv.player
}

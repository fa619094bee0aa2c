package system

import (
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/status"
)

// DropOracle decides whether a destroyed enemy leaves an item
type DropOracle interface {
	Drop(enemy *component.EnemyShip) (component.ItemKind, bool)
}

type lootEntry struct {
	Item     component.ItemKind
	BaseRate float64
	Misses   int // Consecutive misses for this item
}

// LootTable rolls drops per enemy kind with a pity counter per entry
type LootTable struct {
	state  *engine.GameState
	rng    *rand.Rand
	tables [component.EnemyKindCount][]lootEntry

	statDrops *atomic.Int64
	statRolls *atomic.Int64
}

// NewLootTable builds tables from component.EnemyDropTables
func NewLootTable(state *engine.GameState, rng *rand.Rand, reg *status.Registry) *LootTable {
	if reg == nil {
		reg = status.NewRegistry()
	}
	t := &LootTable{
		state:     state,
		rng:       rng,
		statDrops: reg.Ints.Get("loot.drops"),
		statRolls: reg.Ints.Get("loot.rolls"),
	}
	for kind, entries := range component.EnemyDropTables {
		for _, e := range entries {
			t.tables[kind] = append(t.tables[kind], lootEntry{Item: e.Item, BaseRate: e.BaseRate})
		}
	}
	return t
}

// blacklisted skips entries that would be wasted, a life when every pool is capped
func (t *LootTable) blacklisted(kind component.ItemKind) bool {
	if kind != component.ItemLife || t.state == nil {
		return false
	}
	if t.state.SharedLives {
		return t.state.TeamLives() >= parameter.MaxLives
	}
	return t.state.PlayerLives(0) >= parameter.MaxLives
}

// Drop rolls once; each entry's chance is BaseRate scaled by (1 + misses), normalized when the total reaches 1
func (t *LootTable) Drop(enemy *component.EnemyShip) (component.ItemKind, bool) {
	if enemy == nil || int(enemy.Kind) >= len(t.tables) {
		return component.ItemNone, false
	}
	entries := t.tables[enemy.Kind]
	t.statRolls.Add(1)

	type candidate struct {
		index int
		rate  float64
	}
	candidates := make([]candidate, 0, len(entries))
	var totalRate float64
	for i := range entries {
		if t.blacklisted(entries[i].Item) {
			continue
		}
		rate := entries[i].BaseRate * float64(1+entries[i].Misses)
		candidates = append(candidates, candidate{i, rate})
		totalRate += rate
	}
	if len(candidates) == 0 {
		return component.ItemNone, false
	}
	if totalRate >= 1.0 {
		for j := range candidates {
			candidates[j].rate /= totalRate
		}
	}

	roll := t.rng.Float64()
	var cumulative float64
	dropped := -1
	for _, c := range candidates {
		cumulative += c.rate
		if roll < cumulative {
			dropped = c.index
			break
		}
	}

	for _, c := range candidates {
		if c.index == dropped {
			entries[c.index].Misses = 0
		} else {
			entries[c.index].Misses++
		}
	}

	if dropped < 0 {
		return component.ItemNone, false
	}
	t.statDrops.Add(1)
	return entries[dropped].Item, true
}

// Misses exposes the pity counter of an entry for the HUD debug overlay and tests
func (t *LootTable) Misses(enemy component.EnemyKind, item component.ItemKind) int {
	for _, e := range t.tables[enemy] {
		if e.Item == item {
			return e.Misses
		}
	}
	return 0
}

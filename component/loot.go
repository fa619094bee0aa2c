package component

import "github.com/lixenwraith/void-siege/parameter"

// DropEntry defines a single drop possibility
type DropEntry struct {
	Item     ItemKind
	BaseRate float64
}

var standardDrops = []DropEntry{
	{ItemTripleShot, parameter.LootRateTripleShot},
	{ItemScoreBoost, parameter.LootRateScoreBoost},
	{ItemBulletSpeedUp, parameter.LootRateBulletSpeedUp},
	{ItemCoin, parameter.LootRateCoin},
	{ItemLife, parameter.LootRateLife},
}

func boosted(entries []DropEntry, bonus float64) []DropEntry {
	out := make([]DropEntry, len(entries))
	for i, e := range entries {
		out[i] = DropEntry{Item: e.Item, BaseRate: e.BaseRate + bonus}
	}
	return out
}

// EnemyDropTables indexed by EnemyKind
var EnemyDropTables = [EnemyKindCount][]DropEntry{
	EnemyLight:   standardDrops,
	EnemyMedium:  standardDrops,
	EnemyHeavy:   standardDrops,
	EnemyMinion:  standardDrops,
	EnemySpecial: boosted(standardDrops, parameter.LootRateSpecialBonus),
}

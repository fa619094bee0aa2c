package component

import (
	"time"

	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// ItemKind identifies a collectible
// Duration kinds share their numeric value with engine.EffectType
type ItemKind uint8

const (
	ItemNone          ItemKind = ItemKind(engine.EffectNone)
	ItemTripleShot    ItemKind = ItemKind(engine.EffectTripleShot)
	ItemScoreBoost    ItemKind = ItemKind(engine.EffectScoreBoost)
	ItemBulletSpeedUp ItemKind = ItemKind(engine.EffectBulletSpeedUp)
	ItemCoin          ItemKind = iota
	ItemLife
	ItemKindCount
)

// ItemProfile defines what a pickup grants
// Tagged union: Effect for duration kinds, Coins or Lives for instant kinds
type ItemProfile struct {
	Effect    engine.EffectType
	Magnitude int
	Duration  time.Duration
	Coins     int
	Lives     int
	Rune      rune
}

// ItemProfiles indexed by ItemKind
var ItemProfiles = [ItemKindCount]ItemProfile{
	ItemTripleShot:    {Effect: engine.EffectTripleShot, Magnitude: 1, Duration: parameter.TripleShotDuration, Rune: 'T'},
	ItemScoreBoost:    {Effect: engine.EffectScoreBoost, Magnitude: parameter.ScoreBoostPercent, Duration: parameter.ScoreBoostDuration, Rune: 'S'},
	ItemBulletSpeedUp: {Effect: engine.EffectBulletSpeedUp, Magnitude: parameter.BulletSpeedUpAmount, Duration: parameter.BulletSpeedUpDuration, Rune: 'B'},
	ItemCoin:          {Coins: parameter.CoinPouchValue, Rune: '$'},
	ItemLife:          {Lives: 1, Rune: '+'},
}

// IsDuration reports whether the kind grants a timed effect
func (k ItemKind) IsDuration() bool {
	return k < ItemKindCount && ItemProfiles[k].Effect != engine.EffectNone
}

func (k ItemKind) String() string {
	switch k {
	case ItemTripleShot, ItemScoreBoost, ItemBulletSpeedUp:
		return ItemProfiles[k].Effect.String()
	case ItemCoin:
		return "Coin"
	case ItemLife:
		return "Life"
	default:
		return "None"
	}
}

// Item is a pooled falling collectible
type Item struct {
	Entity
	Kind ItemKind
}

// NewItem allocates an empty item for the pool
func NewItem() *Item {
	return &Item{}
}

// ResetItem clears an item before it returns to the pool
func ResetItem(it *Item) {
	*it = Item{}
}

// Place centers a pooled item on x, y
func (it *Item) Place(kind ItemKind, x, y int) {
	it.Entity = Entity{
		Rect: core.Rect{X: x - parameter.ItemWidth/2, Y: y - parameter.ItemHeight/2, W: parameter.ItemWidth, H: parameter.ItemHeight},
		Team: core.TeamNeutral,
	}
	it.Kind = kind
}

// Update makes the item fall one tick
func (it *Item) Update() {
	it.Y += parameter.ItemFallSpeed
}

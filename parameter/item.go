package parameter

import "time"

// Items
const (
	// ItemWidth is the item hitbox width
	ItemWidth = 14

	// ItemHeight is the item hitbox height
	ItemHeight = 14

	// ItemFallSpeed is the pixels an item falls per tick
	ItemFallSpeed = 1

	// InventorySlots is the capacity of the per-player item inventory
	InventorySlots = 2
)

// Duration effects
const (
	// TripleShotDuration is the active window of a triple shot pickup
	TripleShotDuration = 10 * time.Second

	// ScoreBoostDuration is the active window of a score boost pickup
	ScoreBoostDuration = 10 * time.Second

	// BulletSpeedUpDuration is the active window of a bullet speed pickup
	BulletSpeedUpDuration = 10 * time.Second

	// ScoreBoostPercent is the score bonus granted per score boost stack
	ScoreBoostPercent = 50

	// ScoreBoostMaxPercent caps the stacked score bonus
	ScoreBoostMaxPercent = 200

	// BulletSpeedUpAmount is the extra upward bullet speed per stack
	BulletSpeedUpAmount = 2

	// BulletSpeedUpMax caps the stacked bullet speed bonus
	BulletSpeedUpMax = 6
)

// Instant items
const (
	// CoinPouchValue is the coins granted by a coin pickup
	CoinPouchValue = 10

	// MaxLives caps lives granted by pickups and bonus lives
	MaxLives = 9
)

// Loot base rates, scaled by (1 + consecutive misses) until a drop lands
const (
	LootRateTripleShot    = 0.04
	LootRateScoreBoost    = 0.03
	LootRateBulletSpeedUp = 0.03
	LootRateCoin          = 0.05
	LootRateLife          = 0.01

	// LootRateSpecialBonus is added to every entry for the bonus ship
	LootRateSpecialBonus = 0.15
)

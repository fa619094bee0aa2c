package component

import (
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/parameter"
)

// EnemyKind selects enemy stats and drop table
type EnemyKind uint8

const (
	EnemyLight EnemyKind = iota
	EnemyMedium
	EnemyHeavy
	EnemyMinion
	EnemySpecial
	EnemyKindCount // Sentinel for array sizing
)

// EnemyProfile holds the per-kind stats
type EnemyProfile struct {
	HP     int
	Points int
	Coins  int
	W, H   int
}

// EnemyProfiles indexed by EnemyKind
var EnemyProfiles = [EnemyKindCount]EnemyProfile{
	EnemyLight:   {HP: 1, Points: parameter.EnemyPointsA, Coins: parameter.EnemyCoinValue, W: parameter.EnemyWidth, H: parameter.EnemyHeight},
	EnemyMedium:  {HP: 1, Points: parameter.EnemyPointsB, Coins: parameter.EnemyCoinValue, W: parameter.EnemyWidth, H: parameter.EnemyHeight},
	EnemyHeavy:   {HP: 2, Points: parameter.EnemyPointsC, Coins: parameter.EnemyCoinValue, W: parameter.EnemyWidth, H: parameter.EnemyHeight},
	EnemyMinion:  {HP: 1, Points: parameter.EnemyPointsB, Coins: parameter.EnemyCoinValue, W: parameter.EnemyWidth, H: parameter.EnemyHeight},
	EnemySpecial: {HP: 1, Points: parameter.SpecialShipPoints, Coins: parameter.SpecialShipCoinValue, W: parameter.SpecialShipWidth, H: parameter.SpecialShipHeight},
}

// EnemyShip is a formation ship, boss minion or bonus ship
type EnemyShip struct {
	Entity
	Kind EnemyKind
	HP   int
}

// NewEnemyShip creates an enemy of the kind with its top-left at x, y
func NewEnemyShip(kind EnemyKind, x, y int) *EnemyShip {
	prof := EnemyProfiles[kind]
	return &EnemyShip{
		Entity: Entity{Rect: core.Rect{X: x, Y: y, W: prof.W, H: prof.H}, Team: core.TeamEnemy},
		Kind:   kind,
		HP:     prof.HP,
	}
}

// Hit applies one unit of damage and destroys the ship at zero
func (e *EnemyShip) Hit() {
	if e.Destroyed {
		return
	}
	e.HP--
	if e.HP <= 0 {
		e.HP = 0
		e.Destroyed = true
	}
}

// Points returns the base score award
func (e *EnemyShip) Points() int {
	return EnemyProfiles[e.Kind].Points
}

// Coins returns the coin award
func (e *EnemyShip) Coins() int {
	return EnemyProfiles[e.Kind].Coins
}

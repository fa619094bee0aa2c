package component

import (
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// Ship is a player-controlled ship
type Ship struct {
	Entity
	Player int // Zero-based player index
	Hits   int // Times destroyed this session

	shooting    *engine.Cooldown
	destruction *engine.Cooldown
}

// NewShip creates a ship for the player, centered on x with its top at y
func NewShip(clock engine.TimeProvider, player, x, y int) *Ship {
	return &Ship{
		Entity: Entity{
			Rect: core.Rect{X: x - parameter.ShipWidth/2, Y: y, W: parameter.ShipWidth, H: parameter.ShipHeight},
			Team: core.PlayerTeam(player),
		},
		Player:      player,
		shooting:    engine.NewCooldown(clock, parameter.ShipShootingInterval),
		destruction: engine.NewCooldown(clock, parameter.ShipDestructionDuration),
	}
}

// Update restores a destroyed ship once its destruction window passed
func (s *Ship) Update() {
	if s.Destroyed && s.destruction.Finished() {
		s.Destroyed = false
	}
}

// Destroy starts the destruction window
func (s *Ship) Destroy() {
	s.Destroyed = true
	s.destruction.Reset()
}

// AddHit records a hit for the session tally
func (s *Ship) AddHit() {
	s.Hits++
}

// MoveBy shifts horizontally, clamped to the playfield
func (s *Ship) MoveBy(dx, screenWidth int) {
	s.X = max(0, min(s.X+dx, screenWidth-s.W))
}

// TryShoot reports whether the fire cooldown allowed a shot and restarts it
func (s *Ship) TryShoot() bool {
	if s.Destroyed || !s.shooting.Finished() {
		return false
	}
	s.shooting.Reset()
	return true
}

// Muzzle returns where bullets spawn
func (s *Ship) Muzzle() (int, int) {
	return s.CenterX(), s.Y - parameter.BulletHeight
}

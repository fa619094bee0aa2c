package component

import (
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/parameter"
)

// Bullet is a pooled projectile
// Sign of SpeedY encodes the side: positive travels down from enemies, negative up from players
type Bullet struct {
	Entity
	SpeedX int
	SpeedY int
	Owner  int // 1 or 2 for players, 0 for enemies
}

// NewBullet allocates an empty bullet for the pool
func NewBullet() *Bullet {
	return &Bullet{}
}

// ResetBullet clears a bullet before it returns to the pool
func ResetBullet(b *Bullet) {
	*b = Bullet{}
}

// Arm places a pooled bullet for firing
func (b *Bullet) Arm(x, y, speedX, speedY, owner int) {
	w, h := parameter.BulletWidth, parameter.BulletHeight
	team := core.TeamEnemy
	if owner > 0 {
		team = core.PlayerTeam(core.PlayerIndex(owner))
	}
	if owner == 0 && speedY > 0 {
		w, h = parameter.BossBulletWidth, parameter.BossBulletHeight
	}
	b.Entity = Entity{Rect: core.Rect{X: x - w/2, Y: y, W: w, H: h}, Team: team}
	b.SpeedX = speedX
	b.SpeedY = speedY
	b.Owner = owner
}

// IsEnemy reports whether the bullet was fired by the enemy side
func (b *Bullet) IsEnemy() bool {
	return b.SpeedY > 0
}

// Update advances the bullet one tick
func (b *Bullet) Update() {
	b.X += b.SpeedX
	b.Y += b.SpeedY
}

// OutOfBounds reports whether the bullet left the playfield between the HUD line and the bottom edge
func (b *Bullet) OutOfBounds(hudLine, height int) bool {
	return b.Y < hudLine || b.Y > height
}

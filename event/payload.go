package event

import (
	"sync"

	"github.com/lixenwraith/void-siege/core"
)

// SoundRequestPayload contains the sound type to play
type SoundRequestPayload struct {
	SoundType core.SoundType
}

// ExplosionPayload places an explosion flash
type ExplosionPayload struct {
	X, Y  int
	Enemy bool // Enemy side destroyed, drawn in enemy color
	Large bool // Boss-sized flash
}

// PlayerHitPayload reports which player was hit and the lives left afterwards
type PlayerHitPayload struct {
	Player    int
	LivesLeft int
}

// ItemPayload describes a dropped or collected item
type ItemPayload struct {
	Kind   int
	Player int // Collector index, -1 for drops
	X, Y   int
}

// AchievementPayload names an unlocked achievement
type AchievementPayload struct {
	Name string
}

// RevivePayload reports the revive outcome
type RevivePayload struct {
	Success bool
	Reason  string
}

var explosionPool = sync.Pool{
	New: func() any { return &ExplosionPayload{} },
}

// AcquireExplosion returns a pooled payload
func AcquireExplosion() *ExplosionPayload {
	p := explosionPool.Get().(*ExplosionPayload)
	*p = ExplosionPayload{}
	return p
}

// ReleaseExplosion returns payload to pool, consumers call it after drawing
func ReleaseExplosion(p *ExplosionPayload) {
	if p == nil {
		return
	}
	explosionPool.Put(p)
}

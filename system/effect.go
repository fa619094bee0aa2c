package system

import (
	"time"

	"github.com/lixenwraith/void-siege/engine"
)

// EffectStore is the slice of GameState the effect rules touch
type EffectStore interface {
	ActiveDurationEffect(p int) engine.EffectType
	AddEffect(p int, t engine.EffectType, magnitude int, duration time.Duration)
	ClearActiveDurationEffect(p int)
}

// ApplyDurationEffect activates t for player p
// Succeeds when nothing is active or t is already the active effect, which extends it
// Fails without touching state when a different duration effect is active
func ApplyDurationEffect(gs EffectStore, p int, t engine.EffectType, magnitude int, duration time.Duration) bool {
	if t == engine.EffectNone {
		return false
	}
	if active := gs.ActiveDurationEffect(p); active != engine.EffectNone && active != t {
		return false
	}
	gs.AddEffect(p, t, magnitude, duration)
	return true
}

// UseItem consumes the held duration effect, failing when none is held
func UseItem(gs EffectStore, p int) bool {
	if gs.ActiveDurationEffect(p) == engine.EffectNone {
		return false
	}
	gs.ClearActiveDurationEffect(p)
	return true
}

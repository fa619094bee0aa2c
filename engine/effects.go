package engine

import (
	"time"

	"github.com/lixenwraith/void-siege/parameter"
)

// EffectType identifies a duration power-up, zero means none
type EffectType uint8

const (
	EffectNone EffectType = iota
	EffectTripleShot
	EffectScoreBoost
	EffectBulletSpeedUp
)

func (e EffectType) String() string {
	switch e {
	case EffectTripleShot:
		return "TripleShot"
	case EffectScoreBoost:
		return "ScoreBoost"
	case EffectBulletSpeedUp:
		return "BulletSpeedUp"
	default:
		return "None"
	}
}

// effectMagnitudeCap bounds stacking per effect type
var effectMagnitudeCap = map[EffectType]int{
	EffectTripleShot:    1,
	EffectScoreBoost:    parameter.ScoreBoostMaxPercent,
	EffectBulletSpeedUp: parameter.BulletSpeedUpMax,
}

// EffectState is one active timed effect of a player
type EffectState struct {
	Type      EffectType
	Magnitude int
	Expiry    time.Time
}

// AddEffect activates or extends an effect and makes it the player's active duration effect
// Extension adds duration to the later of now and the current expiry; magnitude stacks up to the type cap
// Callers gate conflicts through ActiveDurationEffect
func (gs *GameState) AddEffect(p int, t EffectType, magnitude int, duration time.Duration) {
	if !validPlayer(p) || t == EffectNone {
		return
	}
	now := gs.clock.Now()
	cur, ok := gs.effects[p][t]
	if !ok || !cur.Expiry.After(now) {
		cur = EffectState{Type: t, Expiry: now}
	}
	cur.Expiry = cur.Expiry.Add(duration)
	cur.Magnitude += magnitude
	if limit, ok := effectMagnitudeCap[t]; ok && cur.Magnitude > limit {
		cur.Magnitude = limit
	}
	gs.effects[p][t] = cur
	gs.activeDuration[p] = t
}

// HasEffect reports whether the effect is active and not past its expiry
func (gs *GameState) HasEffect(p int, t EffectType) bool {
	if !validPlayer(p) {
		return false
	}
	cur, ok := gs.effects[p][t]
	return ok && cur.Expiry.After(gs.clock.Now())
}

// Effect returns the state of an active effect
func (gs *GameState) Effect(p int, t EffectType) (EffectState, bool) {
	if !gs.HasEffect(p, t) {
		return EffectState{}, false
	}
	return gs.effects[p][t], true
}

// EffectMagnitude returns the magnitude of an active effect, zero when inactive
func (gs *GameState) EffectMagnitude(p int, t EffectType) int {
	cur, ok := gs.Effect(p, t)
	if !ok {
		return 0
	}
	return cur.Magnitude
}

// RemainingDuration returns time left on an effect, zero when inactive
func (gs *GameState) RemainingDuration(p int, t EffectType) time.Duration {
	cur, ok := gs.Effect(p, t)
	if !ok {
		return 0
	}
	return cur.Expiry.Sub(gs.clock.Now())
}

// ActiveDurationEffect returns the player's active duration effect, EffectNone if none
// A marker whose effect already lapsed reads as none before UpdateEffects sweeps it
func (gs *GameState) ActiveDurationEffect(p int) EffectType {
	if !validPlayer(p) {
		return EffectNone
	}
	t := gs.activeDuration[p]
	if t == EffectNone || !gs.HasEffect(p, t) {
		return EffectNone
	}
	return t
}

// ClearActiveDurationEffect ends the active duration effect and clears the marker
func (gs *GameState) ClearActiveDurationEffect(p int) {
	if !validPlayer(p) {
		return
	}
	if t := gs.activeDuration[p]; t != EffectNone {
		delete(gs.effects[p], t)
	}
	gs.activeDuration[p] = EffectNone
}

// UpdateEffects drops expired effects and clears the active marker of any that expired
func (gs *GameState) UpdateEffects() {
	now := gs.clock.Now()
	for p := range gs.effects {
		for t, cur := range gs.effects[p] {
			if cur.Expiry.After(now) {
				continue
			}
			delete(gs.effects[p], t)
			if gs.activeDuration[p] == t {
				gs.activeDuration[p] = EffectNone
			}
		}
	}
}

// ClearEffects drops every effect of every player
func (gs *GameState) ClearEffects() {
	for p := range gs.effects {
		clear(gs.effects[p])
		gs.activeDuration[p] = EffectNone
	}
}

// BoostedPoints applies the player's score boost percent to a base award
func (gs *GameState) BoostedPoints(p, base int) int {
	pct := gs.EffectMagnitude(p, EffectScoreBoost)
	if pct <= 0 {
		return base
	}
	return base + base*pct/100
}

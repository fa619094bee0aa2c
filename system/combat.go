package system

import (
	"log"
	"sync/atomic"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/status"
)

// ResolveResult summarizes one collision pass for the encounter
type ResolveResult struct {
	PlayerHits     int
	Kills          int
	SpecialKilled  bool
	BossHits       int
	ShieldedHits   int
	BossDefeated   bool
	TeamEliminated bool
}

// Resolver matches live bullets against ships, minions, the bonus ship and the boss
type Resolver struct {
	field *Field
	drops DropOracle

	// TookDamage latches once any player ship is hit during the encounter
	TookDamage bool

	statPlayerHits *atomic.Int64
	statKills      *atomic.Int64
	statBossHits   *atomic.Int64
}

// NewResolver creates a resolver over the field; drops may be nil
func NewResolver(field *Field, drops DropOracle, reg *status.Registry) *Resolver {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Resolver{
		field:          field,
		drops:          drops,
		statPlayerHits: reg.Ints.Get("combat.player_hits"),
		statKills:      reg.Ints.Get("combat.kills"),
		statBossHits:   reg.Ints.Get("combat.boss_hits"),
	}
}

// Resolve runs one pass; consumed bullets are recycled in one batch after the scan
// Hits on player ships are ignored once the level is finished
func (r *Resolver) Resolve(levelFinished bool) ResolveResult {
	var res ResolveResult
	marked := make(map[*component.Bullet]struct{})

	for _, b := range r.field.Bullets.Items() {
		var hit bool
		if b.IsEnemy() {
			hit = r.enemyBullet(b, levelFinished, &res)
		} else {
			hit = r.playerBullet(b, &res)
		}
		if hit {
			marked[b] = struct{}{}
		}
	}

	r.field.RecycleBullets(marked)
	return res
}

func (r *Resolver) enemyBullet(b *component.Bullet, levelFinished bool, res *ResolveResult) bool {
	if levelFinished {
		return false
	}
	gs := r.field.State
	for p, ship := range r.field.Ships {
		if ship == nil || ship.Destroyed || !gs.PlayerAlive(p) || !b.Overlaps(&ship.Entity) {
			continue
		}

		r.field.Events.Explosion(ship.CenterX(), ship.CenterY(), false, false)
		ship.AddHit()
		ship.Destroy()
		r.field.Events.Sound(core.SoundExplosion)
		gs.DecLife(p)
		r.TookDamage = true
		res.PlayerHits++
		r.statPlayerHits.Add(1)

		lives := gs.LivesRemaining()
		r.field.Events.Emit(event.EventPlayerHit, &event.PlayerHitPayload{Player: p, LivesLeft: lives})
		log.Printf("hit on player %d, lives now: %d", p+1, lives)

		if lives == 0 {
			res.TeamEliminated = true
			r.field.Events.Sound(core.SoundLose)
			r.field.Events.Emit(event.EventTeamEliminated, nil)
		}
		return true
	}
	return false
}

func (r *Resolver) playerBullet(b *component.Bullet, res *ResolveResult) bool {
	p := core.PlayerIndex(b.Owner)

	// A bullet that hits a minion never reaches the boss
	if r.hitFormation(b, p, res) {
		return true
	}
	if r.hitSpecial(b, p, res) {
		return true
	}
	return r.hitBoss(b, res)
}

func (r *Resolver) hitFormation(b *component.Bullet, p int, res *ResolveResult) bool {
	f := r.field.Formation
	if f == nil {
		return false
	}
	for _, enemy := range f.Ships() {
		if !b.Overlaps(&enemy.Entity) {
			continue
		}
		enemy.Hit()
		if enemy.Destroyed {
			r.award(enemy, p, res)
			f.Destroy(enemy)
			r.field.Events.Sound(core.SoundInvaderKilled)
		}
		return true
	}
	return false
}

func (r *Resolver) hitSpecial(b *component.Bullet, p int, res *ResolveResult) bool {
	s := r.field.Special
	if s == nil || s.Destroyed || !b.Overlaps(&s.Entity) {
		return false
	}
	s.Hit()
	if s.Destroyed {
		r.award(s, p, res)
		res.SpecialKilled = true
		r.field.Events.Sound(core.SoundInvaderKilled)
	}
	return true
}

// award credits the kill to the bullet owner and rolls a drop
func (r *Resolver) award(enemy *component.EnemyShip, p int, res *ResolveResult) {
	gs := r.field.State
	gs.AddCoins(p, enemy.Coins())
	gs.AddScore(p, gs.BoostedPoints(p, enemy.Points()))
	gs.IncShipsDestroyed(p)
	r.field.Events.Explosion(enemy.CenterX(), enemy.CenterY(), true, false)
	res.Kills++
	r.statKills.Add(1)

	if r.drops == nil {
		return
	}
	if kind, ok := r.drops.Drop(enemy); ok {
		it := r.field.SpawnItem(kind, enemy.CenterX(), enemy.CenterY())
		r.field.Events.Emit(event.EventItemDropped, &event.ItemPayload{Kind: int(kind), Player: -1, X: it.X, Y: it.Y})
	}
}

func (r *Resolver) hitBoss(b *component.Bullet, res *ResolveResult) bool {
	boss := r.field.Boss
	if boss == nil || !boss.Alive() || !b.Overlaps(&boss.Entity) {
		return false
	}

	if boss.Invulnerable() {
		res.ShieldedHits++
		r.field.Events.Sound(core.SoundShieldDeflect)
		r.field.Events.Emit(event.EventBossInvulnerableHit, nil)
	} else {
		boss.OnHit(1)
		res.BossHits++
		r.statBossHits.Add(1)
		r.field.Events.Sound(core.SoundBossHit)
	}

	if !boss.Alive() && !res.BossDefeated {
		res.BossDefeated = true
		r.field.Events.Explosion(boss.CenterX(), boss.CenterY(), true, true)
		r.field.Events.Sound(core.SoundExplosion)
		r.field.Events.Emit(event.EventBossDefeated, nil)
	}
	return true
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/parameter"
)

// TestEnemyBulletHitsFirstShipOnly verifies one bullet destroys at most one ship and costs one life
func TestEnemyBulletHitsFirstShipOnly(t *testing.T) {
	f := newFieldFixture(t, true, 3)
	s1 := f.placeShip(0, 200, 450)
	s2 := f.placeShip(1, 200, 450) // stacked on purpose
	f.bulletAt(200, 450, parameter.EnemyBulletSpeed, 0)

	r := NewResolver(f.field, nil, nil)
	res := r.Resolve(false)

	assert.Equal(t, 1, res.PlayerHits)
	assert.True(t, s1.Destroyed)
	assert.False(t, s2.Destroyed)
	assert.Equal(t, 1, s1.Hits)
	assert.Equal(t, 2, f.state.TeamLives())
	assert.True(t, r.TookDamage)
	assert.Equal(t, 0, f.field.Bullets.Len(), "consumed bullet recycled")
	assert.Contains(t, f.eventTypes(), event.EventPlayerHit)
}

// TestEnemyBulletIgnoredAfterLevelFinished verifies no damage once the level is over
func TestEnemyBulletIgnoredAfterLevelFinished(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	s := f.placeShip(0, 200, 450)
	f.bulletAt(200, 450, parameter.EnemyBulletSpeed, 0)

	res := NewResolver(f.field, nil, nil).Resolve(true)
	assert.Zero(t, res.PlayerHits)
	assert.False(t, s.Destroyed)
	assert.Equal(t, 1, f.field.Bullets.Len())
}

// TestLastLifeLostThenRevive verifies lives 1 to 0 raises elimination and a paid revive restores play
func TestLastLifeLostThenRevive(t *testing.T) {
	f := newFieldFixture(t, true, 1)
	f.placeShip(0, 100, 450)
	f.placeShip(1, 300, 450)
	f.state.AddCoins(0, 60)
	f.bulletAt(100, 450, parameter.EnemyBulletSpeed, 0)

	host := &recordingHost{}
	flow := NewReviveFlow(f.state, host, nil)
	res := NewResolver(f.field, nil, nil).Resolve(false)

	require.True(t, res.TeamEliminated)
	assert.Equal(t, 0, f.state.TeamLives())
	assert.Contains(t, f.eventTypes(), event.EventTeamEliminated)

	flow.Enter()
	require.Equal(t, RevivePrompt, flow.Phase())
	assert.Equal(t, ReviveSelectYes, flow.Selection())

	flow.Update(ReviveInput{Confirm: true})
	assert.Equal(t, RevivePlaying, flow.Phase())
	assert.Equal(t, 1, f.state.TeamLives())
	assert.Equal(t, 10, f.state.TotalCoins())
	assert.Equal(t, []string{"success"}, host.calls)
}

// TestPlayerBulletKillsMinionAwardsOwner verifies score, coins, kill count, drop roll and formation removal
func TestPlayerBulletKillsMinionAwardsOwner(t *testing.T) {
	f := newFieldFixture(t, true, 3)
	f.field.Formation = newTestFormation(f.clock, nil, 2, 1)
	target := f.field.Formation.Ships()[0]
	target.HP = 1
	x, y := centerOf(target.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 2)

	drops := &fixedDrop{kind: component.ItemCoin}
	res := NewResolver(f.field, drops, nil).Resolve(false)

	assert.Equal(t, 1, res.Kills)
	assert.Equal(t, 1, f.field.Formation.Count())
	assert.Equal(t, target.Points(), f.state.Score(1))
	assert.Equal(t, target.Coins(), f.state.Coins(1))
	assert.Equal(t, 1, f.state.ShipsDestroyed(1))
	assert.Zero(t, f.state.Score(0))
	assert.Equal(t, 1, drops.calls)
	require.Equal(t, 1, f.field.Items.Len())
	assert.Equal(t, component.ItemCoin, f.field.Items.Items()[0].Kind)
}

// TestScoreBoostAppliesToKills verifies the boost percent scales awards
func TestScoreBoostAppliesToKills(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	f.field.Formation = newTestFormation(f.clock, nil, 1, 3)
	target := f.field.Formation.Ships()[2] // light row
	f.state.AddEffect(0, engine.EffectScoreBoost, parameter.ScoreBoostPercent, parameter.ScoreBoostDuration)
	x, y := centerOf(target.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)

	NewResolver(f.field, nil, nil).Resolve(false)
	assert.Equal(t, parameter.EnemyPointsA*150/100, f.state.Score(0))
}

// TestMinionKillShieldsBossSameTick verifies a bullet that hits a minion never damages the boss
func TestMinionKillShieldsBossSameTick(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	f.field.Formation = newTestFormation(f.clock, nil, 1, 1)
	minion := f.field.Formation.Ships()[0]
	minion.HP = 1

	boss := NewBoss(0, 0, DefaultBossConfig(), f.field.Formation, nil, BossEvents{}, nil)
	f.field.Boss = boss
	// Boss box over the minion so the bullet overlaps both
	boss.SetPosition(minion.X-10, minion.Y-10)
	x, y := centerOf(minion.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)

	boss.Update()
	require.True(t, boss.Invulnerable())
	res := NewResolver(f.field, nil, nil).Resolve(false)

	assert.Equal(t, 1, res.Kills)
	assert.Zero(t, res.BossHits)
	assert.Zero(t, res.ShieldedHits)
	assert.Equal(t, boss.MaxHP(), boss.HP())

	// Next tick the shield is down and a fresh bullet lands
	boss.Update()
	require.False(t, boss.Invulnerable())
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)
	res = NewResolver(f.field, nil, nil).Resolve(false)
	assert.Equal(t, 1, res.BossHits)
	assert.Equal(t, boss.MaxHP()-1, boss.HP())
}

// TestShieldedBossConsumesBullet verifies shielded hits are reported without damage
func TestShieldedBossConsumesBullet(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	minions := 2
	boss := NewBoss(100, 100, DefaultBossConfig(), MinionCounterFunc(func() int { return minions }), nil, BossEvents{}, nil)
	f.field.Boss = boss
	boss.Update()
	x, y := centerOf(boss.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)

	res := NewResolver(f.field, nil, nil).Resolve(false)
	assert.Equal(t, 1, res.ShieldedHits)
	assert.Equal(t, boss.MaxHP(), boss.HP())
	assert.Equal(t, 0, f.field.Bullets.Len())
	assert.Contains(t, f.eventTypes(), event.EventBossInvulnerableHit)
}

// TestBossDefeatedReported verifies the last hit reports defeat once
func TestBossDefeatedReported(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	boss := NewBoss(100, 100, DefaultBossConfig(), MinionCounterFunc(func() int { return 0 }), nil, BossEvents{}, nil)
	f.field.Boss = boss
	boss.Update()
	boss.OnHit(boss.MaxHP() - 1)
	x, y := centerOf(boss.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)

	res := NewResolver(f.field, nil, nil).Resolve(false)
	assert.True(t, res.BossDefeated)
	assert.Equal(t, 1, res.BossHits)
	assert.Equal(t, 0, boss.HP())
	assert.Equal(t, 1, f.field.Bullets.Len(), "second bullet passes a dead boss")
}

// TestSpecialShipKill verifies the bonus ship is tested after the formation
func TestSpecialShipKill(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	special := component.NewEnemyShip(component.EnemySpecial, 50, parameter.SpecialShipY)
	f.field.Special = special
	x, y := centerOf(special.Rect)
	f.bulletAt(x, y, parameter.PlayerBulletSpeed, 1)

	res := NewResolver(f.field, nil, nil).Resolve(false)
	assert.True(t, res.SpecialKilled)
	assert.True(t, special.Destroyed)
	assert.Equal(t, parameter.SpecialShipPoints, f.state.Score(0))
	assert.Equal(t, parameter.SpecialShipCoinValue, f.state.Coins(0))
}

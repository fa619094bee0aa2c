package encounter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/config"
	"github.com/lixenwraith/void-siege/core"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/input"
	"github.com/lixenwraith/void-siege/parameter"
	"github.com/lixenwraith/void-siege/system"
)

const testBossLevel = 4

func newBossFixture(t *testing.T, cfg system.BossConfig) (*fixture, *BossFight) {
	t.Helper()
	fx := newFixture(t, false, 3, 0)
	fx.state.Level = testBossLevel
	return fx, NewBossFight(fx.deps, cfg, testBossLevel)
}

// TestBossSpawnsCenteredWithMinions verifies placement and the phase 1 shield group
func TestBossSpawnsCenteredWithMinions(t *testing.T) {
	_, bf := newBossFixture(t, system.DefaultBossConfig())
	f := bf.Field()

	require.NotNil(t, f.Boss)
	assert.Equal(t, (f.Width-parameter.BossWidth)/2, f.Boss.X)
	assert.Equal(t, parameter.BossY, f.Boss.Y)
	assert.Equal(t, parameter.MinionGroupP1Width*parameter.MinionGroupP1Height, f.Formation.Count())

	for _, m := range f.Formation.Ships() {
		assert.Equal(t, component.EnemyMinion, m.Kind)
		assert.GreaterOrEqual(t, m.Y, parameter.BossY+parameter.BossHeight+parameter.MinionPadding)
	}
	assert.True(t, bf.Frame().BossLevel)
}

// TestBossShieldedWhileMinionsAlive verifies hits are deflected and the hint appears
func TestBossShieldedWhileMinionsAlive(t *testing.T) {
	fx, bf := newBossFixture(t, system.DefaultBossConfig())

	bf.Tick(input.Snapshot{})
	require.True(t, bf.Boss().Invulnerable())

	bulletOn(bf.Field(), bf.Boss().Rect, 1)
	bf.Tick(input.Snapshot{})

	assert.Equal(t, bf.Boss().MaxHP(), bf.Boss().HP())
	assert.Equal(t, 1, fx.sink.count(event.EventBossInvulnerableHit))
	assert.Equal(t, 1, fx.sink.sounds(core.SoundShieldDeflect))
	assert.Equal(t, []string{MsgMinionsFirst}, bf.Messages())

	fx.source.Advance(parameter.InvulnerableMsgDuration)
	assert.Empty(t, bf.Messages())
}

// TestBossShieldHintCapped verifies the minions hint shows at most three times per fight
func TestBossShieldHintCapped(t *testing.T) {
	fx, bf := newBossFixture(t, system.DefaultBossConfig())
	bf.Tick(input.Snapshot{})

	for range parameter.MaxInvulnerableMsgShows + 1 {
		bulletOn(bf.Field(), bf.Boss().Rect, 1)
		bf.Tick(input.Snapshot{})
		fx.source.Advance(parameter.InvulnerableMsgDuration)
	}

	assert.Equal(t, parameter.MaxInvulnerableMsgShows+1, fx.sink.count(event.EventBossInvulnerableHit))
	assert.Equal(t, parameter.MaxInvulnerableMsgShows, bf.InvulnerableMsgCount())
	assert.Empty(t, bf.Messages())
}

// TestBossPhase2SwapsMinionGroup verifies half HP clears the shield, spawns the larger group and shows the banner
func TestBossPhase2SwapsMinionGroup(t *testing.T) {
	fx, bf := newBossFixture(t, system.DefaultBossConfig())
	bf.Field().Formation.Clear()
	bf.Tick(input.Snapshot{})
	require.False(t, bf.Boss().Invulnerable())

	for range bf.Boss().MaxHP() / 2 {
		bulletOn(bf.Field(), bf.Boss().Rect, 1)
		bf.Tick(input.Snapshot{})
	}

	assert.Equal(t, bf.Boss().MaxHP()/2, bf.Boss().HP())
	assert.Equal(t, system.BossPhase2, bf.Boss().Phase())
	assert.Equal(t, parameter.MinionGroupP2Width*parameter.MinionGroupP2Height, bf.Field().Formation.Count())
	assert.Equal(t, 1, fx.sink.count(event.EventBossPhase2))
	assert.Equal(t, 1, fx.sink.sounds(core.SoundPhase2))
	assert.Equal(t, []string{MsgPhase2}, bf.Messages())

	// Banner wins over the shield hint
	bulletOn(bf.Field(), bf.Boss().Rect, 1)
	bf.Tick(input.Snapshot{})
	assert.Equal(t, 1, bf.InvulnerableMsgCount())
	assert.Equal(t, []string{MsgPhase2}, bf.Messages())
	assert.Equal(t, []string{MsgPhase2}, bf.Frame().Messages)
}

// TestBossVictoryRecordsClearTime verifies the clear time runs from the end of the countdown to the kill
func TestBossVictoryRecordsClearTime(t *testing.T) {
	cfg := system.DefaultBossConfig()
	cfg.MaxHP = 1
	fx, bf := newBossFixture(t, cfg)
	bf.Field().Formation.Clear()

	bf.Tick(input.Snapshot{})
	fx.source.Advance(3 * time.Second)

	bulletOn(bf.Field(), bf.Boss().Rect, 1)
	require.True(t, bf.Tick(input.Snapshot{}))

	assert.False(t, bf.Boss().Alive())
	assert.True(t, bf.LevelFinished())
	assert.True(t, bf.Field().Formation.Empty())
	assert.Equal(t, 3*time.Second, fx.state.BossClearTime())
	assert.Equal(t, 1, fx.sink.count(event.EventBossDefeated))
	assert.True(t, fx.deps.Achievements.IsUnlocked(system.AchievementSurvivor))

	fx.source.Advance(parameter.AchievementToastDuration)
	assert.False(t, bf.Tick(input.Snapshot{}))
	assert.Equal(t, NextContinue, bf.Next())
	assert.Equal(t, 3*time.Second, bf.Elapsed())
}

// TestBossTimerWaitsForCountdown verifies the clear timer starts only when input opens
func TestBossTimerWaitsForCountdown(t *testing.T) {
	fx := newFixture(t, false, 3, parameter.BossInputDelay)
	fx.state.Level = testBossLevel
	bf := NewBossFight(fx.deps, system.DefaultBossConfig(), testBossLevel)

	bf.Tick(input.Snapshot{})
	fx.source.Advance(parameter.BossInputDelay - time.Second)
	bf.Tick(input.Snapshot{})
	assert.Zero(t, bf.Elapsed())

	fx.source.Advance(time.Second)
	bf.Tick(input.Snapshot{})
	fx.source.Advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, bf.Elapsed())
}

// TestBossPauseStopsTimer verifies paused time is not counted against the clear time
func TestBossPauseStopsTimer(t *testing.T) {
	fx, bf := newBossFixture(t, system.DefaultBossConfig())
	bf.Tick(input.Snapshot{})
	fx.source.Advance(time.Second)

	bf.Tick(input.Snapshot{Pause: true})
	fx.source.Advance(10 * time.Second)
	bf.Tick(input.Snapshot{Pause: true})

	assert.Equal(t, time.Second, bf.Elapsed())
}

// TestBossConfigFrom verifies configured values override the defaults and zero keeps them
func TestBossConfigFrom(t *testing.T) {
	cfg := BossConfigFrom(config.BossConfig{MaxHP: 20, SpeedP2: 3}, 640)

	assert.Equal(t, 20, cfg.MaxHP)
	assert.Equal(t, 3, cfg.SpeedP2)
	assert.Equal(t, 640, cfg.ScreenWidth)
	assert.Equal(t, system.DefaultBossConfig().FireEveryP1, cfg.FireEveryP1)
}

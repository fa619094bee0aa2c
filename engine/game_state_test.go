package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-siege/parameter"
)

// TestGameStateDefaults verifies a fresh session starts at level 1 with no boss clear time
func TestGameStateDefaults(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), false, 3)

	assert.Equal(t, 1, gs.Level)
	assert.Equal(t, 1, gs.Players)
	assert.False(t, gs.SharedLives)
	assert.Equal(t, 3, gs.LivesRemaining())
	assert.Equal(t, time.Duration(0), gs.BossClearTime())

	gs.SetBossClearTime(95 * time.Second)
	assert.Equal(t, 95*time.Second, gs.BossClearTime())
}

// TestSharedLivesClampAtZero verifies the co-op pool never goes negative
func TestSharedLivesClampAtZero(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), true, 1)

	require.True(t, gs.PlayerAlive(0))
	require.True(t, gs.PlayerAlive(1))
	gs.DecLife(1)
	assert.Equal(t, 0, gs.TeamLives())
	assert.False(t, gs.TeamAlive())
	assert.False(t, gs.PlayerAlive(0), "shared pool gates both ships")

	gs.DecLife(0)
	assert.Equal(t, 0, gs.TeamLives())

	gs.GrantLife(1)
	assert.Equal(t, 1, gs.TeamLives())
}

// TestSoloLivesPerPlayer verifies per-player lives and the MaxLives cap
func TestSoloLivesPerPlayer(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), false, 2)

	assert.False(t, gs.PlayerAlive(1), "second slot inactive in solo")
	gs.DecLife(0)
	gs.DecLife(0)
	gs.DecLife(0)
	assert.Equal(t, 0, gs.PlayerLives(0))
	assert.Equal(t, 0, gs.TeamLives())

	gs.AddLife(0, 100)
	assert.Equal(t, parameter.MaxLives, gs.PlayerLives(0))
}

// TestSpendCoinsDrainsPlayerOneFirst verifies the combined balance rule
func TestSpendCoinsDrainsPlayerOneFirst(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), true, 3)
	gs.AddCoins(0, 30)
	gs.AddCoins(1, 30)

	require.True(t, gs.SpendCoins(50))
	assert.Equal(t, 0, gs.Coins(0))
	assert.Equal(t, 10, gs.Coins(1))

	assert.False(t, gs.SpendCoins(11))
	assert.Equal(t, 10, gs.TotalCoins(), "failed spend leaves balance")
}

// TestRevivedLevels verifies revive bookkeeping is per level
func TestRevivedLevels(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), false, 3)
	assert.False(t, gs.HasRevivedAt(2))
	gs.MarkRevived(2)
	assert.True(t, gs.HasRevivedAt(2))
	assert.False(t, gs.HasRevivedAt(3))
}

// TestAddEffectExtendsAndCaps verifies same-type extension and magnitude cap
func TestAddEffectExtendsAndCaps(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	gs := NewGameState(clock, false, 3)

	gs.AddEffect(0, EffectScoreBoost, 150, 10*time.Second)
	assert.Equal(t, EffectScoreBoost, gs.ActiveDurationEffect(0))
	assert.Equal(t, 10*time.Second, gs.RemainingDuration(0, EffectScoreBoost))

	clock.Advance(4 * time.Second)
	gs.AddEffect(0, EffectScoreBoost, 150, 10*time.Second)
	assert.Equal(t, 16*time.Second, gs.RemainingDuration(0, EffectScoreBoost), "extends from current expiry")
	assert.Equal(t, parameter.ScoreBoostMaxPercent, gs.EffectMagnitude(0, EffectScoreBoost))
	assert.Equal(t, 300, gs.BoostedPoints(0, 100))
	assert.Equal(t, 100, gs.BoostedPoints(1, 100), "other player unaffected")
}

// TestUpdateEffectsExpires verifies expiry clears the effect and the active marker
func TestUpdateEffectsExpires(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	gs := NewGameState(clock, false, 3)

	gs.AddEffect(0, EffectTripleShot, 1, 10*time.Second)
	clock.Advance(10 * time.Second)
	assert.False(t, gs.HasEffect(0, EffectTripleShot), "expiry instant is inactive")

	gs.UpdateEffects()
	assert.Equal(t, EffectNone, gs.ActiveDurationEffect(0))
	_, ok := gs.Effect(0, EffectTripleShot)
	assert.False(t, ok)

	// Expired effect restarts from now, not from the stale expiry
	gs.AddEffect(0, EffectTripleShot, 1, 10*time.Second)
	assert.Equal(t, 10*time.Second, gs.RemainingDuration(0, EffectTripleShot))
}

// TestActiveDurationEffectLapsesBeforeSweep verifies the marker reads as none once the effect expires
func TestActiveDurationEffectLapsesBeforeSweep(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	gs := NewGameState(clock, false, 3)

	gs.AddEffect(0, EffectTripleShot, 1, time.Second)
	assert.Equal(t, EffectTripleShot, gs.ActiveDurationEffect(0))

	clock.Advance(time.Second + time.Millisecond)
	assert.Equal(t, EffectNone, gs.ActiveDurationEffect(0))

	// A new effect applied before the sweep survives it
	gs.AddEffect(0, EffectScoreBoost, 50, time.Second)
	gs.UpdateEffects()
	assert.Equal(t, EffectScoreBoost, gs.ActiveDurationEffect(0))
	assert.False(t, gs.HasEffect(0, EffectTripleShot))
}

// TestClearActiveDurationEffect verifies consuming the active effect ends it
func TestClearActiveDurationEffect(t *testing.T) {
	gs := NewGameState(NewMockTimeProvider(epoch), false, 3)
	gs.AddEffect(0, EffectBulletSpeedUp, 2, 10*time.Second)

	gs.ClearActiveDurationEffect(0)
	assert.Equal(t, EffectNone, gs.ActiveDurationEffect(0))
	assert.False(t, gs.HasEffect(0, EffectBulletSpeedUp))
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

type recordingUnlocker struct {
	names []string
}

func (u *recordingUnlocker) Unlock(name string) bool {
	u.names = append(u.names, name)
	return true
}

// TestBasicAchievementThresholds verifies First Blood is exact while volume and score are thresholds
func TestBasicAchievementThresholds(t *testing.T) {
	gs := engine.NewGameState(engine.NewMockTimeProvider(testEpoch), true, 3)
	u := &recordingUnlocker{}

	CheckBasicAchievements(gs, u)
	assert.Empty(t, u.names)

	gs.IncShipsDestroyed(1)
	CheckBasicAchievements(gs, u)
	assert.Equal(t, []string{AchievementFirstBlood}, u.names)

	gs.IncShipsDestroyed(0)
	for range parameter.AchievementBulletThreshold {
		gs.IncBulletsShot(0)
	}
	gs.AddScore(0, 1500)
	gs.AddScore(1, 1500)
	u.names = nil
	CheckBasicAchievements(gs, u)
	assert.Equal(t, []string{AchievementBullets, AchievementScore}, u.names)
}

// TestEncounterClearAchievements verifies survivor and accuracy tiers
func TestEncounterClearAchievements(t *testing.T) {
	u := &recordingUnlocker{}
	CheckEncounterClearAchievements(u, false, 10, 10)
	assert.Equal(t, []string{AchievementSurvivor, AchievementSharpshooter, AchievementPerfectShooter}, u.names)

	u.names = nil
	CheckEncounterClearAchievements(u, true, 8, 10)
	assert.Equal(t, []string{AchievementSharpshooter}, u.names)

	u.names = nil
	CheckEncounterClearAchievements(u, true, 0, 0)
	assert.Empty(t, u.names, "no shots, no accuracy awards")
}

// TestClearAchievement verifies only the final wave with an empty formation unlocks Clear
func TestClearAchievement(t *testing.T) {
	u := &recordingUnlocker{}
	CheckClearAchievement(u, 4, 5, true)
	CheckClearAchievement(u, 5, 5, false)
	assert.Empty(t, u.names)
	CheckClearAchievement(u, 5, 5, true)
	assert.Equal(t, []string{AchievementClear}, u.names)

	// The final wave follows the configured ladder
	u = &recordingUnlocker{}
	CheckClearAchievement(u, 2, 2, true)
	assert.Equal(t, []string{AchievementClear}, u.names)
}

// TestBossHitsCountsBossHP verifies boss accuracy counts every point of boss HP as a hit
func TestBossHitsCountsBossHP(t *testing.T) {
	gs := engine.NewGameState(engine.NewMockTimeProvider(testEpoch), false, 3)
	for range 4 {
		gs.IncShipsDestroyed(0)
	}
	assert.Equal(t, 14, BossHits(gs, 10))
	assert.InDelta(t, 0.7, Accuracy(14, 20), 1e-9)
	assert.Zero(t, Accuracy(3, 0))
}

package system

import (
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// Achievement names
const (
	AchievementFirstBlood     = "First Blood"
	AchievementBullets        = "50 Bullets"
	AchievementScore          = "Get 3000 Score"
	AchievementSurvivor       = "Survivor"
	AchievementSharpshooter   = "Sharpshooter"
	AchievementPerfectShooter = "Perfect Shooter"
	AchievementClear          = "Clear"
)

// Unlocker records achievements; repeated unlocks of a name are its concern
type Unlocker interface {
	Unlock(name string) bool
}

// CheckBasicAchievements runs the per-tick counter checks over team totals
func CheckBasicAchievements(gs *engine.GameState, u Unlocker) {
	if gs.TotalShipsDestroyed() == 1 {
		u.Unlock(AchievementFirstBlood)
	}
	if gs.TotalBulletsShot() >= parameter.AchievementBulletThreshold {
		u.Unlock(AchievementBullets)
	}
	if gs.TotalScore() >= parameter.AchievementScoreThreshold {
		u.Unlock(AchievementScore)
	}
}

// Accuracy returns hits over shots, zero without shots
func Accuracy(hits, shots int) float64 {
	if shots <= 0 {
		return 0
	}
	return float64(hits) / float64(shots)
}

// CheckEncounterClearAchievements runs the end-of-encounter checks after a victory
func CheckEncounterClearAchievements(u Unlocker, tookDamage bool, hits, shots int) {
	if !tookDamage {
		u.Unlock(AchievementSurvivor)
	}
	if shots <= 0 {
		return
	}
	if Accuracy(hits, shots) >= parameter.AchievementAccuracyThreshold {
		u.Unlock(AchievementSharpshooter)
	}
	if hits == shots {
		u.Unlock(AchievementPerfectShooter)
	}
}

// CheckClearAchievement unlocks Clear when the final wave level ends with its formation emptied
func CheckClearAchievement(u Unlocker, level, finalWave int, formationEmpty bool) {
	if level == finalWave && formationEmpty {
		u.Unlock(AchievementClear)
	}
}

// BossHits counts boss-fight hits as ships destroyed plus every point of boss HP
func BossHits(gs *engine.GameState, bossMaxHP int) int {
	return gs.TotalShipsDestroyed() + bossMaxHP
}

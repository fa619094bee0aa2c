package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot          SoundType = iota // Player fires
	SoundExplosion                       // Player ship or boss destroyed
	SoundInvaderKilled                   // Formation ship or minion destroyed
	SoundPickup                          // Item collected
	SoundCountdown                       // Countdown beep before input opens
	SoundBossHit                         // Damage landed on the boss
	SoundShieldDeflect                   // Bullet absorbed by invulnerable boss
	SoundPhase2                          // Boss enters phase 2
	SoundLose                            // Team eliminated
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundShoot:
		return "shoot"
	case SoundExplosion:
		return "explosion"
	case SoundInvaderKilled:
		return "invader_killed"
	case SoundPickup:
		return "pickup"
	case SoundCountdown:
		return "countdown"
	case SoundBossHit:
		return "boss_hit"
	case SoundShieldDeflect:
		return "shield_deflect"
	case SoundPhase2:
		return "phase2"
	case SoundLose:
		return "lose"
	default:
		return "unknown"
	}
}

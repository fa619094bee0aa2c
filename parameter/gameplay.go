package parameter

import "time"

// Playfield
const (
	// ScreenWidth is the logical playfield width in pixels
	ScreenWidth = 448

	// ScreenHeight is the logical playfield height in pixels
	ScreenHeight = 520

	// SeparationLineHeight is the HUD band height, bullets above it are recycled
	SeparationLineHeight = 68

	// TargetFPS is the fixed tick rate of the game loop
	TargetFPS = 60

	// TickInterval is the duration of one tick at TargetFPS
	TickInterval = time.Second / TargetFPS
)

// Players and lives
const (
	// NumPlayers is the number of player slots in a session
	NumPlayers = 2

	// InitialLives is the starting life count (team pool in co-op, player 1 in solo)
	InitialLives = 3

	// ExtraLifeFrequency grants a bonus life every N levels
	ExtraLifeFrequency = 3

	// LifeScore is the bonus score awarded per remaining life when an encounter ends
	LifeScore = 100
)

// Encounter timing
const (
	// WaveInputDelay is the countdown before a wave accepts input
	WaveInputDelay = 6 * time.Second

	// BossInputDelay is the countdown before the boss fight accepts input
	BossInputDelay = 6 * time.Second

	// CountdownBeepAt is the elapsed countdown time at which the countdown beep plays
	CountdownBeepAt = 1750 * time.Millisecond

	// ScreenChangeInterval is the delay from level finished to encounter exit
	ScreenChangeInterval = 1500 * time.Millisecond

	// PauseCooldown is the minimum time between pause toggles
	PauseCooldown = 300 * time.Millisecond

	// ReturnMenuCooldown is the minimum time before back-to-menu is accepted while paused
	ReturnMenuCooldown = 300 * time.Millisecond

	// HighScoreNoticeDuration is how long the new high score notice stays on screen
	HighScoreNoticeDuration = 2 * time.Second
)

// Levels
const (
	// DefaultWaveLevels is the number of wave levels before the boss level
	DefaultWaveLevels = 5
)

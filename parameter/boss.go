package parameter

import "time"

// Boss body
const (
	// BossMaxHP is the boss starting hit points
	BossMaxHP = 10

	// BossWidth is the boss hitbox width
	BossWidth = 100

	// BossHeight is the boss hitbox height
	BossHeight = 60

	// BossEdgeMargin keeps the patrol this far from either screen edge
	BossEdgeMargin = 10

	// BossY is the boss lane, just below the HUD and HP bar
	BossY = SeparationLineHeight + 40

	// BossPhase2Threshold is the HP fraction at or below which phase 2 starts
	BossPhase2Threshold = 0.5
)

// Boss cadence, counted in frames
const (
	// BossFireEveryP1 is the phase 1 fire cadence
	BossFireEveryP1 = 90

	// BossFireEveryP2 is the phase 2 fire cadence
	BossFireEveryP2 = 60

	// BossMoveEveryP1 is the phase 1 patrol cadence
	BossMoveEveryP1 = 50

	// BossMoveEveryP2 is the phase 2 patrol cadence
	BossMoveEveryP2 = 80

	// BossStepPx is the base patrol step, multiplied by the phase speed
	BossStepPx = 8

	// BossSpeedP1 is the phase 1 speed multiplier
	BossSpeedP1 = 1

	// BossSpeedP2 is the default phase 2 speed multiplier
	BossSpeedP2 = 2
)

// Boss bullets
const (
	// BossBulletSpeed is the vertical speed of boss bullets
	BossBulletSpeed = 3

	// BossBulletWidth is the boss bullet hitbox width
	BossBulletWidth = 6

	// BossBulletHeight is the boss bullet hitbox height
	BossBulletHeight = 10

	// BossSpreadP1 is the phase 1 bullet count
	BossSpreadP1 = 3

	// BossSpreadP2 is the phase 2 bullet count
	BossSpreadP2 = 5
)

// Minion groups
const (
	// MinionGroupP1Width and MinionGroupP1Height size the phase 1 shield group
	MinionGroupP1Width  = 5
	MinionGroupP1Height = 2

	// MinionGroupP2Width and MinionGroupP2Height size the phase 2 group
	MinionGroupP2Width  = 5
	MinionGroupP2Height = 3

	// MinionPadding is the gap between the boss and its minions
	MinionPadding = 20

	// MinionSpeedP1 and MinionSpeedP2 are the minion step cadences in frames
	MinionSpeedP1 = 100
	MinionSpeedP2 = 90

	// MinionShootingIntervalP1 and MinionShootingIntervalP2 are the minion fire intervals
	MinionShootingIntervalP1 = 2000 * time.Millisecond
	MinionShootingIntervalP2 = 1500 * time.Millisecond
)

// Boss messages
const (
	// InvulnerableMsgDuration is how long the minions-first hint stays visible
	InvulnerableMsgDuration = 1 * time.Second

	// MaxInvulnerableMsgShows caps how often the minions-first hint appears per fight
	MaxInvulnerableMsgShows = 3

	// Phase2MsgDuration is how long the phase 2 banner stays visible
	Phase2MsgDuration = 2 * time.Second

	// BossLevel is the level on which the boss clear timer runs
	BossLevel = DefaultWaveLevels + 1
)

package parameter

import "time"

// Revive
const (
	// ReviveCost is the coin price of a revive
	ReviveCost = 50
)

// Achievements
const (
	// AchievementBulletThreshold unlocks the bullet volume achievement
	AchievementBulletThreshold = 50

	// AchievementScoreThreshold unlocks the score achievement
	AchievementScoreThreshold = 3000

	// AchievementAccuracyThreshold unlocks the sharpshooter achievement
	AchievementAccuracyThreshold = 0.8

	// AchievementToastDuration is how long an unlock toast stays visible
	AchievementToastDuration = 2 * time.Second
)

// High scores
const (
	// MaxHighScores is the number of records kept per mode
	MaxHighScores = 7

	// MinNameLength and MaxNameLength bound the record name
	MinNameLength = 3
	MaxNameLength = 5
)

// Engine
const (
	// EventQueueSize is the event ring capacity, must be a power of two
	EventQueueSize = 256

	// EventBufferMask is EventQueueSize - 1 for index wrapping
	EventBufferMask = EventQueueSize - 1

	// KeyHoldDuration is how long a key press counts as held, terminals send no key-up
	KeyHoldDuration = 120 * time.Millisecond
)

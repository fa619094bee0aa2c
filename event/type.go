package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Audio Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Encounters, combat resolver, countdown
	// Consumer: audio.Service | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Visual Event ===

	// EventExplosion requests an explosion flash at a position
	// Trigger: Resolver on ship, minion or boss destruction
	// Consumer: render.Renderer | Payload: *ExplosionPayload
	EventExplosion

	// === Combat Event ===

	// EventPlayerHit signals an enemy bullet destroyed a player ship
	// Trigger: Resolver | Consumer: Encounter log, HUD | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventTeamEliminated signals lives reached zero mid-encounter
	// Trigger: Resolver | Consumer: Encounter revive flow | Payload: nil
	EventTeamEliminated

	// EventBossInvulnerableHit signals a player bullet struck the shielded boss
	// Trigger: Resolver | Consumer: BossFight message, audio | Payload: nil
	EventBossInvulnerableHit

	// EventBossPhase2 signals the boss crossed its phase threshold
	// Trigger: Boss phase hook | Consumer: BossFight message, audio | Payload: nil
	EventBossPhase2

	// EventBossDefeated signals boss HP reached zero
	// Trigger: Resolver | Consumer: BossFight | Payload: nil
	EventBossDefeated

	// === Item Event ===

	// EventItemDropped signals a kill produced an item
	// Trigger: Resolver via DropOracle | Consumer: HUD log | Payload: *ItemPayload
	EventItemDropped

	// EventItemCollected signals a pickup was applied to a player
	// Trigger: Pickup system | Consumer: audio, HUD | Payload: *ItemPayload
	EventItemCollected

	// === Session Event ===

	// EventAchievementUnlocked signals a first-time unlock
	// Trigger: achievement.Manager | Consumer: HUD toast | Payload: *AchievementPayload
	EventAchievementUnlocked

	// EventLevelFinished signals the encounter reached its end condition
	// Trigger: Encounter | Consumer: Session | Payload: nil
	EventLevelFinished

	// EventReviveResolved signals the revive flow left the prompt
	// Trigger: ReviveFlow | Consumer: Encounter log | Payload: *RevivePayload
	EventReviveResolved
)

// GameEvent is one queued event with the frame it was emitted on
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

func (t EventType) String() string {
	return GetEventName(t)
}

package event

var typeToName = make(map[EventType]string)

// RegisterType names an EventType for logs and the debug overlay
func RegisterType(name string, et EventType) {
	typeToName[et] = name
}

// GetEventName returns the registered name, "Unknown" if unregistered
func GetEventName(et EventType) string {
	if n, ok := typeToName[et]; ok {
		return n
	}
	return "Unknown"
}

func init() {
	RegisterType("None", EventNone)
	RegisterType("SoundRequest", EventSoundRequest)
	RegisterType("Explosion", EventExplosion)
	RegisterType("PlayerHit", EventPlayerHit)
	RegisterType("TeamEliminated", EventTeamEliminated)
	RegisterType("BossInvulnerableHit", EventBossInvulnerableHit)
	RegisterType("BossPhase2", EventBossPhase2)
	RegisterType("BossDefeated", EventBossDefeated)
	RegisterType("ItemDropped", EventItemDropped)
	RegisterType("ItemCollected", EventItemCollected)
	RegisterType("AchievementUnlocked", EventAchievementUnlocked)
	RegisterType("LevelFinished", EventLevelFinished)
	RegisterType("ReviveResolved", EventReviveResolved)
}

package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Per-player gameplay intents, sampled as held
	IntentMoveLeft
	IntentMoveRight
	IntentFire

	// Per-player edge-triggered
	IntentUseItem

	// Shared intents, edge-triggered
	IntentPause       // toggles pause, gated by cooldown in the encounter
	IntentBack        // return to menu while paused
	IntentUp          // revive prompt / menu selection
	IntentDown        // revive prompt / menu selection
	IntentConfirm     // revive prompt / menu confirm
	IntentQuit        // Ctrl+C, q
	IntentToggleMute  // m
	IntentToggleDebug // F1, debug overlay

	intentCount
)

// heldIntent reports whether the intent is sampled as continuous hold rather than a press edge
func heldIntent(t IntentType) bool {
	return t == IntentMoveLeft || t == IntentMoveRight || t == IntentFire
}

// PlayerIntents holds one player's sampled gameplay intents
type PlayerIntents struct {
	Left    bool
	Right   bool
	Fire    bool
	UseItem bool
}

// Snapshot is the intent set sampled once per tick
type Snapshot struct {
	Players [2]PlayerIntents

	Pause       bool
	Back        bool
	Up          bool
	Down        bool
	Confirm     bool
	Quit        bool
	ToggleMute  bool
	ToggleDebug bool
}

// Player returns intents for the 0-based player index, zero value when out of range
func (s Snapshot) Player(p int) PlayerIntents {
	if p < 0 || p >= len(s.Players) {
		return PlayerIntents{}
	}
	return s.Players[p]
}

// Source supplies per-tick intent snapshots to the game loop
type Source interface {
	Poll() Snapshot
}

// SourceFunc adapts a function to Source
type SourceFunc func() Snapshot

func (f SourceFunc) Poll() Snapshot { return f() }

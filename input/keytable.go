package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyEntry binds a key to an intent for a player
// Player 0 marks a shared intent, 1 and 2 are the players
type KeyEntry struct {
	Player int
	Intent IntentType
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Printable runes, matched lower-cased
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
// Player 1 plays on the arrows, player 2 on a/d/w
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyLeft:   {1, IntentMoveLeft},
			tcell.KeyRight:  {1, IntentMoveRight},
			tcell.KeyUp:     {0, IntentUp},
			tcell.KeyDown:   {0, IntentDown},
			tcell.KeyEnter:  {0, IntentConfirm},
			tcell.KeyEscape: {0, IntentPause},
			tcell.KeyCtrlC:  {0, IntentQuit},
			tcell.KeyF1:     {0, IntentToggleDebug},
		},
		Runes: map[rune]KeyEntry{
			' ': {1, IntentFire},
			'/': {1, IntentUseItem},
			'a': {2, IntentMoveLeft},
			'd': {2, IntentMoveRight},
			'w': {2, IntentFire},
			'e': {2, IntentUseItem},
			'p': {0, IntentPause},
			'b': {0, IntentBack},
			'q': {0, IntentQuit},
			'm': {0, IntentToggleMute},
		},
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
	if c.SpecialKeys == nil {
		c.SpecialKeys = make(map[tcell.Key]KeyEntry)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]KeyEntry)
	}
	return c
}

// Lookup resolves a key event to its binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[toLower(ev.Rune())]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

// Keyboard turns tcell key events into per-tick intent snapshots
// Events arrive on the poller goroutine, Poll runs on the game goroutine
type Keyboard struct {
	mu    sync.Mutex
	table *KeyTable
	clock engine.TimeProvider
	hold  time.Duration

	// Indexed [player][intent], player 0 is shared
	lastSeen [3][intentCount]time.Time
	pressed  [3][intentCount]bool
}

// NewKeyboard creates a keyboard over the given table; nil table uses defaults
func NewKeyboard(table *KeyTable, clock engine.TimeProvider) *Keyboard {
	if table == nil {
		table = DefaultKeyTable()
	}
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &Keyboard{
		table: table,
		clock: clock,
		hold:  parameter.KeyHoldDuration,
	}
}

// SetHoldDuration overrides how long a key press counts as held
func (k *Keyboard) SetHoldDuration(d time.Duration) {
	k.mu.Lock()
	k.hold = d
	k.mu.Unlock()
}

// HandleEvent records a key event, returns false for events that are not bound keys
func (k *Keyboard) HandleEvent(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	entry, ok := k.table.Lookup(kev)
	if !ok || entry.Intent == IntentNone || entry.Player < 0 || entry.Player > 2 {
		return false
	}

	k.lastSeen[entry.Player][entry.Intent] = k.clock.Now()
	k.pressed[entry.Player][entry.Intent] = true
	return true
}

// Poll samples intents and clears press edges
// Held intents stay active for the hold duration after the last repeat
func (k *Keyboard) Poll() Snapshot {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.clock.Now()
	var s Snapshot

	for p := 1; p <= 2; p++ {
		pi := &s.Players[p-1]
		pi.Left = k.active(p, IntentMoveLeft, now)
		pi.Right = k.active(p, IntentMoveRight, now)
		pi.Fire = k.active(p, IntentFire, now)
		pi.UseItem = k.active(p, IntentUseItem, now)
	}

	s.Pause = k.active(0, IntentPause, now)
	s.Back = k.active(0, IntentBack, now)
	s.Up = k.active(0, IntentUp, now)
	s.Down = k.active(0, IntentDown, now)
	s.Confirm = k.active(0, IntentConfirm, now)
	s.Quit = k.active(0, IntentQuit, now)
	s.ToggleMute = k.active(0, IntentToggleMute, now)
	s.ToggleDebug = k.active(0, IntentToggleDebug, now)

	k.pressed = [3][intentCount]bool{}
	return s
}

// active must be called with mu held
func (k *Keyboard) active(p int, t IntentType, now time.Time) bool {
	if k.pressed[p][t] {
		return true
	}
	if !heldIntent(t) {
		return false
	}
	last := k.lastSeen[p][t]
	return !last.IsZero() && now.Sub(last) < k.hold
}

// Reset drops all held and pressed state, used on screen transitions
func (k *Keyboard) Reset() {
	k.mu.Lock()
	k.lastSeen = [3][intentCount]time.Time{}
	k.pressed = [3][intentCount]bool{}
	k.mu.Unlock()
}

// Pump reads screen events until the screen is finalized
// Unbound events are forwarded to other, which may be nil
func (k *Keyboard) Pump(screen tcell.Screen, other func(tcell.Event)) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !k.HandleEvent(ev) && other != nil {
			other(ev)
		}
	}
}

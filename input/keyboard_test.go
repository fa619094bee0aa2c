package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-siege/engine"
)

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// TestKeyboardHeldWithinWindow verifies movement stays held until the hold window passes
func TestKeyboardHeldWithinWindow(t *testing.T) {
	clock := engine.NewMockTimeProvider(testEpoch)
	kb := NewKeyboard(nil, clock)

	require.True(t, kb.HandleEvent(specialKey(tcell.KeyLeft)))

	s := kb.Poll()
	assert.True(t, s.Players[0].Left)
	assert.False(t, s.Players[0].Right)

	clock.Advance(50 * time.Millisecond)
	assert.True(t, kb.Poll().Players[0].Left, "still inside hold window")

	clock.Advance(100 * time.Millisecond)
	assert.False(t, kb.Poll().Players[0].Left, "hold window expired")
}

// TestKeyboardEdgeIntentsClearOnPoll verifies press-only intents fire exactly once
func TestKeyboardEdgeIntentsClearOnPoll(t *testing.T) {
	clock := engine.NewMockTimeProvider(testEpoch)
	kb := NewKeyboard(nil, clock)

	kb.HandleEvent(runeKey('p'))
	kb.HandleEvent(runeKey('/'))

	s := kb.Poll()
	assert.True(t, s.Pause)
	assert.True(t, s.Players[0].UseItem)

	s = kb.Poll()
	assert.False(t, s.Pause)
	assert.False(t, s.Players[0].UseItem)
}

// TestKeyboardPlayerSeparation verifies player 2 bindings do not leak into player 1
func TestKeyboardPlayerSeparation(t *testing.T) {
	kb := NewKeyboard(nil, engine.NewMockTimeProvider(testEpoch))

	kb.HandleEvent(runeKey('D'))
	kb.HandleEvent(runeKey('w'))

	s := kb.Poll()
	assert.True(t, s.Player(1).Right, "upper-case rune matches")
	assert.True(t, s.Player(1).Fire)
	assert.Equal(t, PlayerIntents{}, s.Player(0))
	assert.Equal(t, PlayerIntents{}, s.Player(5))
}

// TestKeyboardIgnoresUnbound verifies unbound keys and non-key events are not consumed
func TestKeyboardIgnoresUnbound(t *testing.T) {
	kb := NewKeyboard(nil, engine.NewMockTimeProvider(testEpoch))

	assert.False(t, kb.HandleEvent(runeKey('z')))
	assert.False(t, kb.HandleEvent(tcell.NewEventResize(80, 24)))
	assert.Equal(t, Snapshot{}, kb.Poll())
}

// TestKeyboardReset verifies Reset drops held keys
func TestKeyboardReset(t *testing.T) {
	kb := NewKeyboard(nil, engine.NewMockTimeProvider(testEpoch))
	kb.HandleEvent(runeKey(' '))
	kb.Reset()
	assert.False(t, kb.Poll().Players[0].Fire)
}

// TestKeyboardPumpFromSimulationScreen verifies events injected into a screen reach the keyboard
func TestKeyboardPumpFromSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())

	kb := NewKeyboard(nil, engine.NewMockTimeProvider(testEpoch))
	forwarded := make(chan tcell.Event, 4)
	go kb.Pump(screen, func(ev tcell.Event) {
		if _, ok := ev.(*tcell.EventKey); ok {
			forwarded <- ev
		}
	})
	defer screen.Fini()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)

	select {
	case ev := <-forwarded:
		assert.Equal(t, 'z', ev.(*tcell.EventKey).Rune())
	case <-time.After(2 * time.Second):
		t.Fatal("unbound key was not forwarded")
	}
	assert.True(t, kb.Poll().Confirm)
}

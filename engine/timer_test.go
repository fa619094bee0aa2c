package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// TestTimerLifecycle verifies elapsed while running, frozen after stop, zero before start
func TestTimerLifecycle(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	timer := NewTimer(clock)

	assert.Equal(t, time.Duration(0), timer.Elapsed())
	timer.Stop() // no prior start
	assert.Equal(t, time.Duration(0), timer.Elapsed())
	assert.False(t, timer.Running())

	timer.Start()
	clock.Advance(3 * time.Second)
	assert.True(t, timer.Running())
	assert.Equal(t, 3*time.Second, timer.Elapsed())

	timer.Stop()
	clock.Advance(5 * time.Second)
	assert.Equal(t, 3*time.Second, timer.Elapsed(), "frozen after stop")

	// Second stop keeps the first stop time
	timer.Stop()
	assert.Equal(t, 3*time.Second, timer.Elapsed())

	timer.Reset()
	assert.Equal(t, time.Duration(0), timer.Elapsed())
}

// TestBossTimerOnlyOnBossLevel verifies the boss timer ignores other levels
func TestBossTimerOnlyOnBossLevel(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	bt := NewBossTimer(clock, 6)

	assert.False(t, bt.StartAt(5))
	assert.False(t, bt.Running())
	assert.Equal(t, time.Duration(0), bt.Elapsed())

	assert.True(t, bt.StartAt(6))
	clock.Advance(42 * time.Second)
	bt.Stop()
	assert.Equal(t, 42*time.Second, bt.Elapsed())
}

// TestCooldown verifies a fresh cooldown is finished and Reset opens a window
func TestCooldown(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	cd := NewCooldown(clock, 300*time.Millisecond)

	assert.True(t, cd.Finished(), "fresh cooldown")
	cd.Reset()
	assert.False(t, cd.Finished())
	clock.Advance(299 * time.Millisecond)
	assert.False(t, cd.Finished())
	assert.Equal(t, time.Millisecond, cd.Remaining())
	clock.Advance(time.Millisecond)
	assert.True(t, cd.Finished())
	assert.Equal(t, time.Duration(0), cd.Remaining())
}

// TestVariableCooldownWithinBounds verifies variance stays in [duration, duration+variance]
func TestVariableCooldownWithinBounds(t *testing.T) {
	clock := NewMockTimeProvider(epoch)
	cd := NewVariableCooldown(clock, 20*time.Second, 10*time.Second, rand.New(rand.NewSource(1)))

	for range 50 {
		cd.Reset()
		clock.Advance(20*time.Second - time.Nanosecond)
		assert.False(t, cd.Finished())
		clock.Advance(10*time.Second + time.Nanosecond)
		assert.True(t, cd.Finished())
	}
}

// TestPausableClockFreezes verifies cooldowns do not advance while paused
func TestPausableClockFreezes(t *testing.T) {
	source := NewMockTimeProvider(epoch)
	clock := NewPausableClock(source)
	cd := NewCooldown(clock, time.Second)
	cd.Reset()

	clock.Pause()
	source.Advance(10 * time.Second)
	assert.False(t, cd.Finished(), "paused time does not count")
	assert.Equal(t, 10*time.Second, clock.TotalPausedTime())

	clock.Resume()
	source.Advance(999 * time.Millisecond)
	assert.False(t, cd.Finished())
	source.Advance(time.Millisecond)
	assert.True(t, cd.Finished())
	assert.Equal(t, source.Now().Add(-10*time.Second), clock.Now())
}

// TestPausableClockRealKeepsRunning verifies the real view ignores pause
func TestPausableClockRealKeepsRunning(t *testing.T) {
	source := NewMockTimeProvider(epoch)
	clock := NewPausableClock(source)
	cd := NewCooldown(clock.Real(), 300*time.Millisecond)
	cd.Reset()

	clock.Pause()
	source.Advance(300 * time.Millisecond)
	assert.True(t, cd.Finished())
	assert.Equal(t, source.Now(), clock.Real().Now())
}

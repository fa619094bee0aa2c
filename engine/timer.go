package engine

import (
	"math/rand"
	"time"
)

// Timer measures elapsed time between Start and Stop
type Timer struct {
	clock     TimeProvider
	startTime time.Time
	stopTime  time.Time
	started   bool
	running   bool
}

// NewTimer creates a stopped timer reading the given clock
func NewTimer(clock TimeProvider) *Timer {
	return &Timer{clock: clock}
}

// Start records the current time and sets the timer running
func (t *Timer) Start() {
	t.startTime = t.clock.Now()
	t.stopTime = time.Time{}
	t.started = true
	t.running = true
}

// Stop freezes the elapsed value, no-op when not running
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.stopTime = t.clock.Now()
	t.running = false
}

// Reset returns the timer to the never-started state
func (t *Timer) Reset() {
	*t = Timer{clock: t.clock}
}

// Elapsed returns now-start while running, the frozen stop-start afterwards, zero if never started
func (t *Timer) Elapsed() time.Duration {
	switch {
	case !t.started:
		return 0
	case t.running:
		return t.clock.Now().Sub(t.startTime)
	default:
		return t.stopTime.Sub(t.startTime)
	}
}

// Running reports whether the timer is between Start and Stop
func (t *Timer) Running() bool {
	return t.running
}

// BossTimer is a Timer that only runs on the boss level
type BossTimer struct {
	Timer
	bossLevel int
}

// NewBossTimer creates a timer bound to the given boss level
func NewBossTimer(clock TimeProvider, bossLevel int) *BossTimer {
	return &BossTimer{
		Timer:     Timer{clock: clock},
		bossLevel: bossLevel,
	}
}

// StartAt starts the timer if level is the boss level, returns whether it started
func (b *BossTimer) StartAt(level int) bool {
	if level != b.bossLevel {
		return false
	}
	b.Start()
	return true
}

// BossLevel returns the level the timer is bound to
func (b *BossTimer) BossLevel() int {
	return b.bossLevel
}

// Cooldown gates an action to at most once per duration
// A fresh cooldown is finished until the first Reset
type Cooldown struct {
	clock    TimeProvider
	duration time.Duration
	variance time.Duration
	rng      *rand.Rand

	current  time.Duration // duration of the running window, includes variance
	lastTime time.Time
	armed    bool
}

// NewCooldown creates a fixed cooldown
func NewCooldown(clock TimeProvider, duration time.Duration) *Cooldown {
	return &Cooldown{
		clock:    clock,
		duration: duration,
		current:  duration,
	}
}

// NewVariableCooldown creates a cooldown whose window is duration plus a random value in [0, variance]
func NewVariableCooldown(clock TimeProvider, duration, variance time.Duration, rng *rand.Rand) *Cooldown {
	c := NewCooldown(clock, duration)
	c.variance = variance
	c.rng = rng
	return c
}

// Reset starts a new window at the current time
func (c *Cooldown) Reset() {
	c.lastTime = c.clock.Now()
	c.armed = true
	c.current = c.duration
	if c.variance > 0 && c.rng != nil {
		c.current += time.Duration(c.rng.Int63n(int64(c.variance) + 1))
	}
}

// Finished reports whether the current window has passed
func (c *Cooldown) Finished() bool {
	if !c.armed {
		return true
	}
	return c.clock.Now().Sub(c.lastTime) >= c.current
}

// Remaining returns time left in the current window, zero when finished
func (c *Cooldown) Remaining() time.Duration {
	if !c.armed {
		return 0
	}
	left := c.current - c.clock.Now().Sub(c.lastTime)
	if left < 0 {
		return 0
	}
	return left
}

// Elapsed returns time since the last Reset, zero if never reset
func (c *Cooldown) Elapsed() time.Duration {
	if !c.armed {
		return 0
	}
	return c.clock.Now().Sub(c.lastTime)
}

// SetDuration changes the base window, applied from the next Reset
func (c *Cooldown) SetDuration(d time.Duration) {
	c.duration = d
}

// Duration returns the base window
func (c *Cooldown) Duration() time.Duration {
	return c.duration
}

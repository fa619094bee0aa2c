package engine

import (
	"sync"
	"time"
)

// PausableClock provides game time that stops advancing while paused
// Cooldowns and effect expiry read it so a pause does not eat into them
type PausableClock struct {
	mu sync.RWMutex

	source TimeProvider

	isPaused        bool
	pauseStartTime  time.Time     // When current pause started (source time)
	totalPausedTime time.Duration // Cumulative pause duration
}

// NewPausableClock creates a pausable clock over the given source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns current game time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused {
		return pc.pauseStartTime.Add(-pc.totalPausedTime)
	}
	return pc.source.Now().Add(-pc.totalPausedTime)
}

// RealTime returns source time, unaffected by pause
func (pc *PausableClock) RealTime() time.Time {
	return pc.source.Now()
}

// Pause stops game time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time advancement, no-op if not paused
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.isPaused
}

// TotalPausedTime returns cumulative pause duration, including an ongoing pause
func (pc *PausableClock) TotalPausedTime() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if pc.isPaused {
		return pc.totalPausedTime + pc.source.Now().Sub(pc.pauseStartTime)
	}
	return pc.totalPausedTime
}

type realTime struct{ pc *PausableClock }

func (r realTime) Now() time.Time { return r.pc.RealTime() }

// Real returns a TimeProvider over source time that keeps running while paused
// Pause toggles and UI timers read it
func (pc *PausableClock) Real() TimeProvider {
	return realTime{pc}
}

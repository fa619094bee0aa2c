package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually stepped clock for tests
// Encounters, cooldowns and toasts all read it, so one Advance moves the whole session
type MockTimeProvider struct {
	mu     sync.Mutex
	epoch  time.Time
	offset time.Duration
}

func NewMockTimeProvider(epoch time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: epoch}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.epoch.Add(m.offset)
}

// Advance moves the clock forward; negative steps are ignored so Now stays monotonic
func (m *MockTimeProvider) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.offset += d
	}
	return m.epoch.Add(m.offset)
}

// Elapsed returns the total time advanced since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offset
}

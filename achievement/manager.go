// Package achievement tracks unlocked achievements and their on-screen toasts
package achievement

import (
	"log"
	"slices"
	"time"

	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/event"
	"github.com/lixenwraith/void-siege/parameter"
)

// Toast is one unlock notice with its display deadline
type Toast struct {
	Name    string
	Expires time.Time
}

// Manager owns unlock idempotency and the toast queue
type Manager struct {
	clock    engine.TimeProvider
	events   *event.Emitter
	duration time.Duration

	unlocked map[string]struct{}
	order    []string // Unlock order, for saving
	fresh    []string // Unlocked since the last TakeFresh
	toasts   []Toast
}

// NewManager creates an empty manager; events may be nil
func NewManager(clock engine.TimeProvider, events *event.Emitter) *Manager {
	return &Manager{
		clock:    clock,
		events:   events,
		duration: parameter.AchievementToastDuration,
		unlocked: make(map[string]struct{}),
	}
}

// Preload marks achievements from a save as unlocked without toasts
func (m *Manager) Preload(names []string) {
	for _, n := range names {
		if _, ok := m.unlocked[n]; ok {
			continue
		}
		m.unlocked[n] = struct{}{}
		m.order = append(m.order, n)
	}
}

// Unlock records name once and queues a toast; returns false when already unlocked
func (m *Manager) Unlock(name string) bool {
	if _, ok := m.unlocked[name]; ok {
		return false
	}
	m.unlocked[name] = struct{}{}
	m.order = append(m.order, name)
	m.fresh = append(m.fresh, name)

	// Toasts queue behind each other so every one gets its full time
	start := m.clock.Now()
	if n := len(m.toasts); n > 0 && m.toasts[n-1].Expires.After(start) {
		start = m.toasts[n-1].Expires
	}
	m.toasts = append(m.toasts, Toast{Name: name, Expires: start.Add(m.duration)})

	m.events.Emit(event.EventAchievementUnlocked, &event.AchievementPayload{Name: name})
	log.Printf("achievement unlocked: %s", name)
	return true
}

// IsUnlocked reports whether name was unlocked or preloaded
func (m *Manager) IsUnlocked(name string) bool {
	_, ok := m.unlocked[name]
	return ok
}

// Unlocked returns every unlocked name in unlock order
func (m *Manager) Unlocked() []string {
	return slices.Clone(m.order)
}

// TakeFresh returns names unlocked since the previous call, for persisting at encounter end
func (m *Manager) TakeFresh() []string {
	out := m.fresh
	m.fresh = nil
	return out
}

// Update drops toasts past their deadline
func (m *Manager) Update() {
	now := m.clock.Now()
	m.toasts = slices.DeleteFunc(m.toasts, func(t Toast) bool {
		return !t.Expires.After(now)
	})
}

// ActiveToasts returns the toast currently on screen, at most one
func (m *Manager) ActiveToasts() []Toast {
	m.Update()
	if len(m.toasts) == 0 {
		return nil
	}
	return m.toasts[:1]
}

// HasPendingToasts reports whether any toast is still queued or showing
func (m *Manager) HasPendingToasts() bool {
	m.Update()
	return len(m.toasts) > 0
}

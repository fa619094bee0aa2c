package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMetricMapCachesPointer verifies repeated lookups return the same metric
func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("boss.hp")
	b := r.Ints.Get("boss.hp")
	require.Same(t, a, b)

	a.Store(7)
	assert.Equal(t, int64(7), b.Load())
	assert.True(t, r.Ints.Has("boss.hp"))
	assert.False(t, r.Ints.Has("boss.phase"))
}

// TestRegistryLines verifies overlay lines are grouped by type and sorted by key
func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("engine.ticks").Store(3)
	r.Ints.Get("combat.bullets").Store(12)
	r.Strings.Get("encounter.phase").Store("PLAYING")
	r.Bools.Get("engine.paused").Store(true)
	r.Floats.Get("session.accuracy").Set(0.5)

	assert.Equal(t, []string{
		"encounter.phase: PLAYING",
		"combat.bullets: 12",
		"engine.ticks: 3",
		"session.accuracy: 0.50",
		"engine.paused: true",
	}, r.Lines())
	assert.Equal(t, 5, r.TotalCount())
}

// TestAtomicStringTruncates verifies long labels are cut to MaxStringLen
func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	assert.Equal(t, "", s.Load())
	s.Store("abcdefghijklmnopqrstuvwxyz0123")
	assert.Len(t, s.Load(), MaxStringLen)
}

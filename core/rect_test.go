package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRectOverlapsCenterProximity verifies the center distance test is strict on both axes
func TestRectOverlapsCenterProximity(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}), "partial overlap")
	assert.True(t, a.Overlaps(a), "self overlap")

	// Touching edges: center distance equals sum of half extents
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "touching on x")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}), "touching on y")

	// Overlap on one axis only
	assert.False(t, a.Overlaps(Rect{X: 2, Y: 40, W: 10, H: 10}))
}

// TestRectOverlapsOddSizes verifies odd extents are not truncated by integer halving
func TestRectOverlapsOddSizes(t *testing.T) {
	// Centers 2.5 apart on x, half extents 2.5 + 3
	a := Rect{X: 0, Y: 0, W: 5, H: 5}
	b := Rect{X: 2, Y: 0, W: 6, H: 5}
	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a), "symmetric")

	// Bullet inside a large boss box
	boss := Rect{X: 100, Y: 100, W: 100, H: 60}
	bullet := Rect{X: 148, Y: 155, W: 6, H: 10}
	assert.True(t, boss.Overlaps(bullet))
}

// TestPlayerMapping verifies owner ids and indices map to teams consistently
func TestPlayerMapping(t *testing.T) {
	assert.Equal(t, 0, PlayerIndex(1))
	assert.Equal(t, 1, PlayerIndex(2))
	assert.Equal(t, 0, PlayerIndex(0))
	assert.Equal(t, TeamPlayer1, PlayerTeam(0))
	assert.Equal(t, TeamPlayer2, PlayerTeam(1))
	assert.True(t, TeamPlayer2.IsPlayer())
	assert.False(t, TeamEnemy.IsPlayer())
}

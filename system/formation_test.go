package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/engine"
	"github.com/lixenwraith/void-siege/parameter"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestFormation(clock engine.TimeProvider, emitter BulletEmitter, w, h int) *Formation {
	return NewFormation(
		FormationSettings{Width: w, Height: h, BaseSpeed: 10, ShootingInterval: time.Second},
		FormationLayout{
			OriginX: parameter.FormationInitX, OriginY: parameter.FormationInitY,
			MinX: parameter.FormationSideMargin, MaxX: parameter.ScreenWidth - parameter.FormationSideMargin,
			FloorY: 400, Descent: parameter.FormationDescent,
		},
		clock, rand.New(rand.NewSource(7)), emitter,
	)
}

// TestFormationCountAndDestroy verifies the minion count follows removals and clears
func TestFormationCountAndDestroy(t *testing.T) {
	f := newTestFormation(engine.NewMockTimeProvider(testEpoch), nil, 5, 2)
	require.Equal(t, 10, f.Count())
	assert.Equal(t, component.EnemyHeavy, f.Ships()[0].Kind)

	first := f.Ships()[0]
	f.Destroy(first)
	assert.Equal(t, 9, f.Count())
	assert.True(t, first.Destroyed)
	assert.NotContains(t, f.Ships(), first)

	assert.Equal(t, 9, f.Clear())
	assert.True(t, f.Empty())

	var nilFormation *Formation
	assert.Equal(t, 0, nilFormation.Count())
}

// TestFormationTurnsAndDescends verifies the block reverses at the margin and drops a row step
func TestFormationTurnsAndDescends(t *testing.T) {
	f := newTestFormation(engine.NewMockTimeProvider(testEpoch), nil, 1, 1)
	ship := f.Ships()[0]
	startY := ship.Y

	for ship.X+ship.W+parameter.FormationStepX <= parameter.ScreenWidth-parameter.FormationSideMargin {
		x := ship.X
		for range 10 {
			f.Update()
		}
		require.Equal(t, x+parameter.FormationStepX, ship.X)
	}
	for range 10 {
		f.Update()
	}
	assert.Equal(t, startY+parameter.FormationDescent, ship.Y)
	x := ship.X
	for range 10 {
		f.Update()
	}
	assert.Equal(t, x-parameter.FormationStepX, ship.X)
}

// TestFormationShootsFromBottomRow verifies the shot origin and the shooting interval
func TestFormationShootsFromBottomRow(t *testing.T) {
	clock := engine.NewMockTimeProvider(testEpoch)
	em := &recordingEmitter{}
	f := newTestFormation(clock, em, 3, 2)

	assert.False(t, f.Shoot(), "first volley waits an interval")
	clock.Advance(time.Second)
	require.True(t, f.Shoot())
	require.Len(t, em.shots, 1)
	bottomY := parameter.FormationInitY + parameter.FormationSeparation + parameter.EnemyHeight
	assert.Equal(t, bottomY, em.shots[0].y)
	assert.Equal(t, parameter.EnemyBulletSpeed, em.shots[0].vy)
	assert.False(t, f.Shoot())
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/void-siege/component"
	"github.com/lixenwraith/void-siege/parameter"
)

// TestFieldCleansOffscreen verifies bullets above the HUD line or below the screen and fallen items are recycled
func TestFieldCleansOffscreen(t *testing.T) {
	f := newFieldFixture(t, false, 3)
	f.field.FirePlayer(100, parameter.SeparationLineHeight-1, 0, parameter.PlayerBulletSpeed, 1)
	f.field.Fire(100, parameter.ScreenHeight+1, 0, parameter.EnemyBulletSpeed)
	f.field.Fire(100, 300, 0, parameter.EnemyBulletSpeed)
	f.field.SpawnItem(component.ItemCoin, 100, parameter.ScreenHeight+parameter.ItemHeight)
	f.field.SpawnItem(component.ItemCoin, 100, 300)

	f.field.CleanBullets()
	f.field.CleanItems()
	assert.Equal(t, 1, f.field.Bullets.Len())
	assert.Equal(t, 1, f.field.Items.Len())

	f.field.Clear()
	assert.Equal(t, 0, f.field.Bullets.Len())
	assert.Equal(t, 0, f.field.Items.Len())
}

// TestFieldActiveShipsFollowLives verifies eliminated solo players drop out of play
func TestFieldActiveShipsFollowLives(t *testing.T) {
	f := newFieldFixture(t, false, 1)
	f.placeShip(0, 100, 450)
	assert.Len(t, f.field.ActiveShips(), 1)
	f.state.DecLife(0)
	assert.Empty(t, f.field.ActiveShips())
}

package parameter

import "time"

// Player ship
const (
	// ShipWidth is the player ship hitbox width
	ShipWidth = 26

	// ShipHeight is the player ship hitbox height
	ShipHeight = 16

	// ShipSpeed is the horizontal pixels moved per tick while a move intent is held
	ShipSpeed = 2

	// ShipShootingInterval is the minimum time between player shots
	ShipShootingInterval = 750 * time.Millisecond

	// ShipDestructionDuration is how long a hit ship stays destroyed before it can act again
	ShipDestructionDuration = 1 * time.Second

	// ShipSpawnOffsetX is the horizontal offset of each ship from screen center
	ShipSpawnOffsetX = 60

	// ShipSpawnOffsetY is the distance of the ships from the bottom edge
	ShipSpawnOffsetY = 30
)

// Bullets
const (
	// BulletWidth is the bullet hitbox width
	BulletWidth = 6

	// BulletHeight is the bullet hitbox height
	BulletHeight = 10

	// PlayerBulletSpeed is the vertical speed of player bullets (negative is upward)
	PlayerBulletSpeed = -6

	// EnemyBulletSpeed is the vertical speed of formation bullets
	EnemyBulletSpeed = 4

	// TripleShotSpreadX is the horizontal speed of the side bullets of a triple shot
	TripleShotSpreadX = 1

	// TripleShotOffsetX is the horizontal spawn offset of the side bullets
	TripleShotOffsetX = 10
)

// Enemies
const (
	// EnemyWidth is the formation ship hitbox width
	EnemyWidth = 24

	// EnemyHeight is the formation ship hitbox height
	EnemyHeight = 16

	// FormationInitX is the left edge of a fresh formation
	FormationInitX = 20

	// FormationInitY is the top edge of a fresh formation
	FormationInitY = 100

	// FormationSeparation is the pixel distance between formation cells
	FormationSeparation = 40

	// FormationSideMargin is the distance to the screen edge that turns the formation
	FormationSideMargin = 20

	// FormationDescent is the pixels the formation drops when turning
	FormationDescent = 8

	// FormationStepX is the pixels moved per formation step
	FormationStepX = 4

	// FormationFloorMargin is the distance above the bottom edge the formation stops descending at
	FormationFloorMargin = 120

	// FormationMinStepFrames is the fastest formation cadence in frames
	FormationMinStepFrames = 2

	// EnemyPointsA is the score of a light enemy
	EnemyPointsA = 10

	// EnemyPointsB is the score of a medium enemy
	EnemyPointsB = 20

	// EnemyPointsC is the score of a heavy enemy
	EnemyPointsC = 30

	// EnemyCoinValue is the coins awarded per formation kill
	EnemyCoinValue = 5
)

// Bonus ship
const (
	// SpecialShipInterval is the minimum time between bonus ship appearances
	SpecialShipInterval = 20 * time.Second

	// SpecialShipVariance is the random extra time added to SpecialShipInterval
	SpecialShipVariance = 10 * time.Second

	// SpecialShipExplosion is how long a destroyed bonus ship stays before removal
	SpecialShipExplosion = 500 * time.Millisecond

	// SpecialShipSpeed is the horizontal pixels moved per tick
	SpecialShipSpeed = 2

	// SpecialShipWidth is the bonus ship hitbox width
	SpecialShipWidth = 32

	// SpecialShipHeight is the bonus ship hitbox height
	SpecialShipHeight = 14

	// SpecialShipY is the bonus ship lane
	SpecialShipY = 80

	// SpecialShipPoints is the score of the bonus ship
	SpecialShipPoints = 100

	// SpecialShipCoinValue is the coins awarded for the bonus ship
	SpecialShipCoinValue = 20
)

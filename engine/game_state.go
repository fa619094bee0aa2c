package engine

import (
	"time"

	"github.com/lixenwraith/void-siege/parameter"
)

// PlayerStats holds the cumulative counters of one player slot
type PlayerStats struct {
	Score          int
	BulletsShot    int
	ShipsDestroyed int
	Coins          int
	Lives          int // Used only when lives are not shared
}

// GameState is the session-wide mutable state shared by every encounter
// Accessed only from the game goroutine, no locking
type GameState struct {
	clock TimeProvider

	Level       int
	Players     int  // Active player slots, 1 or 2
	SharedLives bool // Co-op team pool instead of per-player lives
	teamLives   int

	players [parameter.NumPlayers]PlayerStats

	effects        [parameter.NumPlayers]map[EffectType]EffectState
	activeDuration [parameter.NumPlayers]EffectType

	revivedLevels map[int]struct{}
	bossClearTime time.Duration
}

// NewGameState creates session state; co-op shares the life pool between both players
func NewGameState(clock TimeProvider, coop bool, lives int) *GameState {
	gs := &GameState{
		clock:         clock,
		Level:         1,
		Players:       1,
		revivedLevels: make(map[int]struct{}),
	}
	if coop {
		gs.Players = 2
		gs.SharedLives = true
		gs.teamLives = lives
	} else {
		gs.players[0].Lives = lives
	}
	for i := range gs.effects {
		gs.effects[i] = make(map[EffectType]EffectState)
	}
	return gs
}

// Clock returns the time source used for effect expiry
func (gs *GameState) Clock() TimeProvider {
	return gs.clock
}

func validPlayer(p int) bool {
	return p >= 0 && p < parameter.NumPlayers
}

// Stats returns a copy of a player's counters
func (gs *GameState) Stats(p int) PlayerStats {
	if !validPlayer(p) {
		return PlayerStats{}
	}
	return gs.players[p]
}

// ===== SCORE / COUNTERS =====

func (gs *GameState) Score(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.players[p].Score
}

func (gs *GameState) AddScore(p, points int) {
	if validPlayer(p) && points > 0 {
		gs.players[p].Score += points
	}
}

// TotalScore sums the score of every player slot
func (gs *GameState) TotalScore() int {
	total := 0
	for i := range gs.players {
		total += gs.players[i].Score
	}
	return total
}

func (gs *GameState) BulletsShot(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.players[p].BulletsShot
}

func (gs *GameState) IncBulletsShot(p int) {
	if validPlayer(p) {
		gs.players[p].BulletsShot++
	}
}

func (gs *GameState) ShipsDestroyed(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.players[p].ShipsDestroyed
}

func (gs *GameState) IncShipsDestroyed(p int) {
	if validPlayer(p) {
		gs.players[p].ShipsDestroyed++
	}
}

// TotalBulletsShot and TotalShipsDestroyed feed the team-wide achievement checks
func (gs *GameState) TotalBulletsShot() int {
	return gs.players[0].BulletsShot + gs.players[1].BulletsShot
}

func (gs *GameState) TotalShipsDestroyed() int {
	return gs.players[0].ShipsDestroyed + gs.players[1].ShipsDestroyed
}

// ===== COINS =====

func (gs *GameState) Coins(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.players[p].Coins
}

func (gs *GameState) AddCoins(p, amount int) {
	if validPlayer(p) && amount > 0 {
		gs.players[p].Coins += amount
	}
}

// TotalCoins returns the combined balance of every player slot
func (gs *GameState) TotalCoins() int {
	return gs.players[0].Coins + gs.players[1].Coins
}

// SpendCoins deducts from player 1 first, then player 2
// Returns false without mutation when the combined balance is short
func (gs *GameState) SpendCoins(amount int) bool {
	if amount < 0 || gs.TotalCoins() < amount {
		return false
	}
	for i := range gs.players {
		take := min(amount, gs.players[i].Coins)
		gs.players[i].Coins -= take
		amount -= take
	}
	return true
}

// ===== LIVES =====

// TeamLives returns the shared pool; zero when lives are per-player
func (gs *GameState) TeamLives() int {
	return gs.teamLives
}

// PlayerLives returns a player's own lives; zero when lives are shared
func (gs *GameState) PlayerLives(p int) int {
	if !validPlayer(p) {
		return 0
	}
	return gs.players[p].Lives
}

// LivesRemaining returns the pool in shared mode, else the sum over active players
func (gs *GameState) LivesRemaining() int {
	if gs.SharedLives {
		return gs.teamLives
	}
	total := 0
	for i := 0; i < gs.Players && i < parameter.NumPlayers; i++ {
		total += gs.players[i].Lives
	}
	return total
}

// TeamAlive reports whether any life remains
func (gs *GameState) TeamAlive() bool {
	return gs.LivesRemaining() > 0
}

// PlayerAlive reports whether the player's ship may stay in play
func (gs *GameState) PlayerAlive(p int) bool {
	if !validPlayer(p) || p >= gs.Players {
		return false
	}
	if gs.SharedLives {
		return gs.teamLives > 0
	}
	return gs.players[p].Lives > 0
}

// DecLife removes one life from the pool or from the player, clamped at zero
func (gs *GameState) DecLife(p int) {
	if gs.SharedLives {
		if gs.teamLives > 0 {
			gs.teamLives--
		}
		return
	}
	if validPlayer(p) && gs.players[p].Lives > 0 {
		gs.players[p].Lives--
	}
}

// AddTeamLife grows the shared pool, capped at MaxLives
func (gs *GameState) AddTeamLife(n int) {
	if n <= 0 {
		return
	}
	gs.teamLives = min(gs.teamLives+n, parameter.MaxLives)
}

// AddLife grows a player's own lives, capped at MaxLives
func (gs *GameState) AddLife(p, n int) {
	if !validPlayer(p) || n <= 0 {
		return
	}
	gs.players[p].Lives = min(gs.players[p].Lives+n, parameter.MaxLives)
}

// GrantLife adds one life to whichever pool the session uses for player p
func (gs *GameState) GrantLife(p int) {
	if gs.SharedLives {
		gs.AddTeamLife(1)
		return
	}
	gs.AddLife(p, 1)
}

// ===== REVIVE / BOSS =====

// HasRevivedAt reports whether a revive was granted at the level
func (gs *GameState) HasRevivedAt(level int) bool {
	_, ok := gs.revivedLevels[level]
	return ok
}

// MarkRevived records a granted revive for the level
func (gs *GameState) MarkRevived(level int) {
	gs.revivedLevels[level] = struct{}{}
}

func (gs *GameState) BossClearTime() time.Duration {
	return gs.bossClearTime
}

func (gs *GameState) SetBossClearTime(d time.Duration) {
	gs.bossClearTime = d
}

// NextLevel advances the level counter
func (gs *GameState) NextLevel() {
	gs.Level++
}

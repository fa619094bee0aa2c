package core

// Team tags an entity with the side it fights for
type Team uint8

const (
	TeamNeutral Team = iota
	TeamPlayer1
	TeamPlayer2
	TeamEnemy
)

// PlayerTeam maps a zero-based player index to its team tag
func PlayerTeam(playerIndex int) Team {
	if playerIndex == 1 {
		return TeamPlayer2
	}
	return TeamPlayer1
}

// PlayerIndex maps a one-based owner id to a zero-based player index
// Unknown ids fall back to player 1, matching bullet ownership rules
func PlayerIndex(ownerID int) int {
	if ownerID == 2 {
		return 1
	}
	return 0
}

// IsPlayer reports whether the team belongs to a human player
func (t Team) IsPlayer() bool {
	return t == TeamPlayer1 || t == TeamPlayer2
}

func (t Team) String() string {
	switch t {
	case TeamPlayer1:
		return "player1"
	case TeamPlayer2:
		return "player2"
	case TeamEnemy:
		return "enemy"
	default:
		return "neutral"
	}
}

package ttt

type Square uint8
type TurnType bool
type PlayerType uint8

const (
	CrossTurn  TurnType = true
	CircleTurn TurnType = false
)

const (
	None   PlayerType = 0
	Cross  PlayerType = 1
	Circle PlayerType = 2
)

// Board symbol of the player, blank for an empty cell
func (p PlayerType) String() string {
	switch p {
	case Cross:
		return "X"
	case Circle:
		return "O"
	}
	return " "
}

// The other player, None stays None
func (p PlayerType) Opponent() PlayerType {
	switch p {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

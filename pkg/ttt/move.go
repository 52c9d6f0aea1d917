package ttt

import "strconv"

// Squares in row-major order, players number them 1..9
const (
	A3 Square = iota
	B3
	C3
	A2
	B2
	C2
	A1
	B1
	C1
)

const (
	SquareIllegal Square = 255
	NumSquares           = 9
)

// Convert the 1..9 cell number typed by a player into a square
func SquareFromInput(input int) (Square, bool) {
	if input < 1 || input > NumSquares {
		return SquareIllegal, false
	}
	return Square(input - 1), true
}

// Cell number as seen by the players (1..9)
func (s Square) Input() int {
	return int(s) + 1
}

func (s Square) String() string {
	if s >= NumSquares {
		return "-"
	}
	return strconv.Itoa(s.Input())
}

type MoveList struct {
	Moves [NumSquares]Square
	Size  uint8
}

func NewMoveList() *MoveList {
	return &MoveList{}
}

func (ml *MoveList) AppendMove(mv Square) {
	ml.Moves[ml.Size] = mv
	ml.Size++
}

func (ml *MoveList) Slice() []Square {
	return ml.Moves[:ml.Size]
}

package ttt

import "math/bits"

const _fullBoard = 0b111111111

// Empty squares in ascending order
func (p *Position) GenerateMoves() *MoveList {
	movelist := NewMoveList()
	if p.IsTerminated() {
		return movelist
	}

	free := uint(_fullBoard ^ (p.bitboards[0] | p.bitboards[1]))
	for free != 0 {
		movelist.AppendMove(Square(bits.TrailingZeros(free)))
		free &= free - 1
	}

	return movelist
}

// Check if the square is on the board and empty
func (p *Position) IsLegal(sq Square) bool {
	if sq >= NumSquares {
		return false
	}
	return (p.bitboards[0]|p.bitboards[1])&(1<<sq) == 0
}

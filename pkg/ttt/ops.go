package ttt

import "github.com/IlikeChooros/go-aima/pkg/minimax"

var _ minimax.GameOperations[Square] = (*SearchOps)(nil)

// Tic-tac-toe as seen by the alpha-beta searcher, scores are from the
// perspective of the side to move at construction
type SearchOps struct {
	pos  *Position
	root PlayerType
}

func NewSearchOps(pos *Position) *SearchOps {
	return &SearchOps{pos: pos, root: pos.SideToMove()}
}

func (o *SearchOps) Moves() []Square {
	return o.pos.GenerateMoves().Slice()
}

func (o *SearchOps) Make(mv Square) {
	o.pos.MakeMove(mv)
}

func (o *SearchOps) Undo() {
	o.pos.UndoMove()
}

func (o *SearchOps) Terminal() bool {
	return o.pos.IsTerminated()
}

// Faster wins score higher, draws and unfinished games are 0
func (o *SearchOps) Evaluate() float64 {
	winner := o.pos.Winner()
	if winner == None {
		return 0
	}
	score := float64(NumSquares + 1 - o.pos.Plies())
	if winner == o.root {
		return score
	}
	return -score
}

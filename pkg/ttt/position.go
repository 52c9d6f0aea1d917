package ttt

import (
	"fmt"
	"strings"
)

const (
	_bitboardCrossIdx  = 0
	_bitboardCircleIdx = 1
)

const boardLine = "-------------"

// Turn stores the side that made the move
type HistoryState struct {
	lastMove Square
	turn     TurnType
}

type Position struct {
	board       [NumSquares]PlayerType
	bitboards   [2]uint16
	history     []HistoryState
	termination Termination
}

func NewPosition() *Position {
	history := make([]HistoryState, 1, NumSquares+1)
	history[0] = HistoryState{lastMove: SquareIllegal, turn: !CrossTurn}

	return &Position{
		history: history,
	}
}

func (p *Position) lastHistory() *HistoryState {
	return &p.history[len(p.history)-1]
}

func (p *Position) Turn() TurnType {
	return !p.lastHistory().turn
}

// Player to move
func (p *Position) SideToMove() PlayerType {
	if p.Turn() == CrossTurn {
		return Cross
	}
	return Circle
}

// Number of moves made so far
func (p *Position) Plies() int {
	return len(p.history) - 1
}

func (p *Position) At(sq Square) PlayerType {
	if sq >= NumSquares {
		return None
	}
	return p.board[sq]
}

// Last move made, SquareIllegal at the start
func (p *Position) LastMove() Square {
	return p.lastHistory().lastMove
}

// Place the side to move on the square, legality is the caller's concern
func (p *Position) MakeMove(mv Square) {
	mover := p.Turn()
	idx := _bitboardCrossIdx
	player := Cross
	if mover == CircleTurn {
		player = Circle
		idx = _bitboardCircleIdx
	}

	p.bitboards[idx] ^= (1 << mv)
	p.board[mv] = player
	p.termination = TerminationNone
	p.history = append(p.history, HistoryState{turn: mover, lastMove: mv})
}

func (p *Position) UndoMove() {
	if len(p.history) <= 1 {
		return
	}

	// The player who made the last move is the one not on turn now
	idx := _bitboardCrossIdx
	if p.Turn() == CrossTurn {
		idx = _bitboardCircleIdx
	}

	hist := p.lastHistory()
	p.bitboards[idx] ^= (1 << hist.lastMove)
	p.board[hist.lastMove] = None
	p.termination = TerminationNone
	p.history = p.history[:len(p.history)-1]
}

// Alias used by the arena
func (p *Position) Undo() {
	p.UndoMove()
}

func (p *Position) Clone() *Position {
	history := make([]HistoryState, len(p.history), cap(p.history))
	copy(history, p.history)
	return &Position{
		board:       p.board,
		bitboards:   p.bitboards,
		history:     history,
		termination: p.termination,
	}
}

// Board drawn the way players see it, rows separated by dashes
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteString(" " + boardLine + "\n")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(&sb, " | %s | %s | %s |\n",
			p.board[row*3], p.board[row*3+1], p.board[row*3+2])
		sb.WriteString(" " + boardLine + "\n")
	}
	return sb.String()
}

package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "CircleWon"
	case TerminationCrossWon:
		return "CrossWon"
	case TerminationDraw:
		return "Draw"
	}
	return "None"
}

// horizontal, vertical and diagonal patterns as bitboards
var _winningBitboardPatterns [8]uint = [...]uint{
	0b000000111, 0b000111000, 0b111000000,
	0b001001001, 0b010010010, 0b100100100,
	0b100010001, 0b001010100,
}

// Get the termination reason (after calling IsTerminated, or CheckTerminationPattern)
func (p *Position) Termination() Termination {
	return p.termination
}

// Check if the game is over
func (p *Position) IsTerminated() bool {
	if p.termination != TerminationNone {
		return true
	}

	p.CheckTerminationPattern()
	return p.termination != TerminationNone
}

func (p *Position) IsDraw() bool {
	return p.IsTerminated() && p.termination == TerminationDraw
}

// Winning player, None while the game goes on or on a draw
func (p *Position) Winner() PlayerType {
	if !p.IsTerminated() {
		return None
	}
	switch p.termination {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	}
	return None
}

// Evaluate the board and store the termination
func (p *Position) CheckTerminationPattern() {
	crossbb := uint(p.bitboards[_bitboardCrossIdx])
	circlebb := uint(p.bitboards[_bitboardCircleIdx])

	for i := range _winningBitboardPatterns {
		if crossbb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			p.termination = TerminationCrossWon
			return
		}
		if circlebb&_winningBitboardPatterns[i] == _winningBitboardPatterns[i] {
			p.termination = TerminationCircleWon
			return
		}
	}

	// No empty cell left
	if (crossbb | circlebb) == _fullBoard {
		p.termination = TerminationDraw
	}
}

package ttt

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	ErrInvalidMove = errors.New("invalid move")
	ErrGameOver    = errors.New("game is over")
)

const InvalidMoveMessage = "Invalid move. Please choose an empty cell between 1 and 9."

// Raised by PlayScript before an input is played
type PromptEvent struct {
	Player PlayerType
	Prompt string
	Input  int
}

type MoveEvent struct {
	Player   PlayerType
	Square   Square
	Position *Position
}

type InvalidMoveEvent struct {
	Player PlayerType
	Input  int
	Err    error
}

type EndEvent struct {
	Termination Termination
	Winner      PlayerType
	Message     string
	Position    *Position
}

// Callbacks fired by the game driver, all optional
type GameListener struct {
	onPrompt  func(PromptEvent)
	onMove    func(MoveEvent)
	onInvalid func(InvalidMoveEvent)
	onEnd     func(EndEvent)
}

func NewGameListener() GameListener {
	return GameListener{}
}

// Attach callback called with the prompt and the scripted answer
func (l *GameListener) OnPrompt(f func(PromptEvent)) *GameListener {
	l.onPrompt = f
	return l
}

func (l *GameListener) OnMove(f func(MoveEvent)) *GameListener {
	l.onMove = f
	return l
}

func (l *GameListener) OnInvalid(f func(InvalidMoveEvent)) *GameListener {
	l.onInvalid = f
	return l
}

func (l *GameListener) OnEnd(f func(EndEvent)) *GameListener {
	l.onEnd = f
	return l
}

// Two-player game driven by cell numbers (1..9), X moves first
type Game struct {
	pos      *Position
	listener GameListener
	logger   *zap.Logger
}

func NewGame() *Game {
	return &Game{
		pos:    NewPosition(),
		logger: zap.NewNop(),
	}
}

func (g *Game) SetListener(listener GameListener) *Game {
	g.listener = listener
	return g
}

func (g *Game) SetLogger(logger *zap.Logger) *Game {
	if logger == nil {
		logger = zap.NewNop()
	}
	g.logger = logger
	return g
}

func (g *Game) Position() *Position {
	return g.pos
}

// Player expected to enter the next move
func (g *Game) Current() PlayerType {
	return g.pos.SideToMove()
}

func (g *Game) Over() bool {
	return g.pos.IsTerminated()
}

func (g *Game) Prompt() string {
	return fmt.Sprintf("Player %s, enter your move (1-9): ", g.Current())
}

// Final message, empty while the game is running
func (g *Game) Result() string {
	if !g.pos.IsTerminated() {
		return ""
	}
	if g.pos.IsDraw() {
		return "It's a draw!"
	}
	return fmt.Sprintf("Player %s wins!", g.pos.Winner())
}

// Play the current player's move on the given cell. On ErrInvalidMove the
// same player has to try again.
func (g *Game) Play(input int) error {
	if g.pos.IsTerminated() {
		return ErrGameOver
	}

	player := g.Current()
	sq, ok := SquareFromInput(input)
	if !ok || !g.pos.IsLegal(sq) {
		err := fmt.Errorf("%w: %d", ErrInvalidMove, input)
		g.logger.Debug("rejected move", zap.Stringer("player", player), zap.Int("input", input))
		if g.listener.onInvalid != nil {
			g.listener.onInvalid(InvalidMoveEvent{Player: player, Input: input, Err: err})
		}
		return err
	}

	g.pos.MakeMove(sq)
	g.logger.Debug("move", zap.Stringer("player", player), zap.Stringer("square", sq))
	if g.listener.onMove != nil {
		g.listener.onMove(MoveEvent{Player: player, Square: sq, Position: g.pos})
	}

	if g.pos.IsTerminated() {
		if g.listener.onEnd != nil {
			g.listener.onEnd(EndEvent{
				Termination: g.pos.Termination(),
				Winner:      g.pos.Winner(),
				Message:     g.Result(),
				Position:    g.pos,
			})
		}
	}
	return nil
}

// Feed a fixed sequence of inputs, skipping the invalid ones, until the game
// ends or the inputs run out. Returns the number of inputs consumed.
func (g *Game) PlayScript(inputs []int) int {
	consumed := 0
	for _, input := range inputs {
		if g.pos.IsTerminated() {
			break
		}
		consumed++
		if g.listener.onPrompt != nil {
			g.listener.onPrompt(PromptEvent{Player: g.Current(), Prompt: g.Prompt(), Input: input})
		}
		if err := g.Play(input); err != nil && !errors.Is(err, ErrInvalidMove) {
			break
		}
	}
	return consumed
}

package ttt

import (
	"context"
	"errors"
	"math/rand"

	"github.com/IlikeChooros/go-aima/pkg/arena"
	"github.com/IlikeChooros/go-aima/pkg/minimax"
	"github.com/IlikeChooros/go-aima/pkg/search"
)

var ErrNoMoves = errors.New("no legal moves")

var (
	_ arena.Player[Square, *Position] = (*AlphaBetaPlayer)(nil)
	_ arena.Player[Square, *Position] = (*RandomPlayer)(nil)
)

// Perfect player, searches the whole game tree unless limited
type AlphaBetaPlayer struct {
	searcher *minimax.Searcher[Square]
	limits   *search.Limits
	last     minimax.Result[Square]
}

func NewAlphaBetaPlayer() *AlphaBetaPlayer {
	return &AlphaBetaPlayer{
		searcher: minimax.NewSearcher[Square](),
		limits:   search.DefaultLimits(),
	}
}

func (p *AlphaBetaPlayer) Name() string {
	return "alpha-beta"
}

func (p *AlphaBetaPlayer) SetLimits(limits *search.Limits) {
	if limits == nil {
		limits = search.DefaultLimits()
	}
	p.limits = limits
	p.searcher.SetLimits(limits)
}

// Result of the last search
func (p *AlphaBetaPlayer) LastResult() minimax.Result[Square] {
	return p.last
}

// Best move for the side to move, a search cut short by the limits still
// returns the best move found so far
func (p *AlphaBetaPlayer) Search(ctx context.Context, pos *Position) (Square, error) {
	p.searcher.SetContext(ctx)
	res, err := p.searcher.Search(NewSearchOps(pos.Clone()))
	p.last = res
	if !res.Found {
		if err != nil {
			return SquareIllegal, err
		}
		return SquareIllegal, ErrNoMoves
	}
	if err != nil && ctx != nil && ctx.Err() != nil {
		return res.Move, ctx.Err()
	}
	return res.Move, nil
}

func (p *AlphaBetaPlayer) Clone() arena.Player[Square, *Position] {
	c := NewAlphaBetaPlayer()
	c.SetLimits(p.limits.Clone())
	return c
}

// Plays a uniformly random legal move
type RandomPlayer struct {
	rng *rand.Rand
}

func NewRandomPlayer(seed int64) *RandomPlayer {
	return &RandomPlayer{rng: rand.New(rand.NewSource(seed))}
}

func (p *RandomPlayer) Name() string {
	return "random"
}

func (p *RandomPlayer) SetLimits(*search.Limits) {}

func (p *RandomPlayer) Search(ctx context.Context, pos *Position) (Square, error) {
	ml := pos.GenerateMoves()
	if ml.Size == 0 {
		return SquareIllegal, ErrNoMoves
	}
	return ml.Moves[p.rng.Intn(int(ml.Size))], nil
}

// The clone draws its seed from this player's generator
func (p *RandomPlayer) Clone() arena.Player[Square, *Position] {
	return NewRandomPlayer(p.rng.Int63())
}

package minimax

import (
	"context"
	"math"

	"github.com/IlikeChooros/go-aima/pkg/search"
)

type MoveLike comparable

// Game interface driven by the searcher, the implementation keeps the
// position and must restore it exactly on Undo
type GameOperations[T MoveLike] interface {
	// Legal moves in the current position, must be returned always in the same order
	Moves() []T
	// Play the move on the internal position
	Make(T)
	// Undo the previously made move
	Undo()
	// Whether the game has ended in the current position
	Terminal() bool
	// Static value of the current position, from the perspective of
	// the player to move at the root of the search
	Evaluate() float64
}

type Result[T MoveLike] struct {
	Move     T
	Value    float64
	Found    bool
	Prunings int
	Stats    search.Stats
}

// Depth limited alpha-beta search over a GameOperations implementation
type Searcher[T MoveLike] struct {
	Limiter  *search.Limiter
	stats    search.Stats
	prunings int
}

func NewSearcher[T MoveLike]() *Searcher[T] {
	return &Searcher[T]{Limiter: search.NewLimiter()}
}

func (s *Searcher[T]) SetLimits(limits *search.Limits) *Searcher[T] {
	s.Limiter.SetLimits(limits)
	return s
}

// Adds custom context to the limiter, enabling cancellation through it
func (s *Searcher[T]) SetContext(ctx context.Context) *Searcher[T] {
	s.Limiter.SetContext(ctx)
	return s
}

// Search for the best move of the player to move, if the search is aborted
// by the limiter, returns the best move found so far and an error wrapping search.ErrLimitReached
func (s *Searcher[T]) Search(ops GameOperations[T]) (Result[T], error) {
	s.Limiter.Reset()
	s.stats = search.Stats{}
	s.prunings = 0

	result := Result[T]{Value: math.Inf(-1)}
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, move := range ops.Moves() {
		if !s.Limiter.Ok(uint32(s.stats.Explored), 0) {
			break
		}

		ops.Make(move)
		v, ok := s.alphabeta(ops, 1, alpha, beta, false)
		ops.Undo()
		if !ok {
			break
		}

		if !result.Found || v > result.Value {
			result.Move = move
			result.Value = v
			result.Found = true
		}
		alpha = max(alpha, v)
	}

	s.stats.TimeMs = int(s.Limiter.Elapsed())
	s.stats.StopReason = s.Limiter.EvaluateStopReason(uint32(s.stats.Explored), 0)
	result.Stats = s.stats
	result.Prunings = s.prunings

	if s.stats.StopReason != search.StopNone {
		return result, search.LimitError(s.stats.StopReason)
	}
	return result, nil
}

func (s *Searcher[T]) alphabeta(ops GameOperations[T], depth int, alpha, beta float64, maximizing bool) (float64, bool) {
	s.stats.Visit(depth)
	if !s.Limiter.Ok(uint32(s.stats.Explored), 0) {
		return 0, false
	}

	limits := s.Limiter.Limits()
	horizon := !limits.Infinite && depth >= limits.Depth
	if ops.Terminal() || horizon {
		return ops.Evaluate(), true
	}

	moves := ops.Moves()
	s.stats.Generated += len(moves)

	best := math.Inf(1)
	if maximizing {
		best = math.Inf(-1)
	}

	for _, move := range moves {
		ops.Make(move)
		v, ok := s.alphabeta(ops, depth+1, alpha, beta, !maximizing)
		ops.Undo()
		if !ok {
			return 0, false
		}

		if maximizing {
			best = max(best, v)
			alpha = max(alpha, v)
		} else {
			best = min(best, v)
			beta = min(beta, v)
		}
		if beta <= alpha {
			s.prunings++
			break
		}
	}
	return best, true
}

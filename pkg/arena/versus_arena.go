package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/IlikeChooros/go-aima/pkg/search"
)

/*
Arena subpackage, plays a series of games between two players on a number
of worker goroutines, alternating which one moves first.
*/

var ErrNoPlayers = errors.New("arena needs two players")

type PositionLike[T comparable, P any] interface {
	MakeMove(T)
	Undo()
	IsTerminated() bool
	IsDraw() bool
	Clone() P
}

type Player[T comparable, P any] interface {
	Name() string
	SetLimits(*search.Limits)
	// Choose a move for the side to move in the position, the position must
	// be left unchanged
	Search(ctx context.Context, pos P) (T, error)
	// Independent copy used by a single worker
	Clone() Player[T, P]
}

type VersusArena[T comparable, P PositionLike[T, P]] struct {
	VersusArenaStats
	Player1  Player[T, P]
	Player2  Player[T, P]
	NGames   uint
	NThreads uint
	Limits   *search.Limits
	Position P
	wg       sync.WaitGroup
	done     chan struct{}
	ctx      context.Context
	errMu    sync.Mutex
	err      error
}

func NewVersusArena[T comparable, P PositionLike[T, P]](position P, p1, p2 Player[T, P]) *VersusArena[T, P] {
	return &VersusArena[T, P]{
		Player1:  p1,
		Player2:  p2,
		NGames:   100,
		NThreads: 2,
		Limits:   search.DefaultLimits(),
		Position: position,
		ctx:      context.Background(),
	}
}

func (va *VersusArena[T, P]) WithContext(ctx context.Context) *VersusArena[T, P] {
	if ctx == nil {
		ctx = context.Background()
	}
	va.ctx = ctx
	return va
}

func (va *VersusArena[T, P]) Setup(limits *search.Limits, nGames uint, nThreads uint) {
	va.NGames = nGames
	va.Limits = limits
	va.NThreads = max(nThreads, 1)
}

// Start the workers, games are distributed equally between them
func (va *VersusArena[T, P]) Start(listener ListenerLike[T]) error {
	if va.Player1 == nil || va.Player2 == nil {
		return ErrNoPlayers
	}
	if listener == nil {
		listener = DefaultListener[T]{}
	}

	va.VersusArenaStats.reset()
	va.err = nil
	va.done = make(chan struct{})
	nThreads := max(va.NThreads, 1)
	listener.OnStart(int(va.NGames), int(nThreads))

	nGames := va.NGames / nThreads
	rest := va.NGames % nThreads
	for i := range nThreads {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}
		va.wg.Add(1)

		// Every worker gets its own players and position
		p1 := va.Player1.Clone()
		p2 := va.Player2.Clone()
		p1.SetLimits(va.Limits)
		p2.SetLimits(va.Limits)
		go va.worker(int(i), int(nGames+delta), listener, p1, p2)
	}

	go func() {
		va.wg.Wait()
		listener.Summary(va.Summary())
		close(va.done)
	}()
	return nil
}

// Block until every worker is done, returns the first player error
func (va *VersusArena[T, P]) Wait() error {
	if va.done != nil {
		<-va.done
	}
	va.errMu.Lock()
	defer va.errMu.Unlock()
	return va.err
}

// Start and wait, returning the summary
func (va *VersusArena[T, P]) Run(listener ListenerLike[T]) (VersusSummaryInfo, error) {
	if err := va.Start(listener); err != nil {
		return VersusSummaryInfo{}, err
	}
	err := va.Wait()
	return va.Summary(), err
}

func (va *VersusArena[T, P]) Summary() VersusSummaryInfo {
	info := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(max(va.NThreads, 1)),
	}
	if va.Player1 != nil {
		info.P1Name = va.Player1.Name()
	}
	if va.Player2 != nil {
		info.P2Name = va.Player2.Name()
	}
	return info
}

func (va *VersusArena[T, P]) setErr(err error) {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	if va.err == nil {
		va.err = err
	}
}

func (va *VersusArena[T, P]) worker(id, nGames int, listener ListenerLike[T], p1, p2 Player[T, P]) {
	defer va.wg.Done()
	localStats := VersusArenaStats{}
	gamePos := va.Position.Clone()
	finished := 0

Loop:
	for i := range nGames {
		// Alternate who moves first, offset by worker so that odd splits stay fair
		p1First := (id+i)%2 == 0
		first, second := p1, p2
		if !p1First {
			first, second = p2, p1
		}

		moves, err := playGame(va.ctx, first, second, gamePos, func(moves []T) {
			listener.OnMoveMade(VersusWorkerInfo[T]{
				WorkerID:      id,
				NGames:        nGames,
				FinishedGames: finished,
				GameMoveNum:   len(moves),
				Moves:         moves,
				P1First:       p1First,
			})
		})
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				va.setErr(fmt.Errorf("worker %d, game %d: %w", id, i, err))
			}
			break Loop
		}

		outcome := computeOutcome[T](gamePos, len(moves))
		result := toPlayerResult(outcome, p1First)
		va.add(result, outcome)
		localStats.add(result, outcome)
		finished++

		listener.OnFinishedGame(VersusWorkerInfo[T]{
			WorkerID:      id,
			NGames:        nGames,
			FinishedGames: finished,
			GameMoveNum:   len(moves),
			Moves:         moves,
			P1Wins:        localStats.P1Wins(),
			P2Wins:        localStats.P2Wins(),
			Draws:         localStats.Draws(),
			P1First:       p1First,
			Result:        result,
		})

		// Undo all moves, so the position can be reused
		for range moves {
			gamePos.Undo()
		}
	}

	listener.OnFinishedWork(VersusWorkerInfo[T]{
		WorkerID:      id,
		NGames:        nGames,
		FinishedGames: finished,
		P1Wins:        localStats.P1Wins(),
		P2Wins:        localStats.P2Wins(),
		Draws:         localStats.Draws(),
	})
}

// Play a single game from the given position, 'first' moves first.
// Leaves the final position in gamePos and returns the moves made.
func playGame[T comparable, P PositionLike[T, P]](
	ctx context.Context, first, second Player[T, P], gamePos P, onMove func([]T),
) ([]T, error) {
	moves := make([]T, 0, 16)
	players := [2]Player[T, P]{first, second}

	for turn := 0; !gamePos.IsTerminated(); turn ^= 1 {
		if err := ctx.Err(); err != nil {
			for range moves {
				gamePos.Undo()
			}
			return nil, err
		}

		m, err := players[turn].Search(ctx, gamePos)
		if err != nil {
			for range moves {
				gamePos.Undo()
			}
			return nil, err
		}

		gamePos.MakeMove(m)
		moves = append(moves, m)
		onMove(moves)
	}
	return moves, nil
}

package arena

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/goleak"

	"github.com/IlikeChooros/go-aima/pkg/search"
)

type Move int

// Game of fixed length 8, a decisive game is won by the side that made the
// last move, unless that move is divisible by 3 (draw)
type DummyPos struct {
	history []Move
}

func NewDummyPos() *DummyPos {
	return &DummyPos{history: make([]Move, 0, 10)}
}

func (dp *DummyPos) MakeMove(m Move) {
	dp.history = append(dp.history, m)
}

func (dp *DummyPos) Undo() {
	if len(dp.history) != 0 {
		dp.history = dp.history[:len(dp.history)-1]
	}
}

func (dp *DummyPos) IsTerminated() bool {
	return len(dp.history) >= 8
}

func (dp *DummyPos) IsDraw() bool {
	return dp.IsTerminated() && dp.history[len(dp.history)-1]%3 == 0
}

func (dp *DummyPos) Clone() *DummyPos {
	return &DummyPos{history: append(make([]Move, 0, 10), dp.history...)}
}

type FixedPlayer struct {
	name   string
	move   Move
	err    error
	limits *search.Limits
}

func (f *FixedPlayer) Name() string               { return f.name }
func (f *FixedPlayer) SetLimits(l *search.Limits) { f.limits = l }

func (f *FixedPlayer) Search(ctx context.Context, pos *DummyPos) (Move, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.move, nil
}

func (f *FixedPlayer) Clone() Player[Move, *DummyPos] {
	c := *f
	return &c
}

type countingListener struct {
	DefaultListener[Move]
	mu        sync.Mutex
	games     int
	moves     int
	workers   int
	summary   VersusSummaryInfo
	summaries int
}

func (c *countingListener) OnMoveMade(VersusWorkerInfo[Move]) {
	c.mu.Lock()
	c.moves++
	c.mu.Unlock()
}

func (c *countingListener) OnFinishedGame(info VersusWorkerInfo[Move]) {
	c.mu.Lock()
	c.games++
	c.mu.Unlock()
}

func (c *countingListener) OnFinishedWork(VersusWorkerInfo[Move]) {
	c.mu.Lock()
	c.workers++
	c.mu.Unlock()
}

func (c *countingListener) Summary(info VersusSummaryInfo) {
	c.mu.Lock()
	c.summary = info
	c.summaries++
	c.mu.Unlock()
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestVersusArenaTally(t *testing.T) {
	p1 := &FixedPlayer{name: "ones", move: 1}
	p2 := &FixedPlayer{name: "threes", move: 3}
	arena := NewVersusArena[Move](NewDummyPos(), p1, p2)
	arena.Setup(search.DefaultLimits(), 10, 3)

	listener := &countingListener{}
	summary, err := arena.Run(listener)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// When p1 moves first p2 makes the last move (3, a draw),
	// otherwise p1 makes the last move and wins
	if summary.TotalGames != 10 || summary.Draws != 5 || summary.P1Wins != 5 || summary.P2Wins != 0 {
		t.Fatalf("unexpected summary %s", summary)
	}
	if summary.SecondToMoveWins != 5 || summary.FirstToMoveWins != 0 {
		t.Fatalf("unexpected first/second to move wins %s", summary)
	}
	if summary.P1Name != "ones" || summary.P2Name != "threes" || summary.Workers != 3 {
		t.Fatalf("unexpected names or workers %s", summary)
	}

	if listener.games != 10 || listener.moves != 80 || listener.workers != 3 || listener.summaries != 1 {
		t.Fatalf("listener saw games=%d moves=%d workers=%d summaries=%d",
			listener.games, listener.moves, listener.workers, listener.summaries)
	}
	if listener.summary != summary {
		t.Fatalf("listener summary %s != %s", listener.summary, summary)
	}
}

func TestVersusArenaPlayerError(t *testing.T) {
	errBroken := errors.New("broken player")
	arena := NewVersusArena[Move](NewDummyPos(), &FixedPlayer{move: 1}, &FixedPlayer{err: errBroken})
	arena.Setup(search.DefaultLimits(), 4, 2)

	_, err := arena.Run(nil)
	if !errors.Is(err, errBroken) {
		t.Fatalf("expected the player error, got %v", err)
	}
	if arena.Total() != 0 {
		t.Fatalf("no game should finish, got %d", arena.Total())
	}
}

func TestVersusArenaCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	arena := NewVersusArena[Move](NewDummyPos(), &FixedPlayer{move: 1}, &FixedPlayer{move: 2}).WithContext(ctx)
	arena.Setup(search.DefaultLimits(), 6, 2)
	summary, err := arena.Run(DefaultListener[Move]{})
	if err != nil {
		t.Fatalf("cancellation is not an error, got %v", err)
	}
	if summary.TotalGames != 0 {
		t.Fatalf("expected no games, got %d", summary.TotalGames)
	}
}

func TestVersusArenaNoPlayers(t *testing.T) {
	arena := NewVersusArena[Move](NewDummyPos(), nil, nil)
	if err := arena.Start(nil); !errors.Is(err, ErrNoPlayers) {
		t.Fatalf("expected ErrNoPlayers, got %v", err)
	}
}

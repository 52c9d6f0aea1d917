package arena

import (
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Redraws a single status line after every finished game. When the writer
// is not a terminal each status is written on its own line instead.
type ProgressListener[T comparable] struct {
	DefaultListener[T]
	out      *termenv.Output
	mu       sync.Mutex
	nGames   int
	finished int
	p1Wins   int
	p2Wins   int
	draws    int
}

func NewProgressListener[T comparable](w io.Writer, opts ...termenv.OutputOption) *ProgressListener[T] {
	return &ProgressListener[T]{out: termenv.NewOutput(w, opts...)}
}

func (l *ProgressListener[T]) terminal() bool {
	return l.out.Profile != termenv.Ascii
}

func (l *ProgressListener[T]) OnStart(nGames, nWorkers int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nGames = nGames
	l.finished, l.p1Wins, l.p2Wins, l.draws = 0, 0, 0, 0
	if l.terminal() {
		l.out.HideCursor()
	}
	l.draw()
}

func (l *ProgressListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.finished++
	switch info.Result {
	case VersusPl1Win:
		l.p1Wins++
	case VersusPl2Win:
		l.p2Wins++
	default:
		l.draws++
	}
	l.draw()
}

func (l *ProgressListener[T]) Summary(info VersusSummaryInfo) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.terminal() {
		l.out.ShowCursor()
		fmt.Fprintln(l.out)
	}
	fmt.Fprintf(l.out, "%s\n", info)
}

func (l *ProgressListener[T]) draw() {
	status := fmt.Sprintf("games %d/%d | p1 wins %d | p2 wins %d | draws %d",
		l.finished, l.nGames, l.p1Wins, l.p2Wins, l.draws)
	if !l.terminal() {
		fmt.Fprintln(l.out, status)
		return
	}
	l.out.ClearLine()
	fmt.Fprint(l.out, "\r"+status)
}

package arena

import "go.uber.org/zap"

// Receives arena progress. Methods are called from the worker goroutines,
// implementations must be safe for concurrent use.
type ListenerLike[T comparable] interface {
	OnStart(nGames, nWorkers int)
	OnMoveMade(info VersusWorkerInfo[T])
	OnFinishedGame(info VersusWorkerInfo[T])
	OnFinishedWork(info VersusWorkerInfo[T])
	Summary(info VersusSummaryInfo)
}

type DefaultListener[T comparable] struct{}

func (DefaultListener[T]) OnStart(int, int)                   {}
func (DefaultListener[T]) OnMoveMade(VersusWorkerInfo[T])     {}
func (DefaultListener[T]) OnFinishedGame(VersusWorkerInfo[T]) {}
func (DefaultListener[T]) OnFinishedWork(VersusWorkerInfo[T]) {}
func (DefaultListener[T]) Summary(VersusSummaryInfo)          {}

// Structured log of every finished game and the summary
type LogListener[T comparable] struct {
	DefaultListener[T]
	Logger *zap.Logger
}

func NewLogListener[T comparable](logger *zap.Logger) *LogListener[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogListener[T]{Logger: logger}
}

func (l *LogListener[T]) OnStart(nGames, nWorkers int) {
	l.Logger.Info("arena started", zap.Int("games", nGames), zap.Int("workers", nWorkers))
}

func (l *LogListener[T]) OnFinishedGame(info VersusWorkerInfo[T]) {
	l.Logger.Debug("game finished",
		zap.Int("worker", info.WorkerID),
		zap.Int("game", info.FinishedGames),
		zap.Int("moves", info.GameMoveNum),
		zap.Bool("p1_first", info.P1First),
		zap.Int("result", int(info.Result)),
	)
}

func (l *LogListener[T]) Summary(info VersusSummaryInfo) {
	l.Logger.Info("arena finished",
		zap.Int("games", info.TotalGames),
		zap.Int("p1_wins", info.P1Wins),
		zap.Int("p2_wins", info.P2Wins),
		zap.Int("draws", info.Draws),
	)
}

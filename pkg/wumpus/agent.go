package wumpus

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Facts the agent holds about a square
type Fact uint8

const (
	FactSafe Fact = 1 << iota
	FactVisited
	FactWumpusPossible
	FactPitPossible
)

var _factNames = [...]struct {
	f    Fact
	name string
}{{FactSafe, "safe"}, {FactVisited, "visited"}, {FactWumpusPossible, "w_pbl"}, {FactPitPossible, "p_pbl"}}

type Facts uint8

func (fs Facts) Has(f Fact) bool {
	return uint8(fs)&uint8(f) != 0
}

func (fs *Facts) add(f Fact) {
	*fs |= Facts(f)
}

func (fs *Facts) drop(f Fact) {
	*fs &^= Facts(f)
}

func (fs Facts) String() string {
	names := make([]string, 0, len(_factNames))
	for _, fn := range _factNames {
		if fs.Has(fn.f) {
			names = append(names, fn.name)
		}
	}
	return "{" + strings.Join(names, ", ") + "}"
}

type Result int

const (
	ResultNoSafePath Result = iota
	ResultGold
	ResultDied
)

func (r Result) String() string {
	switch r {
	case ResultGold:
		return "gold"
	case ResultDied:
		return "died"
	}
	return "no safe path"
}

type MoveEvent struct {
	Step     int
	Position Position
	Percepts Percepts
	Hazard   Hazard
}

type Outcome struct {
	Result Result
	// Squares entered, in order, the deadly one included
	Path []Position
	// Set when the agent died
	Hazard Hazard
}

type Listener struct {
	onMove func(MoveEvent)
	onTell func(Position, *Agent)
}

func NewListener() Listener {
	return Listener{}
}

// Called after every move into a square
func (l *Listener) OnMove(f func(MoveEvent)) *Listener {
	l.onMove = f
	return l
}

// Called after the knowledge base was updated with the percepts of a square
func (l *Listener) OnTell(f func(Position, *Agent)) *Listener {
	l.onTell = f
	return l
}

// Knowledge-based agent that moves by simple rules over its facts, it does
// not perform logical inference
type Agent struct {
	size     int
	start    Position
	kb       map[Position]Facts
	listener Listener
	logger   *zap.Logger
}

func NewAgent(size int, start Position) *Agent {
	a := &Agent{
		size:   size,
		start:  start,
		kb:     make(map[Position]Facts),
		logger: zap.NewNop(),
	}
	a.reset()
	return a
}

func (a *Agent) reset() {
	clear(a.kb)
	a.kb[a.start] = Facts(FactSafe)
}

func (a *Agent) SetListener(listener Listener) *Agent {
	a.listener = listener
	return a
}

func (a *Agent) SetLogger(logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	a.logger = logger
	return a
}

func (a *Agent) Facts(p Position) Facts {
	return a.kb[p]
}

// Squares with at least one fact, in row-major order
func (a *Agent) Known() []Position {
	known := make([]Position, 0, len(a.kb))
	for p := range a.kb {
		known = append(known, p)
	}
	slices.SortFunc(known, func(x, y Position) int {
		if x.Row != y.Row {
			return x.Row - y.Row
		}
		return x.Col - y.Col
	})
	return known
}

// Knowledge base as {(r, c): {facts}, ...}
func (a *Agent) KBString() string {
	parts := make([]string, 0, len(a.kb))
	for _, p := range a.Known() {
		parts = append(parts, fmt.Sprintf("%s: %s", p, a.kb[p]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (a *Agent) update(p Position, f func(*Facts)) {
	fs := a.kb[p]
	f(&fs)
	a.kb[p] = fs
}

// Tell the knowledge base what was perceived in the square the agent
// entered and survived
func (a *Agent) Tell(p Position, ps Percepts) {
	a.update(p, func(fs *Facts) {
		fs.add(FactVisited)
		fs.add(FactSafe)
		fs.drop(FactWumpusPossible)
		fs.drop(FactPitPossible)
	})

	quiet := !ps.Has(Stench) && !ps.Has(Breeze)
	for _, adj := range adjacent(a.size, p) {
		if quiet {
			a.update(adj, func(fs *Facts) {
				fs.add(FactSafe)
				fs.drop(FactWumpusPossible)
				fs.drop(FactPitPossible)
			})
		}
		if a.kb[adj].Has(FactVisited) {
			continue
		}
		if ps.Has(Stench) {
			a.update(adj, func(fs *Facts) { fs.add(FactWumpusPossible) })
		}
		if ps.Has(Breeze) {
			a.update(adj, func(fs *Facts) { fs.add(FactPitPossible) })
		}
	}

	if a.listener.onTell != nil {
		a.listener.onTell(p, a)
	}
}

// Explore the world from the start square until the gold is found, the agent
// dies or no square is left to try. The frontier is a stack. A cautious agent
// only pushes squares known to be safe, with safeSearch off the agent also
// pushes every unvisited neighbour once the frontier runs dry.
func (a *Agent) FindGold(world *World, safeSearch bool) Outcome {
	a.reset()
	frontier := []Position{a.start}
	var out Outcome

	for len(frontier) > 0 {
		p := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if a.kb[p].Has(FactVisited) {
			// A stale entry may still be the last one, the risk is then
			// taken from the square it names
			if len(frontier) == 0 && !safeSearch {
				frontier = a.pushUnvisited(frontier, p)
			}
			continue
		}

		out.Path = append(out.Path, p)
		ev := MoveEvent{Step: len(out.Path), Position: p, Hazard: world.HazardAt(p)}
		if ev.Hazard != HazardNone {
			a.logger.Debug("agent died", zap.Stringer("position", p), zap.Stringer("hazard", ev.Hazard))
			if a.listener.onMove != nil {
				a.listener.onMove(ev)
			}
			out.Result = ResultDied
			out.Hazard = ev.Hazard
			return out
		}

		ev.Percepts = world.Percepts(p)
		a.logger.Debug("agent moved", zap.Stringer("position", p), zap.Strings("percepts", ev.Percepts.Names()))
		if a.listener.onMove != nil {
			a.listener.onMove(ev)
		}

		a.Tell(p, ev.Percepts)
		if ev.Percepts.Has(Glitter) {
			out.Result = ResultGold
			return out
		}

		for _, adj := range adjacent(a.size, p) {
			fs := a.kb[adj]
			if fs.Has(FactSafe) && !fs.Has(FactVisited) {
				frontier = append(frontier, adj)
			}
		}
		if len(frontier) == 0 && !safeSearch {
			frontier = a.pushUnvisited(frontier, p)
		}
	}

	out.Result = ResultNoSafePath
	return out
}

func (a *Agent) pushUnvisited(frontier []Position, p Position) []Position {
	for _, adj := range adjacent(a.size, p) {
		if !a.kb[adj].Has(FactVisited) {
			frontier = append(frontier, adj)
		}
	}
	return frontier
}

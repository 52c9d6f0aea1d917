package wumpus

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLayout = errors.New("invalid wumpus world layout")

type Position struct {
	Row int `yaml:"row" validate:"gte=0"`
	Col int `yaml:"col" validate:"gte=0"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Neighbour offsets in the order they are considered: left, right, down, up
var _adjacent = [...]Position{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

func adjacent(size int, p Position) []Position {
	out := make([]Position, 0, len(_adjacent))
	for _, d := range _adjacent {
		r, c := p.Row+d.Row, p.Col+d.Col
		if r >= 0 && r < size && c >= 0 && c < size {
			out = append(out, Position{r, c})
		}
	}
	return out
}

type Percept uint8

const (
	Stench Percept = 1 << iota
	Breeze
	Glitter
)

var _perceptNames = [...]struct {
	p    Percept
	name string
}{{Stench, "stench"}, {Breeze, "breeze"}, {Glitter, "glitter"}}

// Set of percepts sensed in a square
type Percepts uint8

func (ps Percepts) Has(p Percept) bool {
	return uint8(ps)&uint8(p) != 0
}

// Names in the order stench, breeze, glitter
func (ps Percepts) Names() []string {
	names := make([]string, 0, len(_perceptNames))
	for _, pn := range _perceptNames {
		if ps.Has(pn.p) {
			names = append(names, pn.name)
		}
	}
	return names
}

func (ps Percepts) String() string {
	return "[" + strings.Join(ps.Names(), ", ") + "]"
}

type Hazard int

const (
	HazardNone Hazard = iota
	HazardPit
	HazardWumpus
)

func (h Hazard) String() string {
	switch h {
	case HazardPit:
		return "pit"
	case HazardWumpus:
		return "wumpus"
	}
	return "none"
}

type Layout struct {
	Size   int        `yaml:"size" validate:"gte=2"`
	Start  Position   `yaml:"start"`
	Wumpus Position   `yaml:"wumpus"`
	Gold   Position   `yaml:"gold"`
	Pits   []Position `yaml:"pits" validate:"dive"`
}

// The 4x4 cave used by the demonstrations
func DefaultLayout() Layout {
	return Layout{
		Size:   4,
		Start:  Position{3, 0},
		Wumpus: Position{1, 0},
		Gold:   Position{1, 1},
		Pits:   []Position{{3, 2}, {1, 2}, {0, 3}},
	}
}

func (l Layout) inside(p Position) bool {
	return p.Row >= 0 && p.Row < l.Size && p.Col >= 0 && p.Col < l.Size
}

func (l Layout) Validate() error {
	if l.Size < 2 {
		return fmt.Errorf("%w: size %d", ErrInvalidLayout, l.Size)
	}
	named := map[string]Position{"start": l.Start, "wumpus": l.Wumpus, "gold": l.Gold}
	for name, p := range named {
		if !l.inside(p) {
			return fmt.Errorf("%w: %s %s outside the %dx%d grid", ErrInvalidLayout, name, p, l.Size, l.Size)
		}
	}
	for _, p := range l.Pits {
		if !l.inside(p) {
			return fmt.Errorf("%w: pit %s outside the %dx%d grid", ErrInvalidLayout, p, l.Size, l.Size)
		}
		if p == l.Start {
			return fmt.Errorf("%w: pit on the start square %s", ErrInvalidLayout, p)
		}
	}
	if l.Wumpus == l.Start {
		return fmt.Errorf("%w: wumpus on the start square %s", ErrInvalidLayout, l.Start)
	}
	return nil
}

type cell uint8

const (
	cellWumpus cell = 1 << iota
	cellGold
	cellPit
	cellStench
	cellBreeze
)

// Environment, the agent only learns about it through percepts
type World struct {
	layout Layout
	cells  [][]cell
}

func NewWorld(layout Layout) (*World, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	w := &World{layout: layout, cells: make([][]cell, layout.Size)}
	for i := range w.cells {
		w.cells[i] = make([]cell, layout.Size)
	}

	w.set(layout.Wumpus, cellWumpus)
	w.set(layout.Gold, cellGold)
	for _, p := range layout.Pits {
		w.set(p, cellPit)
	}
	for _, a := range adjacent(layout.Size, layout.Wumpus) {
		w.set(a, cellStench)
	}
	for _, p := range layout.Pits {
		for _, a := range adjacent(layout.Size, p) {
			w.set(a, cellBreeze)
		}
	}
	return w, nil
}

func (w *World) set(p Position, c cell) {
	w.cells[p.Row][p.Col] |= c
}

func (w *World) has(p Position, c cell) bool {
	return w.cells[p.Row][p.Col]&c != 0
}

func (w *World) Size() int {
	return w.layout.Size
}

func (w *World) Layout() Layout {
	return w.layout
}

func (w *World) Adjacent(p Position) []Position {
	return adjacent(w.layout.Size, p)
}

func (w *World) Percepts(p Position) Percepts {
	var ps Percepts
	if w.has(p, cellStench) {
		ps |= Percepts(Stench)
	}
	if w.has(p, cellBreeze) {
		ps |= Percepts(Breeze)
	}
	if w.has(p, cellGold) {
		ps |= Percepts(Glitter)
	}
	return ps
}

// What kills an agent entering the square
func (w *World) HazardAt(p Position) Hazard {
	switch {
	case w.has(p, cellPit):
		return HazardPit
	case w.has(p, cellWumpus):
		return HazardWumpus
	}
	return HazardNone
}

func (c cell) String() string {
	var sb strings.Builder
	for _, x := range [...]struct {
		c cell
		s string
	}{{cellWumpus, "w"}, {cellGold, "g"}, {cellPit, "p"}, {cellStench, "s"}, {cellBreeze, "b"}} {
		if c&x.c != 0 {
			sb.WriteString(x.s)
		}
	}
	return sb.String()
}

// Grid with row and column numbers, w wumpus, g gold, p pit, s stench, b breeze
func (w *World) String() string {
	line := "    " + strings.Repeat("-", w.layout.Size*4+1) + "\n"
	var sb strings.Builder
	sb.WriteString(line)
	for r := range w.layout.Size {
		fmt.Fprintf(&sb, " %d  ", r)
		for c := range w.layout.Size {
			fmt.Fprintf(&sb, "|%-3s", w.cells[r][c])
		}
		sb.WriteString("|\n")
		sb.WriteString(line)
	}
	sb.WriteString("    ")
	for c := range w.layout.Size {
		fmt.Fprintf(&sb, "%4d", c)
	}
	sb.WriteString("\n")
	return sb.String()
}

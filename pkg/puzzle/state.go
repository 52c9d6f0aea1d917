package puzzle

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

var ErrInvalidBoard = errors.New("invalid board")

// Largest supported board is 15x15, tiles are stored as single bytes
const maxTiles = 225

type Move int

const (
	MoveNone Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// Moves are named after the motion of the blank
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	}
	return "None"
}

// Generation order of successors
var _moveDeltas = [...]struct {
	move   Move
	dr, dc int
}{
	{MoveUp, -1, 0},
	{MoveDown, 1, 0},
	{MoveLeft, 0, -1},
	{MoveRight, 0, 1},
}

// Immutable n x n board, 0 is the blank. Tiles are kept in a string so the
// state itself can be used as a map key.
type State struct {
	tiles string
	width int
	blank int
}

func NewState(tiles []int) (State, error) {
	size := len(tiles)
	width := int(math.Sqrt(float64(size)))
	if size < 4 || size > maxTiles || width*width != size {
		return State{}, fmt.Errorf("%w: %d tiles is not a square board", ErrInvalidBoard, size)
	}

	seen := make([]bool, size)
	buf := make([]byte, size)
	blank := -1
	for i, t := range tiles {
		if t < 0 || t >= size || seen[t] {
			return State{}, fmt.Errorf("%w: tile %d at index %d", ErrInvalidBoard, t, i)
		}
		seen[t] = true
		buf[i] = byte(t)
		if t == 0 {
			blank = i
		}
	}
	return State{tiles: string(buf), width: width, blank: blank}, nil
}

// Panics on invalid input, for boards known at compile time
func MustState(tiles ...int) State {
	s, err := NewState(tiles)
	if err != nil {
		panic(err)
	}
	return s
}

// Goal with the blank first and tiles in ascending order
func OrderedGoal(width int) State {
	tiles := make([]int, width*width)
	for i := range tiles {
		tiles[i] = i
	}
	return MustState(tiles...)
}

func (s State) Width() int {
	return s.width
}

func (s State) Size() int {
	return len(s.tiles)
}

func (s State) Blank() int {
	return s.blank
}

func (s State) At(i int) int {
	return int(s.tiles[i])
}

func (s State) Tiles() []int {
	out := make([]int, len(s.tiles))
	for i := range out {
		out[i] = int(s.tiles[i])
	}
	return out
}

func (s State) Equal(o State) bool {
	return s.tiles == o.tiles
}

func (s State) IsZero() bool {
	return s.width == 0
}

type Successor struct {
	State State
	Move  Move
}

// States reachable by sliding a tile into the blank, in up, down, left, right order
func (s State) Successors() []Successor {
	out := make([]Successor, 0, 4)
	row, col := s.blank/s.width, s.blank%s.width
	for _, d := range _moveDeltas {
		r, c := row+d.dr, col+d.dc
		if r < 0 || r >= s.width || c < 0 || c >= s.width {
			continue
		}
		idx := r*s.width + c
		buf := []byte(s.tiles)
		buf[s.blank], buf[idx] = buf[idx], buf[s.blank]
		out = append(out, Successor{
			State: State{tiles: string(buf), width: s.width, blank: idx},
			Move:  d.move,
		})
	}
	return out
}

// Board drawn as rows of cells separated by dashes
func (s State) String() string {
	cell := len(strconv.Itoa(len(s.tiles) - 1))
	line := " " + strings.Repeat("-", s.width*(cell+3)+1) + "\n"

	var sb strings.Builder
	sb.WriteString(line)
	for r := 0; r < s.width; r++ {
		sb.WriteString(" |")
		for c := 0; c < s.width; c++ {
			fmt.Fprintf(&sb, " %*d |", cell, s.At(r*s.width+c))
		}
		sb.WriteString("\n")
		sb.WriteString(line)
	}
	return sb.String()
}

// Tuple form, (7, 2, 4, 5, 0, 6, 8, 3, 1)
func (s State) Tuple() string {
	parts := make([]string, len(s.tiles))
	for i := range parts {
		parts[i] = strconv.Itoa(s.At(i))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Number of arrangements of the tiles, (n*n)!
func StateSpaceSize(tiles int) *big.Int {
	return new(big.Int).MulRange(1, int64(tiles))
}

// Sum of Manhattan distances of every non-blank tile to its place in goal
type Manhattan struct {
	goalRow []int
	goalCol []int
}

func NewManhattan(goal State) Manhattan {
	h := Manhattan{goalRow: make([]int, goal.Size()), goalCol: make([]int, goal.Size())}
	for i := range goal.Size() {
		t := goal.At(i)
		h.goalRow[t] = i / goal.width
		h.goalCol[t] = i % goal.width
	}
	return h
}

func (h Manhattan) Distance(s State) int {
	d := 0
	for i := range s.Size() {
		t := s.At(i)
		if t == 0 {
			continue
		}
		d += abs(i/s.width-h.goalRow[t]) + abs(i%s.width-h.goalCol[t])
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

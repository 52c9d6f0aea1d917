package hillclimb

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
)

var ErrUnknownObjective = errors.New("unknown objective")

type Objective struct {
	Name string
	// Human readable formula
	Formula string
	F       Func
}

// a*x^2 + b*x + c
type Quadratic struct {
	A, B, C float64
}

func (q Quadratic) F(x float64) float64 {
	return q.A*x*x + q.B*x + q.C
}

// Real x with F(x) = y, ascending and rounded to 6 decimals
func (q Quadratic) Solve(y float64) []float64 {
	c := q.C - y
	if q.A == 0 {
		if q.B == 0 {
			return nil
		}
		return []float64{Round6(-c / q.B)}
	}

	disc := q.B*q.B - 4*q.A*c
	if disc < 0 {
		// Rounding may push a double root just below zero
		if disc > -1e-12 {
			disc = 0
		} else {
			return nil
		}
	}
	sq := math.Sqrt(disc)
	roots := []float64{
		Round6((-q.B - sq) / (2 * q.A)),
		Round6((-q.B + sq) / (2 * q.A)),
	}
	sort.Float64s(roots)
	return slices.Compact(roots)
}

func (q Quadratic) String() string {
	return fmt.Sprintf("%s*x**2 + %s*x + %s",
		strconv.FormatFloat(q.A, 'g', -1, 64),
		strconv.FormatFloat(q.B, 'g', -1, 64),
		strconv.FormatFloat(q.C, 'g', -1, 64))
}

var (
	// Maximum at x = 0, f(x) = 5
	InvertedParabola = Quadratic{A: -1, C: 5}
	// Minimum at x = 0, f(x) = -5
	Parabola = Quadratic{A: 1, C: -5}
)

// Local maximum near x = 1, global near x = 4
func TwoPeaks(x float64) float64 {
	return 0.5*math.Exp(-(x-1)*(x-1)) + math.Exp(-(x-4)*(x-4))
}

var objectives = []Objective{
	{Name: "inverted-parabola", Formula: "-x**2 + 5", F: InvertedParabola.F},
	{Name: "two-peaks", Formula: "0.5*e^-((x-1)^2) + e^-((x-4)^2)", F: TwoPeaks},
	{Name: "parabola", Formula: "x**2 - 5", F: Parabola.F},
}

// Quadratic form of the objective, if it has one
func QuadraticOf(name string) (Quadratic, bool) {
	switch name {
	case "inverted-parabola":
		return InvertedParabola, true
	case "parabola":
		return Parabola, true
	}
	return Quadratic{}, false
}

func Lookup(name string) (Objective, error) {
	for _, o := range objectives {
		if o.Name == name {
			return o, nil
		}
	}
	return Objective{}, fmt.Errorf("%w: %q", ErrUnknownObjective, name)
}

func Objectives() []Objective {
	return slices.Clone(objectives)
}

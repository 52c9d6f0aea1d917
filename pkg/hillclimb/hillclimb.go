package hillclimb

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var ErrInvalidOptions = errors.New("invalid hill climbing options")

const DefaultSeed = 42

type Func func(x float64) float64

type Options struct {
	Iterations int     `yaml:"iterations" validate:"gte=0"`
	StepSize   float64 `yaml:"step" validate:"gt=0"`
	Low        float64 `yaml:"low"`
	High       float64 `yaml:"high" validate:"gtfield=Low"`
}

func DefaultOptions() Options {
	return Options{
		Iterations: 50,
		StepSize:   0.2,
		Low:        -10,
		High:       10,
	}
}

func (o Options) validate() error {
	if o.Iterations < 0 {
		return fmt.Errorf("%w: negative iterations %d", ErrInvalidOptions, o.Iterations)
	}
	if o.StepSize <= 0 {
		return fmt.Errorf("%w: step size %g must be positive", ErrInvalidOptions, o.StepSize)
	}
	if o.High <= o.Low {
		return fmt.Errorf("%w: empty range [%g, %g]", ErrInvalidOptions, o.Low, o.High)
	}
	return nil
}

// Accepted move, Iteration is -1 for the initial point
type Improvement struct {
	Iteration int
	X         float64
	F         float64
}

type Result struct {
	Initial Improvement
	X       float64
	F       float64
	// Every accepted move, in order
	Trace []Improvement
}

func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + (high-low)*rng.Float64()
}

// Maximize f starting from a uniform random point in [Low, High], each
// iteration tries x + U(-step, step) and moves only on strict improvement
func Climb(f Func, opts Options, rng *rand.Rand) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}

	x := uniform(rng, opts.Low, opts.High)
	fx := f(x)
	res := Result{Initial: Improvement{Iteration: -1, X: x, F: fx}}

	for i := range opts.Iterations {
		nx := x + uniform(rng, -opts.StepSize, opts.StepSize)
		nfx := f(nx)
		if nfx > fx {
			x, fx = nx, nfx
			res.Trace = append(res.Trace, Improvement{Iteration: i, X: x, F: fx})
		}
	}

	res.X, res.F = x, fx
	return res, nil
}

// Minimize f by climbing -f, values in the result are those of f
func Minimize(f Func, opts Options, rng *rand.Rand) (Result, error) {
	res, err := Climb(func(x float64) float64 { return -f(x) }, opts, rng)
	if err != nil {
		return res, err
	}
	res.Initial.F = -res.Initial.F
	res.F = -res.F
	for i := range res.Trace {
		res.Trace[i].F = -res.Trace[i].F
	}
	return res, nil
}

// Round to 6 decimal places
func Round6(x float64) float64 {
	r := math.Round(x*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}

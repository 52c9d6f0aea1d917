// Package agent implements the two-location vacuum cleaner world,
// an environment with a simple reflex agent acting on it through percepts and actions.
package agent

import (
	"errors"
	"fmt"
)

type Location string
type Status string
type Action string

const (
	LocationA Location = "A"
	LocationB Location = "B"
)

const (
	Dirty Status = "Dirty"
	Clean Status = "Clean"
)

const (
	Suck  Action = "Suck"
	Left  Action = "Left"
	Right Action = "Right"
)

// Default number of steps the agent runs for
const DefaultSteps = 5

var ErrUnknownLocation = errors.New("unknown location")

// What the agent senses: its location and the state of the room it is in
type Percept struct {
	Location Location
	Status   Status
}

// Environment with two rooms, A on the left and B on the right
type Environment struct {
	state map[Location]Status
}

// Both rooms start dirty
func NewEnvironment() *Environment {
	return NewEnvironmentWith(Dirty, Dirty)
}

func NewEnvironmentWith(a, b Status) *Environment {
	return &Environment{state: map[Location]Status{LocationA: a, LocationB: b}}
}

func (e *Environment) Status(loc Location) (Status, error) {
	s, ok := e.state[loc]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}
	return s, nil
}

func (e *Environment) IsClean(loc Location) bool {
	return e.state[loc] == Clean
}

func (e *Environment) Clean(loc Location) error {
	if _, ok := e.state[loc]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
	}
	e.state[loc] = Clean
	return nil
}

// Locations in left to right order
func (e *Environment) Locations() []Location {
	return []Location{LocationA, LocationB}
}

// One iteration of the perceive-act cycle
type Step struct {
	Number   int
	Location Location
	Status   Status
	Action   Action
	// Location after the action
	Next Location
}

type StepListener func(Step)

// Simple reflex vacuum agent: suck if dirty, otherwise move to the other room
type Agent struct {
	env      *Environment
	location Location
	onStep   StepListener
}

func NewAgent(env *Environment, start Location) (*Agent, error) {
	if _, err := env.Status(start); err != nil {
		return nil, err
	}
	return &Agent{env: env, location: start}, nil
}

func (a *Agent) Location() Location {
	return a.location
}

// Attach callback invoked after every step
func (a *Agent) OnStep(listener StepListener) *Agent {
	a.onStep = listener
	return a
}

// Reflex rule table, maps a percept to an action
func ReflexRule(p Percept) Action {
	if p.Status == Dirty {
		return Suck
	}
	if p.Location == LocationA {
		return Right
	}
	return Left
}

func (a *Agent) perceive() (Percept, error) {
	status, err := a.env.Status(a.location)
	if err != nil {
		return Percept{}, err
	}
	return Percept{Location: a.location, Status: status}, nil
}

func (a *Agent) act(action Action) error {
	switch action {
	case Suck:
		return a.env.Clean(a.location)
	case Right:
		a.location = LocationB
	case Left:
		a.location = LocationA
	}
	return nil
}

// Run the agent for given number of steps, returns the trace
func (a *Agent) Run(steps int) ([]Step, error) {
	trace := make([]Step, 0, max(steps, 0))
	for i := 0; i < steps; i++ {
		percept, err := a.perceive()
		if err != nil {
			return trace, err
		}

		action := ReflexRule(percept)
		if err := a.act(action); err != nil {
			return trace, err
		}

		step := Step{
			Number:   i + 1,
			Location: percept.Location,
			Status:   percept.Status,
			Action:   action,
			Next:     a.location,
		}
		trace = append(trace, step)
		if a.onStep != nil {
			a.onStep(step)
		}
	}
	return trace, nil
}

package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/agent"
)

func Vacuum(ctx context.Context, env Env) error {
	cfg := env.Config.Vacuum
	out := env.Out

	world := agent.NewEnvironmentWith(
		agent.Status(cfg.Rooms[string(agent.LocationA)]),
		agent.Status(cfg.Rooms[string(agent.LocationB)]),
	)

	out.Banner("Agents and environments, vacuum cleaner world")
	out.Println(rule(45))
	out.Println(" Environment, Room Initialized, as: ")
	for _, loc := range world.Locations() {
		status, err := world.Status(loc)
		if err != nil {
			return err
		}
		out.Printf(" Room %s , state %s\n", loc, status)
	}

	cleaner, err := agent.NewAgent(world, agent.Location(cfg.Start))
	if err != nil {
		return err
	}
	out.Println(rule(45))
	out.Println(" Agent, Vacuum Cleaner Initialized")
	out.Printf(" Placed in room %s\n", cleaner.Location())
	out.Println(rule(45))
	out.Println(" Vacuum cleaner starts")

	cleaner.OnStep(func(s agent.Step) {
		out.Println(rule(45))
		out.Printf(" Agent at %s , room %s is %s\n", s.Location, s.Location, s.Status)
		if s.Action == agent.Suck {
			out.Println(" Agent cleans")
		} else {
			out.Printf(" Agent moves from %s to %s\n", s.Location, s.Next)
		}
	})

	trace, err := cleaner.Run(cfg.Steps)
	env.logger().Debug("vacuum cleaner stopped", zap.Int("steps", len(trace)))
	return err
}

package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/wumpus"
)

func Wumpus(ctx context.Context, env Env) error {
	cfg := env.Config.Wumpus
	out := env.Out
	out.Banner("Wumpus world, knowledge based agent without entailment")

	for _, safe := range cfg.SafeSearch {
		if err := ctx.Err(); err != nil {
			return err
		}

		world, err := wumpus.NewWorld(cfg.Layout)
		if err != nil {
			return err
		}

		out.Println(" " + rule(60))
		if safe {
			out.Println(" Run of Agent that takes no risk")
		} else {
			out.Println(" Run of Agent that takes risk")
		}
		out.Printf("\n\t WumpusWorld\n%s", world)

		agent := wumpus.NewAgent(world.Size(), cfg.Layout.Start).SetLogger(env.logger())
		out.Printf("\n\n Initial kb: %s\n", agent.KBString())
		out.Println("\n Agent can move and perceive stench, breeze, glitter")
		out.Println("\n Agent does(can) not:\n\t shoot wumpus, rotate, face direction," +
			"\n\t bump into wall, grab gold , trace back to climb out," +
			"\n\t use proposition logic inference, entails")
		out.Println("\n Agent starts")

		listener := wumpus.NewListener()
		listener.
			OnMove(func(ev wumpus.MoveEvent) {
				switch ev.Hazard {
				case wumpus.HazardPit:
					out.Failure("\n Agent fell into a pit")
				case wumpus.HazardWumpus:
					out.Failure("\n Agent encountered wumpus")
				default:
					out.Printf(" %s\n Agent moves to %s , and percieves: %s\n", rule(30), ev.Position, ev.Percepts)
				}
			}).
			OnTell(func(_ wumpus.Position, a *wumpus.Agent) {
				out.Printf("\n Updated kb: %s\n", a.KBString())
			})
		agent.SetListener(listener)

		outcome := agent.FindGold(world, safe)
		switch outcome.Result {
		case wumpus.ResultGold:
			out.Success("\n Agent found gold. Climbing out.")
		case wumpus.ResultNoSafePath:
			out.Failure("\n Agent cannot find a safe path. Climbing out.")
		}

		env.logger().Debug("wumpus run finished",
			zap.Bool("safe_search", safe),
			zap.Stringer("result", outcome.Result),
			zap.Int("moves", len(outcome.Path)),
		)
	}
	return nil
}

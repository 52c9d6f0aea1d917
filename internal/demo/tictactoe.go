package demo

import (
	"context"

	"go.uber.org/zap"

	"github.com/IlikeChooros/go-aima/pkg/arena"
	"github.com/IlikeChooros/go-aima/pkg/search"
	"github.com/IlikeChooros/go-aima/pkg/ttt"
)

func TicTacToe(ctx context.Context, env Env) error {
	cfg := env.Config.TicTacToe
	out := env.Out

	out.Banner("Tic-Tac-Toe")
	for i, script := range cfg.Games {
		out.Header("\nGame %d", i+1)
		playScript(env, script)
	}

	if cfg.Arena.Games == 0 {
		return nil
	}
	return versus(ctx, env)
}

// Replay the typed inputs of a game, echoing the prompts
func playScript(env Env, inputs []int) {
	out := env.Out
	listener := ttt.NewGameListener()
	listener.
		OnPrompt(func(ev ttt.PromptEvent) {
			out.Printf("%s%d\n", ev.Prompt, ev.Input)
		}).
		OnMove(func(ev ttt.MoveEvent) {
			out.Printf("%s", ev.Position)
		}).
		OnInvalid(func(ttt.InvalidMoveEvent) {
			out.Failure(ttt.InvalidMoveMessage)
		}).
		OnEnd(func(ev ttt.EndEvent) {
			out.Success(ev.Message)
		})

	game := ttt.NewGame().SetListener(listener).SetLogger(env.logger())
	out.Printf("%s", game.Position())
	game.PlayScript(inputs)

	if !game.Over() {
		out.Muted("Out of moves, the game is unfinished")
	}
}

func versus(ctx context.Context, env Env) error {
	cfg := env.Config.TicTacToe.Arena
	out := env.Out

	p1 := ttt.NewAlphaBetaPlayer()
	p2 := ttt.NewRandomPlayer(cfg.Seed)
	out.Header("\n%s versus %s, %d games", p1.Name(), p2.Name(), cfg.Games)

	va := arena.NewVersusArena[ttt.Square](ttt.NewPosition(), p1, p2).WithContext(ctx)
	va.Setup(search.DefaultLimits(), cfg.Games, cfg.Workers)

	summary, err := va.Run(arena.NewLogListener[ttt.Square](env.logger()))
	if err != nil {
		return err
	}

	out.Printf(" %s wins: %d\n %s wins: %d\n draws: %d\n",
		summary.P1Name, summary.P1Wins, summary.P2Name, summary.P2Wins, summary.Draws)
	out.Printf(" first to move wins: %d , second to move wins: %d\n",
		summary.FirstToMoveWins, summary.SecondToMoveWins)
	env.logger().Debug("arena summary", zap.Stringer("summary", summary))
	return nil
}

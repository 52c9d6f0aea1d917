package demo

import (
	"context"
	"errors"
	"strings"

	"github.com/IlikeChooros/go-aima/pkg/kb"
)

func KB(ctx context.Context, env Env) error {
	cfg := env.Config.KB
	out := env.Out

	entries := cfg.Entries
	if len(entries) == 0 {
		entries = kb.Default()
	}
	agent := kb.NewAgent(entries).SetLogger(env.logger())

	out.Banner("Knowledge based agent, C program behaviour")
	for _, query := range cfg.Queries {
		out.Println(rule(45))
		out.Printf(" Enter behavior/results of compilation/program run: %s\n", query)

		entry, err := agent.Ask(query)
		if errors.Is(err, kb.ErrBehaviorNotFound) {
			out.Failure("\n %s: Behavior not found in Knowledge Base", query)
			continue
		}
		if err != nil {
			return err
		}

		out.Printf("\n Behavior: %s\n", entry.Behavior)
		out.Printf("\n Error Type: %s\n", entry.ErrorType)
		out.Printf("\n Likely causes: \n\t %s\n", strings.Join(entry.Causes, ",\n\t "))
		out.Printf("\n Possible fixes / solutions: \n\t %s\n", strings.Join(entry.Solutions, ",\n\t "))
	}
	return nil
}

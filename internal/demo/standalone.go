package demo

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-aima/internal/config"
	"github.com/IlikeChooros/go-aima/internal/logging"
	"github.com/IlikeChooros/go-aima/internal/render"
)

// Entry point of the standalone example programs: runs one demonstration
// with the built-in scenario on stdout and exits non-zero on failure
func Main(name string) {
	if err := runStandalone(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runStandalone(name string) error {
	d, err := Lookup(name)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return d.Run(ctx, Env{
		Config: config.Default(),
		Out:    render.New(os.Stdout, false),
		Logger: logger,
	})
}
